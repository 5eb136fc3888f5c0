package dto

import (
	"time"

	"github.com/google/uuid"

	feedbackModel "kampusku_backend/internals/features/elections/feedback/model"
)

// 🔹 Request membuat feedback — identitas diverifikasi ulang lewat kredensial
// (sesi voter sudah dimatikan saat submit ballot, jadi tidak bisa pakai sesi).
type FeedbackCreateRequest struct {
	ElectionCode string `json:"election_code" validate:"required"`
	SchoolID     string `json:"school_id" validate:"required"`
	Credential   string `json:"credential" validate:"required"`

	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"max=2000"`
	UIExperience string `json:"ui_experience" validate:"omitempty,oneof=sangat_mudah mudah biasa sulit"`
	FoundIssue   bool   `json:"found_issue"`
}

type FeedbackResponse struct {
	FeedbackID   uuid.UUID `json:"feedback_id"`
	VoterID      uuid.UUID `json:"voter_id"`
	ElectionID   uuid.UUID `json:"election_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	UIExperience string    `json:"ui_experience"`
	FoundIssue   bool      `json:"found_issue"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToFeedbackResponse(m *feedbackModel.VoterFeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		FeedbackID:   m.FeedbackID,
		VoterID:      m.FeedbackVoterID,
		ElectionID:   m.FeedbackElectionID,
		Rating:       m.FeedbackRating,
		Comment:      m.FeedbackComment,
		UIExperience: m.FeedbackUIExperience,
		FoundIssue:   m.FeedbackFoundIssue,
		CreatedAt:    m.FeedbackCreatedAt,
	}
}

func ToFeedbackResponseList(models []feedbackModel.VoterFeedbackModel) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(models))
	for i := range models {
		result = append(result, ToFeedbackResponse(&models[i]))
	}
	return result
}
