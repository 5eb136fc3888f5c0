package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
)

type ActivityResponse struct {
	ActivityID uuid.UUID      `json:"activity_id"`
	VoterID    uuid.UUID      `json:"voter_id"`
	ElectionID uuid.UUID      `json:"election_id"`
	Action     string         `json:"action"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
	IPAddress  string         `json:"ip_address"`
	UserAgent  string         `json:"user_agent"`
	CreatedAt  time.Time      `json:"created_at"`
}

func ToActivityResponse(m *activityModel.VoterActivityLogModel) ActivityResponse {
	return ActivityResponse{
		ActivityID: m.ActivityID,
		VoterID:    m.ActivityVoterID,
		ElectionID: m.ActivityElectionID,
		Action:     m.ActivityAction,
		Metadata:   m.ActivityMetadata,
		IPAddress:  m.ActivityIPAddress,
		UserAgent:  m.ActivityUserAgent,
		CreatedAt:  m.ActivityCreatedAt,
	}
}

func ToActivityResponseList(models []activityModel.VoterActivityLogModel) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(models))
	for i := range models {
		result = append(result, ToActivityResponse(&models[i]))
	}
	return result
}
