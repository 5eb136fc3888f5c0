package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoterFeedbackModel — maksimal satu per (pemilih, pemilihan), dibuat
// sekali setelah memilih; tidak memengaruhi tally sama sekali.
type VoterFeedbackModel struct {
	FeedbackID         uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`
	FeedbackVoterID    uuid.UUID `gorm:"column:feedback_voter_id;type:uuid;not null;uniqueIndex:ux_feedback_voter_per_election" json:"feedback_voter_id"`
	FeedbackElectionID uuid.UUID `gorm:"column:feedback_election_id;type:uuid;not null;uniqueIndex:ux_feedback_voter_per_election" json:"feedback_election_id"`

	FeedbackRating  int    `gorm:"column:feedback_rating;not null" json:"feedback_rating"`
	FeedbackComment string `gorm:"column:feedback_comment;type:text" json:"feedback_comment"`

	// Field terstruktur tambahan
	FeedbackUIExperience string `gorm:"column:feedback_ui_experience;type:varchar(50)" json:"feedback_ui_experience"`
	FeedbackFoundIssue   bool   `gorm:"column:feedback_found_issue;not null;default:false" json:"feedback_found_issue"`

	FeedbackCreatedAt time.Time `gorm:"column:feedback_created_at;type:timestamptz;autoCreateTime" json:"feedback_created_at"`
}

func (VoterFeedbackModel) TableName() string {
	return "voter_feedbacks"
}

func (m *VoterFeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeedbackID == uuid.Nil {
		m.FeedbackID = uuid.New()
	}
	return nil
}
