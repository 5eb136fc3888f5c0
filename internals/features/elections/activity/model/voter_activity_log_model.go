package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Aksi yang dicatat di audit trail pemilih.
const (
	ActionLogin          = "login"
	ActionLogout         = "logout"
	ActionBallotAccessed = "ballot_accessed"
	ActionVoteCast       = "vote_cast"
	ActionResultsViewed  = "results_viewed"
)

// VoterActivityLogModel — log append-only; tidak pernah dimutasi.
type VoterActivityLogModel struct {
	ActivityID         uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityVoterID    uuid.UUID `gorm:"column:activity_voter_id;type:uuid;not null;index:idx_activity_voter_id" json:"activity_voter_id"`
	ActivityElectionID uuid.UUID `gorm:"column:activity_election_id;type:uuid;not null;index:idx_activity_election_id" json:"activity_election_id"`
	ActivityAction     string    `gorm:"column:activity_action;type:varchar(50);not null;index:idx_activity_action" json:"activity_action"`

	// Metadata bebas per aksi (mis. vote_cast: jumlah posisi & kandidat)
	ActivityMetadata datatypes.JSON `gorm:"column:activity_metadata;type:jsonb" json:"activity_metadata,omitempty"`

	ActivityIPAddress string `gorm:"column:activity_ip_address;type:varchar(64)" json:"activity_ip_address"`
	ActivityUserAgent string `gorm:"column:activity_user_agent;type:text" json:"activity_user_agent"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;type:timestamptz;autoCreateTime" json:"activity_created_at"`
}

func (VoterActivityLogModel) TableName() string {
	return "voter_activity_logs"
}

func (m *VoterActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityID == uuid.Nil {
		m.ActivityID = uuid.New()
	}
	return nil
}
