package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionModel — jabatan yang diperebutkan (mis. "Presiden BEM").
// PositionMaxVote membatasi berapa kandidat yang boleh dipilih pemilih
// untuk jabatan ini; PositionPriority mengatur urutan tampil di ballot.
type PositionModel struct {
	PositionID          uuid.UUID `gorm:"column:position_id;type:uuid;default:gen_random_uuid();primaryKey" json:"position_id"`
	PositionElectionID  uuid.UUID `gorm:"column:position_election_id;type:uuid;not null;index:idx_positions_election_id" json:"position_election_id"`
	PositionDescription string    `gorm:"column:position_description;type:varchar(255);not null" json:"position_description"`
	PositionMaxVote     int       `gorm:"column:position_max_vote;not null;default:1" json:"position_max_vote"`
	PositionPriority    int       `gorm:"column:position_priority;not null;default:0" json:"position_priority"`

	PositionCreatedAt time.Time `gorm:"column:position_created_at;type:timestamptz;autoCreateTime" json:"position_created_at"`
	PositionUpdatedAt time.Time `gorm:"column:position_updated_at;type:timestamptz;autoUpdateTime" json:"position_updated_at"`
}

func (PositionModel) TableName() string {
	return "election_positions"
}

func (m *PositionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PositionID == uuid.Nil {
		m.PositionID = uuid.New()
	}
	return nil
}
