package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateModel struct {
	CandidateID          uuid.UUID  `gorm:"column:candidate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"candidate_id"`
	CandidateElectionID  uuid.UUID  `gorm:"column:candidate_election_id;type:uuid;not null;index:idx_candidates_election_id" json:"candidate_election_id"`
	CandidatePositionID  uuid.UUID  `gorm:"column:candidate_position_id;type:uuid;not null;index:idx_candidates_position_id" json:"candidate_position_id"`
	CandidatePartylistID *uuid.UUID `gorm:"column:candidate_partylist_id;type:uuid" json:"candidate_partylist_id,omitempty"`

	CandidateFirstName string `gorm:"column:candidate_first_name;type:varchar(100);not null" json:"candidate_first_name"`
	CandidateLastName  string `gorm:"column:candidate_last_name;type:varchar(100);not null" json:"candidate_last_name"`

	// URL foto — file-nya dikelola layanan lain, di sini cuma referensi
	CandidatePhotoURL string `gorm:"column:candidate_photo_url;type:text" json:"candidate_photo_url"`
	CandidatePlatform string `gorm:"column:candidate_platform;type:text" json:"candidate_platform"`

	CandidateCreatedAt time.Time `gorm:"column:candidate_created_at;type:timestamptz;autoCreateTime" json:"candidate_created_at"`
	CandidateUpdatedAt time.Time `gorm:"column:candidate_updated_at;type:timestamptz;autoUpdateTime" json:"candidate_updated_at"`
}

func (CandidateModel) TableName() string {
	return "election_candidates"
}

func (m *CandidateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CandidateID == uuid.Nil {
		m.CandidateID = uuid.New()
	}
	return nil
}

// FullName gabungan nama depan + belakang untuk response
func (m *CandidateModel) FullName() string {
	if m.CandidateLastName == "" {
		return m.CandidateFirstName
	}
	return m.CandidateFirstName + " " + m.CandidateLastName
}
