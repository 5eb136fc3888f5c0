package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteModel adalah fakta immutable: (pemilihan, pemilih, jabatan, kandidat, waktu).
// Baris vote tidak pernah di-update/di-delete pada operasi normal;
// semua baris untuk satu ballot dibuat dalam satu transaksi.
type VoteModel struct {
	VoteID          uuid.UUID `gorm:"column:vote_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vote_id"`
	VoteElectionID  uuid.UUID `gorm:"column:vote_election_id;type:uuid;not null;index:idx_votes_election_id" json:"vote_election_id"`
	VoteVoterID     uuid.UUID `gorm:"column:vote_voter_id;type:uuid;not null;index:idx_votes_voter_id" json:"vote_voter_id"`
	VotePositionID  uuid.UUID `gorm:"column:vote_position_id;type:uuid;not null;index:idx_votes_position_candidate,priority:1" json:"vote_position_id"`
	VoteCandidateID uuid.UUID `gorm:"column:vote_candidate_id;type:uuid;not null;index:idx_votes_position_candidate,priority:2" json:"vote_candidate_id"`

	VoteCreatedAt time.Time `gorm:"column:vote_created_at;type:timestamptz;autoCreateTime" json:"vote_created_at"`
}

func (VoteModel) TableName() string {
	return "election_votes"
}

func (m *VoteModel) BeforeCreate(tx *gorm.DB) error {
	if m.VoteID == uuid.Nil {
		m.VoteID = uuid.New()
	}
	return nil
}
