package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoterModel adalah entri DPT (daftar pemilih tetap) untuk satu pemilihan.
// VoterHasVoted bersifat monoton: false → true, tidak pernah dibalik.
type VoterModel struct {
	VoterID         uuid.UUID `gorm:"column:voter_id;type:uuid;default:gen_random_uuid();primaryKey" json:"voter_id"`
	VoterElectionID uuid.UUID `gorm:"column:voter_election_id;type:uuid;not null;uniqueIndex:ux_voters_school_per_election;index:idx_voters_election_id" json:"voter_election_id"`

	// Nomor induk (NIM/NIS) — unik per pemilihan, bukan global.
	VoterSchoolID string `gorm:"column:voter_school_id;type:varchar(50);not null;uniqueIndex:ux_voters_school_per_election" json:"voter_school_id"`
	VoterFullName string `gorm:"column:voter_full_name;type:varchar(255);not null" json:"voter_full_name"`

	// Hash bcrypt — tidak pernah ikut response
	VoterPassword string `gorm:"column:voter_password;type:varchar(255);not null" json:"-"`

	VoterHasVoted bool `gorm:"column:voter_has_voted;not null;default:false" json:"voter_has_voted"`

	VoterCreatedAt time.Time `gorm:"column:voter_created_at;type:timestamptz;autoCreateTime" json:"voter_created_at"`
	VoterUpdatedAt time.Time `gorm:"column:voter_updated_at;type:timestamptz;autoUpdateTime" json:"voter_updated_at"`
}

func (VoterModel) TableName() string {
	return "election_voters"
}

// Fallback kalau DB tidak punya default gen_random_uuid() (mis. sqlite saat test)
func (m *VoterModel) BeforeCreate(tx *gorm.DB) error {
	if m.VoterID == uuid.Nil {
		m.VoterID = uuid.New()
	}
	return nil
}
