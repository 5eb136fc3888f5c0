package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ElectionModel struct {
	ElectionID      uuid.UUID `gorm:"column:election_id;type:uuid;default:gen_random_uuid();primaryKey" json:"election_id"`
	ElectionName    string    `gorm:"column:election_name;type:varchar(255);not null" json:"election_name"`
	ElectionCode    string    `gorm:"column:election_code;type:varchar(50);not null;uniqueIndex:ux_elections_code" json:"election_code"`
	ElectionEnabled bool      `gorm:"column:election_enabled;not null;default:true" json:"election_enabled"`

	// Kosong (NULL) berarti tidak ada batas waktu
	ElectionEndTime *time.Time `gorm:"column:election_end_time;type:timestamptz" json:"election_end_time,omitempty"`

	ElectionCreatedAt time.Time `gorm:"column:election_created_at;type:timestamptz;autoCreateTime" json:"election_created_at"`
	ElectionUpdatedAt time.Time `gorm:"column:election_updated_at;type:timestamptz;autoUpdateTime" json:"election_updated_at"`
}

func (ElectionModel) TableName() string {
	return "elections"
}

func (m *ElectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ElectionID == uuid.Nil {
		m.ElectionID = uuid.New()
	}
	return nil
}

// IsActive: enabled DAN (tanpa end_time ATAU end_time masih di depan).
// Predikat ini independen dari HasEnded — pemilihan bisa disabled
// sekaligus belum "ended" (end_time kosong), caller cek dua-duanya.
func (m *ElectionModel) IsActive() bool {
	if !m.ElectionEnabled {
		return false
	}
	if m.ElectionEndTime == nil {
		return true
	}
	return m.ElectionEndTime.After(time.Now())
}

// HasEnded: end_time terisi dan sudah lewat.
func (m *ElectionModel) HasEnded() bool {
	if m.ElectionEndTime == nil {
		return false
	}
	return !m.ElectionEndTime.After(time.Now())
}
