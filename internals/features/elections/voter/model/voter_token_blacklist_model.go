package model

import (
	"time"

	"gorm.io/gorm"
)

// VoterTokenBlacklist menyimpan token sesi voter yang sudah tidak berlaku
// (logout manual ataupun logout paksa setelah submit ballot).
type VoterTokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (VoterTokenBlacklist) TableName() string {
	return "voter_token_blacklist"
}
