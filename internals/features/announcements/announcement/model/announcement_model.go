package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementModel — pengumuman kampus (termasuk sosialisasi pemilihan).
type AnnouncementModel struct {
	AnnouncementID    uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementTitle string    `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementSlug  string    `gorm:"column:announcement_slug;type:varchar(255);not null;uniqueIndex:ux_announcements_slug" json:"announcement_slug"`
	AnnouncementBody  string    `gorm:"column:announcement_body;type:text;not null" json:"announcement_body"`

	AnnouncementIsPublished bool `gorm:"column:announcement_is_published;not null;default:false" json:"announcement_is_published"`

	// Opsional: pengumuman bisa menunjuk satu pemilihan
	AnnouncementElectionID *uuid.UUID `gorm:"column:announcement_election_id;type:uuid" json:"announcement_election_id,omitempty"`

	AnnouncementCreatedBy *uuid.UUID `gorm:"column:announcement_created_by;type:uuid" json:"announcement_created_by,omitempty"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;type:timestamptz;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;type:timestamptz;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnnouncementID == uuid.Nil {
		m.AnnouncementID = uuid.New()
	}
	return nil
}
