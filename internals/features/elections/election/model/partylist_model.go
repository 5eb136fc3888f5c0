package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartylistModel — pengelompokan kandidat, murni deskriptif (tanpa logika suara).
type PartylistModel struct {
	PartylistID          uuid.UUID `gorm:"column:partylist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"partylist_id"`
	PartylistElectionID  uuid.UUID `gorm:"column:partylist_election_id;type:uuid;not null;index:idx_partylists_election_id" json:"partylist_election_id"`
	PartylistName        string    `gorm:"column:partylist_name;type:varchar(255);not null" json:"partylist_name"`
	PartylistDescription string    `gorm:"column:partylist_description;type:text" json:"partylist_description"`

	PartylistCreatedAt time.Time `gorm:"column:partylist_created_at;type:timestamptz;autoCreateTime" json:"partylist_created_at"`
	PartylistUpdatedAt time.Time `gorm:"column:partylist_updated_at;type:timestamptz;autoUpdateTime" json:"partylist_updated_at"`
}

func (PartylistModel) TableName() string {
	return "election_partylists"
}

func (m *PartylistModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartylistID == uuid.Nil {
		m.PartylistID = uuid.New()
	}
	return nil
}
