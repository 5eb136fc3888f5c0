package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
)

// ActivityInput — satu entri audit trail pemilih.
type ActivityInput struct {
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	Action     string
	Metadata   map[string]any
	IPAddress  string
	UserAgent  string
}

// Record menulis entri audit memakai handle DB yang diberikan.
// Kalau handle-nya transaksi (kasus vote_cast), entri ikut commit/rollback
// bersama efeknya — log dan efek senasib.
func Record(db *gorm.DB, in ActivityInput) error {
	entry := activityModel.VoterActivityLogModel{
		ActivityVoterID:    in.VoterID,
		ActivityElectionID: in.ElectionID,
		ActivityAction:     in.Action,
		ActivityIPAddress:  in.IPAddress,
		ActivityUserAgent:  in.UserAgent,
	}

	if len(in.Metadata) > 0 {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			return err
		}
		entry.ActivityMetadata = datatypes.JSON(raw)
	}

	return db.Create(&entry).Error
}

// RecordSafe — best-effort: kegagalan menulis audit tidak boleh menggagalkan
// operasi pemicunya (login, akses ballot, dst.). Error cukup dilog.
func RecordSafe(db *gorm.DB, in ActivityInput) {
	if err := Record(db, in); err != nil {
		log.Printf("[ERROR] Gagal mencatat aktivitas voter (%s): %v", in.Action, err)
	}
}
