package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	electionModel "kampusku_backend/internals/features/elections/election/model"
)

// PositionRule — aturan validasi satu jabatan: batas pilihan + kandidat sah.
type PositionRule struct {
	PositionID  uuid.UUID
	Description string
	MaxVote     int
	Priority    int

	// Kandidat yang sah untuk jabatan ini (sudah pasti satu pemilihan)
	AllowedCandidates map[uuid.UUID]*electionModel.CandidateModel

	// Urutan katalog, untuk render ballot & tie-break stabil di tally
	CandidateOrder []uuid.UUID
}

// BallotDescriptor dibangun sekali per request dari katalog kandidat, lalu
// dipakai SERAGAM oleh preview dan submit — dua jalur itu tidak boleh
// punya aturan validasi yang berbeda diam-diam.
type BallotDescriptor struct {
	ElectionID uuid.UUID
	Rules      []PositionRule // urut sesuai priority
	byPosition map[uuid.UUID]*PositionRule
}

// BuildBallotDescriptor memuat jabatan (urut priority) + kandidatnya
// untuk satu pemilihan.
func BuildBallotDescriptor(db *gorm.DB, electionID uuid.UUID) (*BallotDescriptor, error) {
	var positions []electionModel.PositionModel
	if err := db.Where("position_election_id = ?", electionID).
		Order("position_priority ASC").
		Find(&positions).Error; err != nil {
		return nil, err
	}

	var candidates []electionModel.CandidateModel
	if err := db.Where("candidate_election_id = ?", electionID).
		Order("candidate_created_at ASC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	d := &BallotDescriptor{
		ElectionID: electionID,
		Rules:      make([]PositionRule, 0, len(positions)),
		byPosition: make(map[uuid.UUID]*PositionRule, len(positions)),
	}

	for _, p := range positions {
		d.Rules = append(d.Rules, PositionRule{
			PositionID:        p.PositionID,
			Description:       p.PositionDescription,
			MaxVote:           p.PositionMaxVote,
			Priority:          p.PositionPriority,
			AllowedCandidates: make(map[uuid.UUID]*electionModel.CandidateModel),
		})
	}
	for i := range d.Rules {
		d.byPosition[d.Rules[i].PositionID] = &d.Rules[i]
	}

	for i := range candidates {
		cand := &candidates[i]
		rule, ok := d.byPosition[cand.CandidatePositionID]
		if !ok {
			// kandidat yatim (jabatannya sudah dihapus) — abaikan dari ballot
			continue
		}
		rule.AllowedCandidates[cand.CandidateID] = cand
		rule.CandidateOrder = append(rule.CandidateOrder, cand.CandidateID)
	}

	return d, nil
}

// ValidateSelections memeriksa pilihan terhadap descriptor:
//   - setiap jabatan pemilihan ini harus ada key-nya (list kosong = abstain, sah)
//   - jumlah pilihan per jabatan ≤ max_vote
//   - tiap kandidat harus milik jabatan tsb (otomatis: milik pemilihan tsb)
//   - tidak boleh ada kandidat dobel di satu jabatan
//   - key jabatan di luar pemilihan ini ditolak
//
// Hasil berupa map field → pesan; kosong berarti valid.
func (d *BallotDescriptor) ValidateSelections(selections map[uuid.UUID][]uuid.UUID) map[string][]string {
	issues := map[string][]string{}

	for posID := range selections {
		if _, ok := d.byPosition[posID]; !ok {
			issues[posID.String()] = append(issues[posID.String()],
				"jabatan tidak dikenal pada pemilihan ini")
		}
	}

	for i := range d.Rules {
		rule := &d.Rules[i]
		key := rule.PositionID.String()

		selected, ok := selections[rule.PositionID]
		if !ok {
			issues[key] = append(issues[key], "pilihan untuk jabatan ini wajib disertakan")
			continue
		}

		if len(selected) > rule.MaxVote {
			issues[key] = append(issues[key],
				fmt.Sprintf("maksimal %d pilihan untuk jabatan ini", rule.MaxVote))
		}

		seen := make(map[uuid.UUID]struct{}, len(selected))
		for _, candID := range selected {
			if _, dup := seen[candID]; dup {
				issues[key] = append(issues[key], "kandidat yang sama dipilih dua kali")
				continue
			}
			seen[candID] = struct{}{}

			if _, allowed := rule.AllowedCandidates[candID]; !allowed {
				issues[key] = append(issues[key],
					"kandidat tidak terdaftar pada jabatan ini")
			}
		}
	}

	return issues
}
