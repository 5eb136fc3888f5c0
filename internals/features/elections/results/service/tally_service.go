package service

import (
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ballotModel "kampusku_backend/internals/features/elections/ballot/model"
	ballotService "kampusku_backend/internals/features/elections/ballot/service"
	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/electionerr"
	"kampusku_backend/internals/features/elections/results/dto"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

type voteCountRow struct {
	PositionID  uuid.UUID `gorm:"column:vote_position_id"`
	CandidateID uuid.UUID `gorm:"column:vote_candidate_id"`
	Total       int64     `gorm:"column:total"`
}

// ComputeResults menghitung hasil dari baris vote yang sudah ter-commit —
// pure read, dihitung on demand. Per jabatan (urut priority): kandidat
// diurutkan menurun berdasarkan jumlah suara; suara seri TIDAK diberi
// urutan sekunder (stable sort, kandidat seri tetap di urutan katalog).
func ComputeResults(db *gorm.DB, electionID uuid.UUID) (*dto.ElectionResultsResponse, error) {
	var election electionModel.ElectionModel
	if err := db.Where("election_id = ?", electionID).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, electionerr.ErrNotFound
		}
		return nil, err
	}

	descriptor, err := ballotService.BuildBallotDescriptor(db, electionID)
	if err != nil {
		return nil, err
	}

	// Satu query agregat untuk seluruh pemilihan — index
	// (vote_position_id, vote_candidate_id) yang bekerja di sini.
	var rows []voteCountRow
	if err := db.Model(&ballotModel.VoteModel{}).
		Select("vote_position_id, vote_candidate_id, COUNT(*) AS total").
		Where("vote_election_id = ?", electionID).
		Group("vote_position_id").
		Group("vote_candidate_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]map[uuid.UUID]int64, len(descriptor.Rules))
	for _, r := range rows {
		if counts[r.PositionID] == nil {
			counts[r.PositionID] = map[uuid.UUID]int64{}
		}
		counts[r.PositionID][r.CandidateID] = r.Total
	}

	var partylists []electionModel.PartylistModel
	if err := db.Where("partylist_election_id = ?", electionID).Find(&partylists).Error; err != nil {
		return nil, err
	}
	partylistNames := make(map[uuid.UUID]string, len(partylists))
	for _, p := range partylists {
		partylistNames[p.PartylistID] = p.PartylistName
	}

	resp := &dto.ElectionResultsResponse{
		ElectionID:   election.ElectionID,
		ElectionName: election.ElectionName,
		Ended:        election.HasEnded(),
		Positions:    make([]dto.PositionTally, 0, len(descriptor.Rules)),
	}

	for i := range descriptor.Rules {
		rule := &descriptor.Rules[i]
		tally := dto.PositionTally{
			PositionID:  rule.PositionID,
			Description: rule.Description,
			MaxVote:     rule.MaxVote,
			Priority:    rule.Priority,
			Candidates:  make([]dto.CandidateTally, 0, len(rule.CandidateOrder)),
		}

		for _, candID := range rule.CandidateOrder {
			cand := rule.AllowedCandidates[candID]
			ct := dto.CandidateTally{
				CandidateID: candID,
				FullName:    cand.FullName(),
				VoteCount:   counts[rule.PositionID][candID],
			}
			if cand.CandidatePartylistID != nil {
				ct.PartylistName = partylistNames[*cand.CandidatePartylistID]
			}
			tally.TotalVotes += ct.VoteCount
			tally.Candidates = append(tally.Candidates, ct)
		}

		sort.SliceStable(tally.Candidates, func(a, b int) bool {
			return tally.Candidates[a].VoteCount > tally.Candidates[b].VoteCount
		})

		resp.Positions = append(resp.Positions, tally)
	}

	turnout, err := ComputeTurnout(db, electionID)
	if err != nil {
		return nil, err
	}
	resp.Turnout = turnout

	return resp, nil
}

// ComputeTurnout — statistik partisipasi seluruh pemilihan.
func ComputeTurnout(db *gorm.DB, electionID uuid.UUID) (dto.TurnoutStats, error) {
	var total, voted int64

	if err := db.Model(&voterModel.VoterModel{}).
		Where("voter_election_id = ?", electionID).
		Count(&total).Error; err != nil {
		return dto.TurnoutStats{}, err
	}
	if err := db.Model(&voterModel.VoterModel{}).
		Where("voter_election_id = ? AND voter_has_voted = ?", electionID, true).
		Count(&voted).Error; err != nil {
		return dto.TurnoutStats{}, err
	}

	stats := dto.TurnoutStats{TotalVoters: total, VotersVoted: voted}
	if total > 0 {
		pct := float64(voted) / float64(total) * 100
		stats.Percentage = math.Round(pct*100) / 100
	}
	return stats, nil
}
