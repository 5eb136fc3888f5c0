package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
	activityService "kampusku_backend/internals/features/elections/activity/service"
	"kampusku_backend/internals/features/elections/ballot/dto"
	ballotModel "kampusku_backend/internals/features/elections/ballot/model"
	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/electionerr"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	voterService "kampusku_backend/internals/features/elections/voter/service"
)

/* ===============================
   Ballot view
=================================*/

func loadPartylistNames(db *gorm.DB, electionID uuid.UUID) (map[uuid.UUID]string, error) {
	var partylists []electionModel.PartylistModel
	if err := db.Where("partylist_election_id = ?", electionID).Find(&partylists).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(partylists))
	for _, p := range partylists {
		names[p.PartylistID] = p.PartylistName
	}
	return names, nil
}

func toBallotCandidate(cand *electionModel.CandidateModel, partylists map[uuid.UUID]string) dto.BallotCandidate {
	out := dto.BallotCandidate{
		CandidateID: cand.CandidateID,
		FullName:    cand.FullName(),
		PhotoURL:    cand.CandidatePhotoURL,
		Platform:    cand.CandidatePlatform,
	}
	if cand.CandidatePartylistID != nil {
		out.PartylistName = partylists[*cand.CandidatePartylistID]
	}
	return out
}

// BuildBallotView menyusun ballot lengkap: pemilihan + jabatan (urut
// priority) + kandidat bersarang + nama partylist.
func BuildBallotView(db *gorm.DB, electionID uuid.UUID) (*dto.BallotResponse, error) {
	var election electionModel.ElectionModel
	if err := db.Where("election_id = ?", electionID).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, electionerr.ErrNotFound
		}
		return nil, err
	}

	descriptor, err := BuildBallotDescriptor(db, electionID)
	if err != nil {
		return nil, err
	}
	partylists, err := loadPartylistNames(db, electionID)
	if err != nil {
		return nil, err
	}

	resp := &dto.BallotResponse{
		Election: dto.BallotElection{
			ElectionID:   election.ElectionID,
			ElectionName: election.ElectionName,
			ElectionCode: election.ElectionCode,
		},
		Positions: make([]dto.BallotPosition, 0, len(descriptor.Rules)),
	}

	for i := range descriptor.Rules {
		rule := &descriptor.Rules[i]
		pos := dto.BallotPosition{
			PositionID:  rule.PositionID,
			Description: rule.Description,
			MaxVote:     rule.MaxVote,
			Priority:    rule.Priority,
			Candidates:  make([]dto.BallotCandidate, 0, len(rule.CandidateOrder)),
		}
		for _, candID := range rule.CandidateOrder {
			pos.Candidates = append(pos.Candidates, toBallotCandidate(rule.AllowedCandidates[candID], partylists))
		}
		resp.Positions = append(resp.Positions, pos)
	}

	return resp, nil
}

/* ===============================
   Preview (read-only)
=================================*/

// Preview menjalankan validasi 1–2 saja lalu me-resolve pilihan jadi nama
// kandidat untuk konfirmasi. TANPA efek samping apa pun — dan hasil preview
// tidak pernah dipercaya sebagai pengganti validasi ulang saat submit.
func Preview(db *gorm.DB, electionID uuid.UUID, selections map[uuid.UUID][]uuid.UUID) (*dto.PreviewResponse, map[string][]string, error) {
	descriptor, err := BuildBallotDescriptor(db, electionID)
	if err != nil {
		return nil, nil, err
	}

	if issues := descriptor.ValidateSelections(selections); len(issues) > 0 {
		return nil, issues, electionerr.ErrValidationFailed
	}

	partylists, err := loadPartylistNames(db, electionID)
	if err != nil {
		return nil, nil, err
	}

	resp := &dto.PreviewResponse{
		Selections: make([]dto.PreviewSelection, 0, len(descriptor.Rules)),
	}
	for i := range descriptor.Rules {
		rule := &descriptor.Rules[i]
		sel := dto.PreviewSelection{
			PositionID:  rule.PositionID,
			Description: rule.Description,
			MaxVote:     rule.MaxVote,
			Candidates:  []dto.BallotCandidate{},
		}
		chosen := selections[rule.PositionID]
		if len(chosen) == 0 {
			sel.Abstained = true
		}
		for _, candID := range chosen {
			sel.Candidates = append(sel.Candidates, toBallotCandidate(rule.AllowedCandidates[candID], partylists))
		}
		resp.Selections = append(resp.Selections, sel)
	}

	return resp, nil, nil
}

/* ===============================
   Submit (transaksi atomik)
=================================*/

type SubmitInput struct {
	VoterID    uuid.UUID
	ElectionID uuid.UUID
	Selections map[uuid.UUID][]uuid.UUID

	// Token sesi voter — di-blacklist di dalam transaksi (forced logout)
	SessionToken   string
	TokenExpiresAt time.Time

	IPAddress string
	UserAgent string
}

// Submit menjalankan protokol commit ballot.
//
// Validasi (sebelum ada tulisan apa pun):
//  1. pilihan lengkap & ≤ max_vote per jabatan, kandidat sah (descriptor)
//  2. pemilihan masih aktif — dicek ULANG di sini, bukan cuma saat login
//  3. voter masih has_voted=false
//
// Commit — satu transaksi, semua-atau-tidak-sama-sekali:
//   - conditional update has_voted false→true; 0 baris berarti ada submit
//     lain yang menang (dua tab / retry) → seluruh transaksi dibatalkan
//   - insert seluruh baris vote
//   - catat audit vote_cast (senasib dengan commit)
//   - blacklist token sesi (forced logout)
//
// Pembacaan has_voted di langkah validasi hanyalah fast-path; penjaga
// otoritatifnya adalah conditional update di dalam transaksi.
func Submit(db *gorm.DB, in SubmitInput) (*dto.SubmitResponse, map[string][]string, error) {
	var election electionModel.ElectionModel
	if err := db.Where("election_id = ?", in.ElectionID).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, electionerr.ErrNotFound
		}
		return nil, nil, err
	}
	if !election.IsActive() || election.HasEnded() {
		return nil, nil, electionerr.ErrElectionClosed
	}

	var voter voterModel.VoterModel
	if err := db.Where("voter_id = ? AND voter_election_id = ?", in.VoterID, in.ElectionID).
		First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, electionerr.ErrNotFound
		}
		return nil, nil, err
	}
	if voter.VoterHasVoted {
		return nil, nil, electionerr.ErrAlreadyVoted
	}

	descriptor, err := BuildBallotDescriptor(db, in.ElectionID)
	if err != nil {
		return nil, nil, err
	}
	if issues := descriptor.ValidateSelections(in.Selections); len(issues) > 0 {
		return nil, issues, electionerr.ErrValidationFailed
	}

	votes := make([]ballotModel.VoteModel, 0)
	positionsVoted := 0
	for i := range descriptor.Rules {
		rule := &descriptor.Rules[i]
		chosen := in.Selections[rule.PositionID]
		if len(chosen) == 0 {
			continue // abstain
		}
		positionsVoted++
		for _, candID := range chosen {
			votes = append(votes, ballotModel.VoteModel{
				VoteElectionID:  in.ElectionID,
				VoteVoterID:     in.VoterID,
				VotePositionID:  rule.PositionID,
				VoteCandidateID: candID,
			})
		}
	}

	confirmationRef := uuid.NewString()

	err = db.Transaction(func(tx *gorm.DB) error {
		// Penjaga otoritatif anti double-vote: compare-and-set.
		// Sekaligus statement pertama transaksi, jadi lock baris voter
		// langsung dipegang sebelum insert apa pun.
		res := tx.Model(&voterModel.VoterModel{}).
			Where("voter_id = ? AND voter_has_voted = ?", in.VoterID, false).
			Update("voter_has_voted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return electionerr.ErrCommitConflict
		}

		if len(votes) > 0 {
			if err := tx.Create(&votes).Error; err != nil {
				return err
			}
		}

		if err := activityService.Record(tx, activityService.ActivityInput{
			VoterID:    in.VoterID,
			ElectionID: in.ElectionID,
			Action:     activityModel.ActionVoteCast,
			Metadata: map[string]any{
				"confirmation_ref":    confirmationRef,
				"positions_voted":     positionsVoted,
				"candidates_selected": len(votes),
			},
			IPAddress: in.IPAddress,
			UserAgent: in.UserAgent,
		}); err != nil {
			return err
		}

		// Forced logout: sesi mati bareng commit — tidak bisa dipakai
		// lihat ballot lagi apalagi submit ulang.
		return voterService.BlacklistVoterToken(tx, in.SessionToken, in.TokenExpiresAt)
	})
	if err != nil {
		return nil, nil, err
	}

	return &dto.SubmitResponse{
		ConfirmationRef:    confirmationRef,
		PositionsVoted:     positionsVoted,
		CandidatesSelected: len(votes),
	}, nil, nil
}
