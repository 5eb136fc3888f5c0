package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
	"kampusku_backend/internals/features/elections/ballot/dto"
	ballotModel "kampusku_backend/internals/features/elections/ballot/model"
	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/electionerr"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	"kampusku_backend/internals/testutil"
)

// Skenario tetap: jabatan Presiden (max 1) dengan kandidat Andi & Budi,
// jabatan Senator (max 2) dengan kandidat Citra, Dewi, Eko.
type BallotServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	election *electionModel.ElectionModel

	president *electionModel.PositionModel
	senator   *electionModel.PositionModel

	presAndi, presBudi        *electionModel.CandidateModel
	senCitra, senDewi, senEko *electionModel.CandidateModel
}

func TestBallotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BallotServiceTestSuite))
}

func (s *BallotServiceTestSuite) SetupTest() {
	t := s.T()
	s.db = testutil.OpenTestDB(t)
	s.election = testutil.CreateTestElection(t, s.db, "PEMIRA-2026")

	s.president = testutil.AddTestPosition(t, s.db, s.election.ElectionID, "Presiden BEM", 1, 1)
	s.senator = testutil.AddTestPosition(t, s.db, s.election.ElectionID, "Senator", 2, 2)

	s.presAndi = testutil.AddTestCandidate(t, s.db, s.election.ElectionID, s.president.PositionID, "Andi")
	s.presBudi = testutil.AddTestCandidate(t, s.db, s.election.ElectionID, s.president.PositionID, "Budi")
	s.senCitra = testutil.AddTestCandidate(t, s.db, s.election.ElectionID, s.senator.PositionID, "Citra")
	s.senDewi = testutil.AddTestCandidate(t, s.db, s.election.ElectionID, s.senator.PositionID, "Dewi")
	s.senEko = testutil.AddTestCandidate(t, s.db, s.election.ElectionID, s.senator.PositionID, "Eko")
}

func (s *BallotServiceTestSuite) selections(pres, sen []uuid.UUID) map[uuid.UUID][]uuid.UUID {
	return map[uuid.UUID][]uuid.UUID{
		s.president.PositionID: pres,
		s.senator.PositionID:   sen,
	}
}

func (s *BallotServiceTestSuite) newVoter(schoolID string) *voterModel.VoterModel {
	return testutil.CreateTestVoter(s.T(), s.db, s.election.ElectionID, schoolID, "rahasia-"+schoolID)
}

func (s *BallotServiceTestSuite) submit(voter *voterModel.VoterModel, sel map[uuid.UUID][]uuid.UUID, token string) (*dto.SubmitResponse, map[string][]string, error) {
	return Submit(s.db, SubmitInput{
		VoterID:        voter.VoterID,
		ElectionID:     s.election.ElectionID,
		Selections:     sel,
		SessionToken:   token,
		TokenExpiresAt: time.Now().Add(time.Hour),
		IPAddress:      "127.0.0.1",
		UserAgent:      "suite-test",
	})
}

func (s *BallotServiceTestSuite) countVotes(voterID uuid.UUID) int64 {
	var n int64
	s.Require().NoError(s.db.Model(&ballotModel.VoteModel{}).
		Where("vote_voter_id = ?", voterID).Count(&n).Error)
	return n
}

func (s *BallotServiceTestSuite) reloadVoter(voterID uuid.UUID) voterModel.VoterModel {
	var v voterModel.VoterModel
	s.Require().NoError(s.db.Where("voter_id = ?", voterID).First(&v).Error)
	return v
}

func (s *BallotServiceTestSuite) TestSubmitRecordsVotesAndForcesLogout() {
	voter := s.newVoter("2101001")

	resp, issues, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{s.senCitra.CandidateID, s.senDewi.CandidateID}),
		"token-2101001")
	s.Require().NoError(err)
	s.Empty(issues)
	s.NotEmpty(resp.ConfirmationRef)
	s.Equal(2, resp.PositionsVoted)
	s.Equal(3, resp.CandidatesSelected)

	s.EqualValues(3, s.countVotes(voter.VoterID))
	s.True(s.reloadVoter(voter.VoterID).VoterHasVoted)

	// Forced logout: token sesi masuk blacklist di transaksi yang sama
	var blacklisted int64
	s.Require().NoError(s.db.Model(&voterModel.VoterTokenBlacklist{}).
		Where("token = ?", "token-2101001").Count(&blacklisted).Error)
	s.EqualValues(1, blacklisted)

	// Audit vote_cast ikut commit, metadata memuat confirmation_ref
	var entry activityModel.VoterActivityLogModel
	s.Require().NoError(s.db.
		Where("activity_voter_id = ? AND activity_action = ?", voter.VoterID, activityModel.ActionVoteCast).
		First(&entry).Error)
	var meta map[string]any
	s.Require().NoError(json.Unmarshal(entry.ActivityMetadata, &meta))
	s.Equal(resp.ConfirmationRef, meta["confirmation_ref"])
	s.EqualValues(2, meta["positions_voted"])
	s.EqualValues(3, meta["candidates_selected"])
}

func (s *BallotServiceTestSuite) TestSubmitOverflowLeavesNoTrace() {
	voter := s.newVoter("2101002")

	_, issues, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID},
			[]uuid.UUID{s.senCitra.CandidateID, s.senDewi.CandidateID, s.senEko.CandidateID}),
		"token-2101002")
	s.Require().ErrorIs(err, electionerr.ErrValidationFailed)
	s.Contains(issues, s.senator.PositionID.String())

	// Ballot ditolak utuh — tidak ada satu baris pun yang tersimpan
	s.EqualValues(0, s.countVotes(voter.VoterID))
	s.False(s.reloadVoter(voter.VoterID).VoterHasVoted)
}

func (s *BallotServiceTestSuite) TestSubmitRejectsForeignCandidate() {
	voter := s.newVoter("2101003")

	// Kandidat senator dipakai untuk jabatan presiden
	_, issues, err := s.submit(voter,
		s.selections([]uuid.UUID{s.senCitra.CandidateID}, []uuid.UUID{}),
		"token-2101003")
	s.Require().ErrorIs(err, electionerr.ErrValidationFailed)
	s.Contains(issues, s.president.PositionID.String())
	s.EqualValues(0, s.countVotes(voter.VoterID))
}

func (s *BallotServiceTestSuite) TestSubmitRequiresEveryPositionKey() {
	voter := s.newVoter("2101004")

	_, issues, err := s.submit(voter,
		map[uuid.UUID][]uuid.UUID{s.president.PositionID: {s.presAndi.CandidateID}},
		"token-2101004")
	s.Require().ErrorIs(err, electionerr.ErrValidationFailed)
	s.Contains(issues, s.senator.PositionID.String())
}

func (s *BallotServiceTestSuite) TestSubmitRejectsDuplicateCandidate() {
	voter := s.newVoter("2101005")

	_, issues, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID},
			[]uuid.UUID{s.senCitra.CandidateID, s.senCitra.CandidateID}),
		"token-2101005")
	s.Require().ErrorIs(err, electionerr.ErrValidationFailed)
	s.Contains(issues, s.senator.PositionID.String())
}

func (s *BallotServiceTestSuite) TestSubmitAllowsAbstain() {
	voter := s.newVoter("2101006")

	resp, _, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presBudi.CandidateID}, []uuid.UUID{}),
		"token-2101006")
	s.Require().NoError(err)
	s.Equal(1, resp.PositionsVoted)
	s.Equal(1, resp.CandidatesSelected)
	s.EqualValues(1, s.countVotes(voter.VoterID))
	s.True(s.reloadVoter(voter.VoterID).VoterHasVoted)
}

func (s *BallotServiceTestSuite) TestSubmitAllowsFullAbstain() {
	voter := s.newVoter("2101007")

	// Abstain total tetap ballot sah: has_voted naik, tanpa baris vote
	resp, _, err := s.submit(voter, s.selections([]uuid.UUID{}, []uuid.UUID{}), "token-2101007")
	s.Require().NoError(err)
	s.Equal(0, resp.PositionsVoted)
	s.Equal(0, resp.CandidatesSelected)
	s.EqualValues(0, s.countVotes(voter.VoterID))
	s.True(s.reloadVoter(voter.VoterID).VoterHasVoted)
}

func (s *BallotServiceTestSuite) TestSecondSubmitRejected() {
	voter := s.newVoter("2101008")
	sel := s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{s.senEko.CandidateID})

	_, _, err := s.submit(voter, sel, "token-a")
	s.Require().NoError(err)

	_, _, err = s.submit(voter, sel, "token-b")
	s.Require().ErrorIs(err, electionerr.ErrAlreadyVoted)
	s.EqualValues(2, s.countVotes(voter.VoterID))
}

func (s *BallotServiceTestSuite) TestSubmitRejectedWhenElectionDisabled() {
	voter := s.newVoter("2101009")
	s.Require().NoError(s.db.Model(s.election).Update("election_enabled", false).Error)

	_, _, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{}),
		"token-2101009")
	s.Require().ErrorIs(err, electionerr.ErrElectionClosed)
	s.EqualValues(0, s.countVotes(voter.VoterID))
}

func (s *BallotServiceTestSuite) TestSubmitRejectedAfterEndTime() {
	voter := s.newVoter("2101010")
	past := time.Now().Add(-time.Minute)
	s.Require().NoError(s.db.Model(s.election).Update("election_end_time", past).Error)

	_, _, err := s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{}),
		"token-2101010")
	s.Require().ErrorIs(err, electionerr.ErrElectionClosed)
}

func (s *BallotServiceTestSuite) TestSubmitRollsBackWhenVoteInsertFails() {
	voter := s.newVoter("2101011")

	// Simulasi kegagalan storage tepat di insert baris vote
	err := s.db.Callback().Create().Before("gorm:create").
		Register("test_fail_votes", func(tx *gorm.DB) {
			if tx.Statement != nil && tx.Statement.Table == "election_votes" {
				tx.AddError(errors.New("simulasi storage gagal"))
			}
		})
	s.Require().NoError(err)
	defer func() {
		_ = s.db.Callback().Create().Remove("test_fail_votes")
	}()

	_, _, err = s.submit(voter,
		s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{s.senCitra.CandidateID}),
		"token-2101011")
	s.Require().Error(err)
	s.NotErrorIs(err, electionerr.ErrValidationFailed)

	// Semua-atau-tidak-sama-sekali: tidak ada jejak parsial
	s.EqualValues(0, s.countVotes(voter.VoterID))
	s.False(s.reloadVoter(voter.VoterID).VoterHasVoted)

	var auditCount int64
	s.Require().NoError(s.db.Model(&activityModel.VoterActivityLogModel{}).
		Where("activity_voter_id = ? AND activity_action = ?", voter.VoterID, activityModel.ActionVoteCast).
		Count(&auditCount).Error)
	s.EqualValues(0, auditCount)

	var blacklisted int64
	s.Require().NoError(s.db.Model(&voterModel.VoterTokenBlacklist{}).
		Where("token = ?", "token-2101011").Count(&blacklisted).Error)
	s.EqualValues(0, blacklisted)
}

func (s *BallotServiceTestSuite) TestConcurrentSubmitsExactlyOneWins() {
	voter := s.newVoter("2101012")
	sel := s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{s.senDewi.CandidateID})

	const attempts = 8
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, err := s.submit(voter, sel, fmt.Sprintf("token-race-%d", n))
			if err == nil {
				successCount.Add(1)
				return
			}
			if !errors.Is(err, electionerr.ErrAlreadyVoted) && !errors.Is(err, electionerr.ErrCommitConflict) {
				s.T().Errorf("error tak terduga dari submit konkuren: %v", err)
			}
		}(i)
	}
	wg.Wait()

	s.EqualValues(1, successCount.Load())
	s.EqualValues(2, s.countVotes(voter.VoterID))
	s.True(s.reloadVoter(voter.VoterID).VoterHasVoted)
}

func (s *BallotServiceTestSuite) TestPreviewHasNoSideEffects() {
	voter := s.newVoter("2101013")

	preview, issues, err := Preview(s.db, s.election.ElectionID,
		s.selections([]uuid.UUID{s.presAndi.CandidateID}, []uuid.UUID{}))
	s.Require().NoError(err)
	s.Empty(issues)
	s.Require().Len(preview.Selections, 2)
	s.False(preview.Selections[0].Abstained)
	s.Equal("Andi", preview.Selections[0].Candidates[0].FullName)
	s.True(preview.Selections[1].Abstained)

	// Preview murni baca: status voter & tabel vote tidak tersentuh
	s.EqualValues(0, s.countVotes(voter.VoterID))
	s.False(s.reloadVoter(voter.VoterID).VoterHasVoted)
}

func (s *BallotServiceTestSuite) TestBuildBallotViewOrdersByPriority() {
	ballot, err := BuildBallotView(s.db, s.election.ElectionID)
	s.Require().NoError(err)

	s.Equal("PEMIRA-2026", ballot.Election.ElectionCode)
	s.Require().Len(ballot.Positions, 2)
	s.Equal("Presiden BEM", ballot.Positions[0].Description)
	s.Equal(1, ballot.Positions[0].MaxVote)
	s.Len(ballot.Positions[0].Candidates, 2)
	s.Equal("Senator", ballot.Positions[1].Description)
	s.Len(ballot.Positions[1].Candidates, 3)
}
