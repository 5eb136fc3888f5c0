package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	ballotModel "kampusku_backend/internals/features/elections/ballot/model"
	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/electionerr"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	"kampusku_backend/internals/testutil"
)

func castVote(t *testing.T, db *gorm.DB, election *electionModel.ElectionModel, voterID, positionID, candidateID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&ballotModel.VoteModel{
		VoteElectionID:  election.ElectionID,
		VoteVoterID:     voterID,
		VotePositionID:  positionID,
		VoteCandidateID: candidateID,
	}).Error)
	require.NoError(t, db.Model(&voterModel.VoterModel{}).
		Where("voter_id = ?", voterID).
		Update("voter_has_voted", true).Error)
}

func TestComputeResultsCountsAndOrdering(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "TALLY-2026")
	pos := testutil.AddTestPosition(t, db, election.ElectionID, "Presiden BEM", 1, 1)

	candA := testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Andi")
	candB := testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Budi")
	candC := testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Citra")

	voters := make([]*voterModel.VoterModel, 0, 10)
	for i := 0; i < 10; i++ {
		voters = append(voters, testutil.CreateTestVoter(t, db, election.ElectionID,
			fmt.Sprintf("22%03d", i), "rahasia"))
	}

	// Andi 3 suara, Budi 2, Citra 2 — Budi & Citra seri
	castVote(t, db, election, voters[0].VoterID, pos.PositionID, candA.CandidateID)
	castVote(t, db, election, voters[1].VoterID, pos.PositionID, candA.CandidateID)
	castVote(t, db, election, voters[2].VoterID, pos.PositionID, candA.CandidateID)
	castVote(t, db, election, voters[3].VoterID, pos.PositionID, candB.CandidateID)
	castVote(t, db, election, voters[4].VoterID, pos.PositionID, candB.CandidateID)
	castVote(t, db, election, voters[5].VoterID, pos.PositionID, candC.CandidateID)
	castVote(t, db, election, voters[6].VoterID, pos.PositionID, candC.CandidateID)

	results, err := ComputeResults(db, election.ElectionID)
	require.NoError(t, err)

	require.Len(t, results.Positions, 1)
	tally := results.Positions[0]
	assert.EqualValues(t, 7, tally.TotalVotes)

	require.Len(t, tally.Candidates, 3)
	assert.Equal(t, "Andi", tally.Candidates[0].FullName)
	assert.EqualValues(t, 3, tally.Candidates[0].VoteCount)

	// Suara seri: tanpa tie-break sekunder, urutan katalog yang dipertahankan
	assert.Equal(t, "Budi", tally.Candidates[1].FullName)
	assert.Equal(t, "Citra", tally.Candidates[2].FullName)
	assert.EqualValues(t, 2, tally.Candidates[1].VoteCount)
	assert.EqualValues(t, 2, tally.Candidates[2].VoteCount)

	// Turnout: 7 dari 10 → 70%
	assert.EqualValues(t, 10, results.Turnout.TotalVoters)
	assert.EqualValues(t, 7, results.Turnout.VotersVoted)
	assert.InDelta(t, 70.0, results.Turnout.Percentage, 0.001)
}

func TestComputeResultsIncludesZeroVoteCandidates(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "TALLY-ZERO")
	pos := testutil.AddTestPosition(t, db, election.ElectionID, "Senator", 2, 1)
	testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Dewi")
	testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Eko")

	results, err := ComputeResults(db, election.ElectionID)
	require.NoError(t, err)

	require.Len(t, results.Positions, 1)
	require.Len(t, results.Positions[0].Candidates, 2)
	for _, c := range results.Positions[0].Candidates {
		assert.EqualValues(t, 0, c.VoteCount)
	}
	assert.EqualValues(t, 0, results.Positions[0].TotalVotes)
}

func TestComputeResultsUnknownElection(t *testing.T) {
	db := testutil.OpenTestDB(t)

	_, err := ComputeResults(db, uuid.New())
	assert.ErrorIs(t, err, electionerr.ErrNotFound)
}

func TestComputeTurnoutRounding(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "TURNOUT-ROUND")

	// 2 dari 3 → 66.666… dibulatkan dua desimal
	for i := 0; i < 3; i++ {
		v := testutil.CreateTestVoter(t, db, election.ElectionID, fmt.Sprintf("23%03d", i), "rahasia")
		if i < 2 {
			require.NoError(t, db.Model(&voterModel.VoterModel{}).
				Where("voter_id = ?", v.VoterID).
				Update("voter_has_voted", true).Error)
		}
	}

	stats, err := ComputeTurnout(db, election.ElectionID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVoters)
	assert.EqualValues(t, 2, stats.VotersVoted)
	assert.InDelta(t, 66.67, stats.Percentage, 0.0001)
}

func TestComputeTurnoutEmptyRoster(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "TURNOUT-EMPTY")

	stats, err := ComputeTurnout(db, election.ElectionID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalVoters)
	assert.EqualValues(t, 0, stats.VotersVoted)
	assert.EqualValues(t, 0, stats.Percentage)
}
