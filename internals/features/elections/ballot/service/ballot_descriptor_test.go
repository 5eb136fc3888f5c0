package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/testutil"
)

func TestBuildBallotDescriptor(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "DESC-TEST")

	// Priority menentukan urutan rule, bukan urutan insert
	second := testutil.AddTestPosition(t, db, election.ElectionID, "Wakil", 1, 2)
	first := testutil.AddTestPosition(t, db, election.ElectionID, "Ketua", 1, 1)

	candA := testutil.AddTestCandidate(t, db, election.ElectionID, first.PositionID, "Aisyah")
	candB := testutil.AddTestCandidate(t, db, election.ElectionID, first.PositionID, "Bagus")
	testutil.AddTestCandidate(t, db, election.ElectionID, second.PositionID, "Cahya")

	// Kandidat yatim: jabatannya bukan milik pemilihan ini
	testutil.AddTestCandidate(t, db, election.ElectionID, uuid.New(), "Yatim")

	d, err := BuildBallotDescriptor(db, election.ElectionID)
	require.NoError(t, err)

	require.Len(t, d.Rules, 2)
	assert.Equal(t, "Ketua", d.Rules[0].Description)
	assert.Equal(t, "Wakil", d.Rules[1].Description)

	// Urutan katalog kandidat mengikuti created_at
	require.Len(t, d.Rules[0].CandidateOrder, 2)
	assert.Equal(t, candA.CandidateID, d.Rules[0].CandidateOrder[0])
	assert.Equal(t, candB.CandidateID, d.Rules[0].CandidateOrder[1])
	require.Len(t, d.Rules[1].CandidateOrder, 1)
}

func TestValidateSelectionsRejectsUnknownPosition(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "DESC-UNKNOWN")
	pos := testutil.AddTestPosition(t, db, election.ElectionID, "Ketua", 1, 1)
	cand := testutil.AddTestCandidate(t, db, election.ElectionID, pos.PositionID, "Aisyah")

	d, err := BuildBallotDescriptor(db, election.ElectionID)
	require.NoError(t, err)

	foreign := uuid.New()
	issues := d.ValidateSelections(map[uuid.UUID][]uuid.UUID{
		pos.PositionID: {cand.CandidateID},
		foreign:        {},
	})
	assert.Contains(t, issues, foreign.String())
	assert.NotContains(t, issues, pos.PositionID.String())
}
