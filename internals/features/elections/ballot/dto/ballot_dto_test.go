package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelections(t *testing.T) {
	posID := uuid.New()
	candID := uuid.New()

	req := BallotSubmitRequest{Votes: map[string][]string{
		posID.String(): {candID.String()},
	}}
	selections, issues := req.ParseSelections()
	require.Empty(t, issues)
	require.Contains(t, selections, posID)
	assert.Equal(t, []uuid.UUID{candID}, selections[posID])
}

func TestParseSelectionsEmptyListIsAbstain(t *testing.T) {
	posID := uuid.New()

	req := BallotSubmitRequest{Votes: map[string][]string{
		posID.String(): {},
	}}
	selections, issues := req.ParseSelections()
	require.Empty(t, issues)
	require.Contains(t, selections, posID)
	assert.Empty(t, selections[posID])
}

// Id rusak jadi issue per field — bukan error 500
func TestParseSelectionsMalformedIDs(t *testing.T) {
	posID := uuid.New()

	req := BallotSubmitRequest{Votes: map[string][]string{
		"bukan-uuid":   {},
		posID.String(): {"juga-bukan-uuid"},
	}}
	_, issues := req.ParseSelections()
	assert.Contains(t, issues, "bukan-uuid")
	assert.Contains(t, issues, posID.String())
}
