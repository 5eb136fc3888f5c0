package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/elections/feedback/model"
	"kampusku_backend/internals/testutil"
)

// Maksimal satu feedback per (pemilih, pemilihan) — dijaga constraint unik.
func TestFeedbackUniquePerVoterPerElection(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "FEEDBACK-UNIQ")
	voter := testutil.CreateTestVoter(t, db, election.ElectionID, "240101", "rahasia")

	first := model.VoterFeedbackModel{
		FeedbackVoterID:    voter.VoterID,
		FeedbackElectionID: election.ElectionID,
		FeedbackRating:     5,
		FeedbackComment:    "Lancar",
	}
	require.NoError(t, db.Create(&first).Error)

	second := model.VoterFeedbackModel{
		FeedbackVoterID:    voter.VoterID,
		FeedbackElectionID: election.ElectionID,
		FeedbackRating:     1,
	}
	assert.Error(t, db.Create(&second).Error)

	var count int64
	require.NoError(t, db.Model(&model.VoterFeedbackModel{}).
		Where("feedback_voter_id = ?", voter.VoterID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
