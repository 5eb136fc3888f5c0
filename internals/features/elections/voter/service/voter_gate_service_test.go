package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/elections/electionerr"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	"kampusku_backend/internals/testutil"
)

func TestAuthenticateSuccess(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "GATE-OK")
	seeded := testutil.CreateTestVoter(t, db, election.ElectionID, "210101", "rahasia-1")

	voter, got, err := Authenticate(db, "GATE-OK", "210101", "rahasia-1")
	require.NoError(t, err)
	assert.Equal(t, seeded.VoterID, voter.VoterID)
	assert.Equal(t, election.ElectionID, got.ElectionID)
}

// Kode pemilihan salah, nomor induk tidak terdaftar, dan kredensial salah
// harus menghasilkan error yang SAMA — roster tidak boleh bisa di-enumerasi.
func TestAuthenticateGenericFailure(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "GATE-ENUM")
	testutil.CreateTestVoter(t, db, election.ElectionID, "210102", "rahasia-2")

	cases := []struct {
		name       string
		code       string
		schoolID   string
		credential string
	}{
		{"kode pemilihan tidak dikenal", "GATE-SALAH", "210102", "rahasia-2"},
		{"nomor induk tidak terdaftar", "GATE-ENUM", "999999", "rahasia-2"},
		{"kredensial salah", "GATE-ENUM", "210102", "bukan-rahasia"},
		{"kredensial kosong", "GATE-ENUM", "210102", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Authenticate(db, tc.code, tc.schoolID, tc.credential)
			assert.ErrorIs(t, err, electionerr.ErrInvalidCredentials)
		})
	}
}

func TestAuthenticateAlreadyVoted(t *testing.T) {
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "GATE-VOTED")
	voter := testutil.CreateTestVoter(t, db, election.ElectionID, "210103", "rahasia-3")
	require.NoError(t, db.Model(&voterModel.VoterModel{}).
		Where("voter_id = ?", voter.VoterID).
		Update("voter_has_voted", true).Error)

	_, _, err := Authenticate(db, "GATE-VOTED", "210103", "rahasia-3")
	assert.ErrorIs(t, err, electionerr.ErrAlreadyVoted)
}

func TestAuthenticateElectionClosed(t *testing.T) {
	db := testutil.OpenTestDB(t)

	disabled := testutil.CreateTestElection(t, db, "GATE-DISABLED")
	testutil.CreateTestVoter(t, db, disabled.ElectionID, "210104", "rahasia-4")
	require.NoError(t, db.Model(disabled).Update("election_enabled", false).Error)

	_, _, err := Authenticate(db, "GATE-DISABLED", "210104", "rahasia-4")
	assert.ErrorIs(t, err, electionerr.ErrElectionClosed)

	ended := testutil.CreateTestElection(t, db, "GATE-ENDED")
	testutil.CreateTestVoter(t, db, ended.ElectionID, "210105", "rahasia-5")
	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(ended).Update("election_end_time", past).Error)

	_, _, err = Authenticate(db, "GATE-ENDED", "210105", "rahasia-5")
	assert.ErrorIs(t, err, electionerr.ErrElectionClosed)
}

func TestIssueVoterTokenClaims(t *testing.T) {
	configs.JWTVoterSecret = "test-voter-secret"
	db := testutil.OpenTestDB(t)
	election := testutil.CreateTestElection(t, db, "GATE-TOKEN")
	voter := testutil.CreateTestVoter(t, db, election.ElectionID, "210106", "rahasia-6")

	signed, expiredAt, err := IssueVoterToken(voter.VoterID, election.ElectionID)
	require.NoError(t, err)
	assert.True(t, expiredAt.After(time.Now()))

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-voter-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "voter", claims["typ"])
	assert.Equal(t, voter.VoterID.String(), claims["voter_id"])
	assert.Equal(t, election.ElectionID.String(), claims["election_id"])
}

func TestBlacklistVoterToken(t *testing.T) {
	db := testutil.OpenTestDB(t)

	require.NoError(t, BlacklistVoterToken(db, "token-blacklist-test", time.Now().Add(time.Hour)))

	var count int64
	require.NoError(t, db.Model(&voterModel.VoterTokenBlacklist{}).
		Where("token = ?", "token-blacklist-test").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Token kosong: no-op, bukan error
	require.NoError(t, BlacklistVoterToken(db, "   ", time.Now()))
}
