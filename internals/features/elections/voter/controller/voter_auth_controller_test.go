package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	voterModel "kampusku_backend/internals/features/elections/voter/model"
	"kampusku_backend/internals/testutil"
)

// Logout harus aman dipanggil walau handler dipasang tanpa middleware sesi
// voter — locals kosong bukan alasan panic, cukup balas sukses.
func TestLogoutWithoutSessionLocals(t *testing.T) {
	db := testutil.OpenTestDB(t)
	authCtrl := NewVoterAuthController(db)

	app := fiber.New()
	app.Post("/logout", authCtrl.Logout)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/logout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Kalau hanya voter_token yang terisi (voter_id/voter_election_id tidak ada),
// token tetap di-blacklist dan pencatatan aktivitas dilewati tanpa panic.
func TestLogoutWithTokenOnlyLocals(t *testing.T) {
	db := testutil.OpenTestDB(t)
	authCtrl := NewVoterAuthController(db)

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		c.Locals("voter_token", "token-yatim-tanpa-klaim")
		return c.Next()
	}, authCtrl.Logout)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/logout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&voterModel.VoterTokenBlacklist{}).
		Where("token = ?", "token-yatim-tanpa-klaim").Count(&count).Error)
	require.EqualValues(t, 1, count)
}
