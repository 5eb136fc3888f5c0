package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
	activityService "kampusku_backend/internals/features/elections/activity/service"
	"kampusku_backend/internals/features/elections/electionerr"
	"kampusku_backend/internals/features/elections/voter/dto"
	voterService "kampusku_backend/internals/features/elections/voter/service"
	helper "kampusku_backend/internals/helpers"
)

type VoterAuthController struct {
	DB *gorm.DB
}

func NewVoterAuthController(db *gorm.DB) *VoterAuthController {
	return &VoterAuthController{DB: db}
}

// 🟢 POST /api/vote/login
func (ctrl *VoterAuthController) Login(c *fiber.Ctx) error {
	var req dto.VoterLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	voter, election, err := voterService.Authenticate(ctrl.DB, req.ElectionCode, req.SchoolID, req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, electionerr.ErrInvalidCredentials):
			// Satu pesan generik untuk semua penyebab — anti enumerasi roster
			return helper.JsonError(c, fiber.StatusUnauthorized, "Nomor induk atau kredensial salah")
		case errors.Is(err, electionerr.ErrAlreadyVoted):
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah memberikan suara pada pemilihan ini")
		case errors.Is(err, electionerr.ErrElectionClosed):
			return helper.JsonError(c, fiber.StatusForbidden, "Pemilihan sedang tidak aktif atau sudah berakhir")
		default:
			log.Printf("[ERROR] Login voter gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan, silakan coba lagi")
		}
	}

	token, expiredAt, err := voterService.IssueVoterToken(voter.VoterID, election.ElectionID)
	if err != nil {
		log.Printf("[ERROR] Gagal menerbitkan token voter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan, silakan coba lagi")
	}

	activityService.RecordSafe(ctrl.DB, activityService.ActivityInput{
		VoterID:    voter.VoterID,
		ElectionID: election.ElectionID,
		Action:     activityModel.ActionLogin,
		IPAddress:  c.IP(),
		UserAgent:  string(c.Request().Header.UserAgent()),
	})

	return helper.JsonOK(c, "Login berhasil", dto.VoterLoginResponse{
		VoterToken: token,
		ExpiresAt:  expiredAt.Format(time.RFC3339),
		Voter:      dto.ToVoterResponse(voter),
	})
}

// 🟢 POST /api/vote/logout
func (ctrl *VoterAuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("voter_token").(string)
	if token == "" {
		// Tidak ada sesi voter — tetap sukses, tidak ada yang perlu dicatat
		return helper.JsonOK(c, "Logout berhasil", nil)
	}

	var expiredAt time.Time
	if exp, ok := c.Locals("voter_token_exp").(int64); ok {
		expiredAt = time.Unix(exp, 0)
	}
	if err := voterService.BlacklistVoterToken(ctrl.DB, token, expiredAt); err != nil {
		log.Printf("[ERROR] Gagal blacklist token voter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	voterStr, _ := c.Locals("voter_id").(string)
	electionStr, _ := c.Locals("voter_election_id").(string)
	voterID, err1 := uuid.Parse(voterStr)
	electionID, err2 := uuid.Parse(electionStr)
	if err1 == nil && err2 == nil {
		activityService.RecordSafe(ctrl.DB, activityService.ActivityInput{
			VoterID:    voterID,
			ElectionID: electionID,
			Action:     activityModel.ActionLogout,
			IPAddress:  c.IP(),
			UserAgent:  string(c.Request().Header.UserAgent()),
		})
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}
