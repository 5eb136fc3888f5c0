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
	"kampusku_backend/internals/features/elections/ballot/dto"
	ballotService "kampusku_backend/internals/features/elections/ballot/service"
	"kampusku_backend/internals/features/elections/electionerr"
	helper "kampusku_backend/internals/helpers"
)

type BallotController struct {
	DB *gorm.DB
}

func NewBallotController(db *gorm.DB) *BallotController {
	return &BallotController{DB: db}
}

func voterFromLocals(c *fiber.Ctx) (voterID, electionID uuid.UUID, err error) {
	voterStr, _ := c.Locals("voter_id").(string)
	electionStr, _ := c.Locals("voter_election_id").(string)

	voterID, err = uuid.Parse(voterStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	electionID, err = uuid.Parse(electionStr)
	return voterID, electionID, err
}

// 🟢 GET /api/vote/ballot — butuh sesi voter
func (ctrl *BallotController) GetBallot(c *fiber.Ctx) error {
	voterID, electionID, err := voterFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi voter tidak valid")
	}

	ballot, err := ballotService.BuildBallotView(ctrl.DB, electionID)
	if err != nil {
		if errors.Is(err, electionerr.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal memuat ballot: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ballot")
	}

	activityService.RecordSafe(ctrl.DB, activityService.ActivityInput{
		VoterID:    voterID,
		ElectionID: electionID,
		Action:     activityModel.ActionBallotAccessed,
		IPAddress:  c.IP(),
		UserAgent:  string(c.Request().Header.UserAgent()),
	})

	return helper.JsonOK(c, "Ballot berhasil dimuat", ballot)
}

// 🟢 POST /api/vote/ballot/preview — read-only, TANPA entri audit
func (ctrl *BallotController) PreviewBallot(c *fiber.Ctx) error {
	_, electionID, err := voterFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi voter tidak valid")
	}

	var req dto.BallotSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if req.Votes == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field votes wajib diisi")
	}

	selections, parseIssues := req.ParseSelections()
	if len(parseIssues) > 0 {
		return helper.JsonValidationError(c, parseIssues)
	}

	preview, issues, err := ballotService.Preview(ctrl.DB, electionID, selections)
	if err != nil {
		if errors.Is(err, electionerr.ErrValidationFailed) {
			return helper.JsonValidationError(c, issues)
		}
		log.Printf("[ERROR] Preview ballot gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses preview")
	}

	return helper.JsonOK(c, "Preview ballot", preview)
}

// 🟢 POST /api/vote/ballot/submit — protokol commit penuh (§ transaksi)
func (ctrl *BallotController) SubmitBallot(c *fiber.Ctx) error {
	voterID, electionID, err := voterFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi voter tidak valid")
	}

	var req dto.BallotSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if req.Votes == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field votes wajib diisi")
	}

	selections, parseIssues := req.ParseSelections()
	if len(parseIssues) > 0 {
		return helper.JsonValidationError(c, parseIssues)
	}

	token, _ := c.Locals("voter_token").(string)
	var tokenExp time.Time
	if exp, ok := c.Locals("voter_token_exp").(int64); ok {
		tokenExp = time.Unix(exp, 0)
	}

	result, issues, err := ballotService.Submit(ctrl.DB, ballotService.SubmitInput{
		VoterID:        voterID,
		ElectionID:     electionID,
		Selections:     selections,
		SessionToken:   token,
		TokenExpiresAt: tokenExp,
		IPAddress:      c.IP(),
		UserAgent:      string(c.Request().Header.UserAgent()),
	})
	if err != nil {
		switch {
		case errors.Is(err, electionerr.ErrValidationFailed):
			return helper.JsonValidationError(c, issues)
		case errors.Is(err, electionerr.ErrAlreadyVoted), errors.Is(err, electionerr.ErrCommitConflict):
			// CommitConflict = ada submit lain yang menang duluan;
			// dari sisi pemilih keduanya sama saja.
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah memberikan suara pada pemilihan ini")
		case errors.Is(err, electionerr.ErrElectionClosed):
			return helper.JsonError(c, fiber.StatusForbidden, "Pemilihan sedang tidak aktif atau sudah berakhir")
		case errors.Is(err, electionerr.ErrNotFound):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi voter tidak valid")
		default:
			// Kegagalan storage — dijamin tidak ada state parsial (rollback)
			log.Printf("[ERROR] Submit ballot gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan, silakan coba lagi")
		}
	}

	return helper.JsonCreated(c, "Suara Anda berhasil dicatat", result)
}

// 🟢 GET /api/vote/ballot/confirmation — halaman konfirmasi statis
func (ctrl *BallotController) GetConfirmation(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Terima kasih, suara Anda sudah dicatat", fiber.Map{
		"info": "Sesi Anda sudah diakhiri. Hasil dapat dilihat setelah pemilihan ditutup.",
	})
}
