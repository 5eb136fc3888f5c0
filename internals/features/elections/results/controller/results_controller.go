package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/elections/activity/model"
	activityService "kampusku_backend/internals/features/elections/activity/service"
	"kampusku_backend/internals/features/elections/electionerr"
	resultsService "kampusku_backend/internals/features/elections/results/service"
	helper "kampusku_backend/internals/helpers"
)

type ResultsController struct {
	DB *gorm.DB
}

func NewResultsController(db *gorm.DB) *ResultsController {
	return &ResultsController{DB: db}
}

// 🟢 GET /api/elections/results?election_id= — publik/staff.
// results_viewed hanya dicatat kalau request membawa sesi voter yang sah
// (middleware opsional); akses anonim/staff tidak dicatat atas nama voter.
func (ctrl *ResultsController) GetResults(c *fiber.Ctx) error {
	electionID, err := uuid.Parse(c.Query("election_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "election_id tidak valid")
	}

	results, err := resultsService.ComputeResults(ctrl.DB, electionID)
	if err != nil {
		if errors.Is(err, electionerr.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal menghitung hasil: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat hasil")
	}

	if voterStr, ok := c.Locals("voter_id").(string); ok {
		if voterID, err := uuid.Parse(voterStr); err == nil {
			activityService.RecordSafe(ctrl.DB, activityService.ActivityInput{
				VoterID:    voterID,
				ElectionID: electionID,
				Action:     activityModel.ActionResultsViewed,
				IPAddress:  c.IP(),
				UserAgent:  string(c.Request().Header.UserAgent()),
			})
		}
	}

	return helper.JsonOK(c, "Hasil pemilihan berhasil dimuat", results)
}
