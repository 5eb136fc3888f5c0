package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/elections/activity/dto"
	"kampusku_backend/internals/features/elections/activity/model"
	helper "kampusku_backend/internals/helpers"
)

type ActivityAdminController struct {
	DB *gorm.DB
}

func NewActivityAdminController(db *gorm.DB) *ActivityAdminController {
	return &ActivityAdminController{DB: db}
}

// 🟢 GET /api/a/voter-activities
// Filter: ?election_id= &voter_id= &action= &from=RFC3339 &to=RFC3339 + pagination.
// Review administratif saja — log tidak pernah dimutasi lewat endpoint apa pun.
func (ctrl *ActivityAdminController) GetActivities(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.VoterActivityLogModel{})

	if electionID := c.Query("election_id"); electionID != "" {
		q = q.Where("activity_election_id = ?", electionID)
	}
	if voterID := c.Query("voter_id"); voterID != "" {
		q = q.Where("activity_voter_id = ?", voterID)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("activity_action = ?", action)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter from tidak valid (pakai RFC3339)")
		}
		q = q.Where("activity_created_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter to tidak valid (pakai RFC3339)")
		}
		q = q.Where("activity_created_at <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log aktivitas")
	}

	var logs []model.VoterActivityLogModel
	if err := q.Order("activity_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		log.Printf("[ERROR] List activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat log aktivitas")
	}

	return helper.JsonList(c, "Log aktivitas berhasil dimuat",
		dto.ToActivityResponseList(logs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
