package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ballotModel "kampusku_backend/internals/features/elections/ballot/model"
	"kampusku_backend/internals/features/elections/election/dto"
	"kampusku_backend/internals/features/elections/election/model"
	helper "kampusku_backend/internals/helpers"
)

type ElectionAdminController struct {
	DB *gorm.DB
}

func NewElectionAdminController(db *gorm.DB) *ElectionAdminController {
	return &ElectionAdminController{DB: db}
}

// 🟢 POST /api/a/elections
func (ctrl *ElectionAdminController) CreateElection(c *fiber.Ctx) error {
	var req dto.ElectionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	election := model.ElectionModel{
		ElectionName:    strings.TrimSpace(req.ElectionName),
		ElectionCode:    strings.ToUpper(strings.TrimSpace(req.ElectionCode)),
		ElectionEnabled: true,
		ElectionEndTime: req.ElectionEndTime,
	}
	if req.ElectionEnabled != nil {
		election.ElectionEnabled = *req.ElectionEnabled
	}

	if err := ctrl.DB.Create(&election).Error; err != nil {
		if strings.Contains(err.Error(), "ux_elections_code") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode pemilihan sudah digunakan")
		}
		log.Printf("[ERROR] Gagal menyimpan pemilihan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pemilihan")
	}

	return helper.JsonCreated(c, "Pemilihan berhasil dibuat", dto.ToElectionResponse(&election))
}

// 🟢 GET /api/a/elections + pagination
func (ctrl *ElectionAdminController) GetElections(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ElectionModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count elections: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pemilihan")
	}

	var elections []model.ElectionModel
	if err := ctrl.DB.
		Order("election_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&elections).Error; err != nil {
		log.Printf("[ERROR] List elections: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pemilihan")
	}

	return helper.JsonList(c, "Daftar pemilihan berhasil dimuat",
		dto.ToElectionResponseList(elections),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/elections/:id
func (ctrl *ElectionAdminController) GetElectionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var election model.ElectionModel
	if err := ctrl.DB.Where("election_id = ?", id).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Get election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pemilihan")
	}

	return helper.JsonOK(c, "Pemilihan berhasil dimuat", dto.ToElectionResponse(&election))
}

// 🟡 PUT /api/a/elections/:id — nama, enabled, end_time.
// Kode pemilihan tidak bisa diganti setelah dibuat (dipakai voter untuk login).
func (ctrl *ElectionAdminController) UpdateElection(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.ElectionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var election model.ElectionModel
	if err := ctrl.DB.Where("election_id = ?", id).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Get election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pemilihan")
	}

	updates := map[string]interface{}{}
	if req.ElectionName != nil {
		updates["election_name"] = strings.TrimSpace(*req.ElectionName)
	}
	if req.ElectionEnabled != nil {
		updates["election_enabled"] = *req.ElectionEnabled
	}
	if req.ElectionEndTime != nil {
		updates["election_end_time"] = *req.ElectionEndTime
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToElectionResponse(&election))
	}

	if err := ctrl.DB.Model(&election).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pemilihan")
	}

	return helper.JsonUpdated(c, "Pemilihan berhasil diperbarui", dto.ToElectionResponse(&election))
}

// 🔴 DELETE /api/a/elections/:id
// Ditolak kalau sudah ada suara masuk — jejak pemilihan tidak boleh hilang.
func (ctrl *ElectionAdminController) DeleteElection(c *fiber.Ctx) error {
	id := c.Params("id")

	var voteCount int64
	if err := ctrl.DB.Model(&ballotModel.VoteModel{}).
		Where("vote_election_id = ?", id).
		Count(&voteCount).Error; err != nil {
		log.Printf("[ERROR] Count votes sebelum delete election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemilihan")
	}
	if voteCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Pemilihan sudah memiliki suara dan tidak bisa dihapus")
	}

	res := ctrl.DB.Where("election_id = ?", id).Delete(&model.ElectionModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete election: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemilihan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pemilihan berhasil dihapus", nil)
}
