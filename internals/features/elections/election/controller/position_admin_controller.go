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

type PositionAdminController struct {
	DB *gorm.DB
}

func NewPositionAdminController(db *gorm.DB) *PositionAdminController {
	return &PositionAdminController{DB: db}
}

// 🟢 POST /api/a/positions — max_vote minimal 1 (divalidasi di DTO)
func (ctrl *PositionAdminController) CreatePosition(c *fiber.Ctx) error {
	var req dto.PositionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Pastikan pemilihan induk ada
	var election model.ElectionModel
	if err := ctrl.DB.Where("election_id = ?", req.PositionElectionID).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Lookup election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jabatan")
	}

	position := model.PositionModel{
		PositionElectionID:  req.PositionElectionID,
		PositionDescription: strings.TrimSpace(req.PositionDescription),
		PositionMaxVote:     req.PositionMaxVote,
		PositionPriority:    req.PositionPriority,
	}

	if err := ctrl.DB.Create(&position).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan jabatan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jabatan")
	}

	return helper.JsonCreated(c, "Jabatan berhasil ditambahkan", dto.ToPositionResponse(&position))
}

// 🟢 GET /api/a/positions/by-election/:election_id — urut priority
func (ctrl *PositionAdminController) GetPositionsByElection(c *fiber.Ctx) error {
	electionID := c.Params("election_id")
	if electionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Election ID tidak boleh kosong")
	}

	var positions []model.PositionModel
	if err := ctrl.DB.
		Where("position_election_id = ?", electionID).
		Order("position_priority ASC").
		Find(&positions).Error; err != nil {
		log.Printf("[ERROR] List positions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jabatan")
	}

	return helper.JsonOK(c, "Daftar jabatan berhasil dimuat", dto.ToPositionResponseList(positions))
}

// 🟡 PUT /api/a/positions/:id
func (ctrl *PositionAdminController) UpdatePosition(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.PositionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var position model.PositionModel
	if err := ctrl.DB.Where("position_id = ?", id).First(&position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
		}
		log.Printf("[ERROR] Get position: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat jabatan")
	}

	updates := map[string]interface{}{}
	if req.PositionDescription != nil {
		updates["position_description"] = strings.TrimSpace(*req.PositionDescription)
	}
	if req.PositionMaxVote != nil {
		updates["position_max_vote"] = *req.PositionMaxVote
	}
	if req.PositionPriority != nil {
		updates["position_priority"] = *req.PositionPriority
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToPositionResponse(&position))
	}

	if err := ctrl.DB.Model(&position).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update position: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jabatan")
	}

	return helper.JsonUpdated(c, "Jabatan berhasil diperbarui", dto.ToPositionResponse(&position))
}

// 🔴 DELETE /api/a/positions/:id — ditolak kalau jabatan sudah menerima suara
func (ctrl *PositionAdminController) DeletePosition(c *fiber.Ctx) error {
	id := c.Params("id")

	var voteCount int64
	if err := ctrl.DB.Model(&ballotModel.VoteModel{}).
		Where("vote_position_id = ?", id).
		Count(&voteCount).Error; err != nil {
		log.Printf("[ERROR] Count votes sebelum delete position: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jabatan")
	}
	if voteCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Jabatan sudah menerima suara dan tidak bisa dihapus")
	}

	res := ctrl.DB.Where("position_id = ?", id).Delete(&model.PositionModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete position: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jabatan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jabatan berhasil dihapus", nil)
}
