package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/elections/voter/dto"
	"kampusku_backend/internals/features/elections/voter/model"
	helper "kampusku_backend/internals/helpers"
)

type VoterAdminController struct {
	DB *gorm.DB
}

func NewVoterAdminController(db *gorm.DB) *VoterAdminController {
	return &VoterAdminController{DB: db}
}

// 🟢 POST /api/a/voters — tambah entri DPT
func (ctrl *VoterAdminController) CreateVoter(c *fiber.Ctx) error {
	var req dto.VoterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Credential), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses kredensial")
	}

	voter := model.VoterModel{
		VoterElectionID: req.VoterElectionID,
		VoterSchoolID:   strings.TrimSpace(req.VoterSchoolID),
		VoterFullName:   strings.TrimSpace(req.VoterFullName),
		VoterPassword:   string(hash),
	}

	if err := ctrl.DB.Create(&voter).Error; err != nil {
		if strings.Contains(err.Error(), "ux_voters_school_per_election") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor induk sudah terdaftar pada pemilihan ini")
		}
		log.Printf("[ERROR] Gagal menyimpan voter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan voter")
	}

	return helper.JsonCreated(c, "Voter berhasil ditambahkan", dto.ToVoterResponse(&voter))
}

// 🟢 GET /api/a/voters/by-election/:election_id + pagination
func (ctrl *VoterAdminController) GetVotersByElection(c *fiber.Ctx) error {
	electionID := c.Params("election_id")
	if electionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Election ID tidak boleh kosong")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.VoterModel{}).
		Where("voter_election_id = ?", electionID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count voters: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data voter")
	}

	var voters []model.VoterModel
	if err := ctrl.DB.
		Where("voter_election_id = ?", electionID).
		Order("voter_school_id ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&voters).Error; err != nil {
		log.Printf("[ERROR] List voters: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data voter")
	}

	return helper.JsonList(c, "Daftar voter berhasil dimuat",
		dto.ToVoterResponseList(voters),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔴 DELETE /api/a/voters/:id — hanya untuk voter yang belum memberikan suara
func (ctrl *VoterAdminController) DeleteVoter(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Voter ID tidak boleh kosong")
	}

	res := ctrl.DB.Where("voter_id = ? AND voter_has_voted = ?", id, false).
		Delete(&model.VoterModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete voter: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus voter")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Voter tidak ditemukan atau sudah memberikan suara")
	}

	return helper.JsonDeleted(c, "Voter berhasil dihapus", nil)
}
