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

type CandidateAdminController struct {
	DB *gorm.DB
}

func NewCandidateAdminController(db *gorm.DB) *CandidateAdminController {
	return &CandidateAdminController{DB: db}
}

// 🟢 POST /api/a/candidates — jabatan harus milik pemilihan yang sama
func (ctrl *CandidateAdminController) CreateCandidate(c *fiber.Ctx) error {
	var req dto.CandidateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var position model.PositionModel
	if err := ctrl.DB.Where("position_id = ?", req.CandidatePositionID).First(&position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
		}
		log.Printf("[ERROR] Lookup position: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kandidat")
	}
	if position.PositionElectionID != req.CandidateElectionID {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Jabatan bukan milik pemilihan ini")
	}

	if req.CandidatePartylistID != nil {
		var partylist model.PartylistModel
		if err := ctrl.DB.Where("partylist_id = ? AND partylist_election_id = ?",
			*req.CandidatePartylistID, req.CandidateElectionID).
			First(&partylist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Partylist bukan milik pemilihan ini")
			}
			log.Printf("[ERROR] Lookup partylist: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kandidat")
		}
	}

	candidate := model.CandidateModel{
		CandidateElectionID:  req.CandidateElectionID,
		CandidatePositionID:  req.CandidatePositionID,
		CandidatePartylistID: req.CandidatePartylistID,
		CandidateFirstName:   strings.TrimSpace(req.CandidateFirstName),
		CandidateLastName:    strings.TrimSpace(req.CandidateLastName),
		CandidatePhotoURL:    req.CandidatePhotoURL,
		CandidatePlatform:    req.CandidatePlatform,
	}

	if err := ctrl.DB.Create(&candidate).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan kandidat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kandidat")
	}

	return helper.JsonCreated(c, "Kandidat berhasil ditambahkan", dto.ToCandidateResponse(&candidate))
}

// 🟢 GET /api/a/candidates/by-election/:election_id
func (ctrl *CandidateAdminController) GetCandidatesByElection(c *fiber.Ctx) error {
	electionID := c.Params("election_id")
	if electionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Election ID tidak boleh kosong")
	}

	var candidates []model.CandidateModel
	if err := ctrl.DB.
		Where("candidate_election_id = ?", electionID).
		Order("candidate_created_at ASC").
		Find(&candidates).Error; err != nil {
		log.Printf("[ERROR] List candidates: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kandidat")
	}

	return helper.JsonOK(c, "Daftar kandidat berhasil dimuat", dto.ToCandidateResponseList(candidates))
}

// 🟡 PUT /api/a/candidates/:id
func (ctrl *CandidateAdminController) UpdateCandidate(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.CandidateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var candidate model.CandidateModel
	if err := ctrl.DB.Where("candidate_id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kandidat tidak ditemukan")
		}
		log.Printf("[ERROR] Get candidate: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat kandidat")
	}

	updates := map[string]interface{}{}
	if req.CandidatePartylistID != nil {
		updates["candidate_partylist_id"] = *req.CandidatePartylistID
	}
	if req.CandidateFirstName != nil {
		updates["candidate_first_name"] = strings.TrimSpace(*req.CandidateFirstName)
	}
	if req.CandidateLastName != nil {
		updates["candidate_last_name"] = strings.TrimSpace(*req.CandidateLastName)
	}
	if req.CandidatePhotoURL != nil {
		updates["candidate_photo_url"] = *req.CandidatePhotoURL
	}
	if req.CandidatePlatform != nil {
		updates["candidate_platform"] = *req.CandidatePlatform
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToCandidateResponse(&candidate))
	}

	if err := ctrl.DB.Model(&candidate).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update candidate: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kandidat")
	}

	return helper.JsonUpdated(c, "Kandidat berhasil diperbarui", dto.ToCandidateResponse(&candidate))
}

// 🔴 DELETE /api/a/candidates/:id — ditolak kalau kandidat sudah menerima suara
func (ctrl *CandidateAdminController) DeleteCandidate(c *fiber.Ctx) error {
	id := c.Params("id")

	var voteCount int64
	if err := ctrl.DB.Model(&ballotModel.VoteModel{}).
		Where("vote_candidate_id = ?", id).
		Count(&voteCount).Error; err != nil {
		log.Printf("[ERROR] Count votes sebelum delete candidate: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kandidat")
	}
	if voteCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kandidat sudah menerima suara dan tidak bisa dihapus")
	}

	res := ctrl.DB.Where("candidate_id = ?", id).Delete(&model.CandidateModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete candidate: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kandidat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kandidat tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kandidat berhasil dihapus", nil)
}
