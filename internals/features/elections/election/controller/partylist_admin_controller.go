package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/elections/election/dto"
	"kampusku_backend/internals/features/elections/election/model"
	helper "kampusku_backend/internals/helpers"
)

type PartylistAdminController struct {
	DB *gorm.DB
}

func NewPartylistAdminController(db *gorm.DB) *PartylistAdminController {
	return &PartylistAdminController{DB: db}
}

// 🟢 POST /api/a/partylists
func (ctrl *PartylistAdminController) CreatePartylist(c *fiber.Ctx) error {
	var req dto.PartylistCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var election model.ElectionModel
	if err := ctrl.DB.Where("election_id = ?", req.PartylistElectionID).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemilihan tidak ditemukan")
		}
		log.Printf("[ERROR] Lookup election: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan partylist")
	}

	partylist := model.PartylistModel{
		PartylistElectionID:  req.PartylistElectionID,
		PartylistName:        strings.TrimSpace(req.PartylistName),
		PartylistDescription: req.PartylistDescription,
	}

	if err := ctrl.DB.Create(&partylist).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan partylist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan partylist")
	}

	return helper.JsonCreated(c, "Partylist berhasil ditambahkan", dto.ToPartylistResponse(&partylist))
}

// 🟢 GET /api/a/partylists/by-election/:election_id
func (ctrl *PartylistAdminController) GetPartylistsByElection(c *fiber.Ctx) error {
	electionID := c.Params("election_id")
	if electionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Election ID tidak boleh kosong")
	}

	var partylists []model.PartylistModel
	if err := ctrl.DB.
		Where("partylist_election_id = ?", electionID).
		Order("partylist_name ASC").
		Find(&partylists).Error; err != nil {
		log.Printf("[ERROR] List partylists: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat partylist")
	}

	return helper.JsonOK(c, "Daftar partylist berhasil dimuat", dto.ToPartylistResponseList(partylists))
}

// 🟡 PUT /api/a/partylists/:id
func (ctrl *PartylistAdminController) UpdatePartylist(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.PartylistUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var partylist model.PartylistModel
	if err := ctrl.DB.Where("partylist_id = ?", id).First(&partylist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partylist tidak ditemukan")
		}
		log.Printf("[ERROR] Get partylist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat partylist")
	}

	updates := map[string]interface{}{}
	if req.PartylistName != nil {
		updates["partylist_name"] = strings.TrimSpace(*req.PartylistName)
	}
	if req.PartylistDescription != nil {
		updates["partylist_description"] = *req.PartylistDescription
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToPartylistResponse(&partylist))
	}

	if err := ctrl.DB.Model(&partylist).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update partylist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui partylist")
	}

	return helper.JsonUpdated(c, "Partylist berhasil diperbarui", dto.ToPartylistResponse(&partylist))
}

// 🔴 DELETE /api/a/partylists/:id — kandidat yang menunjuknya tetap ada,
// referensinya saja yang dikosongkan
func (ctrl *PartylistAdminController) DeletePartylist(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CandidateModel{}).
			Where("candidate_partylist_id = ?", id).
			Update("candidate_partylist_id", nil).Error; err != nil {
			return err
		}

		res := tx.Where("partylist_id = ?", id).Delete(&model.PartylistModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partylist tidak ditemukan")
		}
		log.Printf("[ERROR] Delete partylist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus partylist")
	}

	return helper.JsonDeleted(c, "Partylist berhasil dihapus", nil)
}
