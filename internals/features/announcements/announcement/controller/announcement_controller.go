package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/announcements/announcement/dto"
	"kampusku_backend/internals/features/announcements/announcement/model"
	helper "kampusku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// 🟢 POST /api/a/announcements — slug dibuat otomatis dari judul
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var req dto.AnnouncementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	announcement := model.AnnouncementModel{
		AnnouncementTitle:       strings.TrimSpace(req.AnnouncementTitle),
		AnnouncementSlug:        helper.GenerateSlug(req.AnnouncementTitle),
		AnnouncementBody:        req.AnnouncementBody,
		AnnouncementIsPublished: req.AnnouncementIsPublished,
		AnnouncementElectionID:  req.AnnouncementElectionID,
	}

	if userStr, ok := c.Locals("user_id").(string); ok {
		if userID, err := uuid.Parse(userStr); err == nil {
			announcement.AnnouncementCreatedBy = &userID
		}
	}

	if err := ctrl.DB.Create(&announcement).Error; err != nil {
		if strings.Contains(err.Error(), "ux_announcements_slug") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Judul pengumuman sudah digunakan")
		}
		log.Printf("[ERROR] Gagal menyimpan pengumuman: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", dto.ToAnnouncementResponse(&announcement))
}

// 🟢 GET /api/announcements — publik, hanya yang sudah published
func (ctrl *AnnouncementController) GetPublishedAnnouncements(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.Model(&model.AnnouncementModel{}).
		Where("announcement_is_published = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengumuman")
	}

	var announcements []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&announcements).Error; err != nil {
		log.Printf("[ERROR] List announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengumuman")
	}

	return helper.JsonList(c, "Daftar pengumuman berhasil dimuat",
		dto.ToAnnouncementResponseList(announcements),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/announcements/:slug — publik
func (ctrl *AnnouncementController) GetAnnouncementBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var announcement model.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_slug = ? AND announcement_is_published = ?", slug, true).
		First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		log.Printf("[ERROR] Get announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengumuman")
	}

	return helper.JsonOK(c, "Pengumuman berhasil dimuat", dto.ToAnnouncementResponse(&announcement))
}

// 🟡 PUT /api/a/announcements/:id — judul baru berarti slug baru
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.AnnouncementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.Where("announcement_id = ?", id).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		log.Printf("[ERROR] Get announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat pengumuman")
	}

	updates := map[string]interface{}{}
	if req.AnnouncementTitle != nil {
		updates["announcement_title"] = strings.TrimSpace(*req.AnnouncementTitle)
		updates["announcement_slug"] = helper.GenerateSlug(*req.AnnouncementTitle)
	}
	if req.AnnouncementBody != nil {
		updates["announcement_body"] = *req.AnnouncementBody
	}
	if req.AnnouncementIsPublished != nil {
		updates["announcement_is_published"] = *req.AnnouncementIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToAnnouncementResponse(&announcement))
	}

	if err := ctrl.DB.Model(&announcement).Updates(updates).Error; err != nil {
		if strings.Contains(err.Error(), "ux_announcements_slug") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Judul pengumuman sudah digunakan")
		}
		log.Printf("[ERROR] Update announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	return helper.JsonUpdated(c, "Pengumuman berhasil diperbarui", dto.ToAnnouncementResponse(&announcement))
}

// 🔴 DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Where("announcement_id = ?", id).Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete announcement: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", nil)
}
