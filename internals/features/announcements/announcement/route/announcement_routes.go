package route

import (
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/announcements/announcement/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	announcementCtrl := controller.NewAnnouncementController(db)
	announcements := api.Group("/announcements")
	announcements.Get("/", announcementCtrl.GetPublishedAnnouncements)
	announcements.Get("/:slug", announcementCtrl.GetAnnouncementBySlug)
}

func AnnouncementAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/announcements",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("mengelola pengumuman"),
			constants.StaffAndAbove,
		),
	)

	announcementCtrl := controller.NewAnnouncementController(db)
	admin.Post("/", announcementCtrl.CreateAnnouncement)
	admin.Put("/:id", announcementCtrl.UpdateAnnouncement)
	admin.Delete("/:id", announcementCtrl.DeleteAnnouncement)
}
