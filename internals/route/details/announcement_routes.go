package details

import (
	AnnouncementRoutes "kampusku_backend/internals/features/announcements/announcement/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AnnouncementPublicRoutes(r fiber.Router, db *gorm.DB) {
	AnnouncementRoutes.AnnouncementPublicRoutes(r, db)
}

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	AnnouncementRoutes.AnnouncementAdminRoutes(r, db)
}
