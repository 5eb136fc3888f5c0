package route

import (
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/elections/activity/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Audit trail hanya bisa dibaca — tidak ada endpoint tulis/ubah/hapus.
func ActivityAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/voter-activities",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("melihat log aktivitas pemilih"),
			constants.AdminAndAbove,
		),
	)

	activityCtrl := controller.NewActivityAdminController(db)
	admin.Get("/", activityCtrl.GetActivities)
}
