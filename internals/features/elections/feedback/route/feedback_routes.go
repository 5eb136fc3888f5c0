package route

import (
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/elections/feedback/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pengisian feedback — publik (verifikasi kredensial di controller)
func FeedbackPublicRoutes(api fiber.Router, db *gorm.DB) {
	feedbackCtrl := controller.NewFeedbackController(db)
	api.Post("/elections/feedback", feedbackCtrl.CreateFeedback)
}

// Review feedback — khusus staff/admin
func FeedbackAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/feedbacks",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("melihat feedback pemilihan"),
			constants.StaffAndAbove,
		),
	)

	feedbackCtrl := controller.NewFeedbackController(db)
	admin.Get("/by-election/:election_id", feedbackCtrl.GetFeedbacksByElection)
}
