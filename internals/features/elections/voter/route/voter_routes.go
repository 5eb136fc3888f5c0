package route

import (
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/elections/voter/controller"
	"kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
	voterMiddleware "kampusku_backend/internals/middlewares/auth_voter"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login voter — publik, dibatasi rate limiter khusus
func VoterLoginRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewVoterAuthController(db)
	api.Post("/login", middlewares.VoterLoginRateLimiter(), authCtrl.Login)
}

// Logout — butuh sesi voter; guard per-route supaya login se-prefix tetap publik
func VoterSessionRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewVoterAuthController(db)
	api.Post("/logout", voterMiddleware.VoterAuthMiddleware(db), authCtrl.Logout)
}

// Pengelolaan DPT — khusus staff/admin
func VoterAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/voters",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStaff("mengelola daftar pemilih"),
			constants.StaffAndAbove,
		),
	)

	voterCtrl := controller.NewVoterAdminController(db)
	admin.Post("/", voterCtrl.CreateVoter)
	admin.Get("/by-election/:election_id", voterCtrl.GetVotersByElection)
	admin.Delete("/:id", voterCtrl.DeleteVoter)
}
