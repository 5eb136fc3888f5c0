package route

import (
	"kampusku_backend/internals/features/elections/ballot/controller"
	"kampusku_backend/internals/middlewares"
	voterMiddleware "kampusku_backend/internals/middlewares/auth_voter"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Semua endpoint ballot butuh sesi voter. Guard dipasang di subgroup ini,
// BUKAN di group /api/vote — prefix itu juga dipakai login yang publik.
func BallotVoterRoutes(api fiber.Router, db *gorm.DB) {
	ballotCtrl := controller.NewBallotController(db)
	ballot := api.Group("/ballot", voterMiddleware.VoterAuthMiddleware(db))
	ballot.Get("/", ballotCtrl.GetBallot)
	ballot.Post("/preview", ballotCtrl.PreviewBallot)
	ballot.Post("/submit", middlewares.BallotSubmitRateLimiter(), ballotCtrl.SubmitBallot)
	ballot.Get("/confirmation", ballotCtrl.GetConfirmation)
}
