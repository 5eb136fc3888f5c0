package routes

import (
	"log"
	"time"

	authMiddleware "kampusku_backend/internals/middlewares/auth"
	voterMiddleware "kampusku_backend/internals/middlewares/auth_voter"

	routeDetails "kampusku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → sesi voter opsional (untuk audit results_viewed)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api",
		voterMiddleware.VoterOptionalMiddleware(db),
	)

	// VOTE → login publik; guard sesi voter dipasang per-route di route
	// masing-masing (middleware group di prefix yang sama ikut menjaga
	// SEMUA route se-prefix, termasuk login — jadi jangan di sini)
	log.Println("[INFO] Setting up VOTE group...")
	vote := app.Group("/api/vote")

	// ADMIN → token institusi; guard role per fitur di route masing-masing
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Election routes...")
	routeDetails.ElectionPublicRoutes(public, db)
	routeDetails.ElectionVoterLoginRoutes(vote, db)
	routeDetails.ElectionVoterSessionRoutes(vote, db)
	routeDetails.ElectionAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Announcement routes...")
	routeDetails.AnnouncementPublicRoutes(public, db)
	routeDetails.AnnouncementAdminRoutes(admin, db)
}
