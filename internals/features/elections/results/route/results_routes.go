package route

import (
	"kampusku_backend/internals/features/elections/results/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Hasil pemilihan — publik; group pemanggil memasang middleware voter
// opsional supaya akses bersesi tetap tercatat di audit trail.
func ResultsPublicRoutes(api fiber.Router, db *gorm.DB) {
	resultsCtrl := controller.NewResultsController(db)
	api.Get("/elections/results", resultsCtrl.GetResults)
}
