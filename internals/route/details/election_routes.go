package details

import (
	ActivityRoutes "kampusku_backend/internals/features/elections/activity/route"
	BallotRoutes "kampusku_backend/internals/features/elections/ballot/route"
	ElectionRoutes "kampusku_backend/internals/features/elections/election/route"
	FeedbackRoutes "kampusku_backend/internals/features/elections/feedback/route"
	ResultsRoutes "kampusku_backend/internals/features/elections/results/route"
	VoterRoutes "kampusku_backend/internals/features/elections/voter/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== PUBLIC ===================== */
// Tanpa login; hasil pemilihan pakai middleware voter opsional (dipasang
// di group pemanggil) supaya akses bersesi tetap masuk audit trail.
func ElectionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ResultsRoutes.ResultsPublicRoutes(r, db)
	FeedbackRoutes.FeedbackPublicRoutes(r, db)
}

/* ===================== VOTER (SESI PEMILIH) ===================== */
// Login voter publik; ballot & logout butuh sesi voter.
func ElectionVoterLoginRoutes(r fiber.Router, db *gorm.DB) {
	VoterRoutes.VoterLoginRoutes(r, db)
}

func ElectionVoterSessionRoutes(r fiber.Router, db *gorm.DB) {
	VoterRoutes.VoterSessionRoutes(r, db)
	BallotRoutes.BallotVoterRoutes(r, db)
}

/* ===================== ADMIN ===================== */
// Token institusi + guard role per fitur (di route masing-masing)
func ElectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ElectionRoutes.ElectionAdminRoutes(r, db)
	VoterRoutes.VoterAdminRoutes(r, db)
	ActivityRoutes.ActivityAdminRoutes(r, db)
	FeedbackRoutes.FeedbackAdminRoutes(r, db)
}
