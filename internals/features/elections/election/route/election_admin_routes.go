package route

import (
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/elections/election/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Katalog pemilihan (pemilihan, jabatan, kandidat, partylist) — admin/owner
func ElectionAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola pemilihan"),
			constants.AdminAndAbove,
		),
	)

	// ---------- Elections ----------
	electionCtrl := controller.NewElectionAdminController(db)
	elections := admin.Group("/elections")
	elections.Post("/", electionCtrl.CreateElection)
	elections.Get("/", electionCtrl.GetElections)
	elections.Get("/:id", electionCtrl.GetElectionByID)
	elections.Put("/:id", electionCtrl.UpdateElection)
	elections.Delete("/:id", electionCtrl.DeleteElection)

	// ---------- Positions ----------
	positionCtrl := controller.NewPositionAdminController(db)
	positions := admin.Group("/positions")
	positions.Post("/", positionCtrl.CreatePosition)
	positions.Get("/by-election/:election_id", positionCtrl.GetPositionsByElection)
	positions.Put("/:id", positionCtrl.UpdatePosition)
	positions.Delete("/:id", positionCtrl.DeletePosition)

	// ---------- Candidates ----------
	candidateCtrl := controller.NewCandidateAdminController(db)
	candidates := admin.Group("/candidates")
	candidates.Post("/", candidateCtrl.CreateCandidate)
	candidates.Get("/by-election/:election_id", candidateCtrl.GetCandidatesByElection)
	candidates.Put("/:id", candidateCtrl.UpdateCandidate)
	candidates.Delete("/:id", candidateCtrl.DeleteCandidate)

	// ---------- Partylists ----------
	partylistCtrl := controller.NewPartylistAdminController(db)
	partylists := admin.Group("/partylists")
	partylists.Post("/", partylistCtrl.CreatePartylist)
	partylists.Get("/by-election/:election_id", partylistCtrl.GetPartylistsByElection)
	partylists.Put("/:id", partylistCtrl.UpdatePartylist)
	partylists.Delete("/:id", partylistCtrl.DeletePartylist)
}
