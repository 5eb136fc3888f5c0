package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/feedback/dto"
	"kampusku_backend/internals/features/elections/feedback/model"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	helper "kampusku_backend/internals/helpers"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// 🟢 POST /api/elections/feedback
// Sesi voter sudah dimatikan saat submit ballot, jadi endpoint ini
// memverifikasi ulang kredensial. Hanya voter yang SUDAH memberikan
// suara yang boleh mengisi — maksimal satu per pemilihan.
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var election electionModel.ElectionModel
	if err := ctrl.DB.Where("election_code = ?", strings.TrimSpace(req.ElectionCode)).
		First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Kredensial tidak valid")
		}
		log.Printf("[ERROR] Lookup election untuk feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	var voter voterModel.VoterModel
	if err := ctrl.DB.Where("voter_election_id = ? AND voter_school_id = ?",
		election.ElectionID, strings.TrimSpace(req.SchoolID)).
		First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Kredensial tidak valid")
		}
		log.Printf("[ERROR] Lookup voter untuk feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}
	if bcrypt.CompareHashAndPassword([]byte(voter.VoterPassword), []byte(req.Credential)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Kredensial tidak valid")
	}

	if !voter.VoterHasVoted {
		return helper.JsonError(c, fiber.StatusForbidden, "Feedback hanya bisa diisi setelah memberikan suara")
	}

	feedback := model.VoterFeedbackModel{
		FeedbackVoterID:      voter.VoterID,
		FeedbackElectionID:   election.ElectionID,
		FeedbackRating:       req.Rating,
		FeedbackComment:      strings.TrimSpace(req.Comment),
		FeedbackUIExperience: req.UIExperience,
		FeedbackFoundIssue:   req.FoundIssue,
	}

	if err := ctrl.DB.Create(&feedback).Error; err != nil {
		if strings.Contains(err.Error(), "ux_feedback_voter_per_election") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Feedback untuk pemilihan ini sudah pernah diisi")
		}
		log.Printf("[ERROR] Gagal menyimpan feedback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	return helper.JsonCreated(c, "Feedback berhasil disimpan", dto.ToFeedbackResponse(&feedback))
}

// 🟢 GET /api/a/feedbacks/by-election/:election_id + pagination
func (ctrl *FeedbackController) GetFeedbacksByElection(c *fiber.Ctx) error {
	electionID := c.Params("election_id")
	if electionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Election ID tidak boleh kosong")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.VoterFeedbackModel{}).
		Where("feedback_election_id = ?", electionID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count feedbacks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat feedback")
	}

	var feedbacks []model.VoterFeedbackModel
	if err := ctrl.DB.
		Where("feedback_election_id = ?", electionID).
		Order("feedback_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&feedbacks).Error; err != nil {
		log.Printf("[ERROR] List feedbacks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat feedback")
	}

	return helper.JsonList(c, "Daftar feedback berhasil dimuat",
		dto.ToFeedbackResponseList(feedbacks),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
