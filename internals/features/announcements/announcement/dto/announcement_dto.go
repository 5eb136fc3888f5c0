package dto

import (
	"time"

	"github.com/google/uuid"

	announcementModel "kampusku_backend/internals/features/announcements/announcement/model"
)

type AnnouncementCreateRequest struct {
	AnnouncementTitle       string     `json:"announcement_title" validate:"required,min=3,max=255"`
	AnnouncementBody        string     `json:"announcement_body" validate:"required"`
	AnnouncementIsPublished bool       `json:"announcement_is_published"`
	AnnouncementElectionID  *uuid.UUID `json:"announcement_election_id"`
}

type AnnouncementUpdateRequest struct {
	AnnouncementTitle       *string `json:"announcement_title" validate:"omitempty,min=3,max=255"`
	AnnouncementBody        *string `json:"announcement_body"`
	AnnouncementIsPublished *bool   `json:"announcement_is_published"`
}

type AnnouncementResponse struct {
	AnnouncementID          uuid.UUID  `json:"announcement_id"`
	AnnouncementTitle       string     `json:"announcement_title"`
	AnnouncementSlug        string     `json:"announcement_slug"`
	AnnouncementBody        string     `json:"announcement_body"`
	AnnouncementIsPublished bool       `json:"announcement_is_published"`
	AnnouncementElectionID  *uuid.UUID `json:"announcement_election_id,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
}

func ToAnnouncementResponse(m *announcementModel.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID:          m.AnnouncementID,
		AnnouncementTitle:       m.AnnouncementTitle,
		AnnouncementSlug:        m.AnnouncementSlug,
		AnnouncementBody:        m.AnnouncementBody,
		AnnouncementIsPublished: m.AnnouncementIsPublished,
		AnnouncementElectionID:  m.AnnouncementElectionID,
		CreatedAt:               m.AnnouncementCreatedAt,
	}
}

func ToAnnouncementResponseList(models []announcementModel.AnnouncementModel) []AnnouncementResponse {
	result := make([]AnnouncementResponse, 0, len(models))
	for i := range models {
		result = append(result, ToAnnouncementResponse(&models[i]))
	}
	return result
}
