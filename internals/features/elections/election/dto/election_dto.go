package dto

import (
	"time"

	"github.com/google/uuid"

	electionModel "kampusku_backend/internals/features/elections/election/model"
)

// ========================= ELECTION =========================

type ElectionCreateRequest struct {
	ElectionName    string     `json:"election_name" validate:"required,min=3,max=255"`
	ElectionCode    string     `json:"election_code" validate:"required,min=3,max=50"`
	ElectionEnabled *bool      `json:"election_enabled"`
	ElectionEndTime *time.Time `json:"election_end_time"`
}

type ElectionUpdateRequest struct {
	ElectionName    *string    `json:"election_name" validate:"omitempty,min=3,max=255"`
	ElectionEnabled *bool      `json:"election_enabled"`
	ElectionEndTime *time.Time `json:"election_end_time"`
}

type ElectionResponse struct {
	ElectionID      uuid.UUID  `json:"election_id"`
	ElectionName    string     `json:"election_name"`
	ElectionCode    string     `json:"election_code"`
	ElectionEnabled bool       `json:"election_enabled"`
	ElectionEndTime *time.Time `json:"election_end_time,omitempty"`
	IsActive        bool       `json:"is_active"`
	HasEnded        bool       `json:"has_ended"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToElectionResponse(m *electionModel.ElectionModel) ElectionResponse {
	return ElectionResponse{
		ElectionID:      m.ElectionID,
		ElectionName:    m.ElectionName,
		ElectionCode:    m.ElectionCode,
		ElectionEnabled: m.ElectionEnabled,
		ElectionEndTime: m.ElectionEndTime,
		IsActive:        m.IsActive(),
		HasEnded:        m.HasEnded(),
		CreatedAt:       m.ElectionCreatedAt,
	}
}

func ToElectionResponseList(models []electionModel.ElectionModel) []ElectionResponse {
	result := make([]ElectionResponse, 0, len(models))
	for i := range models {
		result = append(result, ToElectionResponse(&models[i]))
	}
	return result
}

// ========================= POSITION =========================

type PositionCreateRequest struct {
	PositionElectionID  uuid.UUID `json:"position_election_id" validate:"required"`
	PositionDescription string    `json:"position_description" validate:"required,min=3,max=255"`
	PositionMaxVote     int       `json:"position_max_vote" validate:"required,min=1"`
	PositionPriority    int       `json:"position_priority" validate:"min=0"`
}

type PositionUpdateRequest struct {
	PositionDescription *string `json:"position_description" validate:"omitempty,min=3,max=255"`
	PositionMaxVote     *int    `json:"position_max_vote" validate:"omitempty,min=1"`
	PositionPriority    *int    `json:"position_priority" validate:"omitempty,min=0"`
}

type PositionResponse struct {
	PositionID          uuid.UUID `json:"position_id"`
	PositionElectionID  uuid.UUID `json:"position_election_id"`
	PositionDescription string    `json:"position_description"`
	PositionMaxVote     int       `json:"position_max_vote"`
	PositionPriority    int       `json:"position_priority"`
}

func ToPositionResponse(m *electionModel.PositionModel) PositionResponse {
	return PositionResponse{
		PositionID:          m.PositionID,
		PositionElectionID:  m.PositionElectionID,
		PositionDescription: m.PositionDescription,
		PositionMaxVote:     m.PositionMaxVote,
		PositionPriority:    m.PositionPriority,
	}
}

func ToPositionResponseList(models []electionModel.PositionModel) []PositionResponse {
	result := make([]PositionResponse, 0, len(models))
	for i := range models {
		result = append(result, ToPositionResponse(&models[i]))
	}
	return result
}

// ========================= CANDIDATE =========================

type CandidateCreateRequest struct {
	CandidateElectionID  uuid.UUID  `json:"candidate_election_id" validate:"required"`
	CandidatePositionID  uuid.UUID  `json:"candidate_position_id" validate:"required"`
	CandidatePartylistID *uuid.UUID `json:"candidate_partylist_id"`
	CandidateFirstName   string     `json:"candidate_first_name" validate:"required,max=100"`
	CandidateLastName    string     `json:"candidate_last_name" validate:"max=100"`
	CandidatePhotoURL    string     `json:"candidate_photo_url" validate:"omitempty,url"`
	CandidatePlatform    string     `json:"candidate_platform"`
}

type CandidateUpdateRequest struct {
	CandidatePartylistID *uuid.UUID `json:"candidate_partylist_id"`
	CandidateFirstName   *string    `json:"candidate_first_name" validate:"omitempty,max=100"`
	CandidateLastName    *string    `json:"candidate_last_name" validate:"omitempty,max=100"`
	CandidatePhotoURL    *string    `json:"candidate_photo_url" validate:"omitempty,url"`
	CandidatePlatform    *string    `json:"candidate_platform"`
}

type CandidateResponse struct {
	CandidateID          uuid.UUID  `json:"candidate_id"`
	CandidateElectionID  uuid.UUID  `json:"candidate_election_id"`
	CandidatePositionID  uuid.UUID  `json:"candidate_position_id"`
	CandidatePartylistID *uuid.UUID `json:"candidate_partylist_id,omitempty"`
	FullName             string     `json:"full_name"`
	CandidatePhotoURL    string     `json:"candidate_photo_url"`
	CandidatePlatform    string     `json:"candidate_platform"`
}

func ToCandidateResponse(m *electionModel.CandidateModel) CandidateResponse {
	return CandidateResponse{
		CandidateID:          m.CandidateID,
		CandidateElectionID:  m.CandidateElectionID,
		CandidatePositionID:  m.CandidatePositionID,
		CandidatePartylistID: m.CandidatePartylistID,
		FullName:             m.FullName(),
		CandidatePhotoURL:    m.CandidatePhotoURL,
		CandidatePlatform:    m.CandidatePlatform,
	}
}

func ToCandidateResponseList(models []electionModel.CandidateModel) []CandidateResponse {
	result := make([]CandidateResponse, 0, len(models))
	for i := range models {
		result = append(result, ToCandidateResponse(&models[i]))
	}
	return result
}

// ========================= PARTYLIST =========================

type PartylistCreateRequest struct {
	PartylistElectionID  uuid.UUID `json:"partylist_election_id" validate:"required"`
	PartylistName        string    `json:"partylist_name" validate:"required,min=2,max=255"`
	PartylistDescription string    `json:"partylist_description"`
}

type PartylistUpdateRequest struct {
	PartylistName        *string `json:"partylist_name" validate:"omitempty,min=2,max=255"`
	PartylistDescription *string `json:"partylist_description"`
}

type PartylistResponse struct {
	PartylistID          uuid.UUID `json:"partylist_id"`
	PartylistElectionID  uuid.UUID `json:"partylist_election_id"`
	PartylistName        string    `json:"partylist_name"`
	PartylistDescription string    `json:"partylist_description"`
}

func ToPartylistResponse(m *electionModel.PartylistModel) PartylistResponse {
	return PartylistResponse{
		PartylistID:          m.PartylistID,
		PartylistElectionID:  m.PartylistElectionID,
		PartylistName:        m.PartylistName,
		PartylistDescription: m.PartylistDescription,
	}
}

func ToPartylistResponseList(models []electionModel.PartylistModel) []PartylistResponse {
	result := make([]PartylistResponse, 0, len(models))
	for i := range models {
		result = append(result, ToPartylistResponse(&models[i]))
	}
	return result
}
