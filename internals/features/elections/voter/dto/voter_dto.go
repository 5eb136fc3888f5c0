package dto

import (
	"github.com/google/uuid"

	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

// 🔹 Request login pemilih
type VoterLoginRequest struct {
	ElectionCode string `json:"election_code" validate:"required"`
	SchoolID     string `json:"school_id" validate:"required"`
	Credential   string `json:"credential" validate:"required"`
}

// 🔹 Response login — token sesi voter + ringkasan identitas
type VoterLoginResponse struct {
	VoterToken string        `json:"voter_token"`
	ExpiresAt  string        `json:"expires_at"`
	Voter      VoterResponse `json:"voter"`
}

type VoterResponse struct {
	VoterID       uuid.UUID `json:"voter_id"`
	VoterSchoolID string    `json:"voter_school_id"`
	VoterFullName string    `json:"voter_full_name"`
	VoterHasVoted bool      `json:"voter_has_voted"`
}

// 🔹 Request admin membuat entri DPT
type VoterCreateRequest struct {
	VoterElectionID uuid.UUID `json:"voter_election_id" validate:"required"`
	VoterSchoolID   string    `json:"voter_school_id" validate:"required,max=50"`
	VoterFullName   string    `json:"voter_full_name" validate:"required,max=255"`
	Credential      string    `json:"credential" validate:"required,min=6"`
}

// 🔄 Konversi model → response
func ToVoterResponse(m *voterModel.VoterModel) VoterResponse {
	return VoterResponse{
		VoterID:       m.VoterID,
		VoterSchoolID: m.VoterSchoolID,
		VoterFullName: m.VoterFullName,
		VoterHasVoted: m.VoterHasVoted,
	}
}

func ToVoterResponseList(models []voterModel.VoterModel) []VoterResponse {
	result := make([]VoterResponse, 0, len(models))
	for i := range models {
		result = append(result, ToVoterResponse(&models[i]))
	}
	return result
}
