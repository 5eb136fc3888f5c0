package dto

import (
	"github.com/google/uuid"
)

/* ===============================
   GET /api/vote/ballot
=================================*/

type BallotElection struct {
	ElectionID   uuid.UUID `json:"election_id"`
	ElectionName string    `json:"election_name"`
	ElectionCode string    `json:"election_code"`
}

type BallotCandidate struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	FullName      string    `json:"full_name"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	Platform      string    `json:"platform,omitempty"`
	PartylistName string    `json:"partylist_name,omitempty"`
}

type BallotPosition struct {
	PositionID  uuid.UUID         `json:"position_id"`
	Description string            `json:"description"`
	MaxVote     int               `json:"max_vote"`
	Priority    int               `json:"priority"`
	Candidates  []BallotCandidate `json:"candidates"`
}

type BallotResponse struct {
	Election  BallotElection   `json:"election"`
	Positions []BallotPosition `json:"positions"`
}

/* ===============================
   POST /api/vote/ballot/preview & /submit
=================================*/

// Body: { "votes": { "<position_id>": ["<candidate_id>", ...] } }
// List kosong = abstain untuk jabatan itu (key tetap wajib ada).
type BallotSubmitRequest struct {
	Votes map[string][]string `json:"votes" validate:"required"`
}

// ParseSelections mengubah map string → map uuid; format id yang rusak
// dikembalikan sebagai issues (bukan error 500).
func (r *BallotSubmitRequest) ParseSelections() (map[uuid.UUID][]uuid.UUID, map[string][]string) {
	selections := make(map[uuid.UUID][]uuid.UUID, len(r.Votes))
	issues := map[string][]string{}

	for posStr, candStrs := range r.Votes {
		posID, err := uuid.Parse(posStr)
		if err != nil {
			issues[posStr] = append(issues[posStr], "position id tidak valid")
			continue
		}
		ids := make([]uuid.UUID, 0, len(candStrs))
		for _, cs := range candStrs {
			candID, err := uuid.Parse(cs)
			if err != nil {
				issues[posStr] = append(issues[posStr], "candidate id tidak valid")
				continue
			}
			ids = append(ids, candID)
		}
		selections[posID] = ids
	}

	return selections, issues
}

type PreviewSelection struct {
	PositionID  uuid.UUID         `json:"position_id"`
	Description string            `json:"description"`
	MaxVote     int               `json:"max_vote"`
	Candidates  []BallotCandidate `json:"candidates"`
	Abstained   bool              `json:"abstained"`
}

type PreviewResponse struct {
	Selections []PreviewSelection `json:"selections"`
}

type SubmitResponse struct {
	ConfirmationRef    string `json:"confirmation_ref"`
	PositionsVoted     int    `json:"positions_voted"`
	CandidatesSelected int    `json:"candidates_selected"`
}
