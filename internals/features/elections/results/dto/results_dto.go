package dto

import (
	"github.com/google/uuid"
)

type CandidateTally struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	FullName      string    `json:"full_name"`
	PartylistName string    `json:"partylist_name,omitempty"`
	VoteCount     int64     `json:"vote_count"`
}

type PositionTally struct {
	PositionID  uuid.UUID        `json:"position_id"`
	Description string           `json:"description"`
	MaxVote     int              `json:"max_vote"`
	Priority    int              `json:"priority"`
	TotalVotes  int64            `json:"total_votes"`
	Candidates  []CandidateTally `json:"candidates"`
}

type TurnoutStats struct {
	TotalVoters int64 `json:"total_voters"`
	VotersVoted int64 `json:"voters_voted"`
	// voted / total * 100, dibulatkan 2 desimal; 0 kalau total 0
	Percentage float64 `json:"percentage"`
}

type ElectionResultsResponse struct {
	ElectionID   uuid.UUID       `json:"election_id"`
	ElectionName string          `json:"election_name"`
	Ended        bool            `json:"ended"`
	Positions    []PositionTally `json:"positions"`
	Turnout      TurnoutStats    `json:"turnout"`
}
