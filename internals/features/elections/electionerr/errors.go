package electionerr

import "errors"

// Taksonomi error inti pemilihan. Controller memetakan sentinel ini ke
// status HTTP; detail storage internal tidak pernah ikut ke response.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrElectionClosed     = errors.New("election closed")
	ErrValidationFailed   = errors.New("validation failed")

	// Conditional update mendeteksi submit lain yang menang duluan.
	// Dari sisi caller diperlakukan sama dengan ErrAlreadyVoted.
	ErrCommitConflict = errors.New("commit conflict")

	ErrNotFound = errors.New("not found")
)
