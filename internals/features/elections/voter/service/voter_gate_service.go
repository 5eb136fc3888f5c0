package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	electionModel "kampusku_backend/internals/features/elections/election/model"
	"kampusku_backend/internals/features/elections/electionerr"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

// Authenticate adalah gerbang auth pemilih (§ login):
//  1. cari pemilihan via kode + pemilih via nomor induk, scoped ke pemilihan itu
//  2. cocokkan kredensial (bcrypt)
//  3. tolak kalau sudah memberikan suara
//  4. tolak kalau pemilihan tidak aktif / sudah berakhir
//
// "Tidak ada pemilih" dan "kredensial salah" SENGAJA dikembalikan sebagai
// error yang sama (ErrInvalidCredentials) supaya roster tidak bisa di-enumerasi.
func Authenticate(db *gorm.DB, electionCode, schoolID, credential string) (*voterModel.VoterModel, *electionModel.ElectionModel, error) {
	electionCode = strings.TrimSpace(electionCode)
	schoolID = strings.TrimSpace(schoolID)
	if electionCode == "" || schoolID == "" || credential == "" {
		return nil, nil, electionerr.ErrInvalidCredentials
	}

	var election electionModel.ElectionModel
	if err := db.Where("election_code = ?", electionCode).First(&election).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, electionerr.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	var voter voterModel.VoterModel
	err := db.Where("voter_election_id = ? AND voter_school_id = ?", election.ElectionID, schoolID).
		First(&voter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, electionerr.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(voter.VoterPassword), []byte(credential)) != nil {
		return nil, nil, electionerr.ErrInvalidCredentials
	}

	if voter.VoterHasVoted {
		return nil, nil, electionerr.ErrAlreadyVoted
	}

	if !election.IsActive() || election.HasEnded() {
		return nil, nil, electionerr.ErrElectionClosed
	}

	return &voter, &election, nil
}
