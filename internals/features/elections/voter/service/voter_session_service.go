package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

// Sesi voter pendek saja — cukup untuk lihat ballot dan submit.
const voterSessionTTL = 2 * time.Hour

func getVoterSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTVoterSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_VOTER_SECRET belum diset")
	}
	return secret, nil
}

// IssueVoterToken menerbitkan JWT sesi voter (typ=voter, secret terpisah
// dari sesi institusi).
func IssueVoterToken(voterID, electionID uuid.UUID) (string, time.Time, error) {
	secret, err := getVoterSecret()
	if err != nil {
		return "", time.Time{}, err
	}

	expiredAt := time.Now().Add(voterSessionTTL)
	claims := jwt.MapClaims{
		"typ":         "voter",
		"voter_id":    voterID.String(),
		"election_id": electionID.String(),
		"iat":         time.Now().Unix(),
		"exp":         expiredAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiredAt, nil
}

// BlacklistVoterToken mematikan satu token sesi voter. Dipanggil saat logout
// manual dan dipanggil WAJIB di dalam transaksi submit ballot (forced logout).
func BlacklistVoterToken(db *gorm.DB, token string, expiredAt time.Time) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if expiredAt.IsZero() {
		expiredAt = time.Now().Add(voterSessionTTL)
	}
	entry := voterModel.VoterTokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}
