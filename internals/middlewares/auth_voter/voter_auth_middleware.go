// internals/middlewares/auth_voter/voter_auth_middleware.go
package auth_voter

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

// VoterAuthMiddleware memvalidasi sesi pemilih. Sesi ini SENGAJA terpisah
// dari sesi institusi: secret sendiri, klaim sendiri, blacklist sendiri.
// Token yang sudah diblacklist (logout / sudah submit) selalu ditolak.
func VoterAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractVoterToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Cek blacklist (sesi voter bersifat sekali pakai setelah submit)
		var existing voterModel.VoterTokenBlacklist
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
			log.Println("[WARNING] Token voter ditemukan di blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Session ended")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] DB error saat cek blacklist voter:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		claims, err := parseVoterClaims(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		voterID, electionID, err := extractVoterIDs(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid voter claims")
		}

		c.Locals("voter_id", voterID.String())
		c.Locals("voter_election_id", electionID.String())
		c.Locals("voter_token", tokenString)
		if exp, ok := claims["exp"].(float64); ok {
			c.Locals("voter_token_exp", int64(exp))
		}

		return c.Next()
	}
}

// VoterOptionalMiddleware — versi longgar: kalau tidak ada token / token tidak
// valid, request tetap jalan sebagai anonymous (dipakai halaman hasil, supaya
// results_viewed hanya tercatat untuk pemilih yang ber-sesi).
func VoterOptionalMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractVoterToken(c)
		if err != nil {
			return c.Next()
		}

		var existing voterModel.VoterTokenBlacklist
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
			log.Println("[INFO] Token voter di blacklist, lanjut sebagai anonymous")
			return c.Next()
		}

		claims, err := parseVoterClaims(tokenString)
		if err != nil {
			log.Println("[INFO] Token voter tidak valid, lanjut sebagai anonymous:", err)
			return c.Next()
		}

		voterID, electionID, err := extractVoterIDs(claims)
		if err != nil {
			return c.Next()
		}

		c.Locals("voter_id", voterID.String())
		c.Locals("voter_election_id", electionID.String())
		c.Locals("voter_token", tokenString)

		return c.Next()
	}
}

func extractVoterToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if cookieToken := c.Cookies("voter_token"); cookieToken != "" {
			return cookieToken, nil
		}
		return "", errors.New("Unauthorized - No voter session")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Unauthorized - Invalid token format")
	}
	return parts[1], nil
}

func parseVoterClaims(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTVoterSecret
	if secretKey == "" {
		return nil, errors.New("Missing voter JWT secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}); err != nil {
		return nil, errors.New("Unauthorized - Token parse error")
	}

	// Token institusi tidak boleh dipakai di domain voter
	if typ, _ := claims["typ"].(string); typ != "voter" {
		return nil, errors.New("Unauthorized - Not a voter session")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("Unauthorized - Missing exp")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(30 * time.Second)) {
		return nil, errors.New("Unauthorized - Token expired")
	}

	return claims, nil
}

func extractVoterIDs(claims jwt.MapClaims) (uuid.UUID, uuid.UUID, error) {
	voterStr, _ := claims["voter_id"].(string)
	electionStr, _ := claims["election_id"].(string)

	voterID, err := uuid.Parse(voterStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	electionID, err := uuid.Parse(electionStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return voterID, electionID, nil
}
