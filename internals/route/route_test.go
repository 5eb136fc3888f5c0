package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	electionModel "kampusku_backend/internals/features/elections/election/model"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
	"kampusku_backend/internals/testutil"
)

// Test level HTTP — memastikan komposisi group & middleware di SetupRoutes
// benar: login voter harus bisa diakses TANPA sesi, sementara seluruh
// endpoint ballot dan logout tetap dijaga sesi voter.
type VoteRoutesTestSuite struct {
	suite.Suite
	db       *gorm.DB
	app      *fiber.App
	election *electionModel.ElectionModel
	presiden *electionModel.PositionModel
	senator  *electionModel.PositionModel
	andi     *electionModel.CandidateModel
	budi     *electionModel.CandidateModel
	citra    *electionModel.CandidateModel
	voter    *voterModel.VoterModel
}

func (s *VoteRoutesTestSuite) SetupTest() {
	configs.JWTVoterSecret = "test-voter-secret"

	s.db = testutil.OpenTestDB(s.T())
	s.app = fiber.New()
	SetupRoutes(s.app, s.db)

	s.election = testutil.CreateTestElection(s.T(), s.db, "PEMIRA-HTTP")
	s.presiden = testutil.AddTestPosition(s.T(), s.db, s.election.ElectionID, "Presiden BEM", 1, 1)
	s.senator = testutil.AddTestPosition(s.T(), s.db, s.election.ElectionID, "Senator", 2, 2)
	s.andi = testutil.AddTestCandidate(s.T(), s.db, s.election.ElectionID, s.presiden.PositionID, "Andi")
	s.budi = testutil.AddTestCandidate(s.T(), s.db, s.election.ElectionID, s.presiden.PositionID, "Budi")
	s.citra = testutil.AddTestCandidate(s.T(), s.db, s.election.ElectionID, s.senator.PositionID, "Citra")
	s.voter = testutil.CreateTestVoter(s.T(), s.db, s.election.ElectionID, "2026001", "rahasia123")
}

type jsonEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *VoteRoutesTestSuite) request(method, path, token string, body any) (*http.Response, jsonEnvelope) {
	s.T().Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	var envelope jsonEnvelope
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &envelope))
	}
	return resp, envelope
}

func (s *VoteRoutesTestSuite) login(schoolID, credential string) (*http.Response, string) {
	s.T().Helper()

	resp, envelope := s.request(fiber.MethodPost, "/api/vote/login", "", fiber.Map{
		"election_code": s.election.ElectionCode,
		"school_id":     schoolID,
		"credential":    credential,
	})
	var data struct {
		VoterToken string `json:"voter_token"`
	}
	if len(envelope.Data) > 0 {
		s.Require().NoError(json.Unmarshal(envelope.Data, &data))
	}
	return resp, data.VoterToken
}

// Login adalah pintu masuk publik — tidak boleh ikut terjaga middleware
// sesi voter yang dipasang untuk route lain se-prefix /api/vote.
func (s *VoteRoutesTestSuite) TestLoginWithoutSessionSucceeds() {
	resp, token := s.login("2026001", "rahasia123")

	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.NotEmpty(token)
}

func (s *VoteRoutesTestSuite) TestLoginRejectsWrongCredential() {
	resp, token := s.login("2026001", "salah-total")

	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	s.Empty(token)
}

func (s *VoteRoutesTestSuite) TestBallotRequiresVoterSession() {
	resp, _ := s.request(fiber.MethodGet, "/api/vote/ballot", "", nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.request(fiber.MethodPost, "/api/vote/ballot/submit", "", fiber.Map{"votes": fiber.Map{}})
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.request(fiber.MethodPost, "/api/vote/logout", "", nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

// Alur lengkap pemilih: login → lihat ballot → submit → sesi langsung mati.
func (s *VoteRoutesTestSuite) TestFullVotingFlow() {
	resp, token := s.login("2026001", "rahasia123")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Require().NotEmpty(token)

	// Ballot terbaca dengan sesi aktif
	resp, envelope := s.request(fiber.MethodGet, "/api/vote/ballot", token, nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var ballot struct {
		Positions []struct {
			PositionID string `json:"position_id"`
		} `json:"positions"`
	}
	s.Require().NoError(json.Unmarshal(envelope.Data, &ballot))
	s.Len(ballot.Positions, 2)

	// Submit: pilih Andi untuk Presiden BEM, abstain untuk Senator
	resp, envelope = s.request(fiber.MethodPost, "/api/vote/ballot/submit", token, fiber.Map{
		"votes": map[string][]string{
			s.presiden.PositionID.String(): {s.andi.CandidateID.String()},
			s.senator.PositionID.String():  {},
		},
	})
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var submit struct {
		ConfirmationRef string `json:"confirmation_ref"`
	}
	s.Require().NoError(json.Unmarshal(envelope.Data, &submit))
	s.NotEmpty(submit.ConfirmationRef)

	// Token yang sama tidak boleh dipakai lagi — forced logout saat submit
	resp, _ = s.request(fiber.MethodGet, "/api/vote/ballot", token, nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	// Login ulang ditolak: suara sudah tercatat
	resp, _ = s.login("2026001", "rahasia123")
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *VoteRoutesTestSuite) TestLogoutEndsSession() {
	resp, token := s.login("2026001", "rahasia123")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp, _ = s.request(fiber.MethodPost, "/api/vote/logout", token, nil)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp, _ = s.request(fiber.MethodGet, "/api/vote/ballot", token, nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVoteRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(VoteRoutesTestSuite))
}
