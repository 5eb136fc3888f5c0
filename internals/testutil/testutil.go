package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	electionModel "kampusku_backend/internals/features/elections/election/model"
	voterModel "kampusku_backend/internals/features/elections/voter/model"
)

// OpenTestDB membuka database sqlite file-based (busy_timeout tinggi supaya
// test konkuren tidak gagal karena lock) dan membuat skema lengkap.
// Skema ditulis manual karena default gen_random_uuid() di model hanya
// berlaku untuk PostgreSQL; id diisi via hook BeforeCreate.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := t.TempDir() + "/test.db?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("Gagal membuka test database: %v", err)
	}

	stmts := []string{
		`CREATE TABLE elections (
			election_id TEXT PRIMARY KEY,
			election_name TEXT NOT NULL,
			election_code TEXT NOT NULL UNIQUE,
			election_enabled NUMERIC NOT NULL DEFAULT 1,
			election_end_time DATETIME,
			election_created_at DATETIME,
			election_updated_at DATETIME
		)`,
		`CREATE TABLE election_positions (
			position_id TEXT PRIMARY KEY,
			position_election_id TEXT NOT NULL,
			position_description TEXT NOT NULL,
			position_max_vote INTEGER NOT NULL DEFAULT 1,
			position_priority INTEGER NOT NULL DEFAULT 0,
			position_created_at DATETIME,
			position_updated_at DATETIME
		)`,
		`CREATE TABLE election_candidates (
			candidate_id TEXT PRIMARY KEY,
			candidate_election_id TEXT NOT NULL,
			candidate_position_id TEXT NOT NULL,
			candidate_partylist_id TEXT,
			candidate_first_name TEXT NOT NULL,
			candidate_last_name TEXT NOT NULL DEFAULT '',
			candidate_photo_url TEXT,
			candidate_platform TEXT,
			candidate_created_at DATETIME,
			candidate_updated_at DATETIME
		)`,
		`CREATE TABLE election_partylists (
			partylist_id TEXT PRIMARY KEY,
			partylist_election_id TEXT NOT NULL,
			partylist_name TEXT NOT NULL,
			partylist_description TEXT,
			partylist_created_at DATETIME,
			partylist_updated_at DATETIME
		)`,
		`CREATE TABLE election_voters (
			voter_id TEXT PRIMARY KEY,
			voter_election_id TEXT NOT NULL,
			voter_school_id TEXT NOT NULL,
			voter_full_name TEXT NOT NULL,
			voter_password TEXT NOT NULL,
			voter_has_voted NUMERIC NOT NULL DEFAULT 0,
			voter_created_at DATETIME,
			voter_updated_at DATETIME,
			UNIQUE (voter_election_id, voter_school_id)
		)`,
		`CREATE TABLE election_votes (
			vote_id TEXT PRIMARY KEY,
			vote_election_id TEXT NOT NULL,
			vote_voter_id TEXT NOT NULL,
			vote_position_id TEXT NOT NULL,
			vote_candidate_id TEXT NOT NULL,
			vote_created_at DATETIME
		)`,
		`CREATE INDEX idx_votes_position_candidate ON election_votes(vote_position_id, vote_candidate_id)`,
		`CREATE TABLE voter_token_blacklist (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			token TEXT NOT NULL UNIQUE,
			expired_at DATETIME,
			created_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE voter_activity_logs (
			activity_id TEXT PRIMARY KEY,
			activity_voter_id TEXT NOT NULL,
			activity_election_id TEXT NOT NULL,
			activity_action TEXT NOT NULL,
			activity_metadata TEXT,
			activity_ip_address TEXT,
			activity_user_agent TEXT,
			activity_created_at DATETIME
		)`,
		`CREATE TABLE voter_feedbacks (
			feedback_id TEXT PRIMARY KEY,
			feedback_voter_id TEXT NOT NULL,
			feedback_election_id TEXT NOT NULL,
			feedback_rating INTEGER NOT NULL,
			feedback_comment TEXT,
			feedback_ui_experience TEXT,
			feedback_found_issue NUMERIC NOT NULL DEFAULT 0,
			feedback_created_at DATETIME,
			UNIQUE (feedback_voter_id, feedback_election_id)
		)`,
		`CREATE TABLE announcements (
			announcement_id TEXT PRIMARY KEY,
			announcement_title TEXT NOT NULL,
			announcement_slug TEXT NOT NULL UNIQUE,
			announcement_body TEXT NOT NULL,
			announcement_is_published NUMERIC NOT NULL DEFAULT 0,
			announcement_election_id TEXT,
			announcement_created_by TEXT,
			announcement_created_at DATETIME,
			announcement_updated_at DATETIME
		)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("Gagal membuat skema test: %v", err)
		}
	}

	return db
}

// CreateTestElection — pemilihan aktif tanpa batas waktu.
func CreateTestElection(t *testing.T, db *gorm.DB, code string) *electionModel.ElectionModel {
	t.Helper()

	election := &electionModel.ElectionModel{
		ElectionName:    "Pemilihan " + code,
		ElectionCode:    code,
		ElectionEnabled: true,
	}
	if err := db.Create(election).Error; err != nil {
		t.Fatalf("Gagal membuat election: %v", err)
	}
	return election
}

func AddTestPosition(t *testing.T, db *gorm.DB, electionID uuid.UUID, description string, maxVote, priority int) *electionModel.PositionModel {
	t.Helper()

	position := &electionModel.PositionModel{
		PositionElectionID:  electionID,
		PositionDescription: description,
		PositionMaxVote:     maxVote,
		PositionPriority:    priority,
	}
	if err := db.Create(position).Error; err != nil {
		t.Fatalf("Gagal membuat position: %v", err)
	}
	return position
}

func AddTestCandidate(t *testing.T, db *gorm.DB, electionID, positionID uuid.UUID, firstName string) *electionModel.CandidateModel {
	t.Helper()

	candidate := &electionModel.CandidateModel{
		CandidateElectionID: electionID,
		CandidatePositionID: positionID,
		CandidateFirstName:  firstName,
	}
	if err := db.Create(candidate).Error; err != nil {
		t.Fatalf("Gagal membuat candidate: %v", err)
	}
	// created_at urut — dipakai sebagai urutan katalog kandidat
	time.Sleep(2 * time.Millisecond)
	return candidate
}

// CreateTestVoter — entri DPT dengan kredensial plaintext yang diberikan
// (bcrypt MinCost supaya test cepat).
func CreateTestVoter(t *testing.T, db *gorm.DB, electionID uuid.UUID, schoolID, credential string) *voterModel.VoterModel {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Gagal hash kredensial: %v", err)
	}

	voter := &voterModel.VoterModel{
		VoterElectionID: electionID,
		VoterSchoolID:   schoolID,
		VoterFullName:   "Voter " + schoolID,
		VoterPassword:   string(hash),
	}
	if err := db.Create(voter).Error; err != nil {
		t.Fatalf("Gagal membuat voter: %v", err)
	}
	return voter
}
