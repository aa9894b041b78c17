// Package identity supplies caller identities for audit attribution.
// Credentials are stored as bcrypt hashes; sessions are opaque tokens
// held in memory and lost on restart.
package identity

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

// ErrInvalidCredentials is returned when a login fails. Callers get no
// hint whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service manages users and live sessions.
type Service struct {
	db    *sqlite.DB
	trail audit.Trail

	mu       sync.Mutex
	sessions map[string]string // token -> username
}

// NewService creates a Service on top of db.
func NewService(db *sqlite.DB, trail audit.Trail) *Service {
	return &Service{db: db, trail: trail, sessions: make(map[string]string)}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.ValidationError{Reason: "missing username or password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	// The uniqueness check runs inside the write transaction so a
	// concurrent registration of the same name fails validation instead
	// of tripping the UNIQUE constraint.
	err = s.db.WriteTx(func(tx *sql.Tx) error {
		var exists int64
		if err := tx.QueryRow(
			`SELECT COUNT(*) FROM users WHERE username = ?`, username,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking username: %w", err)
		}
		if exists > 0 {
			return model.ValidationError{Reason: "username already exists"}
		}
		if _, err := tx.Exec(
			`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
			username, string(hash),
		); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.trail.Record("Registration", fmt.Sprintf("User '%s' registered.", username))
	return nil
}

// Login verifies credentials and returns a new session token.
func (s *Service) Login(username, password string) (string, error) {
	var hash string
	err := s.db.SQL().QueryRow(
		`SELECT password_hash FROM users WHERE username = ?`, username,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()

	s.trail.Record("Login", fmt.Sprintf("User '%s' logged in.", username))
	return token, nil
}

// Lookup resolves a session token to its username.
func (s *Service) Lookup(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.sessions[token]
	return username, ok
}

// Logout invalidates a session token.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
