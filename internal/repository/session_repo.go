package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// SessionRepository handles database operations for login sessions
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession stores a new login session
func (r *SessionRepository) CreateSession(token string, principalID int64, principalType string, expiresAt time.Time) (*models.AuthSession, error) {
	query := "INSERT INTO auth_sessions (token, principal_id, principal_type, expires_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.Exec(query, token, principalID, principalType, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return r.GetSession(token)
}

// GetSession retrieves a login session by token
func (r *SessionRepository) GetSession(token string) (*models.AuthSession, error) {
	query := "SELECT token, principal_id, principal_type, created_at, expires_at FROM auth_sessions WHERE token = ?"
	s := &models.AuthSession{}
	err := r.db.QueryRow(query, token).Scan(&s.Token, &s.PrincipalID, &s.PrincipalType, &s.CreatedAt, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// ExtendSession pushes a session's expiry forward (sliding expiration)
func (r *SessionRepository) ExtendSession(token string, expiresAt time.Time) error {
	query := "UPDATE auth_sessions SET expires_at = ? WHERE token = ?"
	if _, err := r.db.Exec(query, expiresAt, token); err != nil {
		return fmt.Errorf("failed to extend session: %w", err)
	}
	return nil
}

// DeleteSession removes a login session
func (r *SessionRepository) DeleteSession(token string) error {
	if _, err := r.db.Exec("DELETE FROM auth_sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteSessionsForPrincipal removes all sessions of one account
func (r *SessionRepository) DeleteSessionsForPrincipal(principalID int64, principalType string) error {
	query := "DELETE FROM auth_sessions WHERE principal_id = ? AND principal_type = ?"
	if _, err := r.db.Exec(query, principalID, principalType); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions past their expiry
func (r *SessionRepository) DeleteExpiredSessions(now time.Time) error {
	if _, err := r.db.Exec("DELETE FROM auth_sessions WHERE expires_at < ?", now); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
