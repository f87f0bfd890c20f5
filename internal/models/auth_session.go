package models

import "time"

// Principal types for login sessions
const (
	PrincipalAdmin = "admin"
	PrincipalUser  = "user"
)

// AuthSession represents an authenticated login session stored in the
// database, shared by admin and teacher logins
type AuthSession struct {
	Token         string
	PrincipalID   int64
	PrincipalType string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// IsExpired checks if the session has expired
func (s *AuthSession) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
