package models

import "time"

// Account status values shared by users and schools
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusPassive = "passive"
)

// User represents a teacher account
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	SchoolID     int64
	Status       string
	ActiveUntil  *time.Time
	Notes        string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// UserWithSchool extends User with the school name for admin views
type UserWithSchool struct {
	User
	SchoolName string
}

// IsActive reports whether the account has been approved and not deactivated.
// The activation deadline is informational and enforced by admin tooling.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
