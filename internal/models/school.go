package models

import "time"

// School groups teacher accounts for licensing and list sharing
type School struct {
	ID        int64
	Name      string
	Status    string
	CreatedAt time.Time
}

// IsActive reports whether the school has been approved
func (s *School) IsActive() bool {
	return s.Status == StatusActive
}
