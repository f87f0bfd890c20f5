package models

import "time"

// List represents an adjective list: the default list, a premium list or a
// teacher-owned custom list
type List struct {
	ID              int64
	Name            string
	Slug            *string // Nullable, set for seeded lists only
	Description     string
	IsDefault       bool
	IsPremium       bool
	OwnerUserID     *int64 // Nullable for seeded lists
	ShareToken      *string
	ShareExpiresAt  *time.Time
	ShareEnabled    bool
	ShareWithSchool bool
	SourceListID    *int64 // Set when the list was copied from another list
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether the list belongs to the given user
func (l *List) IsOwnedBy(userID int64) bool {
	return l.OwnerUserID != nil && *l.OwnerUserID == userID
}

// Adjective represents a single word in a list
type Adjective struct {
	ID          int64
	ListID      int64
	Word        string
	Explanation string
	Example     string
	OrderIndex  int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListSummary extends List with information shown in the teacher's overview
type ListSummary struct {
	List
	AdjectiveCount int
	OwnerEmail     string
}
