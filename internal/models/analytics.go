package models

import "time"

// Frequency buckets a pupil can sort an adjective into
const (
	BucketSelten   = "selten"
	BucketManchmal = "manchmal"
	BucketOft      = "oft"
)

// Buckets lists the valid bucket values in canonical order
var Buckets = []string{BucketSelten, BucketManchmal, BucketOft}

// IsValidBucket reports whether value is one of the three buckets.
// Callers are expected to normalize case first.
func IsValidBucket(value string) bool {
	for _, b := range Buckets {
		if value == b {
			return true
		}
	}
	return false
}

// AnalyticsSession represents one anonymous sorting run by a pupil
type AnalyticsSession struct {
	ID             string // UUID
	ListID         *int64 // Nullable: survives list deletion
	IsStandardList bool
	ThemeID        *int64
	StartedAt      time.Time
	FinishedAt     *time.Time
	PDFExportedAt  *time.Time
}

// IsFinished reports whether the session has been completed
func (s *AnalyticsSession) IsFinished() bool {
	return s.FinishedAt != nil
}

// Assignment records which bucket a pupil put an adjective into.
// At most one row exists per (session, adjective) pair.
type Assignment struct {
	ID          int64
	SessionID   string
	AdjectiveID int64
	Bucket      string
	AssignedAt  time.Time
}

// AssignmentWithWord extends Assignment with the adjective's word for
// reporting views
type AssignmentWithWord struct {
	Assignment
	Word string
}

// AdjectiveUsage counts how often an adjective was assigned across sessions
type AdjectiveUsage struct {
	AdjectiveID int64
	Word        string
	Count       int
}

// ThemeUsage counts how often a theme was chosen at session start
type ThemeUsage struct {
	ThemeID int64
	Count   int
}

// SessionOverview extends AnalyticsSession with reporting fields
type SessionOverview struct {
	AnalyticsSession
	ListName        *string
	AssignmentCount int
}
