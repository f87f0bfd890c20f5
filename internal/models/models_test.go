package models

import (
	"testing"
	"time"
)

func TestIsValidBucket(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"selten", true},
		{"manchmal", true},
		{"oft", true},
		{"nie", false},
		{"Oft", false}, // callers normalize case before validating
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsValidBucket(tt.value); got != tt.want {
				t.Errorf("IsValidBucket(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestListIsOwnedBy(t *testing.T) {
	ownerID := int64(7)
	owned := List{OwnerUserID: &ownerID}
	seeded := List{}

	if !owned.IsOwnedBy(7) {
		t.Error("IsOwnedBy(owner) = false, want true")
	}
	if owned.IsOwnedBy(8) {
		t.Error("IsOwnedBy(other) = true, want false")
	}
	if seeded.IsOwnedBy(7) {
		t.Error("IsOwnedBy() on a seeded list = true, want false")
	}
}

func TestSessionIsFinished(t *testing.T) {
	now := time.Now()
	if (&AnalyticsSession{}).IsFinished() {
		t.Error("IsFinished() without timestamp = true, want false")
	}
	if !(&AnalyticsSession{FinishedAt: &now}).IsFinished() {
		t.Error("IsFinished() with timestamp = false, want true")
	}
}

func TestUserIsActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusActive, true},
		{StatusPending, false},
		{StatusPassive, false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			u := User{Status: tt.status}
			if got := u.IsActive(); got != tt.want {
				t.Errorf("IsActive() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestAuthSessionIsExpired(t *testing.T) {
	past := AuthSession{ExpiresAt: time.Now().UTC().Add(-time.Minute)}
	future := AuthSession{ExpiresAt: time.Now().UTC().Add(time.Minute)}

	if !past.IsExpired() {
		t.Error("IsExpired() for a past expiry = false, want true")
	}
	if future.IsExpired() {
		t.Error("IsExpired() for a future expiry = true, want false")
	}
}
