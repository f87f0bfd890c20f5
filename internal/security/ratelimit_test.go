package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Error("first request denied")
	}
	if !rl.Allow("1.2.3.4") {
		t.Error("second request denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Error("third request allowed, want denied")
	}

	// Other clients have their own bucket
	if !rl.Allow("5.6.7.8") {
		t.Error("request from a different ip denied")
	}

	// After the window the bucket refills
	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("1.2.3.4") {
		t.Error("request after refill denied")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for wins", "10.0.0.1", "10.0.0.2", "10.0.0.3:1234", "10.0.0.1"},
		{"x-real-ip second", "", "10.0.0.2", "10.0.0.3:1234", "10.0.0.2"},
		{"remote addr fallback", "", "", "10.0.0.3:1234", "10.0.0.3:1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
