package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zumgugger/vielseitig/internal/service"
)

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"list not found", service.ErrListNotFound, http.StatusNotFound},
		{"session not found", service.ErrSessionNotFound, http.StatusNotFound},
		{"share link not found", service.ErrShareLinkNotFound, http.StatusNotFound},
		{"list not shared", service.ErrListNotShared, http.StatusForbidden},
		{"share expired", service.ErrShareExpired, http.StatusForbidden},
		{"owner not active", service.ErrOwnerNotActive, http.StatusForbidden},
		{"school not active", service.ErrSchoolNotActive, http.StatusForbidden},
		{"not list owner", service.ErrNotListOwner, http.StatusForbidden},
		{"invalid bucket", service.ErrInvalidBucket, http.StatusBadRequest},
		{"sharing disabled", service.ErrSharingDisabled, http.StatusBadRequest},
		{"password too short", service.ErrPasswordTooShort, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"school name taken", service.ErrSchoolNameTaken, http.StatusConflict},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondWithServiceError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			detail, ok := body["detail"]
			if !ok || detail == "" {
				t.Errorf("body = %v, want a detail field", body)
			}
			// Internal errors never leak their message to the client
			if tt.wantStatus == http.StatusInternalServerError && detail != "internal server error" {
				t.Errorf("detail = %q, want generic message", detail)
			}
		})
	}
}

func TestRespondWithMessage(t *testing.T) {
	w := httptest.NewRecorder()
	respondWithMessage(w, http.StatusOK, "Session finished")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "Session finished" {
		t.Errorf("message = %q, want %q", body["message"], "Session finished")
	}
}
