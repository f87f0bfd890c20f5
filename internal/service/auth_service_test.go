package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/security"
)

func newAuthService(t *testing.T, env *testEnv, sessionDuration time.Duration) *AuthService {
	t.Helper()
	emailService, err := NewEmailService("", "", "", "")
	if err != nil {
		t.Fatalf("NewEmailService() error = %v", err)
	}
	return NewAuthService(env.userRepo, env.adminRepo, env.schoolRepo, env.sessionRepo, emailService, sessionDuration)
}

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)
	ctx := context.Background()

	// A new school name creates a pending school alongside the account
	user, err := auth.RegisterUser(ctx, "  Anna@Example.com ", "geheim123", nil, "Schule Aarau")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if user.Email != "anna@example.com" {
		t.Errorf("Email = %q, want normalized %q", user.Email, "anna@example.com")
	}
	if user.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", user.Status, models.StatusPending)
	}
	school, err := env.schoolRepo.GetSchoolByID(user.SchoolID)
	if err != nil {
		t.Fatalf("GetSchoolByID() error = %v", err)
	}
	if school == nil || school.Status != models.StatusPending {
		t.Errorf("school = %+v, want pending school", school)
	}

	// A second teacher naming the same school joins it instead of creating
	// a duplicate
	colleague, err := auth.RegisterUser(ctx, "ben@example.com", "geheim123", nil, "Schule Aarau")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if colleague.SchoolID != user.SchoolID {
		t.Errorf("SchoolID = %d, want %d", colleague.SchoolID, user.SchoolID)
	}

	schoolID := school.ID
	tests := []struct {
		name       string
		email      string
		password   string
		schoolID   *int64
		schoolName string
		wantErr    error
	}{
		{"duplicate email", "anna@example.com", "geheim123", &schoolID, "", ErrEmailTaken},
		{"short password", "cora@example.com", "kurz", &schoolID, "", ErrPasswordTooShort},
		{"unknown school id", "cora@example.com", "geheim123", ptr(int64(4711)), "", ErrSchoolNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.RegisterUser(ctx, tt.email, tt.password, tt.schoolID, tt.schoolName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RegisterUser() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)

	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	hash, err := security.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if _, err := env.userRepo.CreateUser("anna@example.com", hash, school.ID, models.StatusActive, ""); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if _, _, err := auth.LoginUser("anna@example.com", "falsch"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("LoginUser(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.LoginUser("nobody@example.com", "geheim123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("LoginUser(unknown email) error = %v, want ErrInvalidCredentials", err)
	}

	session, user, err := auth.LoginUser("  Anna@Example.com ", "geheim123")
	if err != nil {
		t.Fatalf("LoginUser() error = %v", err)
	}

	stored, err := env.userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if stored.LastLoginAt == nil {
		t.Error("LastLoginAt not set after login")
	}

	validated, err := auth.ValidateUserSession(session.Token)
	if err != nil {
		t.Fatalf("ValidateUserSession() error = %v", err)
	}
	if validated.Email != "anna@example.com" {
		t.Errorf("validated email = %q, want %q", validated.Email, "anna@example.com")
	}

	// A teacher session does not open the admin surface
	if _, err := auth.ValidateAdminSession(session.Token); !errors.Is(err, ErrLoginSessionNotFound) {
		t.Errorf("ValidateAdminSession(user token) error = %v, want ErrLoginSessionNotFound", err)
	}

	if err := auth.Logout(session.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := auth.ValidateUserSession(session.Token); !errors.Is(err, ErrLoginSessionNotFound) {
		t.Errorf("ValidateUserSession(after logout) error = %v, want ErrLoginSessionNotFound", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	env := newTestEnv(t)
	// Sessions born expired exercise the expiry path without sleeping
	auth := newAuthService(t, env, -time.Minute)

	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	hash, err := security.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if _, err := env.userRepo.CreateUser("anna@example.com", hash, school.ID, models.StatusActive, ""); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	session, _, err := auth.LoginUser("anna@example.com", "geheim123")
	if err != nil {
		t.Fatalf("LoginUser() error = %v", err)
	}

	if _, err := auth.ValidateUserSession(session.Token); !errors.Is(err, ErrLoginSessionExpired) {
		t.Errorf("ValidateUserSession(expired) error = %v, want ErrLoginSessionExpired", err)
	}

	// The expired session was removed, a retry no longer finds it
	if _, err := auth.ValidateUserSession(session.Token); !errors.Is(err, ErrLoginSessionNotFound) {
		t.Errorf("ValidateUserSession(removed) error = %v, want ErrLoginSessionNotFound", err)
	}
}

func TestSlidingSessionExtension(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)

	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	hash, err := security.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if _, err := env.userRepo.CreateUser("anna@example.com", hash, school.ID, models.StatusActive, ""); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	session, _, err := auth.LoginUser("anna@example.com", "geheim123")
	if err != nil {
		t.Fatalf("LoginUser() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := auth.ValidateUserSession(session.Token); err != nil {
		t.Fatalf("ValidateUserSession() error = %v", err)
	}

	extended, err := env.sessionRepo.GetSession(session.Token)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !extended.ExpiresAt.After(session.ExpiresAt) {
		t.Errorf("expiry not extended: %v <= %v", extended.ExpiresAt, session.ExpiresAt)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)

	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	hash, err := security.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user, err := env.userRepo.CreateUser("anna@example.com", hash, school.ID, models.StatusActive, "")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if err := auth.ChangePassword(user, "falsch", "nochgeheimer"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ChangePassword(wrong current) error = %v, want ErrInvalidCredentials", err)
	}
	if err := auth.ChangePassword(user, "geheim123", "kurz"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("ChangePassword(short new) error = %v, want ErrPasswordTooShort", err)
	}

	if err := auth.ChangePassword(user, "geheim123", "nochgeheimer"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if _, _, err := auth.LoginUser("anna@example.com", "geheim123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted after change")
	}
	if _, _, err := auth.LoginUser("anna@example.com", "nochgeheimer"); err != nil {
		t.Errorf("LoginUser(new password) error = %v", err)
	}
}

func TestLoginAdmin(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)

	hash, err := security.HashPassword("adminpass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if _, err := env.adminRepo.CreateAdmin("admin@admin.com", hash); err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}

	if _, _, err := auth.LoginAdmin("admin@admin.com", "falsch"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("LoginAdmin(wrong password) error = %v, want ErrInvalidCredentials", err)
	}

	session, admin, err := auth.LoginAdmin("admin@admin.com", "adminpass")
	if err != nil {
		t.Fatalf("LoginAdmin() error = %v", err)
	}
	if admin.Username != "admin@admin.com" {
		t.Errorf("Username = %q, want %q", admin.Username, "admin@admin.com")
	}

	validated, err := auth.ValidateAdminSession(session.Token)
	if err != nil {
		t.Fatalf("ValidateAdminSession() error = %v", err)
	}
	if validated.ID != admin.ID {
		t.Errorf("validated admin id = %d, want %d", validated.ID, admin.ID)
	}

	// An admin session does not open the teacher surface
	if _, err := auth.ValidateUserSession(session.Token); !errors.Is(err, ErrLoginSessionNotFound) {
		t.Errorf("ValidateUserSession(admin token) error = %v, want ErrLoginSessionNotFound", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env, time.Hour)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)
	if _, err := env.sessionRepo.CreateSession("old-token", 1, models.PrincipalUser, past); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := env.sessionRepo.CreateSession("fresh-token", 1, models.PrincipalUser, future); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if err := auth.CleanupExpiredSessions(); err != nil {
		t.Fatalf("CleanupExpiredSessions() error = %v", err)
	}

	old, err := env.sessionRepo.GetSession("old-token")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if old != nil {
		t.Error("expired session survived cleanup")
	}
	fresh, err := env.sessionRepo.GetSession("fresh-token")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if fresh == nil {
		t.Error("valid session removed by cleanup")
	}
}

func ptr[T any](v T) *T {
	return &v
}
