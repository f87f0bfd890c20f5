package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/security"
)

func TestApproveUserActivatesSchool(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusPending)
	user := env.createUser(t, "anna@example.com", school.ID, models.StatusPending)

	approved, err := env.accounts.ApproveUser(user.ID)
	if err != nil {
		t.Fatalf("ApproveUser() error = %v", err)
	}
	if approved.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", approved.Status, models.StatusActive)
	}
	if approved.ActiveUntil == nil || !approved.ActiveUntil.After(time.Now().UTC().Add(300*24*time.Hour)) {
		t.Errorf("ActiveUntil = %v, want roughly a year out", approved.ActiveUntil)
	}

	// Approving the first teacher also activates the pending school
	updatedSchool, err := env.schoolRepo.GetSchoolByID(school.ID)
	if err != nil {
		t.Fatalf("GetSchoolByID() error = %v", err)
	}
	if updatedSchool.Status != models.StatusActive {
		t.Errorf("school status = %q, want %q", updatedSchool.Status, models.StatusActive)
	}

	if _, err := env.accounts.ApproveUser(4711); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ApproveUser(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestRejectUser(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusPending)
	user := env.createUser(t, "anna@example.com", school.ID, models.StatusPending)

	rejected, err := env.accounts.RejectUser(user.ID)
	if err != nil {
		t.Fatalf("RejectUser() error = %v", err)
	}
	if rejected.Status != models.StatusPassive {
		t.Errorf("Status = %q, want %q", rejected.Status, models.StatusPassive)
	}

	// Rejecting a teacher leaves the school untouched
	updatedSchool, err := env.schoolRepo.GetSchoolByID(school.ID)
	if err != nil {
		t.Fatalf("GetSchoolByID() error = %v", err)
	}
	if updatedSchool.Status != models.StatusPending {
		t.Errorf("school status = %q, want %q", updatedSchool.Status, models.StatusPending)
	}
}

func TestAdminCreateUser(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	env.createUser(t, "anna@example.com", school.ID, models.StatusActive)

	tests := []struct {
		name     string
		email    string
		schoolID int64
		status   string
		wantErr  error
	}{
		{"duplicate email", "anna@example.com", school.ID, models.StatusActive, ErrEmailTaken},
		{"unknown school", "ben@example.com", 4711, models.StatusActive, ErrSchoolNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.CreateUser(tt.email, "geheim123", tt.schoolID, tt.status, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateUser() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := env.accounts.CreateUser("ben@example.com", "geheim123", school.ID, "frozen", ""); err == nil {
		t.Error("CreateUser(invalid status) error = nil, want error")
	}
	if _, err := env.accounts.CreateUser("keine-mail", "geheim123", school.ID, models.StatusActive, ""); err == nil {
		t.Error("CreateUser(invalid email) error = nil, want error")
	}

	user, err := env.accounts.CreateUser(" Ben@Example.com ", "geheim123", school.ID, models.StatusActive, "Direkt erfasst")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.Email != "ben@example.com" {
		t.Errorf("Email = %q, want normalized %q", user.Email, "ben@example.com")
	}
	if user.Notes != "Direkt erfasst" {
		t.Errorf("Notes = %q, want %q", user.Notes, "Direkt erfasst")
	}
	if !security.CheckPassword("geheim123", user.PasswordHash) {
		t.Error("stored password hash does not match the given password")
	}
}

func TestResetUserPassword(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	hash, err := security.HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user, err := env.userRepo.CreateUser("anna@example.com", hash, school.ID, models.StatusActive, "")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, err := env.sessionRepo.CreateSession("anna-token", user.ID, models.PrincipalUser, time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	tempPassword, err := env.accounts.ResetUserPassword(user.ID)
	if err != nil {
		t.Fatalf("ResetUserPassword() error = %v", err)
	}
	if len(tempPassword) != 16 {
		t.Errorf("len(tempPassword) = %d, want 16", len(tempPassword))
	}

	updated, err := env.userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if security.CheckPassword("geheim123", updated.PasswordHash) {
		t.Error("old password still valid after reset")
	}
	if !security.CheckPassword(tempPassword, updated.PasswordHash) {
		t.Error("temporary password does not match the stored hash")
	}

	// The reset also revokes existing login sessions
	session, err := env.sessionRepo.GetSession("anna-token")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session != nil {
		t.Error("login session survived the password reset")
	}
}

func TestSchoolManagement(t *testing.T) {
	env := newTestEnv(t)

	school, err := env.accounts.CreateSchool("  Schule Aarau ", models.StatusActive)
	if err != nil {
		t.Fatalf("CreateSchool() error = %v", err)
	}
	if school.Name != "Schule Aarau" {
		t.Errorf("Name = %q, want trimmed %q", school.Name, "Schule Aarau")
	}

	if _, err := env.accounts.CreateSchool("Schule Aarau", models.StatusActive); !errors.Is(err, ErrSchoolNameTaken) {
		t.Errorf("CreateSchool(duplicate) error = %v, want ErrSchoolNameTaken", err)
	}
	if _, err := env.accounts.CreateSchool("", models.StatusActive); err == nil {
		t.Error("CreateSchool(empty name) error = nil, want error")
	}

	updated, err := env.accounts.UpdateSchool(school.ID, "Schule Baden", models.StatusPassive)
	if err != nil {
		t.Fatalf("UpdateSchool() error = %v", err)
	}
	if updated.Name != "Schule Baden" || updated.Status != models.StatusPassive {
		t.Errorf("updated = %q/%q, want Schule Baden/passive", updated.Name, updated.Status)
	}

	approved, err := env.accounts.ApproveSchool(school.ID)
	if err != nil {
		t.Fatalf("ApproveSchool() error = %v", err)
	}
	if approved.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", approved.Status, models.StatusActive)
	}

	if err := env.accounts.DeleteSchool(school.ID); err != nil {
		t.Fatalf("DeleteSchool() error = %v", err)
	}
	if _, err := env.accounts.GetSchool(school.ID); !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("GetSchool(deleted) error = %v, want ErrSchoolNotFound", err)
	}
}

func TestGetAllSchoolsCounts(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	env.createUser(t, "anna@example.com", school.ID, models.StatusActive)
	env.createUser(t, "ben@example.com", school.ID, models.StatusPending)

	schools, err := env.accounts.GetAllSchools()
	if err != nil {
		t.Fatalf("GetAllSchools() error = %v", err)
	}
	if len(schools) != 1 {
		t.Fatalf("len(schools) = %d, want 1", len(schools))
	}
	if schools[0].UserCount != 2 {
		t.Errorf("UserCount = %d, want 2", schools[0].UserCount)
	}
	if schools[0].ActiveUserCount != 1 {
		t.Errorf("ActiveUserCount = %d, want 1", schools[0].ActiveUserCount)
	}
}

func TestIsSchoolLicensed(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusActive)

	licensed, err := env.accounts.IsSchoolLicensed(school.ID)
	if err != nil {
		t.Fatalf("IsSchoolLicensed() error = %v", err)
	}
	if licensed {
		t.Error("school without active teachers counts as licensed")
	}

	env.createUser(t, "anna@example.com", school.ID, models.StatusActive)
	licensed, err = env.accounts.IsSchoolLicensed(school.ID)
	if err != nil {
		t.Fatalf("IsSchoolLicensed() error = %v", err)
	}
	if !licensed {
		t.Error("school with an active teacher does not count as licensed")
	}
}

func TestCanExportPDF(t *testing.T) {
	env := newTestEnv(t)
	defaultList := env.createDefaultList(t)

	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	active := env.createUser(t, "anna@example.com", school.ID, models.StatusActive)
	passive := env.createUser(t, "ben@example.com", school.ID, models.StatusPassive)
	colleague := env.createUser(t, "cora@example.com", school.ID, models.StatusActive)
	ownList := env.createSharedList(t, active.ID, "Klasse 5a")

	tests := []struct {
		name   string
		userID int64
		listID int64
		want   bool
	}{
		{"active owner, own list", active.ID, ownList.ID, true},
		{"active teacher, default list at licensed school", active.ID, defaultList.ID, true},
		{"passive teacher", passive.ID, ownList.ID, false},
		{"passive teacher, default list", passive.ID, defaultList.ID, false},
		{"active teacher, foreign custom list", colleague.ID, ownList.ID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.accounts.CanExportPDF(tt.userID, tt.listID)
			if err != nil {
				t.Fatalf("CanExportPDF() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanExportPDF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	school := env.createSchool(t, "Schule Aarau", models.StatusActive)
	user := env.createUser(t, "anna@example.com", school.ID, models.StatusActive)
	list := env.createSharedList(t, user.ID, "Klasse 5a")
	if _, err := env.sessionRepo.CreateSession("anna-token", user.ID, models.PrincipalUser, time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if err := env.accounts.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if _, err := env.accounts.GetUser(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser(deleted) error = %v, want ErrUserNotFound", err)
	}
	gone, err := env.listRepo.GetListByID(list.ID)
	if err != nil {
		t.Fatalf("GetListByID() error = %v", err)
	}
	if gone != nil {
		t.Error("owned list survived the account deletion")
	}
	session, err := env.sessionRepo.GetSession("anna-token")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session != nil {
		t.Error("login session survived the account deletion")
	}
}
