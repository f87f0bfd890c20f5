package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

// testEnv wires the repositories and services against a fresh SQLite database
type testEnv struct {
	db            *database.DB
	userRepo      *repository.UserRepository
	schoolRepo    *repository.SchoolRepository
	adminRepo     *repository.AdminRepository
	listRepo      *repository.ListRepository
	analyticsRepo *repository.AnalyticsRepository
	sessionRepo   *repository.SessionRepository

	analytics *AnalyticsService
	lists     *ListService
	accounts  *AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	env := &testEnv{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		schoolRepo:    repository.NewSchoolRepository(db),
		adminRepo:     repository.NewAdminRepository(db),
		listRepo:      repository.NewListRepository(db),
		analyticsRepo: repository.NewAnalyticsRepository(db),
		sessionRepo:   repository.NewSessionRepository(db),
	}
	env.analytics = NewAnalyticsService(db, env.listRepo, env.userRepo, env.schoolRepo, env.analyticsRepo)
	env.lists = NewListService(env.listRepo, env.userRepo)
	env.accounts = NewAccountService(env.userRepo, env.schoolRepo, env.listRepo, env.sessionRepo)
	return env
}

func (e *testEnv) createSchool(t *testing.T, name, status string) *models.School {
	t.Helper()
	school, err := e.schoolRepo.CreateSchool(name, status)
	if err != nil {
		t.Fatalf("Failed to create school %q: %v", name, err)
	}
	return school
}

// createUser stores an account with a placeholder password hash. Tests that
// log in must set a real hash themselves.
func (e *testEnv) createUser(t *testing.T, email string, schoolID int64, status string) *models.User {
	t.Helper()
	user, err := e.userRepo.CreateUser(email, "not-a-real-hash", schoolID, status, "")
	if err != nil {
		t.Fatalf("Failed to create user %q: %v", email, err)
	}
	return user
}

// createActiveUser creates an approved teacher at an active school
func (e *testEnv) createActiveUser(t *testing.T, email, schoolName string) *models.User {
	t.Helper()
	school := e.createSchool(t, schoolName, models.StatusActive)
	return e.createUser(t, email, school.ID, models.StatusActive)
}

func (e *testEnv) createDefaultList(t *testing.T) *models.List {
	t.Helper()
	slug := "standard"
	list, err := e.listRepo.CreateList(&models.List{
		Name:      "Standardliste",
		Slug:      &slug,
		IsDefault: true,
	})
	if err != nil {
		t.Fatalf("Failed to create default list: %v", err)
	}
	return list
}

// createSharedList creates a teacher-owned list with sharing enabled and a
// share link valid for a year
func (e *testEnv) createSharedList(t *testing.T, ownerID int64, name string) *models.List {
	t.Helper()
	token, err := security.GenerateToken(32)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	expiresAt := time.Now().UTC().Add(365 * 24 * time.Hour)
	list, err := e.listRepo.CreateList(&models.List{
		Name:           name,
		OwnerUserID:    &ownerID,
		ShareToken:     &token,
		ShareExpiresAt: &expiresAt,
		ShareEnabled:   true,
	})
	if err != nil {
		t.Fatalf("Failed to create list %q: %v", name, err)
	}
	return list
}

func (e *testEnv) createAdjective(t *testing.T, listID int64, word string, orderIndex int64, active bool) *models.Adjective {
	t.Helper()
	adjective, err := e.listRepo.CreateAdjective(&models.Adjective{
		ListID:     listID,
		Word:       word,
		OrderIndex: orderIndex,
		Active:     active,
	})
	if err != nil {
		t.Fatalf("Failed to create adjective %q: %v", word, err)
	}
	return adjective
}
