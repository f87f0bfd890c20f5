package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

// AuthService handles registration, login and session validation for
// teachers and administrators. Login sessions live in the database with a
// sliding expiration: every successful validation pushes the expiry forward.
type AuthService struct {
	userRepo        *repository.UserRepository
	adminRepo       *repository.AdminRepository
	schoolRepo      *repository.SchoolRepository
	sessionRepo     *repository.SessionRepository
	emailService    *EmailService
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo *repository.UserRepository,
	adminRepo *repository.AdminRepository,
	schoolRepo *repository.SchoolRepository,
	sessionRepo *repository.SessionRepository,
	emailService *EmailService,
	sessionDuration time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		adminRepo:       adminRepo,
		schoolRepo:      schoolRepo,
		sessionRepo:     sessionRepo,
		emailService:    emailService,
		sessionDuration: sessionDuration,
	}
}

// RegisterUser creates a pending teacher account. The teacher either picks
// an existing school by id or names one; an unknown school name creates a
// pending school alongside the account.
func (s *AuthService) RegisterUser(ctx context.Context, email, password string, schoolID *int64, schoolName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if schoolID == nil && strings.TrimSpace(schoolName) == "" {
		return nil, fmt.Errorf("either school_id or school_name must be provided")
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	var school *models.School
	if schoolID != nil {
		school, err = s.schoolRepo.GetSchoolByID(*schoolID)
		if err != nil {
			return nil, err
		}
		if school == nil {
			return nil, ErrSchoolNotFound
		}
	} else {
		schoolName = strings.TrimSpace(schoolName)
		school, err = s.schoolRepo.GetSchoolByName(schoolName)
		if err != nil {
			return nil, err
		}
		if school == nil {
			school, err = s.schoolRepo.CreateSchool(schoolName, models.StatusPending)
			if err != nil {
				return nil, err
			}
		}
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(email, passwordHash, school.ID, models.StatusPending, "")
	if err != nil {
		return nil, err
	}

	// Notify the administrator; registration succeeds even if the email fails
	if err := s.emailService.SendRegistrationNotification(ctx, user.Email, school.Name); err != nil {
		log.Printf("Failed to send registration notification for %s: %v", user.Email, err)
	}

	return user, nil
}

// LoginUser authenticates a teacher and creates a login session
func (s *AuthService) LoginUser(email, password string) (*models.AuthSession, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user.ID, models.PrincipalUser)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// LoginAdmin authenticates an administrator and creates a login session
func (s *AuthService) LoginAdmin(username, password string) (*models.AuthSession, *models.Admin, error) {
	admin, err := s.adminRepo.GetAdminByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, nil, err
	}
	if admin == nil || !security.CheckPassword(password, admin.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(admin.ID, models.PrincipalAdmin)
	if err != nil {
		return nil, nil, err
	}

	if err := s.adminRepo.UpdateLastLogin(admin.ID, time.Now().UTC()); err != nil {
		return nil, nil, err
	}
	return session, admin, nil
}

// ValidateUserSession checks a session token and returns the teacher it
// belongs to, extending the session's expiry
func (s *AuthService) ValidateUserSession(token string) (*models.User, error) {
	session, err := s.validateSession(token, models.PrincipalUser)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(session.PrincipalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrLoginSessionNotFound
	}
	return user, nil
}

// ValidateAdminSession checks a session token and returns the administrator
// it belongs to, extending the session's expiry
func (s *AuthService) ValidateAdminSession(token string) (*models.Admin, error) {
	session, err := s.validateSession(token, models.PrincipalAdmin)
	if err != nil {
		return nil, err
	}
	admin, err := s.adminRepo.GetAdminByID(session.PrincipalID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrLoginSessionNotFound
	}
	return admin, nil
}

// ChangePassword updates a teacher's password after verifying the current one
func (s *AuthService) ChangePassword(user *models.User, currentPassword, newPassword string) error {
	if !security.CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(user.ID, passwordHash)
}

// Logout invalidates a login session
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.DeleteSession(token)
}

// CleanupExpiredSessions removes expired login sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	return s.sessionRepo.DeleteExpiredSessions(time.Now().UTC())
}

func (s *AuthService) createSession(principalID int64, principalType string) (*models.AuthSession, error) {
	token, err := security.GenerateToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	expiresAt := time.Now().UTC().Add(s.sessionDuration)
	return s.sessionRepo.CreateSession(token, principalID, principalType, expiresAt)
}

func (s *AuthService) validateSession(token, principalType string) (*models.AuthSession, error) {
	if token == "" {
		return nil, ErrLoginSessionNotFound
	}
	session, err := s.sessionRepo.GetSession(token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PrincipalType != principalType {
		return nil, ErrLoginSessionNotFound
	}
	if session.IsExpired() {
		_ = s.sessionRepo.DeleteSession(token)
		return nil, ErrLoginSessionExpired
	}

	// Sliding expiration
	if err := s.sessionRepo.ExtendSession(token, time.Now().UTC().Add(s.sessionDuration)); err != nil {
		return nil, err
	}
	return session, nil
}
