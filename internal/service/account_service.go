package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

// Approved accounts stay active for one year before the admin has to renew
const activationPeriod = 365 * 24 * time.Hour

// AccountService handles the admin's management of teacher accounts and
// schools, plus the licensing rules derived from them
type AccountService struct {
	userRepo    *repository.UserRepository
	schoolRepo  *repository.SchoolRepository
	listRepo    *repository.ListRepository
	sessionRepo *repository.SessionRepository
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo *repository.UserRepository,
	schoolRepo *repository.SchoolRepository,
	listRepo *repository.ListRepository,
	sessionRepo *repository.SessionRepository,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		schoolRepo:  schoolRepo,
		listRepo:    listRepo,
		sessionRepo: sessionRepo,
	}
}

// GetPendingUsers lists teacher accounts waiting for approval
func (s *AccountService) GetPendingUsers() ([]models.UserWithSchool, error) {
	return s.userRepo.GetUsersByStatus(models.StatusPending)
}

// GetAllUsers lists all teacher accounts with their schools
func (s *AccountService) GetAllUsers() ([]models.UserWithSchool, error) {
	return s.userRepo.GetAllUsers()
}

// GetUser loads one teacher account
func (s *AccountService) GetUser(id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ApproveUser activates a pending account for one year. Approving also
// activates the user's school if it is still pending.
func (s *AccountService) ApproveUser(id int64) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	activeUntil := time.Now().UTC().Add(activationPeriod)
	if err := s.userRepo.UpdateUserStatus(id, models.StatusActive, &activeUntil); err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetSchoolByID(user.SchoolID)
	if err != nil {
		return nil, err
	}
	if school != nil && school.Status == models.StatusPending {
		if err := s.schoolRepo.UpdateSchoolStatus(school.ID, models.StatusActive); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetUserByID(id)
}

// RejectUser marks a pending account as passive
func (s *AccountService) RejectUser(id int64) (*models.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateUserStatus(id, models.StatusPassive, nil); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(id)
}

// CreateUser lets the admin create a teacher account directly
func (s *AccountService) CreateUser(email, password string, schoolID int64, status, notes string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	school, err := s.schoolRepo.GetSchoolByID(schoolID)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.CreateUser(email, passwordHash, schoolID, status, notes)
}

// UpdateUser changes a teacher's email, school and notes
func (s *AccountService) UpdateUser(id int64, email string, schoolID int64, notes string) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email != user.Email {
		existing, err := s.userRepo.GetUserByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
	}

	school, err := s.schoolRepo.GetSchoolByID(schoolID)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	if err := s.userRepo.UpdateUser(id, email, schoolID, notes); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(id)
}

// SetUserActivation sets a teacher's status and activation deadline
func (s *AccountService) SetUserActivation(id int64, status string, activeUntil *time.Time) (*models.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateUserStatus(id, status, activeUntil); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(id)
}

// ResetUserPassword sets a random temporary password and revokes the
// teacher's login sessions. The temporary password is returned once so the
// admin can pass it on.
func (s *AccountService) ResetUserPassword(id int64) (string, error) {
	if _, err := s.GetUser(id); err != nil {
		return "", err
	}

	tempPassword, err := security.GenerateToken(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	passwordHash, err := security.HashPassword(tempPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(id, passwordHash); err != nil {
		return "", err
	}
	if err := s.sessionRepo.DeleteSessionsForPrincipal(id, models.PrincipalUser); err != nil {
		return "", err
	}
	return tempPassword, nil
}

// DeleteUser removes a teacher account, their lists and their sessions
func (s *AccountService) DeleteUser(id int64) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteSessionsForPrincipal(id, models.PrincipalUser); err != nil {
		return err
	}
	return s.userRepo.DeleteUser(id)
}

// SchoolWithCounts extends School with its user numbers for admin views
type SchoolWithCounts struct {
	models.School
	UserCount       int
	ActiveUserCount int
}

// GetSchool loads one school
func (s *AccountService) GetSchool(id int64) (*models.School, error) {
	school, err := s.schoolRepo.GetSchoolByID(id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}
	return school, nil
}

// GetPendingSchools lists schools waiting for approval
func (s *AccountService) GetPendingSchools() ([]models.School, error) {
	return s.schoolRepo.GetSchoolsByStatus(models.StatusPending)
}

// GetAllSchools lists all schools with user counts
func (s *AccountService) GetAllSchools() ([]SchoolWithCounts, error) {
	schools, err := s.schoolRepo.GetAllSchools()
	if err != nil {
		return nil, err
	}

	result := make([]SchoolWithCounts, 0, len(schools))
	for _, school := range schools {
		users, err := s.schoolRepo.CountUsers(school.ID)
		if err != nil {
			return nil, err
		}
		active, err := s.schoolRepo.CountActiveUsers(school.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, SchoolWithCounts{School: school, UserCount: users, ActiveUserCount: active})
	}
	return result, nil
}

// CreateSchool creates a school with the given status
func (s *AccountService) CreateSchool(name, status string) (*models.School, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("school name must not be empty")
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	existing, err := s.schoolRepo.GetSchoolByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSchoolNameTaken
	}
	return s.schoolRepo.CreateSchool(name, status)
}

// UpdateSchool changes a school's name and status
func (s *AccountService) UpdateSchool(id int64, name, status string) (*models.School, error) {
	school, err := s.schoolRepo.GetSchoolByID(id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}

	name = strings.TrimSpace(name)
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if name != school.Name {
		existing, err := s.schoolRepo.GetSchoolByName(name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSchoolNameTaken
		}
	}

	if err := s.schoolRepo.UpdateSchool(id, name, status); err != nil {
		return nil, err
	}
	return s.schoolRepo.GetSchoolByID(id)
}

// ApproveSchool activates a pending school
func (s *AccountService) ApproveSchool(id int64) (*models.School, error) {
	return s.setSchoolStatus(id, models.StatusActive)
}

// RejectSchool marks a pending school as passive
func (s *AccountService) RejectSchool(id int64) (*models.School, error) {
	return s.setSchoolStatus(id, models.StatusPassive)
}

// DeleteSchool removes a school and, via cascade, its users and their lists
func (s *AccountService) DeleteSchool(id int64) error {
	school, err := s.schoolRepo.GetSchoolByID(id)
	if err != nil {
		return err
	}
	if school == nil {
		return ErrSchoolNotFound
	}
	return s.schoolRepo.DeleteSchool(id)
}

// IsSchoolLicensed reports whether a school holds an active license,
// meaning it has at least one active teacher
func (s *AccountService) IsSchoolLicensed(schoolID int64) (bool, error) {
	count, err := s.schoolRepo.CountActiveUsers(schoolID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CanExportPDF decides whether a teacher may export a list as PDF: the
// default list requires a licensed school, a custom list requires ownership
func (s *AccountService) CanExportPDF(userID, listID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	if user == nil || !user.IsActive() {
		return false, nil
	}

	list, err := s.listRepo.GetListByID(listID)
	if err != nil {
		return false, err
	}
	if list == nil {
		return false, nil
	}

	if list.IsDefault {
		return s.IsSchoolLicensed(user.SchoolID)
	}
	return list.IsOwnedBy(userID), nil
}

func (s *AccountService) setSchoolStatus(id int64, status string) (*models.School, error) {
	school, err := s.schoolRepo.GetSchoolByID(id)
	if err != nil {
		return nil, err
	}
	if school == nil {
		return nil, ErrSchoolNotFound
	}
	if err := s.schoolRepo.UpdateSchoolStatus(id, status); err != nil {
		return nil, err
	}
	return s.schoolRepo.GetSchoolByID(id)
}

func validateStatus(status string) error {
	switch status {
	case models.StatusPending, models.StatusActive, models.StatusPassive:
		return nil
	}
	return fmt.Errorf("invalid status: %s", status)
}
