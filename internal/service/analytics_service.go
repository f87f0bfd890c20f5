package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/repository"
	"github.com/Zumgugger/vielseitig/internal/security"
)

// AnalyticsService handles sorting sessions, bucket assignments and the
// public visibility rules for adjective lists
type AnalyticsService struct {
	db            *database.DB
	listRepo      *repository.ListRepository
	userRepo      *repository.UserRepository
	schoolRepo    *repository.SchoolRepository
	analyticsRepo *repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	db *database.DB,
	listRepo *repository.ListRepository,
	userRepo *repository.UserRepository,
	schoolRepo *repository.SchoolRepository,
	analyticsRepo *repository.AnalyticsRepository,
) *AnalyticsService {
	return &AnalyticsService{
		db:            db,
		listRepo:      listRepo,
		userRepo:      userRepo,
		schoolRepo:    schoolRepo,
		analyticsRepo: analyticsRepo,
	}
}

// repos is a transaction-scoped view over the repositories the visibility
// checks read from
type accessRepos struct {
	lists   *repository.ListRepository
	users   *repository.UserRepository
	schools *repository.SchoolRepository
}

func (s *AnalyticsService) repos() accessRepos {
	return accessRepos{lists: s.listRepo, users: s.userRepo, schools: s.schoolRepo}
}

func (s *AnalyticsService) txRepos(tx *database.Tx) accessRepos {
	return accessRepos{
		lists:   s.listRepo.WithTx(tx),
		users:   s.userRepo.WithTx(tx),
		schools: s.schoolRepo.WithTx(tx),
	}
}

// resolveAccessibleList resolves an optional list reference to a list pupils
// may access. A nil listID means the default list.
func resolveAccessibleList(r accessRepos, listID *int64) (*models.List, error) {
	var list *models.List
	var err error

	if listID == nil {
		list, err = r.lists.GetDefaultList()
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, ErrDefaultListMissing
		}
	} else {
		list, err = r.lists.GetListByID(*listID)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return nil, ErrListNotFound
		}
	}

	if err := checkListVisibility(r, list); err != nil {
		return nil, err
	}
	return list, nil
}

// checkListVisibility applies the shared visibility predicate to a loaded
// list. The default list is always visible; other lists must be shared, not
// expired, and backed by an active owner at an active school. Seeded premium
// lists have no owner and skip the owner checks. The checks fail fast in
// this order so the caller always sees the first applicable reason.
func checkListVisibility(r accessRepos, list *models.List) error {
	if list.IsDefault {
		return nil
	}

	if !list.ShareEnabled {
		return ErrListNotShared
	}

	if list.ShareExpiresAt != nil && time.Now().UTC().After(*list.ShareExpiresAt) {
		return ErrShareExpired
	}

	if list.OwnerUserID != nil {
		owner, err := r.users.GetUserByID(*list.OwnerUserID)
		if err != nil {
			return err
		}
		if owner == nil || !owner.IsActive() {
			return ErrOwnerNotActive
		}

		school, err := r.schools.GetSchoolByID(owner.SchoolID)
		if err != nil {
			return err
		}
		if school == nil || !school.IsActive() {
			return ErrSchoolNotActive
		}
	}

	return nil
}

// GetAccessibleList runs the visibility checks for an optional list
// reference without starting a session
func (s *AnalyticsService) GetAccessibleList(listID *int64) (*models.List, error) {
	return resolveAccessibleList(s.repos(), listID)
}

// GetListAdjectives loads a list pupils may access together with its active
// adjectives in display order. A nil listID means the default list.
func (s *AnalyticsService) GetListAdjectives(listID *int64) (*models.List, []models.Adjective, error) {
	list, err := resolveAccessibleList(s.repos(), listID)
	if err != nil {
		return nil, nil, err
	}
	adjectives, err := s.listRepo.GetAdjectives(list.ID, true)
	if err != nil {
		return nil, nil, err
	}
	return list, adjectives, nil
}

// ResolveShareToken looks up a list by share token and applies the same
// visibility predicate used when starting a session
func (s *AnalyticsService) ResolveShareToken(token string) (*models.List, error) {
	list, err := s.listRepo.GetListByShareToken(token)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, ErrShareLinkNotFound
	}
	if err := checkListVisibility(s.repos(), list); err != nil {
		return nil, err
	}
	return list, nil
}

// StartSession checks list visibility and creates a new sorting session.
// The checks and the insert share one transaction so a concurrent share
// revocation cannot slip between them.
func (s *AnalyticsService) StartSession(listID *int64, themeID *int64) (*models.AnalyticsSession, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	list, err := resolveAccessibleList(s.txRepos(tx), listID)
	if err != nil {
		return nil, err
	}

	session := &models.AnalyticsSession{
		ID:             security.GenerateSessionID(),
		ListID:         &list.ID,
		IsStandardList: list.IsDefault,
		ThemeID:        themeID,
		StartedAt:      time.Now().UTC(),
	}
	if err := s.analyticsRepo.WithTx(tx).CreateSession(session); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session: %w", err)
	}
	return session, nil
}

// FinishSession marks a session as finished. Finishing twice keeps the
// first finish timestamp.
func (s *AnalyticsService) FinishSession(sessionID string) (*models.AnalyticsSession, error) {
	session, err := s.analyticsRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.FinishedAt == nil {
		if err := s.analyticsRepo.FinishSession(sessionID, time.Now().UTC()); err != nil {
			return nil, err
		}
		session, err = s.analyticsRepo.GetSession(sessionID)
		if err != nil {
			return nil, err
		}
	}
	return session, nil
}

// MarkPDFExport records that a PDF export happened for the session. Each
// export overwrites the previous timestamp.
func (s *AnalyticsService) MarkPDFExport(sessionID string) (*models.AnalyticsSession, error) {
	session, err := s.analyticsRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if err := s.analyticsRepo.MarkPDFExported(sessionID, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.analyticsRepo.GetSession(sessionID)
}

// RecordAssignment stores the bucket a pupil chose for an adjective.
// A repeated choice for the same adjective within the session replaces the
// earlier one, so each (session, adjective) pair has exactly one row.
func (s *AnalyticsService) RecordAssignment(sessionID string, adjectiveID int64, bucket string) (*models.Assignment, error) {
	normalized := strings.ToLower(strings.TrimSpace(bucket))
	if !models.IsValidBucket(normalized) {
		return nil, ErrInvalidBucket
	}

	session, err := s.analyticsRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.ListID == nil {
		return nil, ErrSessionHasNoList
	}

	adjective, err := s.listRepo.GetAdjectiveByID(adjectiveID)
	if err != nil {
		return nil, err
	}
	if adjective == nil || adjective.ListID != *session.ListID {
		return nil, ErrAdjectiveNotFound
	}

	return s.analyticsRepo.UpsertAssignment(sessionID, adjectiveID, normalized, time.Now().UTC())
}

// Summary aggregates usage numbers for the admin dashboard
type Summary struct {
	TotalSessions          int
	FinishedSessions       int
	PDFExports             int
	TotalAssignments       int
	AverageDurationSeconds float64
	TopAdjectives          []models.AdjectiveUsage
	Themes                 []models.ThemeUsage
}

// GetSummary computes the admin analytics summary
func (s *AnalyticsService) GetSummary() (*Summary, error) {
	total, finished, exported, err := s.analyticsRepo.CountSessions()
	if err != nil {
		return nil, err
	}

	durations, err := s.analyticsRepo.GetFinishedDurations()
	if err != nil {
		return nil, err
	}
	var avgSeconds float64
	if len(durations) > 0 {
		var sum time.Duration
		for _, d := range durations {
			sum += d
		}
		avgSeconds = sum.Seconds() / float64(len(durations))
	}

	top, err := s.analyticsRepo.GetTopAdjectives(10)
	if err != nil {
		return nil, err
	}

	themes, err := s.analyticsRepo.GetThemeDistribution()
	if err != nil {
		return nil, err
	}

	assignments, err := s.analyticsRepo.CountAllAssignments()
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalSessions:          total,
		FinishedSessions:       finished,
		PDFExports:             exported,
		TotalAssignments:       assignments,
		AverageDurationSeconds: avgSeconds,
		TopAdjectives:          top,
		Themes:                 themes,
	}, nil
}

// GetSessions returns a page of sessions plus the overall count
func (s *AnalyticsService) GetSessions(limit, offset int) ([]models.SessionOverview, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	sessions, err := s.analyticsRepo.ListSessions(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, _, _, err := s.analyticsRepo.CountSessions()
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// SessionDetails combines a session with its recorded assignments
type SessionDetails struct {
	Session     models.AnalyticsSession
	ListName    *string
	Assignments []models.AssignmentWithWord
}

// GetSessionDetails returns one session with all its assignments
func (s *AnalyticsService) GetSessionDetails(sessionID string) (*SessionDetails, error) {
	session, err := s.analyticsRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	var listName *string
	if session.ListID != nil {
		list, err := s.listRepo.GetListByID(*session.ListID)
		if err != nil {
			return nil, err
		}
		if list != nil {
			listName = &list.Name
		}
	}

	assignments, err := s.analyticsRepo.GetSessionAssignments(sessionID)
	if err != nil {
		return nil, err
	}

	return &SessionDetails{
		Session:     *session,
		ListName:    listName,
		Assignments: assignments,
	}, nil
}
