package handlers

import (
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/service"
)

// The JSON shapes the frontend consumes. Field names follow the wire
// contract, not Go conventions.

type studentAdjectiveView struct {
	ID          int64  `json:"id"`
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

type adjectiveListView struct {
	ListID          int64                  `json:"list_id"`
	ListName        string                 `json:"list_name"`
	ListDescription string                 `json:"list_description"`
	Adjectives      []studentAdjectiveView `json:"adjectives"`
}

func newAdjectiveListView(list *models.List, adjectives []models.Adjective) adjectiveListView {
	view := adjectiveListView{
		ListID:          list.ID,
		ListName:        list.Name,
		ListDescription: list.Description,
		Adjectives:      []studentAdjectiveView{},
	}
	for _, a := range adjectives {
		view.Adjectives = append(view.Adjectives, studentAdjectiveView{
			ID:          a.ID,
			Word:        a.Word,
			Explanation: a.Explanation,
			Example:     a.Example,
		})
	}
	return view
}

type adjectiveView struct {
	ID          int64  `json:"id"`
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	OrderIndex  int64  `json:"order_index"`
	Active      bool   `json:"active"`
}

func newAdjectiveView(a models.Adjective) adjectiveView {
	return adjectiveView{
		ID:          a.ID,
		Word:        a.Word,
		Explanation: a.Explanation,
		Example:     a.Example,
		OrderIndex:  a.OrderIndex,
		Active:      a.Active,
	}
}

func newAdjectiveViews(adjectives []models.Adjective) []adjectiveView {
	views := []adjectiveView{}
	for _, a := range adjectives {
		views = append(views, newAdjectiveView(a))
	}
	return views
}

type listDetailView struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	IsDefault       bool            `json:"is_default"`
	OwnerUserID     *int64          `json:"owner_user_id"`
	ShareToken      *string         `json:"share_token"`
	ShareExpiresAt  *time.Time      `json:"share_expires_at"`
	ShareWithSchool bool            `json:"share_with_school"`
	SourceListID    *int64          `json:"source_list_id"`
	Adjectives      []adjectiveView `json:"adjectives"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newListDetailView(list *models.List, adjectives []models.Adjective) listDetailView {
	return listDetailView{
		ID:              list.ID,
		Name:            list.Name,
		Description:     list.Description,
		IsDefault:       list.IsDefault,
		OwnerUserID:     list.OwnerUserID,
		ShareToken:      list.ShareToken,
		ShareExpiresAt:  list.ShareExpiresAt,
		ShareWithSchool: list.ShareWithSchool,
		SourceListID:    list.SourceListID,
		Adjectives:      newAdjectiveViews(adjectives),
		CreatedAt:       list.CreatedAt,
		UpdatedAt:       list.UpdatedAt,
	}
}

type listSummaryView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Slug            *string `json:"slug"`
	Description     string  `json:"description"`
	IsDefault       bool    `json:"is_default"`
	IsPremium       bool    `json:"is_premium"`
	AdjectiveCount  int     `json:"adjective_count"`
	OwnerEmail      *string `json:"owner_email"`
	ShareToken      *string `json:"share_token"`
	ShareWithSchool bool    `json:"share_with_school"`
	CreatedAt       string  `json:"created_at"`
}

func newListSummaryViews(summaries []models.ListSummary) []listSummaryView {
	views := []listSummaryView{}
	for _, s := range summaries {
		view := listSummaryView{
			ID:              s.ID,
			Name:            s.Name,
			Slug:            s.Slug,
			Description:     s.Description,
			IsDefault:       s.IsDefault,
			IsPremium:       s.IsPremium,
			AdjectiveCount:  s.AdjectiveCount,
			ShareToken:      s.ShareToken,
			ShareWithSchool: s.ShareWithSchool,
			CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		}
		if s.OwnerEmail != "" {
			email := s.OwnerEmail
			view.OwnerEmail = &email
		}
		views = append(views, view)
	}
	return views
}

type schoolView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type userProfileView struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	Status      string      `json:"status"`
	School      *schoolView `json:"school"`
	CreatedAt   string      `json:"created_at"`
	LastLoginAt *string     `json:"last_login_at"`
}

func newUserProfileView(user *models.User, school *models.School) userProfileView {
	view := userProfileView{
		ID:        user.ID,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if school != nil {
		view.School = &schoolView{ID: school.ID, Name: school.Name, Status: school.Status}
	}
	if user.LastLoginAt != nil {
		t := user.LastLoginAt.Format(time.RFC3339)
		view.LastLoginAt = &t
	}
	return view
}

type sessionStartView struct {
	SessionID      string    `json:"session_id"`
	ListID         *int64    `json:"list_id"`
	IsStandardList bool      `json:"is_standard_list"`
	ThemeID        *int64    `json:"theme_id"`
	StartedAt      time.Time `json:"started_at"`
}

func newSessionStartView(s *models.AnalyticsSession) sessionStartView {
	return sessionStartView{
		SessionID:      s.ID,
		ListID:         s.ListID,
		IsStandardList: s.IsStandardList,
		ThemeID:        s.ThemeID,
		StartedAt:      s.StartedAt,
	}
}

type pendingUserView struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	SchoolName string    `json:"school_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type userDetailView struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	ActiveUntil *time.Time `json:"active_until"`
	SchoolID    int64      `json:"school_id"`
	SchoolName  string     `json:"school_name"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func newUserDetailView(u models.User, schoolName string) userDetailView {
	return userDetailView{
		ID:          u.ID,
		Email:       u.Email,
		Status:      u.Status,
		ActiveUntil: u.ActiveUntil,
		SchoolID:    u.SchoolID,
		SchoolName:  schoolName,
		Notes:       u.Notes,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

type adminSchoolView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UserCount       int       `json:"user_count"`
	ActiveUserCount int       `json:"active_user_count"`
}

type adjectiveStatsView struct {
	AdjectiveID int64   `json:"adjective_id"`
	Word        string  `json:"word"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type themeStatsView struct {
	ThemeID      int64   `json:"theme_id"`
	SessionCount int     `json:"session_count"`
	Percentage   float64 `json:"percentage"`
}

type analyticsSummaryView struct {
	TotalSessions      int                  `json:"total_sessions"`
	CompletedSessions  int                  `json:"completed_sessions"`
	AvgDurationSeconds float64              `json:"avg_duration_seconds"`
	TotalPDFExports    int                  `json:"total_pdf_exports"`
	TopAdjectives      []adjectiveStatsView `json:"top_adjectives"`
	ThemeDistribution  []themeStatsView     `json:"theme_distribution"`
	TotalAssignments   int                  `json:"total_assignments"`
}

func newAnalyticsSummaryView(s *service.Summary) analyticsSummaryView {
	view := analyticsSummaryView{
		TotalSessions:      s.TotalSessions,
		CompletedSessions:  s.FinishedSessions,
		AvgDurationSeconds: roundTo2(s.AverageDurationSeconds),
		TotalPDFExports:    s.PDFExports,
		TopAdjectives:      []adjectiveStatsView{},
		ThemeDistribution:  []themeStatsView{},
		TotalAssignments:   s.TotalAssignments,
	}
	for _, a := range s.TopAdjectives {
		view.TopAdjectives = append(view.TopAdjectives, adjectiveStatsView{
			AdjectiveID: a.AdjectiveID,
			Word:        a.Word,
			Count:       a.Count,
			Percentage:  percentage(a.Count, s.TotalSessions),
		})
	}
	for _, t := range s.Themes {
		view.ThemeDistribution = append(view.ThemeDistribution, themeStatsView{
			ThemeID:      t.ThemeID,
			SessionCount: t.Count,
			Percentage:   percentage(t.Count, s.TotalSessions),
		})
	}
	return view
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo2(float64(count) / float64(total) * 100)
}

func roundTo2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

type sessionOverviewView struct {
	ID              string     `json:"id"`
	ListID          *int64     `json:"list_id"`
	ListName        *string    `json:"list_name"`
	IsStandardList  bool       `json:"is_standard_list"`
	StartedAt       time.Time  `json:"started_at"`
	FinishedAt      *time.Time `json:"finished_at"`
	DurationSeconds *int64     `json:"duration_seconds"`
	PDFExportedAt   *time.Time `json:"pdf_exported_at"`
	AssignmentCount int        `json:"assignment_count"`
}

func newSessionOverviewViews(sessions []models.SessionOverview) []sessionOverviewView {
	views := []sessionOverviewView{}
	for _, s := range sessions {
		view := sessionOverviewView{
			ID:              s.ID,
			ListID:          s.ListID,
			ListName:        s.ListName,
			IsStandardList:  s.IsStandardList,
			StartedAt:       s.StartedAt,
			FinishedAt:      s.FinishedAt,
			PDFExportedAt:   s.PDFExportedAt,
			AssignmentCount: s.AssignmentCount,
		}
		if s.FinishedAt != nil {
			d := int64(s.FinishedAt.Sub(s.StartedAt).Seconds())
			view.DurationSeconds = &d
		}
		views = append(views, view)
	}
	return views
}

type assignmentDetailView struct {
	AdjectiveID int64     `json:"adjective_id"`
	Word        string    `json:"word"`
	Bucket      string    `json:"bucket"`
	AssignedAt  time.Time `json:"assigned_at"`
}

type sessionDetailsView struct {
	ID             string                 `json:"id"`
	ListID         *int64                 `json:"list_id"`
	ListName       *string                `json:"list_name"`
	IsStandardList bool                   `json:"is_standard_list"`
	ThemeID        *int64                 `json:"theme_id"`
	StartedAt      time.Time              `json:"started_at"`
	FinishedAt     *time.Time             `json:"finished_at"`
	PDFExportedAt  *time.Time             `json:"pdf_exported_at"`
	Assignments    []assignmentDetailView `json:"assignments"`
}

func newSessionDetailsView(d *service.SessionDetails) sessionDetailsView {
	view := sessionDetailsView{
		ID:             d.Session.ID,
		ListID:         d.Session.ListID,
		ListName:       d.ListName,
		IsStandardList: d.Session.IsStandardList,
		ThemeID:        d.Session.ThemeID,
		StartedAt:      d.Session.StartedAt,
		FinishedAt:     d.Session.FinishedAt,
		PDFExportedAt:  d.Session.PDFExportedAt,
		Assignments:    []assignmentDetailView{},
	}
	for _, a := range d.Assignments {
		view.Assignments = append(view.Assignments, assignmentDetailView{
			AdjectiveID: a.AdjectiveID,
			Word:        a.Word,
			Bucket:      a.Bucket,
			AssignedAt:  a.AssignedAt,
		})
	}
	return view
}
