package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// AnalyticsRepository handles database operations for sorting sessions and
// their adjective assignments
type AnalyticsRepository struct {
	db database.DBTX
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db database.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// WithTx returns a repository view bound to the given transaction
func (r *AnalyticsRepository) WithTx(tx *database.Tx) *AnalyticsRepository {
	return &AnalyticsRepository{db: tx}
}

const sessionColumns = "id, list_id, is_standard_list, theme_id, started_at, finished_at, pdf_exported_at"

// CreateSession inserts a new sorting session
func (r *AnalyticsRepository) CreateSession(s *models.AnalyticsSession) error {
	query := `
		INSERT INTO analytics_sessions (id, list_id, is_standard_list, theme_id, started_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, s.ID, s.ListID, s.IsStandardList, s.ThemeID, s.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession retrieves a sorting session by its UUID
func (r *AnalyticsRepository) GetSession(id string) (*models.AnalyticsSession, error) {
	query := "SELECT " + sessionColumns + " FROM analytics_sessions WHERE id = ?"
	return r.scanSession(r.db.QueryRow(query, id))
}

// FinishSession sets the finish timestamp unless one is already recorded,
// keeping the first finish authoritative
func (r *AnalyticsRepository) FinishSession(id string, at time.Time) error {
	query := "UPDATE analytics_sessions SET finished_at = ? WHERE id = ? AND finished_at IS NULL"
	if _, err := r.db.Exec(query, at, id); err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	return nil
}

// MarkPDFExported records a PDF export, overwriting any earlier timestamp
func (r *AnalyticsRepository) MarkPDFExported(id string, at time.Time) error {
	query := "UPDATE analytics_sessions SET pdf_exported_at = ? WHERE id = ?"
	if _, err := r.db.Exec(query, at, id); err != nil {
		return fmt.Errorf("failed to mark pdf export: %w", err)
	}
	return nil
}

// UpsertAssignment records a bucket choice for an adjective within a session.
// A repeated choice for the same adjective updates the existing row in place.
func (r *AnalyticsRepository) UpsertAssignment(sessionID string, adjectiveID int64, bucket string, at time.Time) (*models.Assignment, error) {
	clause := r.db.GetDialect().UpsertClause(
		[]string{"session_id", "adjective_id"},
		[]string{"bucket", "assigned_at"},
	)
	query := `
		INSERT INTO analytics_assignments (session_id, adjective_id, bucket, assigned_at)
		VALUES (?, ?, ?, ?) ` + clause
	if _, err := r.db.Exec(query, sessionID, adjectiveID, bucket, at); err != nil {
		return nil, fmt.Errorf("failed to upsert assignment: %w", err)
	}
	return r.GetAssignment(sessionID, adjectiveID)
}

// GetAssignment retrieves the assignment for a (session, adjective) pair
func (r *AnalyticsRepository) GetAssignment(sessionID string, adjectiveID int64) (*models.Assignment, error) {
	query := `
		SELECT id, session_id, adjective_id, bucket, assigned_at
		FROM analytics_assignments
		WHERE session_id = ? AND adjective_id = ?
	`
	a := &models.Assignment{}
	err := r.db.QueryRow(query, sessionID, adjectiveID).Scan(
		&a.ID, &a.SessionID, &a.AdjectiveID, &a.Bucket, &a.AssignedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return a, nil
}

// GetSessionAssignments retrieves a session's assignments with the words they
// refer to, in assignment order
func (r *AnalyticsRepository) GetSessionAssignments(sessionID string) ([]models.AssignmentWithWord, error) {
	query := `
		SELECT aa.id, aa.session_id, aa.adjective_id, aa.bucket, aa.assigned_at, adj.word
		FROM analytics_assignments aa
		JOIN adjectives adj ON adj.id = aa.adjective_id
		WHERE aa.session_id = ?
		ORDER BY aa.assigned_at, aa.id
	`
	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.AssignmentWithWord
	for rows.Next() {
		var a models.AssignmentWithWord
		if err := rows.Scan(&a.ID, &a.SessionID, &a.AdjectiveID, &a.Bucket, &a.AssignedAt, &a.Word); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CountAssignments counts the assignments recorded within a session
func (r *AnalyticsRepository) CountAssignments(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM analytics_assignments WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// CountAllAssignments counts the assignments recorded across all sessions
func (r *AnalyticsRepository) CountAllAssignments() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM analytics_assignments").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// CountSessions counts all sessions, finished sessions and exported sessions
func (r *AnalyticsRepository) CountSessions() (total, finished, exported int, err error) {
	if err = r.db.QueryRow("SELECT COUNT(*) FROM analytics_sessions").Scan(&total); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	if err = r.db.QueryRow("SELECT COUNT(*) FROM analytics_sessions WHERE finished_at IS NOT NULL").Scan(&finished); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count finished sessions: %w", err)
	}
	if err = r.db.QueryRow("SELECT COUNT(*) FROM analytics_sessions WHERE pdf_exported_at IS NOT NULL").Scan(&exported); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count exported sessions: %w", err)
	}
	return total, finished, exported, nil
}

// GetFinishedDurations returns start/finish pairs of completed sessions
func (r *AnalyticsRepository) GetFinishedDurations() ([]time.Duration, error) {
	query := "SELECT started_at, finished_at FROM analytics_sessions WHERE finished_at IS NOT NULL"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query durations: %w", err)
	}
	defer rows.Close()

	var durations []time.Duration
	for rows.Next() {
		var started, finished time.Time
		if err := rows.Scan(&started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan duration: %w", err)
		}
		durations = append(durations, finished.Sub(started))
	}
	return durations, rows.Err()
}

// GetTopAdjectives returns the most frequently assigned adjectives
func (r *AnalyticsRepository) GetTopAdjectives(limit int) ([]models.AdjectiveUsage, error) {
	query := `
		SELECT aa.adjective_id, adj.word, COUNT(*) AS uses
		FROM analytics_assignments aa
		JOIN adjectives adj ON adj.id = aa.adjective_id
		GROUP BY aa.adjective_id, adj.word
		ORDER BY uses DESC, adj.word
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top adjectives: %w", err)
	}
	defer rows.Close()

	var usages []models.AdjectiveUsage
	for rows.Next() {
		var u models.AdjectiveUsage
		if err := rows.Scan(&u.AdjectiveID, &u.Word, &u.Count); err != nil {
			return nil, fmt.Errorf("failed to scan adjective usage: %w", err)
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

// GetThemeDistribution returns how often each theme was chosen
func (r *AnalyticsRepository) GetThemeDistribution() ([]models.ThemeUsage, error) {
	query := `
		SELECT theme_id, COUNT(*) AS uses
		FROM analytics_sessions
		WHERE theme_id IS NOT NULL
		GROUP BY theme_id
		ORDER BY uses DESC, theme_id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme distribution: %w", err)
	}
	defer rows.Close()

	var usages []models.ThemeUsage
	for rows.Next() {
		var u models.ThemeUsage
		if err := rows.Scan(&u.ThemeID, &u.Count); err != nil {
			return nil, fmt.Errorf("failed to scan theme usage: %w", err)
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

// ListSessions retrieves a page of sessions with list names and assignment
// counts, newest first
func (r *AnalyticsRepository) ListSessions(limit, offset int) ([]models.SessionOverview, error) {
	query := `
		SELECT s.id, s.list_id, s.is_standard_list, s.theme_id, s.started_at,
		       s.finished_at, s.pdf_exported_at, l.name,
		       (SELECT COUNT(*) FROM analytics_assignments aa WHERE aa.session_id = s.id)
		FROM analytics_sessions s
		LEFT JOIN lists l ON l.id = s.list_id
		ORDER BY s.started_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.SessionOverview
	for rows.Next() {
		var s models.SessionOverview
		if err := rows.Scan(&s.ID, &s.ListID, &s.IsStandardList, &s.ThemeID,
			&s.StartedAt, &s.FinishedAt, &s.PDFExportedAt, &s.ListName, &s.AssignmentCount); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *AnalyticsRepository) scanSession(row *sql.Row) (*models.AnalyticsSession, error) {
	s := &models.AnalyticsSession{}
	err := row.Scan(&s.ID, &s.ListID, &s.IsStandardList, &s.ThemeID,
		&s.StartedAt, &s.FinishedAt, &s.PDFExportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}
