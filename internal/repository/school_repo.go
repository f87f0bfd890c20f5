package repository

import (
	"database/sql"
	"fmt"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db database.DBTX
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db database.DBTX) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// WithTx returns a repository view bound to the given transaction
func (r *SchoolRepository) WithTx(tx *database.Tx) *SchoolRepository {
	return &SchoolRepository{db: tx}
}

// CreateSchool creates a new school with the given status
func (r *SchoolRepository) CreateSchool(name, status string) (*models.School, error) {
	query := "INSERT INTO schools (name, status) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, name, status)
	if err != nil {
		return nil, fmt.Errorf("failed to create school: %w", err)
	}
	return r.GetSchoolByID(id)
}

// GetSchoolByID retrieves a school by ID
func (r *SchoolRepository) GetSchoolByID(id int64) (*models.School, error) {
	query := "SELECT id, name, status, created_at FROM schools WHERE id = ?"
	return r.scanSchool(r.db.QueryRow(query, id))
}

// GetSchoolByName retrieves a school by its unique name
func (r *SchoolRepository) GetSchoolByName(name string) (*models.School, error) {
	query := "SELECT id, name, status, created_at FROM schools WHERE name = ?"
	return r.scanSchool(r.db.QueryRow(query, name))
}

// GetAllSchools retrieves all schools ordered by name
func (r *SchoolRepository) GetAllSchools() ([]models.School, error) {
	query := "SELECT id, name, status, created_at FROM schools ORDER BY name"
	return r.querySchools(query)
}

// GetSchoolsByStatus retrieves schools with the given status, oldest first
func (r *SchoolRepository) GetSchoolsByStatus(status string) ([]models.School, error) {
	query := "SELECT id, name, status, created_at FROM schools WHERE status = ? ORDER BY created_at"
	return r.querySchools(query, status)
}

// UpdateSchool updates a school's name and status
func (r *SchoolRepository) UpdateSchool(id int64, name, status string) error {
	query := "UPDATE schools SET name = ?, status = ? WHERE id = ?"
	if _, err := r.db.Exec(query, name, status, id); err != nil {
		return fmt.Errorf("failed to update school: %w", err)
	}
	return nil
}

// UpdateSchoolStatus updates only the status of a school
func (r *SchoolRepository) UpdateSchoolStatus(id int64, status string) error {
	query := "UPDATE schools SET status = ? WHERE id = ?"
	if _, err := r.db.Exec(query, status, id); err != nil {
		return fmt.Errorf("failed to update school status: %w", err)
	}
	return nil
}

// DeleteSchool deletes a school and, via cascade, its users
func (r *SchoolRepository) DeleteSchool(id int64) error {
	query := "DELETE FROM schools WHERE id = ?"
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete school: %w", err)
	}
	return nil
}

// CountActiveUsers counts the school's users with an active account
func (r *SchoolRepository) CountActiveUsers(schoolID int64) (int, error) {
	query := "SELECT COUNT(*) FROM users WHERE school_id = ? AND status = ?"
	var count int
	if err := r.db.QueryRow(query, schoolID, models.StatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

// CountUsers counts all users belonging to the school
func (r *SchoolRepository) CountUsers(schoolID int64) (int, error) {
	query := "SELECT COUNT(*) FROM users WHERE school_id = ?"
	var count int
	if err := r.db.QueryRow(query, schoolID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *SchoolRepository) scanSchool(row *sql.Row) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(&school.ID, &school.Name, &school.Status, &school.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	return school, nil
}

func (r *SchoolRepository) querySchools(query string, args ...interface{}) ([]models.School, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}
	defer rows.Close()

	var schools []models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.ID, &school.Name, &school.Status, &school.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan school: %w", err)
		}
		schools = append(schools, school)
	}
	return schools, rows.Err()
}
