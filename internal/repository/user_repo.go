package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// UserRepository handles database operations for teacher accounts
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository view bound to the given transaction
func (r *UserRepository) WithTx(tx *database.Tx) *UserRepository {
	return &UserRepository{db: tx}
}

const userColumns = "id, email, password_hash, school_id, status, active_until, notes, created_at, last_login_at"

// CreateUser creates a new teacher account
func (r *UserRepository) CreateUser(email, passwordHash string, schoolID int64, status, notes string) (*models.User, error) {
	query := "INSERT INTO users (email, password_hash, school_id, status, notes) VALUES (?, ?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, email, passwordHash, schoolID, status, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.GetUserByID(id)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return r.scanUser(r.db.QueryRow(query, id))
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	return r.scanUser(r.db.QueryRow(query, email))
}

// GetAllUsers retrieves all users with their school names, newest first
func (r *UserRepository) GetAllUsers() ([]models.UserWithSchool, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.school_id, u.status, u.active_until,
		       u.notes, u.created_at, u.last_login_at, s.name
		FROM users u
		JOIN schools s ON s.id = u.school_id
		ORDER BY u.created_at DESC
	`
	return r.queryUsersWithSchool(query)
}

// GetUsersByStatus retrieves users with the given status and their school names, oldest first
func (r *UserRepository) GetUsersByStatus(status string) ([]models.UserWithSchool, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.school_id, u.status, u.active_until,
		       u.notes, u.created_at, u.last_login_at, s.name
		FROM users u
		JOIN schools s ON s.id = u.school_id
		WHERE u.status = ?
		ORDER BY u.created_at
	`
	return r.queryUsersWithSchool(query, status)
}

// UpdateUser updates a user's email, school and notes
func (r *UserRepository) UpdateUser(id int64, email string, schoolID int64, notes string) error {
	query := "UPDATE users SET email = ?, school_id = ?, notes = ? WHERE id = ?"
	if _, err := r.db.Exec(query, email, schoolID, notes, id); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateUserStatus updates a user's status and activation deadline
func (r *UserRepository) UpdateUserStatus(id int64, status string, activeUntil *time.Time) error {
	query := "UPDATE users SET status = ?, active_until = ? WHERE id = ?"
	if _, err := r.db.Exec(query, status, activeUntil, id); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	return nil
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(id int64, passwordHash string) error {
	query := "UPDATE users SET password_hash = ? WHERE id = ?"
	if _, err := r.db.Exec(query, passwordHash, id); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateLastLogin records a successful login
func (r *UserRepository) UpdateLastLogin(id int64, at time.Time) error {
	query := "UPDATE users SET last_login_at = ? WHERE id = ?"
	if _, err := r.db.Exec(query, at, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// DeleteUser deletes a user and, via cascade, their lists
func (r *UserRepository) DeleteUser(id int64) error {
	query := "DELETE FROM users WHERE id = ?"
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.SchoolID,
		&user.Status,
		&user.ActiveUntil,
		&user.Notes,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) queryUsersWithSchool(query string, args ...interface{}) ([]models.UserWithSchool, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.UserWithSchool
	for rows.Next() {
		var u models.UserWithSchool
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.SchoolID,
			&u.Status,
			&u.ActiveUntil,
			&u.Notes,
			&u.CreatedAt,
			&u.LastLoginAt,
			&u.SchoolName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
