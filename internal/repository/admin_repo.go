package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// AdminRepository handles database operations for administrator accounts
type AdminRepository struct {
	db database.DBTX
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db database.DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

// CreateAdmin creates a new administrator account
func (r *AdminRepository) CreateAdmin(username, passwordHash string) (*models.Admin, error) {
	query := "INSERT INTO admins (username, password_hash) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return r.GetAdminByID(id)
}

// GetAdminByID retrieves an admin by ID
func (r *AdminRepository) GetAdminByID(id int64) (*models.Admin, error) {
	query := "SELECT id, username, password_hash, created_at, last_login_at FROM admins WHERE id = ?"
	return r.scanAdmin(r.db.QueryRow(query, id))
}

// GetAdminByUsername retrieves an admin by username
func (r *AdminRepository) GetAdminByUsername(username string) (*models.Admin, error) {
	query := "SELECT id, username, password_hash, created_at, last_login_at FROM admins WHERE username = ?"
	return r.scanAdmin(r.db.QueryRow(query, username))
}

// CountAdmins counts the administrator accounts
func (r *AdminRepository) CountAdmins() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// UpdateLastLogin records a successful login
func (r *AdminRepository) UpdateLastLogin(id int64, at time.Time) error {
	query := "UPDATE admins SET last_login_at = ? WHERE id = ?"
	if _, err := r.db.Exec(query, at, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func (r *AdminRepository) scanAdmin(row *sql.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}
