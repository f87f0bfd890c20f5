package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zumgugger/vielseitig/internal/database"
	"github.com/Zumgugger/vielseitig/internal/models"
)

// ListRepository handles database operations for adjective lists
type ListRepository struct {
	db database.DBTX
}

// NewListRepository creates a new list repository
func NewListRepository(db database.DBTX) *ListRepository {
	return &ListRepository{db: db}
}

// WithTx returns a repository view bound to the given transaction
func (r *ListRepository) WithTx(tx *database.Tx) *ListRepository {
	return &ListRepository{db: tx}
}

const listColumns = `id, name, slug, description, is_default, is_premium, owner_user_id,
	share_token, share_expires_at, share_enabled, share_with_school, source_list_id,
	created_at, updated_at`

// CreateList inserts a new list and returns it
func (r *ListRepository) CreateList(list *models.List) (*models.List, error) {
	query := `
		INSERT INTO lists (name, slug, description, is_default, is_premium, owner_user_id,
			share_token, share_expires_at, share_enabled, share_with_school, source_list_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		list.Name, list.Slug, list.Description, list.IsDefault, list.IsPremium,
		list.OwnerUserID, list.ShareToken, list.ShareExpiresAt, list.ShareEnabled,
		list.ShareWithSchool, list.SourceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	return r.GetListByID(id)
}

// GetListByID retrieves a list by ID
func (r *ListRepository) GetListByID(id int64) (*models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE id = ?"
	return r.scanList(r.db.QueryRow(query, id))
}

// GetDefaultList retrieves the unique default list
func (r *ListRepository) GetDefaultList() (*models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE is_default = " + r.db.GetDialect().BoolValue(true)
	return r.scanList(r.db.QueryRow(query))
}

// GetListBySlug retrieves a seeded list by its slug
func (r *ListRepository) GetListBySlug(slug string) (*models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE slug = ?"
	return r.scanList(r.db.QueryRow(query, slug))
}

// GetListByShareToken retrieves a list by its share token
func (r *ListRepository) GetListByShareToken(token string) (*models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE share_token = ?"
	return r.scanList(r.db.QueryRow(query, token))
}

// GetListsByOwner retrieves the lists owned by a user, newest first
func (r *ListRepository) GetListsByOwner(userID int64) ([]models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE owner_user_id = ? ORDER BY created_at DESC"
	return r.queryLists(query, userID)
}

// GetPremiumLists retrieves the seeded premium lists ordered by name
func (r *ListRepository) GetPremiumLists() ([]models.List, error) {
	query := "SELECT " + listColumns + " FROM lists WHERE is_premium = " + r.db.GetDialect().BoolValue(true) + " ORDER BY name"
	return r.queryLists(query)
}

// GetSchoolSharedLists retrieves lists that colleagues at the same school have
// shared with the school, excluding the user's own lists
func (r *ListRepository) GetSchoolSharedLists(schoolID, excludeUserID int64) ([]models.List, error) {
	query := `
		SELECT l.id, l.name, l.slug, l.description, l.is_default, l.is_premium,
		       l.owner_user_id, l.share_token, l.share_expires_at, l.share_enabled,
		       l.share_with_school, l.source_list_id, l.created_at, l.updated_at
		FROM lists l
		JOIN users u ON u.id = l.owner_user_id
		WHERE u.school_id = ? AND l.share_with_school = ` + r.db.GetDialect().BoolValue(true) + `
		  AND l.owner_user_id != ?
		ORDER BY l.name
	`
	return r.queryLists(query, schoolID, excludeUserID)
}

// UpdateList updates a list's editable fields
func (r *ListRepository) UpdateList(list *models.List) error {
	query := `
		UPDATE lists
		SET name = ?, description = ?, share_enabled = ?, share_with_school = ?,
		    share_expires_at = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, list.Name, list.Description, list.ShareEnabled,
		list.ShareWithSchool, list.ShareExpiresAt, time.Now().UTC(), list.ID)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	return nil
}

// UpdateListSharing sets a list's share token and sharing window
func (r *ListRepository) UpdateListSharing(list *models.List) error {
	query := `
		UPDATE lists
		SET share_token = ?, share_expires_at = ?, share_enabled = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, list.ShareToken, list.ShareExpiresAt, list.ShareEnabled,
		time.Now().UTC(), list.ID)
	if err != nil {
		return fmt.Errorf("failed to update list sharing: %w", err)
	}
	return nil
}

// DeleteList deletes a list and, via cascade, its adjectives
func (r *ListRepository) DeleteList(id int64) error {
	if _, err := r.db.Exec("DELETE FROM lists WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

const adjectiveColumns = "id, list_id, word, explanation, example, order_index, active, created_at, updated_at"

// CreateAdjective inserts a new adjective and returns it
func (r *ListRepository) CreateAdjective(a *models.Adjective) (*models.Adjective, error) {
	query := `
		INSERT INTO adjectives (list_id, word, explanation, example, order_index, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, a.ListID, a.Word, a.Explanation, a.Example, a.OrderIndex, a.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to create adjective: %w", err)
	}
	return r.GetAdjectiveByID(id)
}

// GetAdjectiveByID retrieves an adjective by ID
func (r *ListRepository) GetAdjectiveByID(id int64) (*models.Adjective, error) {
	query := "SELECT " + adjectiveColumns + " FROM adjectives WHERE id = ?"
	return r.scanAdjective(r.db.QueryRow(query, id))
}

// GetAdjectives retrieves a list's adjectives ordered by order_index.
// With activeOnly, inactive words are filtered out.
func (r *ListRepository) GetAdjectives(listID int64, activeOnly bool) ([]models.Adjective, error) {
	query := "SELECT " + adjectiveColumns + " FROM adjectives WHERE list_id = ?"
	if activeOnly {
		query += " AND active = " + r.db.GetDialect().BoolValue(true)
	}
	query += " ORDER BY order_index, id"

	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjectives: %w", err)
	}
	defer rows.Close()

	var adjectives []models.Adjective
	for rows.Next() {
		var a models.Adjective
		if err := rows.Scan(&a.ID, &a.ListID, &a.Word, &a.Explanation, &a.Example,
			&a.OrderIndex, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan adjective: %w", err)
		}
		adjectives = append(adjectives, a)
	}
	return adjectives, rows.Err()
}

// UpdateAdjective updates an adjective's editable fields
func (r *ListRepository) UpdateAdjective(a *models.Adjective) error {
	query := `
		UPDATE adjectives
		SET word = ?, explanation = ?, example = ?, order_index = ?, active = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, a.Word, a.Explanation, a.Example, a.OrderIndex, a.Active, time.Now().UTC(), a.ID)
	if err != nil {
		return fmt.Errorf("failed to update adjective: %w", err)
	}
	return nil
}

// DeleteAdjective removes an adjective from its list
func (r *ListRepository) DeleteAdjective(id int64) error {
	if _, err := r.db.Exec("DELETE FROM adjectives WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete adjective: %w", err)
	}
	return nil
}

// CountAdjectives counts a list's adjectives
func (r *ListRepository) CountAdjectives(listID int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM adjectives WHERE list_id = ?", listID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count adjectives: %w", err)
	}
	return count, nil
}

// GetOwnerEmail returns the email of the list owner, or "" for seeded lists
func (r *ListRepository) GetOwnerEmail(listID int64) (string, error) {
	query := `
		SELECT u.email FROM lists l
		JOIN users u ON u.id = l.owner_user_id
		WHERE l.id = ?
	`
	var email string
	err := r.db.QueryRow(query, listID).Scan(&email)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get owner email: %w", err)
	}
	return email, nil
}

func (r *ListRepository) scanAdjective(row *sql.Row) (*models.Adjective, error) {
	a := &models.Adjective{}
	err := row.Scan(
		&a.ID,
		&a.ListID,
		&a.Word,
		&a.Explanation,
		&a.Example,
		&a.OrderIndex,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get adjective: %w", err)
	}
	return a, nil
}

func (r *ListRepository) scanList(row *sql.Row) (*models.List, error) {
	list := &models.List{}
	err := row.Scan(
		&list.ID,
		&list.Name,
		&list.Slug,
		&list.Description,
		&list.IsDefault,
		&list.IsPremium,
		&list.OwnerUserID,
		&list.ShareToken,
		&list.ShareExpiresAt,
		&list.ShareEnabled,
		&list.ShareWithSchool,
		&list.SourceListID,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

func (r *ListRepository) queryLists(query string, args ...interface{}) ([]models.List, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []models.List
	for rows.Next() {
		var list models.List
		if err := rows.Scan(
			&list.ID,
			&list.Name,
			&list.Slug,
			&list.Description,
			&list.IsDefault,
			&list.IsPremium,
			&list.OwnerUserID,
			&list.ShareToken,
			&list.ShareExpiresAt,
			&list.ShareEnabled,
			&list.ShareWithSchool,
			&list.SourceListID,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}
