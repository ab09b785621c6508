package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/daygridapp/daygrid-server/internal/domain"
	"github.com/daygridapp/daygrid-server/internal/store"
)

// subcategoryColumns is the ordered list of columns selected in subcategory
// queries. Must match the scan order in scanSubcategory.
const subcategoryColumns = `id, created_at, updated_at, deleted_at, user_id, name, category, color`

// scanSubcategory scans a sql.Row (or sql.Rows via its Scan method) into a domain.Subcategory.
func scanSubcategory(scanner interface{ Scan(dest ...any) error }) (*domain.Subcategory, error) {
	var sub domain.Subcategory

	var (
		createdAt string
		updatedAt string
		deletedAt sql.NullString
		category  string
	)

	err := scanner.Scan(
		&sub.ID,
		&createdAt,
		&updatedAt,
		&deletedAt,
		&sub.UserID,
		&sub.Name,
		&category,
		&sub.Color,
	)
	if err != nil {
		return nil, err
	}

	sub.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	sub.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	sub.DeletedAt, err = parseNullableTime(deletedAt)
	if err != nil {
		return nil, err
	}

	sub.Category = domain.Category(category)

	return &sub, nil
}

// CreateSubcategory inserts a new subcategory into the database.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreateSubcategory(ctx context.Context, sub *domain.Subcategory) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subcategories (
			id, created_at, updated_at, deleted_at, user_id, name, category, color
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID,
		formatTime(sub.CreatedAt),
		formatTime(sub.UpdatedAt),
		nullTimeString(sub.DeletedAt),
		sub.UserID,
		sub.Name,
		string(sub.Category),
		sub.Color,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetSubcategory retrieves a subcategory by ID, excluding soft-deleted rows.
// Returns store.ErrNotFound if it does not exist.
func (s *Store) GetSubcategory(ctx context.Context, id string) (*domain.Subcategory, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories WHERE id = ? AND deleted_at IS NULL`, id)

	sub, err := scanSubcategory(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// UpdateSubcategory performs a full row update on an existing subcategory.
// Returns store.ErrNotFound if it does not exist or is soft-deleted.
func (s *Store) UpdateSubcategory(ctx context.Context, sub *domain.Subcategory) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE subcategories SET
			created_at = ?,
			updated_at = ?,
			user_id = ?,
			name = ?,
			category = ?,
			color = ?
		WHERE id = ? AND deleted_at IS NULL`,
		formatTime(sub.CreatedAt),
		formatTime(sub.UpdatedAt),
		sub.UserID,
		sub.Name,
		string(sub.Category),
		sub.Color,
		sub.ID,
	)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteSubcategory performs a soft delete. Day records keep referring to the
// deleted id; display falls back to "Unknown".
// Returns store.ErrNotFound if it does not exist or is already deleted.
func (s *Store) DeleteSubcategory(ctx context.Context, id string) error {
	var sub domain.Subcategory
	sub.MarkDeleted()

	result, err := s.db.ExecContext(ctx, `
		UPDATE subcategories SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		nullTimeString(sub.DeletedAt), formatTime(sub.UpdatedAt), id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListSubcategories returns all non-deleted subcategories for a user,
// grouped by category then name.
func (s *Store) ListSubcategories(ctx context.Context, userID string) ([]*domain.Subcategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY category ASC, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Subcategory
	for rows.Next() {
		sub, err := scanSubcategory(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
