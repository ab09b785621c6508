package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/daygridapp/daygrid-server/internal/domain"
	"github.com/daygridapp/daygrid-server/internal/store"
)

// goalColumns is the ordered list of columns selected in goal queries.
// Must match the scan order in scanGoal.
const goalColumns = `id, created_at, updated_at, deleted_at, user_id, category, subcategory_id, target_hours`

// scanGoal scans a sql.Row (or sql.Rows via its Scan method) into a domain.Goal.
func scanGoal(scanner interface{ Scan(dest ...any) error }) (*domain.Goal, error) {
	var g domain.Goal

	var (
		createdAt string
		updatedAt string
		deletedAt sql.NullString
		category  string
	)

	err := scanner.Scan(
		&g.ID,
		&createdAt,
		&updatedAt,
		&deletedAt,
		&g.UserID,
		&category,
		&g.SubcategoryID,
		&g.TargetHours,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	g.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	g.DeletedAt, err = parseNullableTime(deletedAt)
	if err != nil {
		return nil, err
	}

	g.Category = domain.Category(category)

	return &g, nil
}

// CreateGoal inserts a new goal into the database.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreateGoal(ctx context.Context, goal *domain.Goal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (
			id, created_at, updated_at, deleted_at, user_id, category, subcategory_id, target_hours
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.ID,
		formatTime(goal.CreatedAt),
		formatTime(goal.UpdatedAt),
		nullTimeString(goal.DeletedAt),
		goal.UserID,
		string(goal.Category),
		goal.SubcategoryID,
		goal.TargetHours,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetGoal retrieves a goal by ID, excluding soft-deleted rows.
// Returns store.ErrNotFound if it does not exist.
func (s *Store) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ? AND deleted_at IS NULL`, id)

	g, err := scanGoal(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGoal performs a full row update on an existing goal.
// Returns store.ErrNotFound if it does not exist or is soft-deleted.
func (s *Store) UpdateGoal(ctx context.Context, goal *domain.Goal) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE goals SET
			created_at = ?,
			updated_at = ?,
			user_id = ?,
			category = ?,
			subcategory_id = ?,
			target_hours = ?
		WHERE id = ? AND deleted_at IS NULL`,
		formatTime(goal.CreatedAt),
		formatTime(goal.UpdatedAt),
		goal.UserID,
		string(goal.Category),
		goal.SubcategoryID,
		goal.TargetHours,
		goal.ID,
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

// DeleteGoal performs a soft delete.
// Returns store.ErrNotFound if it does not exist or is already deleted.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	var g domain.Goal
	g.MarkDeleted()

	result, err := s.db.ExecContext(ctx, `
		UPDATE goals SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		nullTimeString(g.DeletedAt), formatTime(g.UpdatedAt), id)
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

// ListGoals returns all non-deleted goals for a user, oldest first.
func (s *Store) ListGoals(ctx context.Context, userID string) ([]*domain.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return goals, nil
}
