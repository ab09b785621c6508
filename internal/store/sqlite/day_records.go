package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"

	"github.com/daygridapp/daygrid-server/internal/domain"
	"github.com/daygridapp/daygrid-server/internal/id"
	"github.com/daygridapp/daygrid-server/internal/store"
)

// dayRecordColumns is the ordered list of columns selected in day record
// queries. Must match the scan order in scanDayRecord.
const dayRecordColumns = `id, created_at, updated_at, deleted_at, user_id, date,
	well_being_tags, hours`

// scanDayRecord scans a sql.Row (or sql.Rows via its Scan method) into a domain.DayRecord.
func scanDayRecord(scanner interface{ Scan(dest ...any) error }) (*domain.DayRecord, error) {
	var d domain.DayRecord

	var (
		createdAt string
		updatedAt string
		deletedAt sql.NullString
		tagsJSON  string
		hoursJSON string
	)

	err := scanner.Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
		&deletedAt,
		&d.UserID,
		&d.Date,
		&tagsJSON,
		&hoursJSON,
	)
	if err != nil {
		return nil, err
	}

	// Parse timestamps.
	d.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	d.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	d.DeletedAt, err = parseNullableTime(deletedAt)
	if err != nil {
		return nil, err
	}

	// Parse serialized tag set and hour array.
	if err := json.Unmarshal([]byte(tagsJSON), &d.WellBeingTags); err != nil {
		return nil, err
	}
	if d.WellBeingTags == nil {
		d.WellBeingTags = []domain.WellBeingTag{}
	}
	// The fixed array enforces the 24-slot shape on read.
	if err := json.Unmarshal([]byte(hoursJSON), &d.Hours); err != nil {
		return nil, err
	}

	return &d, nil
}

// marshalDayRecord serializes the tag set and hour array for storage.
func marshalDayRecord(record *domain.DayRecord) (tagsJSON, hoursJSON []byte, err error) {
	tags := record.WellBeingTags
	if tags == nil {
		tags = []domain.WellBeingTag{}
	}
	tagsJSON, err = json.Marshal(tags)
	if err != nil {
		return nil, nil, err
	}
	hoursJSON, err = json.Marshal(record.Hours)
	if err != nil {
		return nil, nil, err
	}
	return tagsJSON, hoursJSON, nil
}

// GetDayRecord retrieves the record for an exact (user, date) pair.
// Returns store.ErrNotFound for dates never written.
func (s *Store) GetDayRecord(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+dayRecordColumns+` FROM day_records
		WHERE user_id = ? AND date = ? AND deleted_at IS NULL`, userID, date)

	d, err := scanDayRecord(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetDayRecordRange returns records with startDate <= date <= endDate for the
// user, ordered by date ascending. Bounds are inclusive; the comparison is
// lexicographic on the YYYY-MM-DD form, which matches calendar order.
func (s *Store) GetDayRecordRange(ctx context.Context, userID, startDate, endDate string) ([]*domain.DayRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+dayRecordColumns+` FROM day_records
		WHERE user_id = ? AND date >= ? AND date <= ? AND deleted_at IS NULL
		ORDER BY date ASC`, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.DayRecord
	for rows.Next() {
		d, err := scanDayRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// UpsertDayRecord inserts or fully replaces the record for (UserID, Date).
// A new row gets a generated id; an existing row keeps its id and created_at.
// The returned record carries the stored identity.
func (s *Store) UpsertDayRecord(ctx context.Context, record *domain.DayRecord) (*domain.DayRecord, error) {
	tagsJSON, hoursJSON, err := marshalDayRecord(record)
	if err != nil {
		return nil, err
	}

	stored := *record
	if stored.ID == "" {
		stored.ID, err = id.Generate("day")
		if err != nil {
			return nil, err
		}
	}
	if stored.CreatedAt.IsZero() {
		stored.InitTimestamps()
	}

	// The ON CONFLICT branch leaves id and created_at alone so the stored
	// identity survives replacement.
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO day_records (
			id, created_at, updated_at, deleted_at, user_id, date,
			well_being_tags, hours
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at,
			well_being_tags = excluded.well_being_tags,
			hours = excluded.hours`,
		stored.ID,
		formatTime(stored.CreatedAt),
		formatTime(stored.UpdatedAt),
		nullTimeString(stored.DeletedAt),
		stored.UserID,
		stored.Date,
		string(tagsJSON),
		string(hoursJSON),
	)
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving id on the update path.
	return s.GetDayRecord(ctx, stored.UserID, stored.Date)
}

// DeleteDayRecord performs a hard delete of the record for (user, date).
// Returns store.ErrNotFound if no record exists.
func (s *Store) DeleteDayRecord(ctx context.Context, userID, date string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM day_records WHERE user_id = ? AND date = ?`, userID, date)
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
