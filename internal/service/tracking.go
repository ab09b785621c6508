package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/daygridapp/daygrid-server/internal/domain"
	domainerrors "github.com/daygridapp/daygrid-server/internal/errors"
	"github.com/daygridapp/daygrid-server/internal/store"
)

// TrackingService is the reconciler's boundary: it validates multi-cell
// update payloads, fetches the known records for the touched dates, runs the
// pure reconciler, and persists each resulting per-date mutation.
type TrackingService struct {
	store  store.Store
	logger *slog.Logger
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(store store.Store, logger *slog.Logger) *TrackingService {
	return &TrackingService{store: store, logger: logger}
}

// AssignCellsRequest applies one activity to a selection of hour cells,
// possibly spanning multiple dates.
type AssignCellsRequest struct {
	Cells         []domain.Cell `json:"cells" validate:"required"`
	TaskName      string        `json:"task_name"`
	Category      string        `json:"category" validate:"required"`
	SubcategoryID string        `json:"subcategory_id" validate:"required"`
	Duration      float64       `json:"duration"`
	WellBeingTags []string      `json:"well_being_tags"`
}

// ClearCellsRequest empties a selection of hour cells.
type ClearCellsRequest struct {
	Cells []domain.Cell `json:"cells" validate:"required"`
}

// AssignCells writes the request's activity into every selected cell and
// returns the stored per-date records, ordered by date ascending. Mutations
// are persisted per date; a failure partway leaves earlier dates applied and
// is reported as-is.
func (s *TrackingService) AssignCells(ctx context.Context, userID string, req AssignCellsRequest) ([]*domain.DayRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, mapDomainError(err)
	}

	tags := make([]domain.WellBeingTag, 0, len(req.WellBeingTags))
	for _, raw := range req.WellBeingTags {
		tag, err := domain.ParseWellBeingTag(raw)
		if err != nil {
			return nil, mapDomainError(err)
		}
		tags = append(tags, tag)
	}

	duration := req.Duration
	if duration == 0 {
		duration = 1.0
	}
	if duration < 0 || duration > 1.0 {
		return nil, domainerrors.Validation("duration must be between 0 and 1 hours")
	}

	assignment := domain.Assignment{
		TaskName:      req.TaskName,
		Category:      category,
		SubcategoryID: req.SubcategoryID,
		Duration:      duration,
		WellBeingTags: tags,
		Snapshot:      s.snapshotFor(ctx, userID, req.SubcategoryID, category),
	}

	known, err := s.loadKnownRecords(ctx, userID, req.Cells)
	if err != nil {
		return nil, err
	}

	mutations, err := domain.Reconcile(userID, req.Cells, assignment, known)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return s.persistMutations(ctx, mutations)
}

// ClearCells empties every selected cell. Records are kept even when every
// slot ends up empty; well-being tags are untouched.
func (s *TrackingService) ClearCells(ctx context.Context, userID string, req ClearCellsRequest) ([]*domain.DayRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	known, err := s.loadKnownRecords(ctx, userID, req.Cells)
	if err != nil {
		return nil, err
	}

	mutations, err := domain.ReconcileClear(userID, req.Cells, known)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return s.persistMutations(ctx, mutations)
}

// GetDay returns the record for one date. Dates never written come back as a
// fresh empty record rather than an error, matching what a grid client
// renders for an untouched day.
func (s *TrackingService) GetDay(ctx context.Context, userID, date string) (*domain.DayRecord, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, mapDomainError(err)
	}

	rec, err := s.store.GetDayRecord(ctx, userID, date)
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewDayRecord(userID, date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day record: %w", err)
	}
	return rec, nil
}

// GetRange returns the stored records with startDate <= date <= endDate,
// ordered by date ascending. Dates inside the range with no record are
// simply absent from the result.
func (s *TrackingService) GetRange(ctx context.Context, userID, startDate, endDate string) ([]*domain.DayRecord, error) {
	if err := domain.ValidateDate(startDate); err != nil {
		return nil, mapDomainError(err)
	}
	if err := domain.ValidateDate(endDate); err != nil {
		return nil, mapDomainError(err)
	}
	if startDate > endDate {
		return nil, domainerrors.Validation("start_date must not be after end_date")
	}

	records, err := s.store.GetDayRecordRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("get day record range: %w", err)
	}
	return records, nil
}

// GetTasks returns the legacy flat task expansion for a date range: one task
// per populated hour slot, ordered by date then hour.
func (s *TrackingService) GetTasks(ctx context.Context, userID, startDate, endDate string) ([]domain.Task, error) {
	records, err := s.GetRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0)
	for _, rec := range records {
		tasks = append(tasks, rec.Tasks()...)
	}
	return tasks, nil
}

// loadKnownRecords fetches the stored record for every distinct date in the
// selection. Dates never written are left out of the map; the reconciler
// synthesizes empty records for those.
func (s *TrackingService) loadKnownRecords(ctx context.Context, userID string, cells []domain.Cell) (map[string]*domain.DayRecord, error) {
	known := make(map[string]*domain.DayRecord)
	seen := make(map[string]struct{})
	for _, c := range cells {
		if _, ok := seen[c.Date]; ok {
			continue
		}
		seen[c.Date] = struct{}{}
		rec, err := s.store.GetDayRecord(ctx, userID, c.Date)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get day record %s: %w", c.Date, err)
		}
		known[c.Date] = rec
	}
	return known, nil
}

// persistMutations upserts each per-date mutation in order and returns the
// stored records, which carry the real identifiers assigned on first write.
func (s *TrackingService) persistMutations(ctx context.Context, mutations []*domain.DayRecord) ([]*domain.DayRecord, error) {
	stored := make([]*domain.DayRecord, 0, len(mutations))
	for _, rec := range mutations {
		out, err := s.store.UpsertDayRecord(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("upsert day record %s: %w", rec.Date, err)
		}
		stored = append(stored, out)
	}

	if s.logger != nil {
		s.logger.Debug("Applied day record mutations", "count", len(stored))
	}
	return stored, nil
}

// snapshotFor resolves the display snapshot for a subcategory reference.
// A dangling id, or an id owned by another user, gets the "Unknown" fallback
// instead of failing the write.
func (s *TrackingService) snapshotFor(ctx context.Context, userID, subcategoryID string, category domain.Category) *domain.SubcategorySnapshot {
	sub, err := s.store.GetSubcategory(ctx, subcategoryID)
	if err != nil || sub.UserID != userID {
		return &domain.SubcategorySnapshot{
			Name:     domain.UnknownSubcategoryName,
			Color:    category.Color(),
			Category: category,
		}
	}
	return sub.Snapshot()
}

// mapDomainError converts the domain package's typed errors into coded ones
// the transport layer knows how to render.
func mapDomainError(err error) error {
	var (
		hourErr *domain.InvalidHourError
		dateErr *domain.InvalidDateError
		catErr  *domain.InvalidCategoryError
		tagErr  *domain.InvalidTagError
	)

	switch {
	case errors.Is(err, domain.ErrEmptySelection):
		return domainerrors.EmptySelection()
	case errors.As(err, &hourErr):
		return domainerrors.InvalidHour(hourErr.Hour)
	case errors.As(err, &dateErr):
		return domainerrors.Validationf("invalid date %q, want YYYY-MM-DD", dateErr.Date)
	case errors.As(err, &catErr):
		return domainerrors.Validationf("unknown category %q", catErr.Value)
	case errors.As(err, &tagErr):
		return domainerrors.Validationf("unknown well-being tag %q", tagErr.Value)
	default:
		return err
	}
}
