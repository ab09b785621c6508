package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daygridapp/daygrid-server/internal/domain"
	domainerrors "github.com/daygridapp/daygrid-server/internal/errors"
	"github.com/daygridapp/daygrid-server/internal/id"
	"github.com/daygridapp/daygrid-server/internal/store"
)

// GoalService manages daily hour-target goals and computes their progress
// against recorded days.
type GoalService struct {
	store    store.Store
	tracking *TrackingService
	logger   *slog.Logger
}

// NewGoalService creates a new goal service.
func NewGoalService(store store.Store, tracking *TrackingService, logger *slog.Logger) *GoalService {
	return &GoalService{store: store, tracking: tracking, logger: logger}
}

// CreateGoalRequest contains the fields for a new goal.
type CreateGoalRequest struct {
	Category      string  `json:"category" validate:"required"`
	SubcategoryID string  `json:"subcategory_id" validate:"required"`
	TargetHours   float64 `json:"target_hours" validate:"required,gt=0,max=24"`
}

// UpdateGoalRequest contains the mutable goal fields.
type UpdateGoalRequest struct {
	TargetHours float64 `json:"target_hours" validate:"required,gt=0,max=24"`
}

// Create adds a daily goal for a subcategory.
func (s *GoalService) Create(ctx context.Context, userID string, req CreateGoalRequest) (*domain.Goal, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, mapDomainError(err)
	}

	goalID, err := id.Generate("goal")
	if err != nil {
		return nil, fmt.Errorf("generate goal ID: %w", err)
	}

	goal := &domain.Goal{
		Syncable: domain.Syncable{
			ID: goalID,
		},
		UserID:        userID,
		Category:      category,
		SubcategoryID: req.SubcategoryID,
		TargetHours:   req.TargetHours,
	}
	goal.InitTimestamps()

	if err := s.store.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// Get returns a goal owned by the user.
func (s *GoalService) Get(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("goal not found")
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, domainerrors.NotFound("goal not found")
	}
	return goal, nil
}

// Update changes a goal's daily hour target.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, req UpdateGoalRequest) (*domain.Goal, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	goal, err := s.Get(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.TargetHours = req.TargetHours
	goal.Touch()

	if err := s.store.UpdateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

// Delete soft-deletes a goal.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := s.Get(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.store.DeleteGoal(ctx, goalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

// List returns the user's goals ordered by creation time.
func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// Progress returns every goal's progress against one date's record. A date
// never written counts as zero logged hours for all goals.
func (s *GoalService) Progress(ctx context.Context, userID, date string) ([]domain.GoalProgress, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, mapDomainError(err)
	}

	goals, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec, err := s.tracking.GetDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, goal.Progress(rec))
	}
	return progress, nil
}
