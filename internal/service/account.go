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

// AccountService handles the current user's profile and onboarding.
type AccountService struct {
	store  store.Store
	logger *slog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(store store.Store, logger *slog.Logger) *AccountService {
	return &AccountService{store: store, logger: logger}
}

// UpdateProfileRequest contains profile fields a user may change.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
}

// OnboardingRequest contains the profile answers collected during onboarding.
type OnboardingRequest struct {
	Occupation string `json:"occupation" validate:"required"`
	Age        int    `json:"age" validate:"required,gt=0"`
	Focus      string `json:"focus" validate:"required"`
}

// GetUser returns a user by ID.
func (s *AccountService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates a user's mutable profile fields.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.DisplayName
	user.Touch()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// CompleteOnboarding records the onboarding answers, marks the user as
// onboarded, and seeds the default subcategory sets on first completion.
func (s *AccountService) CompleteOnboarding(ctx context.Context, userID string, req OnboardingRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Occupation = req.Occupation
	user.Age = req.Age
	user.Focus = req.Focus
	user.Onboarded = true
	user.Touch()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if err := s.seedDefaultSubcategories(ctx, userID); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Onboarding complete", "user_id", userID)
	}

	return user, nil
}

// seedDefaultSubcategories creates the starter subcategory sets for a user.
// Skipped when the user already has subcategories, so repeated onboarding
// submissions don't duplicate them.
func (s *AccountService) seedDefaultSubcategories(ctx context.Context, userID string) error {
	existing, err := s.store.ListSubcategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("list subcategories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, sub := range domain.DefaultSubcategories() {
		subID, err := id.Generate("sub")
		if err != nil {
			return fmt.Errorf("generate subcategory ID: %w", err)
		}
		sub.ID = subID
		sub.UserID = userID
		sub.InitTimestamps()

		if err := s.store.CreateSubcategory(ctx, &sub); err != nil {
			return fmt.Errorf("seed subcategory %q: %w", sub.Name, err)
		}
	}
	return nil
}
