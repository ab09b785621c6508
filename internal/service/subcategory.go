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

// SubcategoryService manages a user's activity subcategories.
// Deleting one never touches saved day records; hour entries keep the id and
// display falls back to "Unknown".
type SubcategoryService struct {
	store  store.Store
	logger *slog.Logger
}

// NewSubcategoryService creates a new subcategory service.
func NewSubcategoryService(store store.Store, logger *slog.Logger) *SubcategoryService {
	return &SubcategoryService{store: store, logger: logger}
}

// CreateSubcategoryRequest contains the fields for a new subcategory.
type CreateSubcategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"required"`
	Color    string `json:"color"`
}

// UpdateSubcategoryRequest contains the mutable subcategory fields.
type UpdateSubcategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color"`
}

// Create adds a subcategory under the given category.
func (s *SubcategoryService) Create(ctx context.Context, userID string, req CreateSubcategoryRequest) (*domain.Subcategory, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, mapDomainError(err)
	}

	subID, err := id.Generate("sub")
	if err != nil {
		return nil, fmt.Errorf("generate subcategory ID: %w", err)
	}

	color := req.Color
	if color == "" {
		color = category.Color()
	}

	sub := &domain.Subcategory{
		Syncable: domain.Syncable{
			ID: subID,
		},
		UserID:   userID,
		Name:     req.Name,
		Category: category,
		Color:    color,
	}
	sub.InitTimestamps()

	if err := s.store.CreateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return sub, nil
}

// Get returns a subcategory owned by the user.
func (s *SubcategoryService) Get(ctx context.Context, userID, subID string) (*domain.Subcategory, error) {
	sub, err := s.store.GetSubcategory(ctx, subID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("subcategory not found")
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	if sub.UserID != userID {
		return nil, domainerrors.NotFound("subcategory not found")
	}
	return sub, nil
}

// Update renames or recolors a subcategory. The category is fixed at
// creation; entries saved against the old name are unaffected because they
// carry their own display snapshot.
func (s *SubcategoryService) Update(ctx context.Context, userID, subID string, req UpdateSubcategoryRequest) (*domain.Subcategory, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	sub, err := s.Get(ctx, userID, subID)
	if err != nil {
		return nil, err
	}

	sub.Name = req.Name
	if req.Color != "" {
		sub.Color = req.Color
	}
	sub.Touch()

	if err := s.store.UpdateSubcategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("update subcategory: %w", err)
	}
	return sub, nil
}

// Delete soft-deletes a subcategory. No cascade into day records or goals.
func (s *SubcategoryService) Delete(ctx context.Context, userID, subID string) error {
	if _, err := s.Get(ctx, userID, subID); err != nil {
		return err
	}

	if err := s.store.DeleteSubcategory(ctx, subID); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Subcategory deleted", "subcategory_id", subID, "user_id", userID)
	}
	return nil
}

// List returns the user's subcategories ordered by category, then name.
func (s *SubcategoryService) List(ctx context.Context, userID string) ([]*domain.Subcategory, error) {
	subs, err := s.store.ListSubcategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subs, nil
}
