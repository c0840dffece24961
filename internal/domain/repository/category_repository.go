package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// ListWithSubcategories returns all categories with their subcategories
	// preloaded, for the storefront navbar.
	ListWithSubcategories(ctx context.Context) ([]*entity.Category, error)

	// FindConflict reports which unique field (name or slug) collides with an
	// existing category, excluding the given id so updates don't conflict
	// with themselves. Returns "" when there is no conflict.
	FindConflict(ctx context.Context, name, slug string, excludeID uuid.UUID) (string, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
