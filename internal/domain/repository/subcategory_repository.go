package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubcategoryNotFound is returned when a subcategory is not found.
var ErrSubcategoryNotFound = errors.New("subcategory not found")

// SubcategoryRepository defines the standard operations for subcategory persistence.
type SubcategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error)

	// FindConflict reports which unique field (name or slug) collides with an
	// existing subcategory of the same parent category, excluding the given
	// id. Returns "" when there is no conflict.
	FindConflict(ctx context.Context, categoryID uuid.UUID, name, slug string, excludeID uuid.UUID) (string, error)

	Create(ctx context.Context, subcategory *entity.Subcategory) error
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
