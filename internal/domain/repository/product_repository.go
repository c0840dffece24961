package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// Create and Update persist the whole aggregate (product plus variants) in
// one call; Update replaces the variant set rather than patching it.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)

	// Search matches products by name or variant keywords, newest first.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// ListLatest returns the most recently created products for product cards.
	ListLatest(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindConflict reports whether the slug collides with an existing
	// product, excluding the given id. Returns "" when there is no conflict.
	FindConflict(ctx context.Context, slug string, excludeID uuid.UUID) (string, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
