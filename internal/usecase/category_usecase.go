package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines the admin-facing category operations plus the
// public reads the storefront needs.
type CategoryUsecase interface {
	// UpsertCategory creates the category when input.ID is zero, updates it
	// otherwise. Admin only. Uniqueness of name and slug is checked at
	// commit time, excluding the record's own id on update.
	UpsertCategory(ctx context.Context, actor Actor, input *UpsertCategoryInput) *Result

	// DeleteCategory removes a category and its media. Admin only.
	DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) *Result

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

// UpsertCategoryInput defines the data required to create or update a category.
type UpsertCategoryInput struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	ImageURL string    `json:"image"`
	ImageKey string    `json:"imageKey"`
	Featured bool      `json:"featured"`
}
