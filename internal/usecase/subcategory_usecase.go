package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SubcategoryUsecase defines the admin-facing subcategory operations.
type SubcategoryUsecase interface {
	// UpsertSubcategory creates or updates a subcategory. Admin only.
	// Name and slug uniqueness is scoped to the parent category.
	UpsertSubcategory(ctx context.Context, actor Actor, input *UpsertSubcategoryInput) *Result

	// DeleteSubcategory removes a subcategory and its media. Admin only.
	DeleteSubcategory(ctx context.Context, actor Actor, id uuid.UUID) *Result

	ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error)
}

// UpsertSubcategoryInput defines the data required to create or update a subcategory.
type UpsertSubcategoryInput struct {
	ID         uuid.UUID `json:"id,omitempty"`
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	ImageURL   string    `json:"image"`
	ImageKey   string    `json:"imageKey"`
	Featured   bool      `json:"featured"`
}
