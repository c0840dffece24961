package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the seller-facing catalog authoring operations.
type ProductUsecase interface {
	// UpsertProduct creates or updates a product with its full variant set.
	// The actor must own the target store. Variants are replaced as a whole.
	UpsertProduct(ctx context.Context, actor Actor, input *UpsertProductInput) *Result

	// DeleteProduct removes a product and all of its variants.
	DeleteProduct(ctx context.Context, actor Actor, productID uuid.UUID) *Result

	ListStoreProducts(ctx context.Context, actor Actor, storeID uuid.UUID) ([]*entity.Product, error)
}

// UpsertProductInput defines the full product aggregate for authoring.
type UpsertProductInput struct {
	ID            uuid.UUID      `json:"id,omitempty"`
	StoreID       uuid.UUID      `json:"storeId"`
	CategoryID    uuid.UUID      `json:"categoryId"`
	SubcategoryID uuid.UUID      `json:"subcategoryId"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Brand         string         `json:"brand"`
	Specs         []entity.Spec  `json:"specs,omitempty"`
	Variants      []VariantInput `json:"variants"`
}

// VariantInput defines one variant with its repeated groups. Each group is
// an indexed list owned by the variant; the whole list is submitted per
// save, never ad hoc sibling state.
type VariantInput struct {
	ID          uuid.UUID             `json:"id,omitempty"`
	Name        string                `json:"name"`
	SKU         string                `json:"sku"`
	Description string                `json:"description"`
	Images      []entity.VariantImage `json:"images"`
	Colors      []string              `json:"colors"`
	Sizes       []entity.VariantSize  `json:"sizes"`
	Specs       []entity.Spec         `json:"specs,omitempty"`
	Keywords    []string              `json:"keywords,omitempty"`
	IsSale      bool                  `json:"isSale"`
	SaleEndsAt  *time.Time            `json:"saleEndsAt,omitempty"`
	WeightKg    float64               `json:"weightKg"`
}
