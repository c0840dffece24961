package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by a store. A product is a thin shell
// around its variants; all sellable data (images, sizes, prices) lives on
// the variant aggregate.
type Product struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	Name          string
	Slug          string
	Description   string
	Brand         string
	Specs         []Spec
	Variants      []*ProductVariant
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductVariant is the sellable unit of a product. Its repeated groups
// (images, colors, sizes, specs, keywords) are indexed lists owned by the
// variant; they are replaced as a whole on update rather than patched
// element by element.
type ProductVariant struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Slug        string
	SKU         string
	Description string
	Images      []VariantImage
	Colors      []string
	Sizes       []VariantSize
	Specs       []Spec
	Keywords    []string
	IsSale      bool
	SaleEndsAt  *time.Time
	WeightKg    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VariantImage holds an uploaded image URL together with the media host
// delete key returned at upload time.
type VariantImage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// VariantSize is one purchasable size row of a variant.
type VariantSize struct {
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"` // percentage, 0 when not on sale
}

// Spec is a free-form name/value attribute row shared by products and variants.
type Spec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AddSize appends a size row to the variant.
func (v *ProductVariant) AddSize(size VariantSize) {
	v.Sizes = append(v.Sizes, size)
}

// RemoveSize deletes the size row at index i, preserving order.
func (v *ProductVariant) RemoveSize(i int) {
	if i < 0 || i >= len(v.Sizes) {
		return
	}
	v.Sizes = append(v.Sizes[:i], v.Sizes[i+1:]...)
}

// UpdateSize replaces the size row at index i.
func (v *ProductVariant) UpdateSize(i int, size VariantSize) {
	if i < 0 || i >= len(v.Sizes) {
		return
	}
	v.Sizes[i] = size
}
