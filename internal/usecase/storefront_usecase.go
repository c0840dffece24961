package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// StorefrontUsecase is the public read surface behind the customer-facing
// shell: navbar taxonomy, search, product cards and store pages.
type StorefrontUsecase interface {
	// GetNavbarTaxonomy returns all categories with subcategories preloaded.
	GetNavbarTaxonomy(ctx context.Context) ([]*entity.Category, error)

	// SearchProducts matches products by name or variant keywords.
	SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// ListLatestProducts returns the newest products for product cards.
	ListLatestProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// GetStorePage returns an active store with its products. Stores that
	// are pending, banned or disabled are not visible.
	GetStorePage(ctx context.Context, slug string) (*StorePage, error)

	// GetStoreQR renders a PNG QR code linking to the store page.
	GetStoreQR(ctx context.Context, slug string) ([]byte, error)
}

// StorePage is the public store view.
type StorePage struct {
	Store    *entity.Store     `json:"store"`
	Products []*entity.Product `json:"products"`
}
