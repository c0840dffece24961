package impl

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

// storefrontService implements the StorefrontUsecase interface: the public,
// unauthenticated read surface of the platform.
type storefrontService struct {
	txManager repository.TransactionManager
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(
	txManager repository.TransactionManager,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	return &storefrontService{
		txManager: txManager,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// GetNavbarTaxonomy returns all categories with subcategories preloaded.
func (srv *storefrontService) GetNavbarTaxonomy(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().ListWithSubcategories(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load navbar taxonomy")
	}

	return categories, nil
}

// SearchProducts matches products by name or variant keywords, newest first.
func (srv *storefrontService) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	limit = clampLimit(limit)

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().Search(ctx, query, limit)
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ListLatestProducts returns the newest products for the home page cards.
func (srv *storefrontService) ListLatestProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	limit = clampLimit(limit)

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().ListLatest(ctx, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list latest products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	return products, nil
}

// GetStorePage returns an active store with its products. Stores that are
// pending, banned or disabled look like missing stores to the public.
func (srv *storefrontService) GetStorePage(ctx context.Context, slug string) (*usecase.StorePage, error) {
	var page *usecase.StorePage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		store, err := repoFactory.StoreRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}
		if store.Status != entity.StoreStatusActive {
			return errNotFound
		}

		products, err := repoFactory.ProductRepo().ListByStore(ctx, store.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list store products")
		}
		page = &usecase.StorePage{Store: store, Products: products}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store page")
	}

	return page, nil
}

// GetStoreQR renders a PNG QR code linking to an active store's public page.
func (srv *storefrontService) GetStoreQR(ctx context.Context, slug string) ([]byte, error) {
	page, err := srv.GetStorePage(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateStoreQR(page.Store.Slug)
	if err != nil {
		srv.logger.Error("failed to generate store QR code", "slug", slug, "error", err)

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultProductLimit
	}
	if limit > maxProductLimit {
		return maxProductLimit
	}

	return limit
}
