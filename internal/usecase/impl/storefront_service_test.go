package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefrontServiceFixtures struct {
	service    usecase.StorefrontUsecase
	categories *mockRepo.MockCategoryRepository
	stores     *mockRepo.MockStoreRepository
	products   *mockRepo.MockProductRepository
	qrcode     *mockService.MockQRCodeService
}

func createTestStorefrontService(t *testing.T) storefrontServiceFixtures {
	categories := mockRepo.NewMockCategoryRepository(t)
	stores := mockRepo.NewMockStoreRepository(t)
	products := mockRepo.NewMockProductRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		categories: categories,
		stores:     stores,
		products:   products,
	}}
	service := NewStorefrontService(txManager, qrcode, newDiscardLogger())

	return storefrontServiceFixtures{
		service:    service,
		categories: categories,
		stores:     stores,
		products:   products,
		qrcode:     qrcode,
	}
}

func TestStorefrontService_GetNavbarTaxonomy(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	expected := []*entity.Category{
		{
			ID:   uuid.New(),
			Name: "Electronics",
			Subcategories: []*entity.Subcategory{
				{Name: "Phones"},
			},
		},
	}
	fixtures.categories.EXPECT().ListWithSubcategories(ctx).Return(expected, nil)

	categories, err := fixtures.service.GetNavbarTaxonomy(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestStorefrontService_GetStorePage_ActiveStore(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Slug: "crafted-goods", Status: entity.StoreStatusActive}
	products := []*entity.Product{{ID: uuid.New(), Name: "Leather Messenger Bag"}}

	fixtures.stores.EXPECT().FindBySlug(ctx, "crafted-goods").Return(store, nil)
	fixtures.products.EXPECT().ListByStore(ctx, store.ID).Return(products, nil)

	page, err := fixtures.service.GetStorePage(ctx, "crafted-goods")

	require.NoError(t, err)
	assert.Equal(t, store, page.Store)
	assert.Equal(t, products, page.Products)
}

func TestStorefrontService_GetStorePage_PendingStoreHidden(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Slug: "crafted-goods", Status: entity.StoreStatusPending}
	fixtures.stores.EXPECT().FindBySlug(ctx, "crafted-goods").Return(store, nil)

	_, err := fixtures.service.GetStorePage(ctx, "crafted-goods")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestStorefrontService_GetStorePage_UnknownSlug(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	fixtures.stores.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrStoreNotFound)

	_, err := fixtures.service.GetStorePage(ctx, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestStorefrontService_SearchProducts_ClampsLimit(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	fixtures.products.EXPECT().Search(ctx, "bag", defaultProductLimit).Return(nil, nil)

	_, err := fixtures.service.SearchProducts(ctx, "bag", 0)

	require.NoError(t, err)

	fixtures.products.EXPECT().Search(ctx, "bag", maxProductLimit).Return(nil, nil)

	_, err = fixtures.service.SearchProducts(ctx, "bag", 5000)

	require.NoError(t, err)
}

func TestStorefrontService_GetStoreQR_ActiveStore(t *testing.T) {
	fixtures := createTestStorefrontService(t)
	ctx := context.Background()

	store := &entity.Store{ID: uuid.New(), Slug: "crafted-goods", Status: entity.StoreStatusActive}
	png := []byte{0x89, 'P', 'N', 'G'}

	fixtures.stores.EXPECT().FindBySlug(ctx, "crafted-goods").Return(store, nil)
	fixtures.products.EXPECT().ListByStore(ctx, store.ID).Return(nil, nil)
	fixtures.qrcode.EXPECT().GenerateStoreQR("crafted-goods").Return(png, nil)

	got, err := fixtures.service.GetStoreQR(ctx, "crafted-goods")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
