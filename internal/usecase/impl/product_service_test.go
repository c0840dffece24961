package impl

import (
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service  usecase.ProductUsecase
	stores   *mockRepo.MockStoreRepository
	products *mockRepo.MockProductRepository
	media    *mockService.MockMediaStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	stores := mockRepo.NewMockStoreRepository(t)
	products := mockRepo.NewMockProductRepository(t)
	media := mockService.NewMockMediaStorage(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{stores: stores, products: products}}
	service := NewProductService(txManager, media, newDiscardLogger())

	return productServiceFixtures{
		service:  service,
		stores:   stores,
		products: products,
		media:    media,
	}
}

func validProductInput(storeID uuid.UUID) *usecase.UpsertProductInput {
	return &usecase.UpsertProductInput{
		StoreID:    storeID,
		CategoryID: uuid.New(),
		Name:       "Leather Messenger Bag",
		Brand:      "Crafted Goods",
		Variants: []usecase.VariantInput{
			{
				Name:   "Brown",
				SKU:    "CG-MB-BR",
				Colors: []string{"brown"},
				Sizes: []entity.VariantSize{
					{Size: "One Size", Quantity: 12, Price: 129.0},
				},
			},
		},
	}
}

func TestProductService_UpsertProduct_Create_Success(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()
	actor := sellerActor()
	storeID := uuid.New()
	input := validProductInput(storeID)

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: actor.ID}, nil)
	fixtures.products.EXPECT().FindConflict(ctx, "leather-messenger-bag", uuid.Nil).Return("", nil)

	var created *entity.Product
	fixtures.products.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Product)
		}).
		Return(nil)

	result := fixtures.service.UpsertProduct(ctx, actor, input)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.StatusCode)

	require.NotNil(t, created)
	assert.Equal(t, "leather-messenger-bag", created.Slug)
	require.Len(t, created.Variants, 1)
	assert.Equal(t, created.ID, created.Variants[0].ProductID)
	assert.NotEqual(t, uuid.Nil, created.Variants[0].ID)
}

func TestProductService_UpsertProduct_SlugTakenGetsSuffix(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()
	actor := sellerActor()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: actor.ID}, nil)
	fixtures.products.EXPECT().FindConflict(ctx, "leather-messenger-bag", uuid.Nil).Return("slug", nil)

	var created *entity.Product
	fixtures.products.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Product)
		}).
		Return(nil)

	result := fixtures.service.UpsertProduct(ctx, actor, validProductInput(storeID))

	require.True(t, result.Success)
	require.NotNil(t, created)
	assert.NotEqual(t, "leather-messenger-bag", created.Slug)
	assert.Contains(t, created.Slug, "leather-messenger-bag-")
}

func TestProductService_UpsertProduct_NotStoreOwner(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	result := fixtures.service.UpsertProduct(ctx, sellerActor(), validProductInput(storeID))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestProductService_UpsertProduct_NonSeller(t *testing.T) {
	fixtures := createTestProductService(t)

	result := fixtures.service.UpsertProduct(context.Background(), userActor(), validProductInput(uuid.New()))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestProductService_UpsertProduct_MissingVariants(t *testing.T) {
	fixtures := createTestProductService(t)

	input := validProductInput(uuid.New())
	input.Variants = nil

	result := fixtures.service.UpsertProduct(context.Background(), sellerActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data["missingFields"], "variants")
}

func TestProductService_DeleteProduct_CleansUpImages(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()
	actor := sellerActor()
	storeID := uuid.New()

	product := &entity.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		Variants: []*entity.ProductVariant{
			{
				Images: []entity.VariantImage{
					{URL: "https://media.example.com/p/1.png", Key: "products/1.png"},
					{URL: "https://media.example.com/p/2.png", Key: "products/2.png"},
				},
			},
		},
	}

	fixtures.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: actor.ID}, nil)
	fixtures.products.EXPECT().Delete(ctx, product.ID).Return(nil)
	fixtures.media.EXPECT().Delete(ctx, "products/1.png").Return(nil)
	fixtures.media.EXPECT().Delete(ctx, "products/2.png").Return(nil)

	result := fixtures.service.DeleteProduct(ctx, actor, product.ID)

	require.True(t, result.Success)
}

func TestProductService_ListStoreProducts(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()
	actor := sellerActor()
	storeID := uuid.New()

	expected := []*entity.Product{{ID: uuid.New(), Name: "Leather Messenger Bag"}}

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: actor.ID}, nil)
	fixtures.products.EXPECT().ListByStore(ctx, storeID).Return(expected, nil)

	products, err := fixtures.service.ListStoreProducts(ctx, actor, storeID)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
