package impl

import (
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shippingServiceFixtures struct {
	service usecase.ShippingUsecase
	stores  *mockRepo.MockStoreRepository
	rates   *mockRepo.MockShippingRateRepository
}

func createTestShippingService(t *testing.T) shippingServiceFixtures {
	stores := mockRepo.NewMockStoreRepository(t)
	rates := mockRepo.NewMockShippingRateRepository(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{stores: stores, shippingRates: rates}}
	service := NewShippingService(txManager, newDiscardLogger())

	return shippingServiceFixtures{service: service, stores: stores, rates: rates}
}

func validRateInput(storeID uuid.UUID) *usecase.UpsertShippingRateInput {
	return &usecase.UpsertShippingRateInput{
		StoreID:            storeID,
		CountryCode:        "de",
		ShippingService:    "DHL Paket",
		ShippingFeePerItem: 5.9,
		DeliveryTimeMin:    2,
		DeliveryTimeMax:    5,
	}
}

func TestShippingService_UpsertRate_Success(t *testing.T) {
	fixtures := createTestShippingService(t)
	ctx := context.Background()
	actor := sellerActor()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: actor.ID}, nil)

	var saved *entity.ShippingRate
	fixtures.rates.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ShippingRate")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.ShippingRate)
		}).
		Return(nil)

	result := fixtures.service.UpsertShippingRate(ctx, actor, validRateInput(storeID))

	require.True(t, result.Success)
	require.NotNil(t, saved)
	// Country codes are normalized to upper case before persistence.
	assert.Equal(t, "DE", saved.CountryCode)
}

func TestShippingService_UpsertRate_NotOwner(t *testing.T) {
	fixtures := createTestShippingService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	result := fixtures.service.UpsertShippingRate(ctx, sellerActor(), validRateInput(storeID))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestShippingService_UpsertRate_MaxBelowMin(t *testing.T) {
	fixtures := createTestShippingService(t)

	input := validRateInput(uuid.New())
	input.DeliveryTimeMin = 7
	input.DeliveryTimeMax = 3

	result := fixtures.service.UpsertShippingRate(context.Background(), sellerActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, "Input validation failed", result.Message)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	fieldErrs, ok := data["fieldErrors"].([]wizard.FieldError)
	require.True(t, ok)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "deliveryTimeMax", fieldErrs[0].Field)
}

func TestShippingService_UpsertRate_AbsentFieldsReportedMissing(t *testing.T) {
	fixtures := createTestShippingService(t)

	result := fixtures.service.UpsertShippingRate(context.Background(), sellerActor(), &usecase.UpsertShippingRateInput{})

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	missing, ok := data["missingFields"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"storeId", "countryCode", "shippingService", "deliveryTimeMin", "deliveryTimeMax"}, missing)
}

func TestShippingService_UpsertRate_MalformedCountryCode(t *testing.T) {
	fixtures := createTestShippingService(t)

	input := validRateInput(uuid.New())
	input.CountryCode = "deu"

	result := fixtures.service.UpsertShippingRate(context.Background(), sellerActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, "Input validation failed", result.Message)

	// A present-but-malformed code is a validation failure, not a missing field.
	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	fieldErrs, ok := data["fieldErrors"].([]wizard.FieldError)
	require.True(t, ok)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "countryCode", fieldErrs[0].Field)
}

func TestShippingService_GetShippingDetails_CountryRateWins(t *testing.T) {
	fixtures := createTestShippingService(t)
	ctx := context.Background()
	storeID := uuid.New()

	rate := &entity.ShippingRate{
		ID:              uuid.New(),
		StoreID:         storeID,
		CountryCode:     "DE",
		ShippingService: "DHL Paket",
		DeliveryTimeMin: 2,
		DeliveryTimeMax: 5,
	}

	fixtures.rates.EXPECT().FindByStoreAndCountry(ctx, storeID, "DE").Return(rate, nil)

	details, err := fixtures.service.GetShippingDetails(ctx, storeID, "de")

	require.NoError(t, err)
	assert.False(t, details.FromDefaults)
	assert.Equal(t, "DHL Paket", details.ShippingService)
	assert.Equal(t, 2, details.DeliveryTimeMin)
}

func TestShippingService_GetShippingDetails_FallsBackToStoreDefaults(t *testing.T) {
	fixtures := createTestShippingService(t)
	ctx := context.Background()
	storeID := uuid.New()

	store := &entity.Store{
		ID:                     storeID,
		DefaultShippingService: "Standard International",
		DefaultDeliveryTimeMin: 5,
		DefaultDeliveryTimeMax: 21,
	}

	fixtures.rates.EXPECT().
		FindByStoreAndCountry(ctx, storeID, "BR").
		Return(nil, repository.ErrShippingRateNotFound)
	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(store, nil)

	details, err := fixtures.service.GetShippingDetails(ctx, storeID, "BR")

	require.NoError(t, err)
	assert.True(t, details.FromDefaults)
	assert.Equal(t, "Standard International", details.ShippingService)
	assert.Equal(t, "BR", details.CountryCode)
	assert.Equal(t, 21, details.DeliveryTimeMax)
}

func TestShippingService_ListStoreRates_RequiresOwnership(t *testing.T) {
	fixtures := createTestShippingService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	_, err := fixtures.service.ListStoreRates(ctx, sellerActor(), storeID)

	require.Error(t, err)
}
