package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingUsecase defines shipping-rate configuration per store and country.
type ShippingUsecase interface {
	// UpsertShippingRate creates or replaces the rate for one destination
	// country of a store the actor owns.
	UpsertShippingRate(ctx context.Context, actor Actor, input *UpsertShippingRateInput) *Result

	ListStoreRates(ctx context.Context, actor Actor, storeID uuid.UUID) ([]*entity.ShippingRate, error)

	// GetShippingDetails resolves the effective shipping configuration for
	// a store and country, falling back to the store defaults when no
	// country rate exists.
	GetShippingDetails(ctx context.Context, storeID uuid.UUID, countryCode string) (*entity.ShippingDetails, error)
}

// UpsertShippingRateInput defines the data for one store+country rate.
type UpsertShippingRateInput struct {
	StoreID     uuid.UUID `json:"storeId"`
	CountryCode string    `json:"countryCode"`

	ShippingService              string  `json:"shippingService"`
	ShippingFeePerItem           float64 `json:"shippingFeePerItem"`
	ShippingFeeForAdditionalItem float64 `json:"shippingFeeForAdditionalItem"`
	ShippingFeePerKg             float64 `json:"shippingFeePerKg"`
	ShippingFeeFixed             float64 `json:"shippingFeeFixed"`
	DeliveryTimeMin              int     `json:"deliveryTimeMin"`
	DeliveryTimeMax              int     `json:"deliveryTimeMax"`
}
