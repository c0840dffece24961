package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingRate overrides a store's default shipping configuration for one
// destination country. One rate per store+country.
type ShippingRate struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	CountryCode string // ISO 3166-1 alpha-2

	ShippingService          string
	ShippingFeePerItem       float64
	ShippingFeeForAdditionalItem float64
	ShippingFeePerKg         float64
	ShippingFeeFixed         float64
	DeliveryTimeMin          int // days
	DeliveryTimeMax          int // days

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShippingDetails is the resolved shipping configuration for a store and
// country: the country rate when one exists, the store defaults otherwise.
type ShippingDetails struct {
	StoreID     uuid.UUID
	CountryCode string
	FromDefaults bool

	ShippingService          string
	ShippingFeePerItem       float64
	ShippingFeeForAdditionalItem float64
	ShippingFeePerKg         float64
	ShippingFeeFixed         float64
	DeliveryTimeMin          int
	DeliveryTimeMax          int
}

// DetailsFromStore builds ShippingDetails out of the store's defaults.
func DetailsFromStore(store *Store, countryCode string) *ShippingDetails {
	return &ShippingDetails{
		StoreID:                      store.ID,
		CountryCode:                  countryCode,
		FromDefaults:                 true,
		ShippingService:              store.DefaultShippingService,
		ShippingFeePerItem:           store.DefaultShippingFeePerItem,
		ShippingFeeForAdditionalItem: store.DefaultShippingFeeForAdditionalItem,
		ShippingFeePerKg:             store.DefaultShippingFeePerKg,
		ShippingFeeFixed:             store.DefaultShippingFeeFixed,
		DeliveryTimeMin:              store.DefaultDeliveryTimeMin,
		DeliveryTimeMax:              store.DefaultDeliveryTimeMax,
	}
}

// DetailsFromRate builds ShippingDetails out of a country-specific rate.
func DetailsFromRate(rate *ShippingRate) *ShippingDetails {
	return &ShippingDetails{
		StoreID:                      rate.StoreID,
		CountryCode:                  rate.CountryCode,
		ShippingService:              rate.ShippingService,
		ShippingFeePerItem:           rate.ShippingFeePerItem,
		ShippingFeeForAdditionalItem: rate.ShippingFeeForAdditionalItem,
		ShippingFeePerKg:             rate.ShippingFeePerKg,
		ShippingFeeFixed:             rate.ShippingFeeFixed,
		DeliveryTimeMin:              rate.DeliveryTimeMin,
		DeliveryTimeMax:              rate.DeliveryTimeMax,
	}
}
