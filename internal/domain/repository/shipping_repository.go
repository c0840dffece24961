package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShippingRateNotFound is returned when no rate exists for a store+country pair.
var ErrShippingRateNotFound = errors.New("shipping rate not found")

// ShippingRateRepository defines the standard operations for shipping rate persistence.
type ShippingRateRepository interface {
	// FindByStoreAndCountry retrieves the rate for one destination country.
	FindByStoreAndCountry(ctx context.Context, storeID uuid.UUID, countryCode string) (*entity.ShippingRate, error)

	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ShippingRate, error)

	// Upsert creates the rate or replaces the existing one for the same
	// store+country pair.
	Upsert(ctx context.Context, rate *entity.ShippingRate) error

	Delete(ctx context.Context, id uuid.UUID) error
}
