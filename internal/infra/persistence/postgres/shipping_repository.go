package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shippingRateRepository struct {
	db *gorm.DB
}

// NewShippingRateRepository creates a shipping rate repository bound to the given database handle.
func NewShippingRateRepository(db *gorm.DB) repository.ShippingRateRepository {
	return &shippingRateRepository{db: db}
}

func (r *shippingRateRepository) FindByStoreAndCountry(ctx context.Context, storeID uuid.UUID, countryCode string) (*entity.ShippingRate, error) {
	var m model.ShippingRateModel
	err := r.db.WithContext(ctx).
		First(&m, "store_id = ? AND country_code = ?", storeID, countryCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrShippingRateNotFound)
		}

		return nil, errors.Wrap(err, "failed to find shipping rate")
	}

	return toShippingRateDomain(&m), nil
}

func (r *shippingRateRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.ShippingRate, error) {
	var ms []*model.ShippingRateModel
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("country_code").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping rates by store")
	}

	rates := make([]*entity.ShippingRate, len(ms))
	for i, m := range ms {
		rates[i] = toShippingRateDomain(m)
	}

	return rates, nil
}

// Upsert inserts the rate or, on a store+country collision, overwrites the
// existing row's fee and delivery columns.
func (r *shippingRateRepository) Upsert(ctx context.Context, rate *entity.ShippingRate) error {
	m := fromShippingRateDomain(rate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "country_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"shipping_service",
				"shipping_fee_per_item",
				"shipping_fee_for_additional_item",
				"shipping_fee_per_kg",
				"shipping_fee_fixed",
				"delivery_time_min",
				"delivery_time_max",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert shipping rate")
	}
	rate.ID = m.ID
	rate.CreatedAt = m.CreatedAt
	rate.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *shippingRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ShippingRateModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shipping rate")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrShippingRateNotFound)
	}

	return nil
}

func toShippingRateDomain(m *model.ShippingRateModel) *entity.ShippingRate {
	return &entity.ShippingRate{
		ID:          m.ID,
		StoreID:     m.StoreID,
		CountryCode: m.CountryCode,

		ShippingService:              m.ShippingService,
		ShippingFeePerItem:           m.ShippingFeePerItem,
		ShippingFeeForAdditionalItem: m.ShippingFeeForAdditionalItem,
		ShippingFeePerKg:             m.ShippingFeePerKg,
		ShippingFeeFixed:             m.ShippingFeeFixed,
		DeliveryTimeMin:              m.DeliveryTimeMin,
		DeliveryTimeMax:              m.DeliveryTimeMax,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromShippingRateDomain(rate *entity.ShippingRate) *model.ShippingRateModel {
	return &model.ShippingRateModel{
		ID:          rate.ID,
		StoreID:     rate.StoreID,
		CountryCode: rate.CountryCode,

		ShippingService:              rate.ShippingService,
		ShippingFeePerItem:           rate.ShippingFeePerItem,
		ShippingFeeForAdditionalItem: rate.ShippingFeeForAdditionalItem,
		ShippingFeePerKg:             rate.ShippingFeePerKg,
		ShippingFeeFixed:             rate.ShippingFeeFixed,
		DeliveryTimeMin:              rate.DeliveryTimeMin,
		DeliveryTimeMax:              rate.DeliveryTimeMax,
	}
}
