package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a store repository bound to the given database handle.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var m model.StoreModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrStoreNotFound)
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&m), nil
}

func (r *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var m model.StoreModel
	if err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrStoreNotFound)
		}

		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	return toStoreDomain(&m), nil
}

func (r *storeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	var ms []*model.StoreModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by owner")
	}

	return toStoreDomains(ms), nil
}

func (r *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var ms []*model.StoreModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return toStoreDomains(ms), nil
}

func (r *storeRepository) FindConflict(ctx context.Context, name, slug, email, phone string, excludeID uuid.UUID) (string, error) {
	checks := []struct {
		field string
		value string
	}{
		{"name", name},
		{"slug", slug},
		{"email", email},
		{"phone", phone},
	}

	for _, check := range checks {
		if check.value == "" {
			continue
		}
		var count int64
		err := r.db.WithContext(ctx).Model(&model.StoreModel{}).
			Where(check.field+" = ? AND id <> ?", check.value, excludeID).
			Count(&count).Error
		if err != nil {
			return "", errors.Wrap(err, "failed to check store conflict")
		}
		if count > 0 {
			return check.field, nil
		}
	}

	return "", nil
}

func (r *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	m := fromStoreDomain(store)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create store")
	}
	store.ID = m.ID
	store.CreatedAt = m.CreatedAt
	store.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	m := fromStoreDomain(store)
	result := r.db.WithContext(ctx).Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":                                    m.Name,
			"slug":                                    m.Slug,
			"description":                             m.Description,
			"email":                                   m.Email,
			"phone":                                   m.Phone,
			"logo_url":                                m.LogoURL,
			"logo_key":                                m.LogoKey,
			"cover_url":                               m.CoverURL,
			"cover_key":                               m.CoverKey,
			"featured":                                m.Featured,
			"return_policy":                           m.ReturnPolicy,
			"default_shipping_service":                m.DefaultShippingService,
			"default_shipping_fee_per_item":           m.DefaultShippingFeePerItem,
			"default_shipping_fee_for_additional_item": m.DefaultShippingFeeForAdditionalItem,
			"default_shipping_fee_per_kg":             m.DefaultShippingFeePerKg,
			"default_shipping_fee_fixed":              m.DefaultShippingFeeFixed,
			"default_delivery_time_min":               m.DefaultDeliveryTimeMin,
			"default_delivery_time_max":               m.DefaultDeliveryTimeMax,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrStoreNotFound)
	}

	return nil
}

func (r *storeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error {
	result := r.db.WithContext(ctx).Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store status")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrStoreNotFound)
	}

	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.StoreModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrStoreNotFound)
	}

	return nil
}

func toStoreDomains(ms []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, len(ms))
	for i, m := range ms {
		stores[i] = toStoreDomain(m)
	}

	return stores
}

func toStoreDomain(m *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Email:       m.Email,
		Phone:       m.Phone,
		LogoURL:     m.LogoURL,
		LogoKey:     m.LogoKey,
		CoverURL:    m.CoverURL,
		CoverKey:    m.CoverKey,
		Status:      entity.StoreStatus(m.Status),
		Featured:    m.Featured,

		ReturnPolicy:                        m.ReturnPolicy,
		DefaultShippingService:              m.DefaultShippingService,
		DefaultShippingFeePerItem:           m.DefaultShippingFeePerItem,
		DefaultShippingFeeForAdditionalItem: m.DefaultShippingFeeForAdditionalItem,
		DefaultShippingFeePerKg:             m.DefaultShippingFeePerKg,
		DefaultShippingFeeFixed:             m.DefaultShippingFeeFixed,
		DefaultDeliveryTimeMin:              m.DefaultDeliveryTimeMin,
		DefaultDeliveryTimeMax:              m.DefaultDeliveryTimeMax,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromStoreDomain(store *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:          store.ID,
		OwnerID:     store.OwnerID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Email:       store.Email,
		Phone:       store.Phone,
		LogoURL:     store.LogoURL,
		LogoKey:     store.LogoKey,
		CoverURL:    store.CoverURL,
		CoverKey:    store.CoverKey,
		Status:      string(store.Status),
		Featured:    store.Featured,

		ReturnPolicy:                        store.ReturnPolicy,
		DefaultShippingService:              store.DefaultShippingService,
		DefaultShippingFeePerItem:           store.DefaultShippingFeePerItem,
		DefaultShippingFeeForAdditionalItem: store.DefaultShippingFeeForAdditionalItem,
		DefaultShippingFeePerKg:             store.DefaultShippingFeePerKg,
		DefaultShippingFeeFixed:             store.DefaultShippingFeeFixed,
		DefaultDeliveryTimeMin:              store.DefaultDeliveryTimeMin,
		DefaultDeliveryTimeMax:              store.DefaultDeliveryTimeMax,
	}
}
