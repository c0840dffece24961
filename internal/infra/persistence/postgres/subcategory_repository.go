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

type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a subcategory repository bound to the given database handle.
func NewSubcategoryRepository(db *gorm.DB) repository.SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	var m model.SubcategoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrSubcategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to find subcategory by id")
	}

	return toSubcategoryDomain(&m), nil
}

func (r *subcategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Subcategory, error) {
	var m model.SubcategoryModel
	if err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrSubcategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to find subcategory by slug")
	}

	return toSubcategoryDomain(&m), nil
}

func (r *subcategoryRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	var ms []*model.SubcategoryModel
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories by category")
	}

	subcategories := make([]*entity.Subcategory, len(ms))
	for i, m := range ms {
		subcategories[i] = toSubcategoryDomain(m)
	}

	return subcategories, nil
}

func (r *subcategoryRepository) FindConflict(ctx context.Context, categoryID uuid.UUID, name, slug string, excludeID uuid.UUID) (string, error) {
	checks := []struct {
		field string
		value string
	}{
		{"name", name},
		{"slug", slug},
	}

	for _, check := range checks {
		var count int64
		err := r.db.WithContext(ctx).Model(&model.SubcategoryModel{}).
			Where("category_id = ? AND "+check.field+" = ? AND id <> ?", categoryID, check.value, excludeID).
			Count(&count).Error
		if err != nil {
			return "", errors.Wrap(err, "failed to check subcategory conflict")
		}
		if count > 0 {
			return check.field, nil
		}
	}

	return "", nil
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	m := fromSubcategoryDomain(subcategory)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create subcategory")
	}
	subcategory.ID = m.ID
	subcategory.CreatedAt = m.CreatedAt
	subcategory.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	result := r.db.WithContext(ctx).Model(&model.SubcategoryModel{}).
		Where("id = ?", subcategory.ID).
		Updates(map[string]any{
			"category_id": subcategory.CategoryID,
			"name":        subcategory.Name,
			"slug":        subcategory.Slug,
			"image_url":   subcategory.ImageURL,
			"image_key":   subcategory.ImageKey,
			"featured":    subcategory.Featured,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subcategory")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrSubcategoryNotFound)
	}

	return nil
}

func (r *subcategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SubcategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subcategory")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrSubcategoryNotFound)
	}

	return nil
}

func toSubcategoryDomain(m *model.SubcategoryModel) *entity.Subcategory {
	return &entity.Subcategory{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Slug:       m.Slug,
		ImageURL:   m.ImageURL,
		ImageKey:   m.ImageKey,
		Featured:   m.Featured,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromSubcategoryDomain(subcategory *entity.Subcategory) *model.SubcategoryModel {
	return &model.SubcategoryModel{
		ID:         subcategory.ID,
		CategoryID: subcategory.CategoryID,
		Name:       subcategory.Name,
		Slug:       subcategory.Slug,
		ImageURL:   subcategory.ImageURL,
		ImageKey:   subcategory.ImageKey,
		Featured:   subcategory.Featured,
	}
}
