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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository bound to the given database handle.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var m model.CategoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&m), nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var m model.CategoryModel
	if err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&m), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var ms []*model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, len(ms))
	for i, m := range ms {
		categories[i] = toCategoryDomain(m)
	}

	return categories, nil
}

func (r *categoryRepository) ListWithSubcategories(ctx context.Context) ([]*entity.Category, error) {
	var ms []*model.CategoryModel
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcategories.name")
		}).
		Order("name").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories with subcategories")
	}

	categories := make([]*entity.Category, len(ms))
	for i, m := range ms {
		categories[i] = toCategoryDomain(m)
	}

	return categories, nil
}

func (r *categoryRepository) FindConflict(ctx context.Context, name, slug string, excludeID uuid.UUID) (string, error) {
	checks := []struct {
		field string
		value string
	}{
		{"name", name},
		{"slug", slug},
	}

	for _, check := range checks {
		var count int64
		err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).
			Where(check.field+" = ? AND id <> ?", check.value, excludeID).
			Count(&count).Error
		if err != nil {
			return "", errors.Wrap(err, "failed to check category conflict")
		}
		if count > 0 {
			return check.field, nil
		}
	}

	return "", nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	m := fromCategoryDomain(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create category")
	}
	category.ID = m.ID
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":      category.Name,
			"slug":      category.Slug,
			"image_url": category.ImageURL,
			"image_key": category.ImageKey,
			"featured":  category.Featured,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrCategoryNotFound)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrCategoryNotFound)
	}

	return nil
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	category := &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		ImageURL:  m.ImageURL,
		ImageKey:  m.ImageKey,
		Featured:  m.Featured,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Subcategories) > 0 {
		category.Subcategories = make([]*entity.Subcategory, len(m.Subcategories))
		for i, sub := range m.Subcategories {
			category.Subcategories[i] = toSubcategoryDomain(sub)
		}
	}

	return category
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ImageURL: category.ImageURL,
		ImageKey: category.ImageKey,
		Featured: category.Featured,
	}
}
