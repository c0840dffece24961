package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository bound to the given database handle.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	err := r.db.WithContext(ctx).Preload("Variants").First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&m)
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var m model.ProductModel
	err := r.db.WithContext(ctx).Preload("Variants").First(&m, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&m)
}

func (r *productRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	var ms []*model.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by store")
	}

	return toProductDomains(ms)
}

func (r *productRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	pattern := "%" + query + "%"

	var ms []*model.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("id IN (?)", r.db.Model(&model.ProductModel{}).
			Select("products.id").
			Joins("LEFT JOIN product_variants ON product_variants.product_id = products.id").
			Where("products.name ILIKE ? OR product_variants.name ILIKE ? OR product_variants.keywords::text ILIKE ?",
				pattern, pattern, pattern)).
		Order("created_at DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomains(ms)
}

func (r *productRepository) ListLatest(ctx context.Context, limit int) ([]*entity.Product, error) {
	var ms []*model.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Order("created_at DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest products")
	}

	return toProductDomains(ms)
}

func (r *productRepository) FindConflict(ctx context.Context, slug string, excludeID uuid.UUID) (string, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return "", errors.Wrap(err, "failed to check product conflict")
	}
	if count > 0 {
		return "slug", nil
	}

	return "", nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt

	return nil
}

// Update persists the product row and replaces its variant set as a whole.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	m, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id":    m.CategoryID,
			"subcategory_id": m.SubcategoryID,
			"name":           m.Name,
			"slug":           m.Slug,
			"description":    m.Description,
			"brand":          m.Brand,
			"specs":          m.Specs,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrProductNotFound)
	}

	err = r.db.WithContext(ctx).
		Delete(&model.ProductVariantModel{}, "product_id = ?", product.ID).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear product variants")
	}
	if len(m.Variants) > 0 {
		if err := r.db.WithContext(ctx).Create(m.Variants).Error; err != nil {
			return errors.Wrap(err, "failed to recreate product variants")
		}
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return errors.WithStack(repository.ErrProductNotFound)
	}

	return nil
}

func toProductDomains(ms []*model.ProductModel) ([]*entity.Product, error) {
	products := make([]*entity.Product, len(ms))
	for i, m := range ms {
		product, err := toProductDomain(m)
		if err != nil {
			return nil, err
		}
		products[i] = product
	}

	return products, nil
}

func toProductDomain(m *model.ProductModel) (*entity.Product, error) {
	var specs []entity.Spec
	if err := decodeJSONColumn(m.Specs, &specs); err != nil {
		return nil, errors.Wrap(err, "failed to decode product specs")
	}

	product := &entity.Product{
		ID:            m.ID,
		StoreID:       m.StoreID,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		Name:          m.Name,
		Slug:          m.Slug,
		Description:   m.Description,
		Brand:         m.Brand,
		Specs:         specs,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if len(m.Variants) > 0 {
		product.Variants = make([]*entity.ProductVariant, len(m.Variants))
		for i, vm := range m.Variants {
			variant, err := toVariantDomain(vm)
			if err != nil {
				return nil, err
			}
			product.Variants[i] = variant
		}
	}

	return product, nil
}

func toVariantDomain(m *model.ProductVariantModel) (*entity.ProductVariant, error) {
	variant := &entity.ProductVariant{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Name:        m.Name,
		Slug:        m.Slug,
		SKU:         m.SKU,
		Description: m.Description,
		IsSale:      m.IsSale,
		SaleEndsAt:  m.SaleEndsAt,
		WeightKg:    m.WeightKg,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if err := decodeJSONColumn(m.Images, &variant.Images); err != nil {
		return nil, errors.Wrap(err, "failed to decode variant images")
	}
	if err := decodeJSONColumn(m.Colors, &variant.Colors); err != nil {
		return nil, errors.Wrap(err, "failed to decode variant colors")
	}
	if err := decodeJSONColumn(m.Sizes, &variant.Sizes); err != nil {
		return nil, errors.Wrap(err, "failed to decode variant sizes")
	}
	if err := decodeJSONColumn(m.Specs, &variant.Specs); err != nil {
		return nil, errors.Wrap(err, "failed to decode variant specs")
	}
	if err := decodeJSONColumn(m.Keywords, &variant.Keywords); err != nil {
		return nil, errors.Wrap(err, "failed to decode variant keywords")
	}

	return variant, nil
}

func fromProductDomain(product *entity.Product) (*model.ProductModel, error) {
	specs, err := encodeJSONColumn(product.Specs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product specs")
	}

	m := &model.ProductModel{
		ID:            product.ID,
		StoreID:       product.StoreID,
		CategoryID:    product.CategoryID,
		SubcategoryID: product.SubcategoryID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Brand:         product.Brand,
		Specs:         specs,
	}

	if len(product.Variants) > 0 {
		m.Variants = make([]*model.ProductVariantModel, len(product.Variants))
		for i, variant := range product.Variants {
			vm, err := fromVariantDomain(variant)
			if err != nil {
				return nil, err
			}
			m.Variants[i] = vm
		}
	}

	return m, nil
}

func fromVariantDomain(variant *entity.ProductVariant) (*model.ProductVariantModel, error) {
	images, err := encodeJSONColumn(variant.Images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode variant images")
	}
	colors, err := encodeJSONColumn(variant.Colors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode variant colors")
	}
	sizes, err := encodeJSONColumn(variant.Sizes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode variant sizes")
	}
	specs, err := encodeJSONColumn(variant.Specs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode variant specs")
	}
	keywords, err := encodeJSONColumn(variant.Keywords)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode variant keywords")
	}

	return &model.ProductVariantModel{
		ID:          variant.ID,
		ProductID:   variant.ProductID,
		Name:        variant.Name,
		Slug:        variant.Slug,
		SKU:         variant.SKU,
		Description: variant.Description,
		Images:      images,
		Colors:      colors,
		Sizes:       sizes,
		Specs:       specs,
		Keywords:    keywords,
		IsSale:      variant.IsSale,
		SaleEndsAt:  variant.SaleEndsAt,
		WeightKg:    variant.WeightKg,
	}, nil
}

func decodeJSONColumn(raw datatypes.JSON, out any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, out)
}

func encodeJSONColumn(in any) (datatypes.JSON, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}
