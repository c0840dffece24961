package impl

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	media     service.MediaStorage
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		media:     media,
		logger:    logger,
	}
}

// UpsertProduct creates or updates a product with its full variant set. The
// actor must own the target store; variants are replaced as a whole.
func (srv *productService) UpsertProduct(ctx context.Context, actor usecase.Actor, input *usecase.UpsertProductInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleSeller) {
		return usecase.Forbidden()
	}

	if missing := missingProductFields(input); len(missing) > 0 {
		return usecase.FailWith(http.StatusBadRequest, "Missing required fields", map[string]any{"missingFields": missing})
	}

	var product *entity.Product
	var created bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkStoreOwnership(ctx, repoFactory, input.StoreID, actor.ID); err != nil {
			return err
		}

		productRepo := repoFactory.ProductRepo()

		if input.ID == uuid.Nil {
			product = productFromInput(input)
			created = true

			productSlug, err := srv.uniqueSlug(ctx, productRepo, input.Name, uuid.Nil)
			if err != nil {
				return err
			}
			product.Slug = productSlug

			return errors.Wrap(productRepo.Create(ctx, product), "failed to create product")
		}

		existing, err := productRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		if existing.StoreID != input.StoreID {
			return domainerrors.ErrForbidden
		}

		product = productFromInput(input)
		product.ID = existing.ID
		product.Slug = existing.Slug
		if existing.Name != input.Name {
			productSlug, err := srv.uniqueSlug(ctx, productRepo, input.Name, existing.ID)
			if err != nil {
				return err
			}
			product.Slug = productSlug
		}

		return errors.Wrap(productRepo.Update(ctx, product), "failed to update product")
	})
	if err != nil {
		return srv.failure(err, "product upsert failed", "productID", input.ID, "storeID", input.StoreID)
	}

	if created {
		return usecase.OK(http.StatusCreated, "Product created", product)
	}

	return usecase.OK(http.StatusOK, "Product updated", product)
}

// DeleteProduct removes a product, its variants and the variant images.
func (srv *productService) DeleteProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleSeller) {
		return usecase.Forbidden()
	}

	var imageKeys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := srv.checkStoreOwnership(ctx, repoFactory, product.StoreID, actor.ID); err != nil {
			return err
		}

		for _, variant := range product.Variants {
			for _, image := range variant.Images {
				if image.Key != "" {
					imageKeys = append(imageKeys, image.Key)
				}
			}
		}

		return errors.Wrap(productRepo.Delete(ctx, productID), "failed to delete product")
	})
	if err != nil {
		return srv.failure(err, "product delete failed", "productID", productID)
	}

	for _, key := range imageKeys {
		if err := srv.media.Delete(ctx, key); err != nil {
			srv.logger.Warn("failed to delete media file", "key", key, "error", err)
		}
	}

	return usecase.OK(http.StatusOK, "Product deleted", nil)
}

// ListStoreProducts returns the products of a store the actor owns.
func (srv *productService) ListStoreProducts(ctx context.Context, actor usecase.Actor, storeID uuid.UUID) ([]*entity.Product, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkStoreOwnership(ctx, repoFactory, storeID, actor.ID); err != nil {
			return err
		}

		found, err := repoFactory.ProductRepo().ListByStore(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	return products, nil
}

func (srv *productService) checkStoreOwnership(ctx context.Context, repoFactory repository.RepositoryFactory, storeID, ownerID uuid.UUID) error {
	store, err := repoFactory.StoreRepo().FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errNotFound
		}

		return errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// uniqueSlug derives the product slug from the name, suffixing a short
// random fragment when the plain slug is already taken.
func (srv *productService) uniqueSlug(ctx context.Context, productRepo repository.ProductRepository, name string, excludeID uuid.UUID) (string, error) {
	base := slug.Make(name)

	conflict, err := productRepo.FindConflict(ctx, base, excludeID)
	if err != nil {
		return "", errors.Wrap(err, "failed to check product slug uniqueness")
	}
	if conflict == "" {
		return base, nil
	}

	return base + "-" + uuid.NewString()[:8], nil
}

func (srv *productService) failure(err error, msg string, args ...any) *usecase.Result {
	if result := resultFromError(err); result != nil {
		return result
	}
	srv.logger.Error(msg, append(args, "error", err)...)

	return usecase.Internal()
}

func missingProductFields(input *usecase.UpsertProductInput) []string {
	var missing []string
	if input.StoreID == uuid.Nil {
		missing = append(missing, "storeId")
	}
	if input.CategoryID == uuid.Nil {
		missing = append(missing, "categoryId")
	}
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if len(input.Variants) == 0 {
		missing = append(missing, "variants")
	}
	for _, variant := range input.Variants {
		if variant.Name == "" {
			missing = append(missing, "variants.name")

			break
		}
	}
	for _, variant := range input.Variants {
		if len(variant.Sizes) == 0 {
			missing = append(missing, "variants.sizes")

			break
		}
	}

	return missing
}

func productFromInput(input *usecase.UpsertProductInput) *entity.Product {
	product := &entity.Product{
		ID:            uuid.New(),
		StoreID:       input.StoreID,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Brand:         input.Brand,
		Specs:         input.Specs,
	}

	for _, variantInput := range input.Variants {
		variant := &entity.ProductVariant{
			ID:          variantInput.ID,
			ProductID:   product.ID,
			Name:        variantInput.Name,
			Slug:        slug.Make(variantInput.Name),
			SKU:         variantInput.SKU,
			Description: variantInput.Description,
			Images:      variantInput.Images,
			Colors:      variantInput.Colors,
			Sizes:       variantInput.Sizes,
			Specs:       variantInput.Specs,
			Keywords:    variantInput.Keywords,
			IsSale:      variantInput.IsSale,
			SaleEndsAt:  variantInput.SaleEndsAt,
			WeightKg:    variantInput.WeightKg,
		}
		if variant.ID == uuid.Nil {
			variant.ID = uuid.New()
		}
		product.Variants = append(product.Variants, variant)
	}

	return product
}
