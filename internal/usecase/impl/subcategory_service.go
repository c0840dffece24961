package impl

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subcategoryService implements the SubcategoryUsecase interface.
type subcategoryService struct {
	txManager repository.TransactionManager
	media     service.MediaStorage
	logger    *slog.Logger
}

// NewSubcategoryService is the constructor for subcategoryService.
func NewSubcategoryService(
	txManager repository.TransactionManager,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.SubcategoryUsecase {
	return &subcategoryService{
		txManager: txManager,
		media:     media,
		logger:    logger,
	}
}

// UpsertSubcategory creates or updates a subcategory. Uniqueness of name and
// slug is scoped to the parent category, not platform-wide.
func (srv *subcategoryService) UpsertSubcategory(ctx context.Context, actor usecase.Actor, input *usecase.UpsertSubcategoryInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleAdmin) {
		return usecase.Forbidden()
	}

	missing := missingCategoryFields(input.Name, input.Slug, input.ImageURL)
	if input.CategoryID == uuid.Nil {
		missing = append([]string{"categoryId"}, missing...)
	}
	if len(missing) > 0 {
		return usecase.FailWith(http.StatusBadRequest, "Missing required fields", map[string]any{"missingFields": missing})
	}

	var subcategory *entity.Subcategory
	var created bool
	var replacedImageKey string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subcategoryRepo := repoFactory.SubcategoryRepo()

		if _, err := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find parent category")
		}

		field, err := subcategoryRepo.FindConflict(ctx, input.CategoryID, input.Name, input.Slug, input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check subcategory uniqueness")
		}
		if field != "" {
			return newFieldConflict("Subcategory", field)
		}

		if input.ID == uuid.Nil {
			subcategory = &entity.Subcategory{
				ID:         uuid.New(),
				CategoryID: input.CategoryID,
				Name:       input.Name,
				Slug:       input.Slug,
				ImageURL:   input.ImageURL,
				ImageKey:   input.ImageKey,
				Featured:   input.Featured,
			}
			created = true

			return errors.Wrap(subcategoryRepo.Create(ctx, subcategory), "failed to create subcategory")
		}

		existing, err := subcategoryRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrSubcategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find subcategory")
		}

		if existing.ImageKey != "" && existing.ImageKey != input.ImageKey {
			replacedImageKey = existing.ImageKey
		}

		existing.CategoryID = input.CategoryID
		existing.Name = input.Name
		existing.Slug = input.Slug
		existing.ImageURL = input.ImageURL
		existing.ImageKey = input.ImageKey
		existing.Featured = input.Featured
		subcategory = existing

		return errors.Wrap(subcategoryRepo.Update(ctx, existing), "failed to update subcategory")
	})
	if err != nil {
		return srv.failure(err, "subcategory upsert failed", "subcategoryID", input.ID)
	}

	// The replaced image is removed only after the commit; a rolled-back
	// update must not leave the stored row pointing at a deleted file.
	if replacedImageKey != "" {
		srv.deleteMedia(ctx, replacedImageKey)
	}

	if created {
		return usecase.OK(http.StatusCreated, "Subcategory created", subcategory)
	}

	return usecase.OK(http.StatusOK, "Subcategory updated", subcategory)
}

// DeleteSubcategory removes a subcategory and its uploaded image.
func (srv *subcategoryService) DeleteSubcategory(ctx context.Context, actor usecase.Actor, id uuid.UUID) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleAdmin) {
		return usecase.Forbidden()
	}

	var imageKey string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subcategoryRepo := repoFactory.SubcategoryRepo()

		subcategory, err := subcategoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSubcategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find subcategory")
		}
		imageKey = subcategory.ImageKey

		return errors.Wrap(subcategoryRepo.Delete(ctx, id), "failed to delete subcategory")
	})
	if err != nil {
		return srv.failure(err, "subcategory delete failed", "subcategoryID", id)
	}

	if imageKey != "" {
		srv.deleteMedia(ctx, imageKey)
	}

	return usecase.OK(http.StatusOK, "Subcategory deleted", nil)
}

// ListSubcategories returns the subcategories of one parent category.
func (srv *subcategoryService) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*entity.Subcategory, error) {
	var subcategories []*entity.Subcategory

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SubcategoryRepo().ListByCategory(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to list subcategories")
		}
		subcategories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return subcategories, nil
}

func (srv *subcategoryService) deleteMedia(ctx context.Context, key string) {
	if err := srv.media.Delete(ctx, key); err != nil {
		srv.logger.Warn("failed to delete media file", "key", key, "error", err)
	}
}

func (srv *subcategoryService) failure(err error, msg string, args ...any) *usecase.Result {
	if result := resultFromError(err); result != nil {
		return result
	}
	srv.logger.Error(msg, append(args, "error", err)...)

	return usecase.Internal()
}
