// Package impl contains the application-specific business rules implementations.
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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager repository.TransactionManager
	media     service.MediaStorage
	logger    *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager: txManager,
		media:     media,
		logger:    logger,
	}
}

// UpsertCategory creates or updates a category after the full precondition
// chain: session, admin role, required fields, then uniqueness at commit time.
func (srv *categoryService) UpsertCategory(ctx context.Context, actor usecase.Actor, input *usecase.UpsertCategoryInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleAdmin) {
		return usecase.Forbidden()
	}

	if missing := missingCategoryFields(input.Name, input.Slug, input.ImageURL); len(missing) > 0 {
		return usecase.FailWith(http.StatusBadRequest, "Missing required fields", map[string]any{"missingFields": missing})
	}

	var category *entity.Category
	var created bool
	var replacedImageKey string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		field, err := categoryRepo.FindConflict(ctx, input.Name, input.Slug, input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check category uniqueness")
		}
		if field != "" {
			return newFieldConflict("Category", field)
		}

		if input.ID == uuid.Nil {
			category = &entity.Category{
				ID:       uuid.New(),
				Name:     input.Name,
				Slug:     input.Slug,
				ImageURL: input.ImageURL,
				ImageKey: input.ImageKey,
				Featured: input.Featured,
			}
			created = true

			return errors.Wrap(categoryRepo.Create(ctx, category), "failed to create category")
		}

		existing, err := categoryRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}

		if existing.ImageKey != "" && existing.ImageKey != input.ImageKey {
			replacedImageKey = existing.ImageKey
		}

		existing.Name = input.Name
		existing.Slug = input.Slug
		existing.ImageURL = input.ImageURL
		existing.ImageKey = input.ImageKey
		existing.Featured = input.Featured
		category = existing

		return errors.Wrap(categoryRepo.Update(ctx, existing), "failed to update category")
	})
	if err != nil {
		return srv.failure(err, "category upsert failed", "categoryID", input.ID)
	}

	// The replaced image is removed only after the commit; a rolled-back
	// update must not leave the stored row pointing at a deleted file.
	if replacedImageKey != "" {
		srv.deleteMedia(ctx, replacedImageKey)
	}

	if created {
		return usecase.OK(http.StatusCreated, "Category created", category)
	}

	return usecase.OK(http.StatusOK, "Category updated", category)
}

// DeleteCategory removes a category and its uploaded image.
func (srv *categoryService) DeleteCategory(ctx context.Context, actor usecase.Actor, id uuid.UUID) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleAdmin) {
		return usecase.Forbidden()
	}

	var imageKey string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}
		imageKey = category.ImageKey

		return errors.Wrap(categoryRepo.Delete(ctx, id), "failed to delete category")
	})
	if err != nil {
		return srv.failure(err, "category delete failed", "categoryID", id)
	}

	// Media cleanup happens after the commit; a dangling file on the media
	// host is preferable to a category row pointing at a deleted image.
	if imageKey != "" {
		srv.deleteMedia(ctx, imageKey)
	}

	return usecase.OK(http.StatusOK, "Category deleted", nil)
}

// ListCategories returns all categories ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categories = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategoryBySlug retrieves a single category by slug.
func (srv *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoryRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

func (srv *categoryService) deleteMedia(ctx context.Context, key string) {
	if err := srv.media.Delete(ctx, key); err != nil {
		srv.logger.Warn("failed to delete media file", "key", key, "error", err)
	}
}

func (srv *categoryService) failure(err error, msg string, args ...any) *usecase.Result {
	if result := resultFromError(err); result != nil {
		return result
	}
	srv.logger.Error(msg, append(args, "error", err)...)

	return usecase.Internal()
}

func missingCategoryFields(name, slug, imageURL string) []string {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if slug == "" {
		missing = append(missing, "slug")
	}
	if imageURL == "" {
		missing = append(missing, "image")
	}

	return missing
}
