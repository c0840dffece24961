package impl

import (
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subcategoryServiceFixtures struct {
	service       usecase.SubcategoryUsecase
	categories    *mockRepo.MockCategoryRepository
	subcategories *mockRepo.MockSubcategoryRepository
	media         *mockService.MockMediaStorage
}

func createTestSubcategoryService(t *testing.T) subcategoryServiceFixtures {
	categories := mockRepo.NewMockCategoryRepository(t)
	subcategories := mockRepo.NewMockSubcategoryRepository(t)
	media := mockService.NewMockMediaStorage(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		categories:    categories,
		subcategories: subcategories,
	}}
	service := NewSubcategoryService(txManager, media, newDiscardLogger())

	return subcategoryServiceFixtures{
		service:       service,
		categories:    categories,
		subcategories: subcategories,
		media:         media,
	}
}

func validSubcategoryInput(categoryID uuid.UUID) *usecase.UpsertSubcategoryInput {
	return &usecase.UpsertSubcategoryInput{
		CategoryID: categoryID,
		Name:       "Headphones",
		Slug:       "headphones",
		ImageURL:   "https://media.example.com/subcategories/headphones.png",
		ImageKey:   "subcategories/headphones.png",
	}
}

func TestSubcategoryService_Upsert_Create_Success(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	input := validSubcategoryInput(categoryID)

	fixtures.categories.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fixtures.subcategories.EXPECT().FindConflict(ctx, categoryID, input.Name, input.Slug, uuid.Nil).Return("", nil)
	fixtures.subcategories.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subcategory")).Return(nil)

	result := fixtures.service.UpsertSubcategory(ctx, adminActor(), input)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.StatusCode)

	subcategory, ok := result.Data.(*entity.Subcategory)
	require.True(t, ok)
	assert.Equal(t, categoryID, subcategory.CategoryID)
	assert.NotEqual(t, uuid.Nil, subcategory.ID)
}

func TestSubcategoryService_Upsert_MissingParent(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	input := validSubcategoryInput(categoryID)

	fixtures.categories.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	result := fixtures.service.UpsertSubcategory(ctx, adminActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestSubcategoryService_Upsert_MissingCategoryID(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	input := validSubcategoryInput(uuid.Nil)

	result := fixtures.service.UpsertSubcategory(context.Background(), adminActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"categoryId"}, data["missingFields"])
}

func TestSubcategoryService_Upsert_DuplicateSlugWithinCategory(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	input := validSubcategoryInput(categoryID)

	fixtures.categories.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fixtures.subcategories.EXPECT().FindConflict(ctx, categoryID, input.Name, input.Slug, uuid.Nil).Return("slug", nil)

	result := fixtures.service.UpsertSubcategory(ctx, adminActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusConflict, result.StatusCode)
	assert.Equal(t, "Subcategory with this slug already exists", result.Message)
}

func TestSubcategoryService_Upsert_NonAdmin(t *testing.T) {
	fixtures := createTestSubcategoryService(t)

	result := fixtures.service.UpsertSubcategory(context.Background(), userActor(), validSubcategoryInput(uuid.New()))

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestSubcategoryService_Upsert_UpdateFails_KeepsOldImage(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	existing := &entity.Subcategory{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       "Headphones",
		Slug:       "headphones",
		ImageURL:   "https://media.example.com/subcategories/old.png",
		ImageKey:   "subcategories/old.png",
	}
	input := validSubcategoryInput(categoryID)
	input.ID = existing.ID

	fixtures.categories.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fixtures.subcategories.EXPECT().FindConflict(ctx, categoryID, input.Name, input.Slug, existing.ID).Return("", nil)
	fixtures.subcategories.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fixtures.subcategories.EXPECT().Update(ctx, existing).Return(assert.AnError)

	result := fixtures.service.UpsertSubcategory(ctx, adminActor(), input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	// The rolled-back row still points at the old file, so it must survive.
	fixtures.media.AssertNotCalled(t, "Delete", ctx, "subcategories/old.png")
}

func TestSubcategoryService_Delete_RemovesMedia(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	id := uuid.New()

	fixtures.subcategories.EXPECT().FindByID(ctx, id).Return(&entity.Subcategory{
		ID:       id,
		ImageKey: "subcategories/headphones.png",
	}, nil)
	fixtures.subcategories.EXPECT().Delete(ctx, id).Return(nil)
	fixtures.media.EXPECT().Delete(ctx, "subcategories/headphones.png").Return(nil)

	result := fixtures.service.DeleteSubcategory(ctx, adminActor(), id)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestSubcategoryService_ListSubcategories(t *testing.T) {
	fixtures := createTestSubcategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fixtures.subcategories.EXPECT().ListByCategory(ctx, categoryID).Return([]*entity.Subcategory{
		{Name: "Headphones"},
		{Name: "Speakers"},
	}, nil)

	subcategories, err := fixtures.service.ListSubcategories(ctx, categoryID)

	require.NoError(t, err)
	assert.Len(t, subcategories, 2)
}
