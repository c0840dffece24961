package impl

import (
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/wizard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service usecase.StoreUsecase
	stores  *mockRepo.MockStoreRepository
	drafts  *mockRepo.MockDraftRepository
	users   *mockRepo.MockUserRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	stores := mockRepo.NewMockStoreRepository(t)
	drafts := mockRepo.NewMockDraftRepository(t)
	users := mockRepo.NewMockUserRepository(t)
	txManager := &fakeTxManager{factory: &fakeRepoFactory{stores: stores, drafts: drafts, users: users}}
	service := NewStoreService(txManager, newDiscardLogger())

	return storeServiceFixtures{
		service: service,
		stores:  stores,
		drafts:  drafts,
		users:   users,
	}
}

func userActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}
}

func sellerActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleSeller}}
}

// completeDraftPayload is a draft that passes the full store schema.
func completeDraftPayload() map[string]any {
	return map[string]any{
		"name":        "Crafted Goods",
		"description": "Hand-made leather goods shipped from our workshop within two days.",
		"slug":        "crafted-goods",
		"logo":        "https://media.example.com/stores/crafted/logo.png",
		"logoKey":     "stores/crafted/logo.png",
		"cover":       "https://media.example.com/stores/crafted/cover.png",
		"coverKey":    "stores/crafted/cover.png",

		"email": "owner@crafted-goods.example.com",
		"phone": "+15550001111",

		"returnPolicy":                        "Returns accepted within 30 days of delivery.",
		"defaultShippingService":              "Standard International",
		"defaultShippingFeePerItem":           4.5,
		"defaultShippingFeeForAdditionalItem": 1.5,
		"defaultShippingFeePerKg":             2.0,
		"defaultShippingFeeFixed":             0.0,
		"defaultDeliveryTimeMin":              3,
		"defaultDeliveryTimeMax":              14,
	}
}

func draftFor(actor usecase.Actor, payload map[string]any, currentStep int, completed []int) *entity.RegistrationDraft {
	return &entity.RegistrationDraft{
		ID:             uuid.New(),
		OwnerID:        actor.ID,
		Kind:           entity.DraftKindStore,
		CurrentStep:    currentStep,
		CompletedSteps: completed,
		Payload:        payload,
	}
}

func TestStoreService_GetRegistrationWizard_StartsEmpty(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(nil, repository.ErrDraftNotFound)

	view, err := fixtures.service.GetRegistrationWizard(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.CurrentStep)
	assert.Equal(t, 4, view.Progress.TotalSteps)
	assert.Empty(t, view.Draft)
	assert.Empty(t, view.FieldErrors)
}

func TestStoreService_GetRegistrationWizard_Unauthenticated(t *testing.T) {
	fixtures := createTestStoreService(t)

	_, err := fixtures.service.GetRegistrationWizard(context.Background(), usecase.Actor{})

	require.Error(t, err)
}

func TestStoreService_PatchDraft_MergesAndPersists(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	existing := draftFor(actor, map[string]any{"name": "Old Name"}, 1, nil)

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(existing, nil)

	var saved *entity.RegistrationDraft
	fixtures.drafts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.RegistrationDraft")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.RegistrationDraft)
		}).
		Return(nil)

	view, err := fixtures.service.PatchDraft(ctx, actor, map[string]any{"name": "Crafted Goods", "slug": "crafted-goods"})

	require.NoError(t, err)
	assert.Equal(t, "Crafted Goods", view.Draft["name"])
	assert.Equal(t, "crafted-goods", view.Draft["slug"])

	require.NotNil(t, saved)
	assert.Equal(t, actor.ID, saved.OwnerID)
	assert.Equal(t, "Crafted Goods", saved.Payload["name"])
}

func TestStoreService_AdvanceStep_FailureKeepsPointer(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	// Step 1 payload missing almost everything.
	existing := draftFor(actor, map[string]any{"name": "Crafted Goods"}, 1, nil)

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(existing, nil)
	fixtures.drafts.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.RegistrationDraft")).
		Return(nil)

	view, err := fixtures.service.AdvanceStep(ctx, actor)

	require.NoError(t, err)
	assert.NotEmpty(t, view.FieldErrors)
	assert.Equal(t, 1, view.Progress.CurrentStep)
}

func TestStoreService_SubmitStore_NoDraft(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(nil, repository.ErrDraftNotFound)

	result := fixtures.service.SubmitStore(ctx, actor)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
}

func TestStoreService_SubmitStore_MissingFields(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	payload := completeDraftPayload()
	delete(payload, "email")
	delete(payload, "phone")

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(draftFor(actor, payload, 4, []int{1, 3}), nil)

	result := fixtures.service.SubmitStore(ctx, actor)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, "Missing required fields", result.Message)

	data, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "phone"}, data["missingFields"])
}

func TestStoreService_SubmitStore_SlugConflict(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(draftFor(actor, completeDraftPayload(), 4, []int{1, 2, 3}), nil)
	fixtures.stores.EXPECT().
		FindConflict(ctx, "Crafted Goods", "crafted-goods", "owner@crafted-goods.example.com", "+15550001111", uuid.Nil).
		Return("slug", nil)

	result := fixtures.service.SubmitStore(ctx, actor)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusConflict, result.StatusCode)
	assert.Equal(t, "Store with this slug already exists", result.Message)
}

func TestStoreService_SubmitStore_Success(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(draftFor(actor, completeDraftPayload(), 4, []int{1, 2, 3}), nil)
	fixtures.stores.EXPECT().
		FindConflict(ctx, "Crafted Goods", "crafted-goods", "owner@crafted-goods.example.com", "+15550001111", uuid.Nil).
		Return("", nil)

	var createdStore *entity.Store
	fixtures.stores.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(args mock.Arguments) {
			createdStore = args.Get(1).(*entity.Store)
		}).
		Return(nil)

	owner := &entity.User{ID: actor.ID, Roles: entity.Roles{entity.RoleUser}}
	fixtures.users.EXPECT().FindByID(ctx, actor.ID).Return(owner, nil)
	fixtures.users.EXPECT().Update(ctx, owner).Return(nil)

	fixtures.drafts.EXPECT().Delete(ctx, actor.ID, entity.DraftKindStore).Return(nil)

	result := fixtures.service.SubmitStore(ctx, actor)

	require.True(t, result.Success)
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, "/dashboard/seller/stores/crafted-goods", result.RedirectURL)

	require.NotNil(t, createdStore)
	assert.Equal(t, entity.StoreStatusPending, createdStore.Status)
	assert.Equal(t, actor.ID, createdStore.OwnerID)
	assert.Equal(t, "stores/crafted/logo.png", createdStore.LogoKey)
	assert.Equal(t, "stores/crafted/cover.png", createdStore.CoverKey)
	assert.Equal(t, 3, createdStore.DefaultDeliveryTimeMin)

	assert.True(t, owner.HasRole(entity.RoleSeller))
}

func TestStoreService_UpdateStore_SlugChangeRedirects(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := sellerActor()

	existing := &entity.Store{
		ID:      uuid.New(),
		OwnerID: actor.ID,
		Name:    "Crafted Goods",
		Slug:    "crafted-goods",
		Email:   "owner@crafted-goods.example.com",
		Phone:   "+15550001111",
	}
	newSlug := "crafted-goods-studio"
	input := &usecase.UpdateStoreInput{StoreID: existing.ID, Slug: &newSlug}

	fixtures.stores.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fixtures.stores.EXPECT().
		FindConflict(ctx, existing.Name, newSlug, existing.Email, existing.Phone, existing.ID).
		Return("", nil)
	fixtures.stores.EXPECT().Update(ctx, existing).Return(nil)

	result := fixtures.service.UpdateStore(ctx, actor, input)

	require.True(t, result.Success)
	assert.Equal(t, "/dashboard/seller/stores/crafted-goods-studio", result.RedirectURL)
}

func TestStoreService_UpdateStore_UnchangedValuesDoNotConflict(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := sellerActor()

	existing := &entity.Store{
		ID:      uuid.New(),
		OwnerID: actor.ID,
		Name:    "Crafted Goods",
		Slug:    "crafted-goods",
		Email:   "owner@crafted-goods.example.com",
		Phone:   "+15550001111",
	}
	description := "Updated description for the storefront page."
	input := &usecase.UpdateStoreInput{StoreID: existing.ID, Description: &description}

	fixtures.stores.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fixtures.stores.EXPECT().
		FindConflict(ctx, existing.Name, existing.Slug, existing.Email, existing.Phone, existing.ID).
		Return("", nil)
	fixtures.stores.EXPECT().Update(ctx, existing).Return(nil)

	result := fixtures.service.UpdateStore(ctx, actor, input)

	require.True(t, result.Success)
	assert.Empty(t, result.RedirectURL)
	assert.Equal(t, description, existing.Description)
}

func TestStoreService_UpdateStore_NotOwner(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := sellerActor()

	existing := &entity.Store{ID: uuid.New(), OwnerID: uuid.New()}
	input := &usecase.UpdateStoreInput{StoreID: existing.ID}

	fixtures.stores.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	result := fixtures.service.UpdateStore(ctx, actor, input)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestStoreService_SetStoreStatus_AdminOnly(t *testing.T) {
	fixtures := createTestStoreService(t)

	result := fixtures.service.SetStoreStatus(context.Background(), sellerActor(), uuid.New(), entity.StoreStatusBanned)

	require.False(t, result.Success)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
}

func TestStoreService_SetStoreStatus_Success(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	storeID := uuid.New()

	fixtures.stores.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	fixtures.stores.EXPECT().UpdateStatus(ctx, storeID, entity.StoreStatusActive).Return(nil)

	result := fixtures.service.SetStoreStatus(ctx, adminActor(), storeID, entity.StoreStatusActive)

	require.True(t, result.Success)
}

func TestStoreService_MissingFields_CompleteDraft(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(draftFor(actor, completeDraftPayload(), 4, []int{1, 2, 3}), nil)

	missing, err := fixtures.service.MissingFields(ctx, actor)

	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStoreService_AbandonDraft(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().Delete(ctx, actor.ID, entity.DraftKindStore).Return(nil)

	require.NoError(t, fixtures.service.AbandonDraft(ctx, actor))
}

func TestStoreService_RestoredDraftKeepsProgress(t *testing.T) {
	fixtures := createTestStoreService(t)
	ctx := context.Background()
	actor := userActor()

	fixtures.drafts.EXPECT().
		FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore).
		Return(draftFor(actor, completeDraftPayload(), 3, []int{1, 2}), nil)

	view, err := fixtures.service.GetRegistrationWizard(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, 3, view.Progress.CurrentStep)
	assert.InDelta(t, 50.0, view.Progress.PercentComplete, 0.01)

	completed := 0
	for _, step := range view.Progress.Steps {
		if step.Completed {
			completed++
		}
	}
	assert.Equal(t, 2, completed)
	assert.Equal(t, wizard.Payload(completeDraftPayload()), view.Draft)
}
