package impl

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/wizard"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface: the registration
// wizard, the authoritative store submission and store moderation.
type storeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetRegistrationWizard restores the persisted draft for the acting user, or
// starts an empty one positioned on the first step.
func (srv *storeService) GetRegistrationWizard(ctx context.Context, actor usecase.Actor) (*usecase.WizardView, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var view *usecase.WizardView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := srv.loadState(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}
		view = wizardView(state, nil)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registration wizard")
	}

	return view, nil
}

// PatchDraft shallow-merges the patch into the draft and persists the result,
// so the draft survives page reloads. No validation happens here; partially
// filled steps are expected while the wizard is open.
func (srv *storeService) PatchDraft(ctx context.Context, actor usecase.Actor, patch map[string]any) (*usecase.WizardView, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var view *usecase.WizardView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := srv.loadState(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		state.SetFormData(patch)
		if err := srv.saveState(ctx, repoFactory, actor.ID, state); err != nil {
			return err
		}
		view = wizardView(state, nil)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to patch registration draft")
	}

	return view, nil
}

// AdvanceStep validates the current step and moves forward on success. On
// failure the step pointer stays put and the view carries the field errors.
func (srv *storeService) AdvanceStep(ctx context.Context, actor usecase.Actor) (*usecase.WizardView, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var view *usecase.WizardView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := srv.loadState(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		fieldErrs := state.Advance()
		if err := srv.saveState(ctx, repoFactory, actor.ID, state); err != nil {
			return err
		}
		view = wizardView(state, fieldErrs)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to advance registration wizard")
	}

	return view, nil
}

// RetreatStep moves the step pointer back. The completed-step set is
// untouched; passed steps stay passed across back-navigation.
func (srv *storeService) RetreatStep(ctx context.Context, actor usecase.Actor) (*usecase.WizardView, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var view *usecase.WizardView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := srv.loadState(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}

		state.PrevStep()
		if err := srv.saveState(ctx, repoFactory, actor.ID, state); err != nil {
			return err
		}
		view = wizardView(state, nil)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to retreat registration wizard")
	}

	return view, nil
}

// AbandonDraft discards the persisted draft. Abandoning when no draft exists
// is not an error.
func (srv *storeService) AbandonDraft(ctx context.Context, actor usecase.Actor) error {
	if !actor.Authenticated() {
		return domainerrors.ErrUnauthenticated
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.DraftRepo().Delete(ctx, actor.ID, entity.DraftKindStore), "failed to delete draft")
	})

	return errors.Wrap(err, "failed to abandon registration draft")
}

// MissingFields lists the field names the assembled draft still needs before
// submission, in schema order.
func (srv *storeService) MissingFields(ctx context.Context, actor usecase.Actor) ([]string, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var missing []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := srv.loadState(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}
		missing = wizard.MissingStoreFields(state.Data())

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute missing fields")
	}

	return missing, nil
}

// SubmitStore is the authoritative commit of the registration wizard. It
// re-validates the full assembled draft regardless of what the step-by-step
// validation concluded, checks uniqueness against persisted stores inside the
// transaction, creates the store as pending and deletes the draft. The seller
// role is granted on the account's first committed store.
func (srv *storeService) SubmitStore(ctx context.Context, actor usecase.Actor) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}

	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		draft, err := repoFactory.DraftRepo().FindByOwnerAndKind(ctx, actor.ID, entity.DraftKindStore)
		if err != nil {
			if errors.Is(err, repository.ErrDraftNotFound) {
				return errors.Wrap(domainerrors.ErrValidationFailed, "no registration draft to submit")
			}

			return errors.Wrap(err, "failed to load draft")
		}

		payload := wizard.Payload(draft.Payload)
		if missing := wizard.MissingStoreFields(payload); len(missing) > 0 {
			return &missingFieldsError{fields: missing}
		}

		form, fieldErrs := wizard.StoreFormFromPayload(payload)
		if len(fieldErrs) > 0 {
			return &fieldErrorsError{fieldErrs: fieldErrs}
		}

		storeRepo := repoFactory.StoreRepo()
		field, err := storeRepo.FindConflict(ctx, form.Name, form.Slug, form.Email, form.Phone, uuid.Nil)
		if err != nil {
			return errors.Wrap(err, "failed to check store uniqueness")
		}
		if field != "" {
			return newFieldConflict("Store", field)
		}

		store = storeFromForm(actor.ID, form, payload)
		if err := storeRepo.Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		if err := srv.grantSellerRole(ctx, repoFactory, actor.ID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.DraftRepo().Delete(ctx, actor.ID, entity.DraftKindStore), "failed to delete draft")
	})
	if err != nil {
		return srv.failure(err, "store submission failed", "ownerID", actor.ID)
	}

	result := usecase.OK(http.StatusCreated, "Store created and pending review", store)
	result.RedirectURL = "/dashboard/seller/stores/" + store.Slug

	return result
}

// UpdateStore updates an existing store owned by the actor. When the slug
// changes the result carries the new dashboard URL as a redirect target.
func (srv *storeService) UpdateStore(ctx context.Context, actor usecase.Actor, input *usecase.UpdateStoreInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleSeller) {
		return usecase.Forbidden()
	}

	var store *entity.Store
	var slugChanged bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()

		existing, err := storeRepo.FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}
		if existing.OwnerID != actor.ID {
			return domainerrors.ErrForbidden
		}

		oldSlug := existing.Slug
		applyStoreUpdate(existing, input)
		slugChanged = existing.Slug != oldSlug

		// Unchanged values never conflict with the store's own row.
		field, err := storeRepo.FindConflict(ctx, existing.Name, existing.Slug, existing.Email, existing.Phone, existing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check store uniqueness")
		}
		if field != "" {
			return newFieldConflict("Store", field)
		}

		store = existing

		return errors.Wrap(storeRepo.Update(ctx, existing), "failed to update store")
	})
	if err != nil {
		return srv.failure(err, "store update failed", "storeID", input.StoreID)
	}

	result := usecase.OK(http.StatusOK, "Store updated", store)
	if slugChanged {
		result.RedirectURL = "/dashboard/seller/stores/" + store.Slug
	}

	return result
}

// SetStoreStatus moderates a store. Admin only.
func (srv *storeService) SetStoreStatus(ctx context.Context, actor usecase.Actor, storeID uuid.UUID, status entity.StoreStatus) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleAdmin) {
		return usecase.Forbidden()
	}
	if !status.IsValid() {
		return usecase.Fail(http.StatusBadRequest, "Invalid store status")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()

		if _, err := storeRepo.FindByID(ctx, storeID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}

		return errors.Wrap(storeRepo.UpdateStatus(ctx, storeID, status), "failed to update store status")
	})
	if err != nil {
		return srv.failure(err, "store status update failed", "storeID", storeID, "status", status)
	}

	return usecase.OK(http.StatusOK, "Store status updated", map[string]any{"status": status})
}

// ListOwnStores returns the stores owned by the acting user.
func (srv *storeService) ListOwnStores(ctx context.Context, actor usecase.Actor) ([]*entity.Store, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var stores []*entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StoreRepo().ListByOwner(ctx, actor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list stores")
		}
		stores = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own stores")
	}

	return stores, nil
}

// GetStoreBySlug retrieves a single store by slug, whatever its status.
// Status filtering for the public storefront happens in the storefront reads.
func (srv *storeService) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var store *entity.Store

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.StoreRepo().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}
		store = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get store")
	}

	return store, nil
}

// loadState restores the wizard state for an owner, starting an empty draft
// when none exists yet.
func (srv *storeService) loadState(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*wizard.State, error) {
	draft, err := repoFactory.DraftRepo().FindByOwnerAndKind(ctx, ownerID, entity.DraftKindStore)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return wizard.NewState(wizard.StoreSteps()), nil
		}

		return nil, errors.Wrap(err, "failed to load draft")
	}

	return wizard.Restore(wizard.StoreSteps(), draft), nil
}

func (srv *storeService) saveState(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID, state *wizard.State) error {
	return errors.Wrap(repoFactory.DraftRepo().Save(ctx, state.Snapshot(ownerID, entity.DraftKindStore)), "failed to save draft")
}

func (srv *storeService) grantSellerRole(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	userRepo := repoFactory.UserRepo()

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.HasRole(entity.RoleSeller) {
		return nil
	}

	user.Roles = append(user.Roles, entity.RoleSeller)

	return errors.Wrap(userRepo.Update(ctx, user), "failed to grant seller role")
}

func (srv *storeService) failure(err error, msg string, args ...any) *usecase.Result {
	var missingErr *missingFieldsError
	if errors.As(err, &missingErr) {
		return usecase.FailWith(http.StatusBadRequest, "Missing required fields", map[string]any{"missingFields": missingErr.fields})
	}

	var fieldErrsErr *fieldErrorsError
	if errors.As(err, &fieldErrsErr) {
		return usecase.FailWith(http.StatusBadRequest, "Input validation failed", map[string]any{"fieldErrors": fieldErrsErr.fieldErrs})
	}

	if result := resultFromError(err); result != nil {
		return result
	}
	srv.logger.Error(msg, append(args, "error", err)...)

	return usecase.Internal()
}

func wizardView(state *wizard.State, fieldErrs []wizard.FieldError) *usecase.WizardView {
	return &usecase.WizardView{
		Draft:       state.Data(),
		Progress:    state.Progress(),
		FieldErrors: fieldErrs,
	}
}

// storeFromForm builds the pending store entity out of the validated draft.
// Delete keys for logo and cover travel through the payload unvalidated.
func storeFromForm(ownerID uuid.UUID, form *wizard.StoreForm, payload wizard.Payload) *entity.Store {
	return &entity.Store{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        form.Name,
		Slug:        form.Slug,
		Description: form.Description,
		Email:       form.Email,
		Phone:       form.Phone,
		LogoURL:     form.LogoURL,
		LogoKey:     payloadString(payload, "logoKey"),
		CoverURL:    form.CoverURL,
		CoverKey:    payloadString(payload, "coverKey"),
		Status:      entity.StoreStatusPending,

		ReturnPolicy:                        form.ReturnPolicy,
		DefaultShippingService:              form.ShippingService,
		DefaultShippingFeePerItem:           form.ShippingFeePerItem,
		DefaultShippingFeeForAdditionalItem: form.ShippingFeeForAdditionalItem,
		DefaultShippingFeePerKg:             form.ShippingFeePerKg,
		DefaultShippingFeeFixed:             form.ShippingFeeFixed,
		DefaultDeliveryTimeMin:              form.DeliveryTimeMin,
		DefaultDeliveryTimeMax:              form.DeliveryTimeMax,
	}
}

func applyStoreUpdate(store *entity.Store, input *usecase.UpdateStoreInput) {
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Slug != nil && *input.Slug != "" {
		store.Slug = *input.Slug
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Email != nil {
		store.Email = *input.Email
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.LogoKey != nil {
		store.LogoKey = *input.LogoKey
	}
	if input.CoverURL != nil {
		store.CoverURL = *input.CoverURL
	}
	if input.CoverKey != nil {
		store.CoverKey = *input.CoverKey
	}
	if input.ReturnPolicy != nil {
		store.ReturnPolicy = *input.ReturnPolicy
	}
	if input.ShippingService != nil {
		store.DefaultShippingService = *input.ShippingService
	}
	if input.ShippingFeePerItem != nil {
		store.DefaultShippingFeePerItem = *input.ShippingFeePerItem
	}
	if input.ShippingFeeForAdditionalItem != nil {
		store.DefaultShippingFeeForAdditionalItem = *input.ShippingFeeForAdditionalItem
	}
	if input.ShippingFeePerKg != nil {
		store.DefaultShippingFeePerKg = *input.ShippingFeePerKg
	}
	if input.ShippingFeeFixed != nil {
		store.DefaultShippingFeeFixed = *input.ShippingFeeFixed
	}
	if input.DeliveryTimeMin != nil {
		store.DefaultDeliveryTimeMin = *input.DeliveryTimeMin
	}
	if input.DeliveryTimeMax != nil {
		store.DefaultDeliveryTimeMax = *input.DeliveryTimeMax
	}
}

func payloadString(payload wizard.Payload, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}

	return ""
}

// missingFieldsError carries the missing field names of an incomplete draft
// out of the submission transaction.
type missingFieldsError struct {
	fields []string
}

func (e *missingFieldsError) Error() string {
	return "draft is missing required fields"
}

// fieldErrorsError carries full-draft validation failures out of the
// submission transaction.
type fieldErrorsError struct {
	fieldErrs []wizard.FieldError
}

func (e *fieldErrorsError) Error() string {
	return "draft failed validation"
}
