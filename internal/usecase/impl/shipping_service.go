package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/wizard"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shippingService implements the ShippingUsecase interface.
type shippingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewShippingService is the constructor for shippingService.
func NewShippingService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ShippingUsecase {
	return &shippingService{
		txManager: txManager,
		logger:    logger,
	}
}

// UpsertShippingRate creates or replaces the rate for one destination country
// of a store the actor owns.
func (srv *shippingService) UpsertShippingRate(ctx context.Context, actor usecase.Actor, input *usecase.UpsertShippingRateInput) *usecase.Result {
	if !actor.Authenticated() {
		return usecase.Unauthenticated()
	}
	if !actor.HasRole(entity.RoleSeller) {
		return usecase.Forbidden()
	}

	if missing := missingRateFields(input); len(missing) > 0 {
		return usecase.FailWith(http.StatusBadRequest, "Missing required fields", map[string]any{"missingFields": missing})
	}
	if fieldErrs := invalidRateFields(input); len(fieldErrs) > 0 {
		return usecase.FailWith(http.StatusBadRequest, "Input validation failed", map[string]any{"fieldErrors": fieldErrs})
	}

	rate := &entity.ShippingRate{
		ID:          uuid.New(),
		StoreID:     input.StoreID,
		CountryCode: strings.ToUpper(input.CountryCode),

		ShippingService:              input.ShippingService,
		ShippingFeePerItem:           input.ShippingFeePerItem,
		ShippingFeeForAdditionalItem: input.ShippingFeeForAdditionalItem,
		ShippingFeePerKg:             input.ShippingFeePerKg,
		ShippingFeeFixed:             input.ShippingFeeFixed,
		DeliveryTimeMin:              input.DeliveryTimeMin,
		DeliveryTimeMax:              input.DeliveryTimeMax,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkStoreOwnership(ctx, repoFactory, input.StoreID, actor.ID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.ShippingRateRepo().Upsert(ctx, rate), "failed to upsert shipping rate")
	})
	if err != nil {
		return srv.failure(err, "shipping rate upsert failed", "storeID", input.StoreID, "countryCode", input.CountryCode)
	}

	return usecase.OK(http.StatusOK, "Shipping rate saved", rate)
}

// ListStoreRates returns the country rates of a store the actor owns.
func (srv *shippingService) ListStoreRates(ctx context.Context, actor usecase.Actor, storeID uuid.UUID) ([]*entity.ShippingRate, error) {
	if !actor.Authenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var rates []*entity.ShippingRate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkStoreOwnership(ctx, repoFactory, storeID, actor.ID); err != nil {
			return err
		}

		found, err := repoFactory.ShippingRateRepo().ListByStore(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to list shipping rates")
		}
		rates = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store shipping rates")
	}

	return rates, nil
}

// GetShippingDetails resolves the effective shipping configuration for a
// store and country: the country rate when one exists, the store defaults
// otherwise.
func (srv *shippingService) GetShippingDetails(ctx context.Context, storeID uuid.UUID, countryCode string) (*entity.ShippingDetails, error) {
	countryCode = strings.ToUpper(countryCode)

	var details *entity.ShippingDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rate, err := repoFactory.ShippingRateRepo().FindByStoreAndCountry(ctx, storeID, countryCode)
		if err == nil {
			details = entity.DetailsFromRate(rate)

			return nil
		}
		if !errors.Is(err, repository.ErrShippingRateNotFound) {
			return errors.Wrap(err, "failed to find shipping rate")
		}

		store, err := repoFactory.StoreRepo().FindByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return errNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}
		details = entity.DetailsFromStore(store, countryCode)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve shipping details")
	}

	return details, nil
}

func (srv *shippingService) checkStoreOwnership(ctx context.Context, repoFactory repository.RepositoryFactory, storeID, ownerID uuid.UUID) error {
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

func (srv *shippingService) failure(err error, msg string, args ...any) *usecase.Result {
	if result := resultFromError(err); result != nil {
		return result
	}
	srv.logger.Error(msg, append(args, "error", err)...)

	return usecase.Internal()
}

// missingRateFields reports absent values only; present-but-malformed ones
// are the invalidRateFields concern.
func missingRateFields(input *usecase.UpsertShippingRateInput) []string {
	var missing []string
	if input.StoreID == uuid.Nil {
		missing = append(missing, "storeId")
	}
	if input.CountryCode == "" {
		missing = append(missing, "countryCode")
	}
	if input.ShippingService == "" {
		missing = append(missing, "shippingService")
	}
	if input.DeliveryTimeMin == 0 {
		missing = append(missing, "deliveryTimeMin")
	}
	if input.DeliveryTimeMax == 0 {
		missing = append(missing, "deliveryTimeMax")
	}

	return missing
}

func invalidRateFields(input *usecase.UpsertShippingRateInput) []wizard.FieldError {
	var fieldErrs []wizard.FieldError
	if input.CountryCode != "" && !isCountryCode(input.CountryCode) {
		fieldErrs = append(fieldErrs, wizard.FieldError{Field: "countryCode", Message: "Must be a two-letter ISO country code"})
	}
	if input.DeliveryTimeMin < 0 {
		fieldErrs = append(fieldErrs, wizard.FieldError{Field: "deliveryTimeMin", Message: "Must be at least 1"})
	}
	if input.DeliveryTimeMax != 0 && input.DeliveryTimeMax < input.DeliveryTimeMin {
		fieldErrs = append(fieldErrs, wizard.FieldError{Field: "deliveryTimeMax", Message: "Must not be lower than the minimum"})
	}

	return fieldErrs
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
