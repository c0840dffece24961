package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/wizard"

	"github.com/google/uuid"
)

// StoreUsecase drives the store registration wizard and the store
// submission/moderation actions.
type StoreUsecase interface {
	// GetRegistrationWizard returns the wizard view for the acting user,
	// restoring the persisted draft or creating an empty one.
	GetRegistrationWizard(ctx context.Context, actor Actor) (*WizardView, error)

	// PatchDraft shallow-merges the patch into the draft and persists it so
	// the draft survives page reloads within the session.
	PatchDraft(ctx context.Context, actor Actor, patch map[string]any) (*WizardView, error)

	// AdvanceStep validates the current step and moves forward on success.
	// On failure the returned view carries the field errors and the step
	// pointer is unchanged.
	AdvanceStep(ctx context.Context, actor Actor) (*WizardView, error)

	// RetreatStep moves the step pointer back; the completed-step set is
	// untouched.
	RetreatStep(ctx context.Context, actor Actor) (*WizardView, error)

	// AbandonDraft discards the persisted draft.
	AbandonDraft(ctx context.Context, actor Actor) error

	// MissingFields lists the field names the assembled draft still needs
	// before submission; used to block submission client-side without a
	// round trip through the full submission action.
	MissingFields(ctx context.Context, actor Actor) ([]string, error)

	// SubmitStore is the authoritative commit: it re-validates the full
	// assembled draft, checks uniqueness conflicts against persisted
	// stores, and creates the store atomically. Seller role required; the
	// draft is deleted on success.
	SubmitStore(ctx context.Context, actor Actor) *Result

	// UpdateStore updates an existing store owned by the actor. When the
	// slug changes the result carries the new dashboard URL as a redirect
	// target.
	UpdateStore(ctx context.Context, actor Actor, input *UpdateStoreInput) *Result

	// SetStoreStatus moderates a store (admin only).
	SetStoreStatus(ctx context.Context, actor Actor, storeID uuid.UUID, status entity.StoreStatus) *Result

	ListOwnStores(ctx context.Context, actor Actor) ([]*entity.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)
}

// WizardView is the wizard state handed back to the client after every
// draft operation.
type WizardView struct {
	Draft       wizard.Payload      `json:"draft"`
	Progress    wizard.Progress     `json:"progress"`
	FieldErrors []wizard.FieldError `json:"fieldErrors,omitempty"`
}

// UpdateStoreInput defines the data required to update an existing store.
// Nil pointers leave the persisted value untouched.
type UpdateStoreInput struct {
	StoreID     uuid.UUID `json:"storeId"`
	Name        *string   `json:"name,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
	Description *string   `json:"description,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	LogoURL     *string   `json:"logo,omitempty"`
	LogoKey     *string   `json:"logoKey,omitempty"`
	CoverURL    *string   `json:"cover,omitempty"`
	CoverKey    *string   `json:"coverKey,omitempty"`

	ReturnPolicy                 *string  `json:"returnPolicy,omitempty"`
	ShippingService              *string  `json:"defaultShippingService,omitempty"`
	ShippingFeePerItem           *float64 `json:"defaultShippingFeePerItem,omitempty"`
	ShippingFeeForAdditionalItem *float64 `json:"defaultShippingFeeForAdditionalItem,omitempty"`
	ShippingFeePerKg             *float64 `json:"defaultShippingFeePerKg,omitempty"`
	ShippingFeeFixed             *float64 `json:"defaultShippingFeeFixed,omitempty"`
	DeliveryTimeMin              *int     `json:"defaultDeliveryTimeMin,omitempty"`
	DeliveryTimeMax              *int     `json:"defaultDeliveryTimeMax,omitempty"`
}
