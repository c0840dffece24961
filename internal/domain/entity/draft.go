package entity

import (
	"time"

	"github.com/google/uuid"
)

// DraftKind identifies which wizard a registration draft belongs to.
type DraftKind string

const (
	// DraftKindStore is the seller store-registration wizard.
	DraftKindStore DraftKind = "store"
)

// RegistrationDraft is the server-held, partially-filled state of a
// multi-step form. At most one live draft exists per owner and kind;
// it is created empty when the wizard is first opened, mutated on every
// field change, and deleted on successful submission or explicit abandon.
// The payload tolerates missing fields until final submission.
type RegistrationDraft struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Kind           DraftKind
	CurrentStep    int
	CompletedSteps []int
	Payload        map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
