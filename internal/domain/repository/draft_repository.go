package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned when no draft exists for an owner and kind.
var ErrDraftNotFound = errors.New("registration draft not found")

// DraftRepository persists in-progress wizard drafts so they survive page
// reloads. Scoped per owner and wizard kind; one live draft per pair.
type DraftRepository interface {
	// FindByOwnerAndKind retrieves the live draft for an owner and wizard kind.
	FindByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) (*entity.RegistrationDraft, error)

	// Save creates the draft or overwrites the existing one for the same
	// owner and kind.
	Save(ctx context.Context, draft *entity.RegistrationDraft) error

	// Delete removes the draft for an owner and kind. Deleting a missing
	// draft is not an error.
	Delete(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) error
}
