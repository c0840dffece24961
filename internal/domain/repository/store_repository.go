package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Store, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)

	// FindConflict reports which unique field (name, slug, email or phone)
	// collides with an existing store, excluding the given id so an update
	// with unchanged values never conflicts with itself. Returns "" when
	// there is no conflict.
	FindConflict(ctx context.Context, name, slug, email, phone string, excludeID uuid.UUID) (string, error)

	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
