package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus represents the moderation state of a store.
type StoreStatus string

const (
	StoreStatusPending  StoreStatus = "pending"
	StoreStatusActive   StoreStatus = "active"
	StoreStatusBanned   StoreStatus = "banned"
	StoreStatusDisabled StoreStatus = "disabled"
)

// IsValid checks if the StoreStatus is a valid value.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusPending, StoreStatusActive, StoreStatusBanned, StoreStatusDisabled:
		return true
	default:
		return false
	}
}

// Store is the tenant entity created when a seller completes the
// registration wizard. Name, slug, email and phone are unique
// platform-wide; uniqueness is enforced at submission time, never
// while the draft is being filled in.
type Store struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Slug        string
	Description string
	Email       string
	Phone       string
	LogoURL     string
	LogoKey     string
	CoverURL    string
	CoverKey    string
	Status      StoreStatus
	Featured    bool

	// Return policy and shipping defaults collected on the policy step.
	// Shipping rates override these per destination country.
	ReturnPolicy                   string
	DefaultShippingService         string
	DefaultShippingFeePerItem      float64
	DefaultShippingFeeForAdditionalItem float64
	DefaultShippingFeePerKg        float64
	DefaultShippingFeeFixed        float64
	DefaultDeliveryTimeMin         int // days
	DefaultDeliveryTimeMax         int // days

	CreatedAt time.Time
	UpdatedAt time.Time
}
