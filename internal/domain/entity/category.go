package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level catalog grouping managed by admins.
// Name and slug are unique platform-wide.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	ImageURL  string
	ImageKey  string // Delete key returned by the media host at upload time.
	Featured  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Subcategories []*Subcategory
}

// Subcategory is a second-level catalog grouping. Name and slug are
// unique within the parent category, not platform-wide.
type Subcategory struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Slug       string
	ImageURL   string
	ImageKey   string
	Featured   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
