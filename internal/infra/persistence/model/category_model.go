package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Name and slug are unique
// platform-wide.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	ImageURL  string    `gorm:"type:text"`
	ImageKey  string    `gorm:"type:text"`
	Featured  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Subcategories []*SubcategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel mirrors the 'subcategories' table. Name and slug are
// unique within the parent category.
type SubcategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_subcategories_category_name,priority:1;uniqueIndex:idx_subcategories_category_slug,priority:1"`
	Name       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_subcategories_category_name,priority:2"`
	Slug       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_subcategories_category_slug,priority:2"`
	ImageURL   string    `gorm:"type:text"`
	ImageKey   string    `gorm:"type:text"`
	Featured   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}
