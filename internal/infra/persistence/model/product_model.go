package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	SubcategoryID uuid.UUID      `gorm:"type:uuid;index"`
	Name          string         `gorm:"type:varchar(200);not null"`
	Slug          string         `gorm:"type:varchar(200);unique;not null"`
	Description   string         `gorm:"type:text"`
	Brand         string         `gorm:"type:varchar(100)"`
	Specs         datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time

	Variants []*ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table. The repeated
// groups (images, colors, sizes, specs, keywords) are JSONB columns owned by
// the variant row and replaced as a whole on update.
type ProductVariantModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(200);not null"`
	Slug        string         `gorm:"type:varchar(200);not null"`
	SKU         string         `gorm:"type:varchar(64)"`
	Description string         `gorm:"type:text"`
	Images      datatypes.JSON `gorm:"type:jsonb"`
	Colors      datatypes.JSON `gorm:"type:jsonb"`
	Sizes       datatypes.JSON `gorm:"type:jsonb"`
	Specs       datatypes.JSON `gorm:"type:jsonb"`
	Keywords    datatypes.JSON `gorm:"type:jsonb"`
	IsSale      bool           `gorm:"not null;default:false"`
	SaleEndsAt  *time.Time
	WeightKg    float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
