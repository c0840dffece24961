package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. Name, slug, email and phone carry
// unique constraints; the submission flow checks them first so the
// constraint violation path is the race fallback, not the primary check.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(50);unique;not null"`
	Slug        string    `gorm:"type:varchar(50);unique;not null"`
	Description string    `gorm:"type:text"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Phone       string    `gorm:"type:varchar(32);unique;not null"`
	LogoURL     string    `gorm:"type:text"`
	LogoKey     string    `gorm:"type:text"`
	CoverURL    string    `gorm:"type:text"`
	CoverKey    string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	Featured    bool      `gorm:"not null;default:false"`

	ReturnPolicy                        string  `gorm:"type:text"`
	DefaultShippingService              string  `gorm:"type:varchar(100)"`
	DefaultShippingFeePerItem           float64 `gorm:"not null;default:0"`
	DefaultShippingFeeForAdditionalItem float64 `gorm:"not null;default:0"`
	DefaultShippingFeePerKg             float64 `gorm:"not null;default:0"`
	DefaultShippingFeeFixed             float64 `gorm:"not null;default:0"`
	DefaultDeliveryTimeMin              int     `gorm:"not null;default:0"`
	DefaultDeliveryTimeMax              int     `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
