package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingRateModel mirrors the 'shipping_rates' table. One rate per
// store+country pair.
type ShippingRateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shipping_rates_store_country,priority:1"`
	CountryCode string    `gorm:"type:char(2);not null;uniqueIndex:idx_shipping_rates_store_country,priority:2"`

	ShippingService              string  `gorm:"type:varchar(100);not null"`
	ShippingFeePerItem           float64 `gorm:"not null;default:0"`
	ShippingFeeForAdditionalItem float64 `gorm:"not null;default:0"`
	ShippingFeePerKg             float64 `gorm:"not null;default:0"`
	ShippingFeeFixed             float64 `gorm:"not null;default:0"`
	DeliveryTimeMin              int     `gorm:"not null;default:0"`
	DeliveryTimeMax              int     `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingRateModel) TableName() string {
	return "shipping_rates"
}
