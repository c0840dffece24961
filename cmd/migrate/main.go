// Command migrate applies the database schema for all persistence models.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/infra/persistence/model"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	// uuid_generate_v7 backs the primary key defaults of every table.
	if err := db.Exec(uuidV7Function).Error; err != nil {
		logger.Error("Failed to create uuid_generate_v7 function", slog.Any("error", err))
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.SubcategoryModel{},
		&model.StoreModel{},
		&model.ProductModel{},
		&model.ProductVariantModel{},
		&model.ShippingRateModel{},
		&model.RegistrationDraftModel{},
	)
	if err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println("migration complete")
}

// uuidV7Function builds a UUIDv7 out of the current timestamp and random
// bits, so primary keys stay roughly time-ordered.
const uuidV7Function = `
CREATE OR REPLACE FUNCTION uuid_generate_v7()
RETURNS uuid
AS $$
SELECT encode(
    set_bit(
        set_bit(
            overlay(uuid_send(gen_random_uuid())
                    placing substring(int8send(floor(extract(epoch from clock_timestamp()) * 1000)::bigint) from 3)
                    from 1 for 6
            ),
            52, 1
        ),
        53, 1
    ),
    'hex')::uuid;
$$ LANGUAGE SQL VOLATILE;
`
