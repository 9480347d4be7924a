package database

import (
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver-level constraint violations into gorm
	// sentinels like ErrDuplicatedKey, which the credential store relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables. Shared with the test helpers,
// which run it against an in-memory sqlite instead of Postgres.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Interview{},
		&models.Task{},
		&models.Document{},
		&models.Memo{},
		&models.Session{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
