package database

import (
	"tourback/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens a gorm connection to the configured Postgres
// instance. TranslateError is enabled so constraint violations surface as
// gorm sentinel errors (gorm.ErrDuplicatedKey etc.) instead of raw pq errors.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
