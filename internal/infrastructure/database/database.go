package database

import (
	"orgboard-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB. A non-empty DSN is treated as a Supabase/Postgres
// pooler URL; PreferSimpleProtocol avoids 42P05 ("prepared statement already
// exists") behind PgBouncer-style poolers. An empty DSN falls back to a local
// sqlite file so admin-sync works without a provisioned database.
func Open(dsn, sqlitePath string) (*gorm.DB, error) {
	if dsn == "" {
		return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	}
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate keeps the organizations table in step with the declared schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Organization{})
}
