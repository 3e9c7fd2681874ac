package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/migrations"
)

// DB wraps a vault file connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded vault schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
