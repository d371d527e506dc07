package store

import (
	"database/sql"

	"newsroom/internal/logger"
	"newsroom/migrations"
)

// DB wraps the raw database connection together with its goose dialect so
// that repositories and migrations can share one handle regardless of the
// configured backend.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the configured dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
