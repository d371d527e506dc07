package store

import (
	"context"
	"fmt"

	"newsroom/internal/config"
	"newsroom/internal/logger"
)

// Storages aggregates every repository of the application.
type Storages struct {
	UserRepository UserRepository
	NewsRepository NewsRepository
}

// NewStorages connects to the configured database backend, applies pending
// migrations and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NewsRepository: NewNewsRepository(db, log),
	}, nil
}
