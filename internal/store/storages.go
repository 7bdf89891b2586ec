package store

import (
	"context"
	"fmt"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/logger"
)

// Storages groups the storage layer handed to the services.
type Storages struct {
	DocumentStorage

	backend DocumentBackend
}

// NewStorages selects the document backend from cfg and wraps it into a
// [DocumentStorage]:
//   - a postgres:// or postgresql:// DSN selects PostgreSQL,
//   - any other non-empty DSN is a SQLite database file,
//   - otherwise documents are stored as files under cfg.Files.UsersDir.
//
// SQL schemas are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger, opts ...Option) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	backend, err := newBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DocumentStorage: NewDocumentStorage(backend, logger, opts...),
		backend:         backend,
	}, nil
}

func newBackend(ctx context.Context, cfg config.Storage, logger *logger.Logger) (DocumentBackend, error) {
	dsn := cfg.DB.DSN

	var (
		db  *DB
		err error
	)
	switch {
	case isPostgresDSN(dsn):
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	case dsn != "":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	default:
		logger.Info().Str("dir", cfg.Files.UsersDir).Msg("using file document backend")
		return NewFileBackend(cfg.Files.UsersDir)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Str("dialect", db.dialect).Msg("using sql document backend")
	return NewSQLBackend(db), nil
}

// Close releases the backend.
func (s *Storages) Close() error {
	return s.backend.Close()
}
