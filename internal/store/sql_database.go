package store

import (
	"database/sql"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/migrations"
)

// SQL dialects understood by [DB]. They double as database/sql driver names
// and goose dialect names.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB is an open database connection together with its dialect.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("error applying migrations")
		return err
	}

	db.logger.Debug().Str("dialect", db.dialect).Msg("migrations applied")
	return nil
}
