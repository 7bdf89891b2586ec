package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable     = "users"
	documentsTable = "documents"
)

// sqlBackend keeps documents as rows of the documents table, one row per
// user and kind. It serves both SQLite and PostgreSQL.
type sqlBackend struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLBackend returns a [DocumentBackend] on top of an open and migrated
// database.
func NewSQLBackend(db *DB) DocumentBackend {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == dialectPostgres {
		placeholder = sq.Dollar
	}

	return &sqlBackend{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (b *sqlBackend) isUniqueViolation(err error) bool {
	if b.db.dialect == dialectPostgres {
		return isPostgresUniqueViolation(err)
	}
	return isSQLiteUniqueViolation(err)
}

func (b *sqlBackend) UserExists(ctx context.Context, username string) (bool, error) {
	query, args, err := b.builder.
		Select("1").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}

	return true, nil
}

func (b *sqlBackend) CreateUser(ctx context.Context, username string) error {
	query, args, err := b.builder.
		Insert(usersTable).
		Columns("username", "created_at").
		Values(username, b.now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		if b.isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", ErrUserAlreadyExists, username)
		}
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}

	return nil
}

func (b *sqlBackend) ReadDocument(ctx context.Context, username string, kind DocumentKind) ([]byte, error) {
	query, args, err := b.builder.
		Select("body").
		From(documentsTable).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"kind": string(kind)}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body string
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s of %q", ErrDocumentNotFound, kind, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrScanningRows, err)
	}

	return []byte(body), nil
}

func (b *sqlBackend) WriteDocument(ctx context.Context, username string, kind DocumentKind, data []byte) error {
	query, args, err := b.builder.
		Insert(documentsTable).
		Columns("username", "kind", "body", "updated_at").
		Values(username, string(kind), string(data), b.now()).
		Suffix("ON CONFLICT (username, kind) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}

	return nil
}

func (b *sqlBackend) DeleteUser(ctx context.Context, username string) (err error) {
	deleteDocuments, docArgs, err := b.builder.Delete(documentsTable).Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteUser, userArgs, err := b.builder.Delete(usersTable).Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteDocuments, docArgs...); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteUser, userArgs...); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrCommitingTransaction, err)
	}

	return nil
}

func (b *sqlBackend) ListUsers(ctx context.Context) ([]string, error) {
	query, args, err := b.builder.
		Select("username").
		From(usersTable).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := []string{}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrScanningRows, err)
		}
		users = append(users, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrIOFailure, ErrScanningRows, err)
	}

	return users, nil
}

func (b *sqlBackend) Close() error {
	return b.db.Close()
}
