package store

import "errors"

// Sentinel errors returned by the document store. Callers should use
// [errors.Is] to match against these values; backend and decoding errors are
// wrapped so the underlying cause stays available.
var (
	// ErrUserNotFound is returned when an operation targets a user that has
	// no documents in the backend.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a user is registered twice.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrDocumentNotFound is returned when the user exists but one of its
	// documents is missing.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrCorruptDocument is returned when a persisted document cannot be
	// decoded. The document is left untouched.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrIOFailure wraps failures of the underlying file system or database.
	ErrIOFailure = errors.New("storage i/o failure")

	// ErrInvalidUsername is returned for usernames that cannot be used as a
	// storage key.
	ErrInvalidUsername = errors.New("invalid username")
)

// Low-level database errors, wrapped into [ErrIOFailure] by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails on the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when reading a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
