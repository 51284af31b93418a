package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no record, or
	// when a note is inserted for an owner that no longer exists.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the stored version,
	// meaning the note has been modified since the client last read it.
	ErrVersionConflict = errors.New("note version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is unknown.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// IsStorageError reports whether err originates from a failed database
// operation rather than a domain condition.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrBuildingSQLQuery) ||
		errors.Is(err, ErrExecutingQuery) ||
		errors.Is(err, ErrBeginningTransaction) ||
		errors.Is(err, ErrCommitingTransaction) ||
		errors.Is(err, ErrScanningRow) ||
		errors.Is(err, ErrScanningRows)
}
