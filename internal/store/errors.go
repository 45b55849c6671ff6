package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when a contact lookup (by local id on
	// the client, by id and owner on the server) matches no row.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrIdentityNotFound is returned by the identity holder when the client
	// has not enrolled yet.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrOwnerNotFound is returned when an identifier was never issued by
	// the server.
	ErrOwnerNotFound = errors.New("owner was not found")

	// ErrOwnerAlreadyExists is returned when an identifier collides with an
	// existing owner.
	ErrOwnerAlreadyExists = errors.New("owner already exists")

	// ErrInvalidContact is returned when PostgreSQL rejects a row on a
	// check or not-null constraint.
	ErrInvalidContact = errors.New("contact violates a constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan contact row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan contact rows")
)
