package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoteNotFound is returned when no note matches the (note id, owner id)
	// pair, whether the note is missing or belongs to another user.
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyNotePatch is returned by UpdateNote when there is nothing to set.
	ErrEmptyNotePatch = errors.New("note patch is empty")

	// ErrSessionNotFound is returned by the client session store when no
	// session has been saved.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingTags is returned when note tags cannot be (de)serialized.
	ErrEncodingTags = errors.New("failed to encode note tags")
)
