package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an insert collides with
	// an existing identity identifier. Identifier generation makes this
	// practically unreachable, but the unique index still reports it.
	ErrIdentityAlreadyExists = errors.New("identity already exists")

	// ErrIdentityNotFound is returned when a query expected to match an
	// identity record produces an empty result set.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrFaceLinkAlreadyExists is returned when an identity already holds
	// a face link. Re-registration under the same identifier is not
	// supported.
	ErrFaceLinkAlreadyExists = errors.New("face link already exists for identity")

	// ErrFaceLinkNotFound is returned when an identity holds no face link.
	ErrFaceLinkNotFound = errors.New("face link was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
