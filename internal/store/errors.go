package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCarNotFound is returned when a car lookup, update, or delete targets
	// a row that does not exist or is not owned by the requesting user.
	// Ownership misses are deliberately indistinguishable from missing rows.
	ErrCarNotFound = errors.New("car was not found")

	// ErrApplicationNotFound is returned when an application lookup, update,
	// or delete targets a row that does not exist.
	ErrApplicationNotFound = errors.New("application was not found")

	// ErrLookupValueNotFound is returned when a lookup registry operation
	// targets a row that does not exist.
	ErrLookupValueNotFound = errors.New("lookup value was not found")

	// ErrNameAlreadyExists is returned when an INSERT into a lookup registry
	// hits the unique constraint on the name column.
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrVINCodeAlreadyExists is returned when a car INSERT or UPDATE hits
	// the unique constraint on vin_code.
	ErrVINCodeAlreadyExists = errors.New("vin code already exists")

	// ErrReferencedRowNotFound is returned when an INSERT or UPDATE names a
	// foreign key (brand, engine volume, transmission type, car, user) that
	// does not reference an existing row.
	ErrReferencedRowNotFound = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty patch produced no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
