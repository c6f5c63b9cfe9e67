package store

import "errors"

// Sentinel errors returned by slot storages. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSlotEmpty is returned by Load when nothing has been stored under the
	// requested slot yet.
	ErrSlotEmpty = errors.New("slot is empty")

	// ErrStorageUnavailable wraps every backend fault (I/O, driver, network).
	// It is the only storage error that should reach the user.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmptySlotName is returned when a slot name is blank.
	ErrEmptySlotName = errors.New("slot name is empty")

	// ErrUnsupportedDSN is returned by NewSlotStorage when the DSN does not
	// select any known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors, wrapped together with
// ErrStorageUnavailable by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the slots table
	// fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when the upsert statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
