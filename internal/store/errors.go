package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookNotFound is returned when a query or update targets a book id
	// that does not exist in the database.
	ErrBookNotFound = errors.New("book was not found")

	// ErrFormulaNotFound is returned when a query or update targets a formula
	// id that does not exist in the database.
	ErrFormulaNotFound = errors.New("formula was not found")

	// ErrNoUserLoggedIn is returned when the current-user table holds no
	// record, i.e. nobody is logged in.
	ErrNoUserLoggedIn = errors.New("no user is logged in")
)
