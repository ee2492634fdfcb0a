package service

import "errors"

var (
	// ErrNoUserLoggedIn is returned when a sync operation is invoked without
	// an authenticated session. This is a programming-contract violation, not
	// an expected sync failure: callers must ensure a user is logged in
	// before triggering sync.
	ErrNoUserLoggedIn = errors.New("no authenticated user for sync")

	// ErrNoBookSelected is returned by the coordinator when an upload is
	// triggered without a selected book.
	ErrNoBookSelected = errors.New("no book selected")

	// ErrNoFormulasSelected is returned by the coordinator when an upload is
	// triggered with an empty formula selection.
	ErrNoFormulasSelected = errors.New("no formulas selected")

	// ErrParentBookNotSynced marks a formula whose parent book has no remote
	// id yet. Detected locally; no network call is made for that formula.
	ErrParentBookNotSynced = errors.New("parent book not synced")
)
