package types

import "errors"

// Validation errors, rejected before a record reaches any store.
var (
	ErrSeasonEmpty       = errors.New("season must not be empty")
	ErrNumberEmpty       = errors.New("game number must not be empty")
	ErrNegativeAmount    = errors.New("payment amount must not be negative")
	ErrInvalidPaidStatus = errors.New("unknown paid status")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
)

// Store errors.
var (
	// ErrNotFound is returned when no game exists for a (season, number) key.
	ErrNotFound = errors.New("game not found")

	// ErrBackendUnavailable is returned when a database cannot be reached or
	// opened. The selector absorbs it and falls back to JSON-only mode.
	ErrBackendUnavailable = errors.New("database backend unavailable")

	// ErrConflict is returned when a uniqueness constraint trips on a path
	// other than upsert. Upserts never produce it; seeing it signals a logic
	// error.
	ErrConflict = errors.New("duplicate (season, game number)")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
)
