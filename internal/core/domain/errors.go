package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Controllers recover from it by asking again.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCity indicates a city name or menu index that is not supported.
	ErrUnknownCity = errors.New("unknown city")

	// ErrNoMatches indicates a filter left no rows to summarise.
	ErrNoMatches = errors.New("no matching entries")

	// ErrOutOfBounds indicates a window reaches past the end of the table.
	// No partial window is ever returned.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrMissingColumn indicates a data file lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedSource indicates an unknown trip source kind in configuration.
	ErrUnsupportedSource = errors.New("unsupported source")
)
