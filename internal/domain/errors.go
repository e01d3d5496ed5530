package domain

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested id or key.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate key")
)
