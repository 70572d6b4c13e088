package domain

import "errors"

var (
	// ErrInvalidStatus is returned when a caller-supplied status string has no
	// database code on a write path.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrPageNotFound is returned when an external page id matches no row.
	ErrPageNotFound = errors.New("page not found")
)
