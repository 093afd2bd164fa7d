package domain

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	// ErrEmptyCatalog is returned by quote selection when no quotes exist.
	// An empty catalog skips dispatch for the tick; it is never fatal.
	ErrEmptyCatalog = errors.New("quote catalog is empty")
)
