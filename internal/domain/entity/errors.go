package entity

import "errors"

var (
	// ErrUnauthorized is returned when an operation has no authenticated principal
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when no record exists for the given id and owner.
	// Cross-owner access is indistinguishable from a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed or out-of-range input
	ErrValidation = errors.New("validation failed")

	// ErrRepository is returned for opaque storage failures
	ErrRepository = errors.New("repository error")
)
