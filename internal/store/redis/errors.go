package redis

import "errors"

var (
	// ErrNotFound signals an id absent from the record store. Listing never
	// returns it; single-record operations surface it for a 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized signals a failed credential check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation wraps policy violations on caller-supplied values.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signals that an optimistic read-modify-write ran out of
	// retries under contention.
	ErrConflict = errors.New("too much contention")
)
