package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when an operation targets a user id that
	// does not exist in the store.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserAlreadyExists is returned by Add when the freshly generated id
	// already maps to a record. Under correct use of the id counter this
	// cannot happen; it exists to keep the failure observable rather than
	// silently overwriting a record.
	ErrUserAlreadyExists = errors.New("user with generated id already exists")
)
