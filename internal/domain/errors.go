package domain

import "errors"

// ValidationError reports a caller-supplied value that failed validation
// before any provider was invoked.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrSavedSearchConflict is returned when a user already has a saved
	// search with the requested name.
	ErrSavedSearchConflict = errors.New("saved search name already exists")

	// ErrSavedSearchNotFound is returned when a saved search does not exist
	// or is not owned by the caller.
	ErrSavedSearchNotFound = errors.New("saved search not found")

	// ErrUnauthenticated is returned by operations that require a resolved
	// caller identity when none was supplied.
	ErrUnauthenticated = errors.New("caller identity required")
)
