package pathutil

import "errors"

// Sentinel errors for package pathutil.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrNotFound is returned when the source item does not exist.
	ErrNotFound = errors.New("item does not exist")

	// ErrAlreadyExists is returned when a copy or move would replace an
	// existing destination. Callers that want to overwrite remove it first.
	ErrAlreadyExists = errors.New("destination already exists")
)
