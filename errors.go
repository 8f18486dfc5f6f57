package lessonmark

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message, lesson or configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the backend has no resource with the requested ID.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the backend rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")
)
