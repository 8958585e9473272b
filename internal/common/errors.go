// Package common defines shared constants and sentinel errors used across
// dashvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already exists")

	// Auth/session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedSession   = errors.New("malformed session record")
	ErrNoSession          = errors.New("no active session")

	// Validation errors (empty required inputs and the like).
	ErrValidation = errors.New("validation error")
)
