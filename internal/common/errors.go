// Package common defines shared utilities and sentinel errors used across
// LegalLite components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrValidation     = errors.New("validation error")
	ErrAPIKeyRequired = errors.New("api key required")
	ErrModeNotChosen  = errors.New("mode not chosen")

	// Session/auth errors (invalid or malformed cookie token).
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
)
