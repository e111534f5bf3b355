package service

import "errors"

var (
	// ErrNotFound covers unknown matches and players, and players without
	// any match in the requested mode.
	ErrNotFound = errors.New("requested resource not found")

	// ErrInvalidInput is caller-correctable; it wraps rating.ErrInvalidInput
	// for malformed result sets.
	ErrInvalidInput = errors.New("invalid input")

	ErrIdentityDisabled = errors.New("identity provider is not configured")
)
