package config

import "errors"

var (
	// ErrMissingVariable is returned when a required environment variable is not set.
	ErrMissingVariable = errors.New("required environment variable is not set")
	// ErrTypeMismatch is returned when an environment variable holds a value of the wrong type.
	ErrTypeMismatch = errors.New("environment variable holds a value of the wrong type")
	// ErrFallbackFileUnreadable is returned when the fallback env file cannot be read.
	ErrFallbackFileUnreadable = errors.New("fallback env file is unreadable")
	// ErrMalformedFallbackLine is returned when the fallback env file contains a line
	// that is not a KEY=VALUE pair.
	ErrMalformedFallbackLine = errors.New("fallback env file is malformed")
)
