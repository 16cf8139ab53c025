package dotenv

import "errors"

var (
	// ErrMalformedLine is returned when a non-empty line cannot be split
	// into a key and a value around a '=' separator.
	ErrMalformedLine = errors.New("not a KEY=VALUE pair")
)
