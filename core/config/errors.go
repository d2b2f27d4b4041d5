package config

import "errors"

var (
	// ErrMissingVariable is returned when a required variable is unset or empty.
	ErrMissingVariable = errors.New("missing environment variable")

	// ErrInvalidValue is returned when a variable is present but cannot be
	// parsed into its field type.
	ErrInvalidValue = errors.New("invalid environment variable value")

	ErrNilConfig = errors.New("config: nil target")
	ErrDotenv    = errors.New("config: failed to read .env file")
)
