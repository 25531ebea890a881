package core

import "errors"

// Common errors.
var (
	// ErrMalformedHeader is returned when a file starts a header block that cannot be parsed.
	ErrMalformedHeader = errors.New("malformed header block")

	// ErrOutsideRoot is returned when a path does not live under the configured root.
	ErrOutsideRoot = errors.New("path is outside the root directory")

	// ErrNoRepository is returned when a service is used without a repository.
	ErrNoRepository = errors.New("no repository configured")

	// ErrInvalidFormatter is returned when a formatter is registered without a name or function.
	ErrInvalidFormatter = errors.New("invalid formatter")
)
