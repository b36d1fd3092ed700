package phpsig

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedParameter is returned when a signature field does not have
	// the shape "identifier [= default]".
	ErrMalformedParameter = errors.New("malformed PHP parameter")

	// ErrInvalidIntegerDefault is returned when an integer-typed parameter has
	// a default that is not a base-10 integer.
	ErrInvalidIntegerDefault = errors.New("invalid integer default")
)
