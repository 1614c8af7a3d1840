package primality

import "errors"

// Sentinel errors for primality operations.
var (
	// ErrInvalidArgument is returned when an argument is outside the domain of
	// the operation, such as a non-positive modulus or an even Jacobi modulus.
	ErrInvalidArgument = errors.New("primality: invalid argument")

	// ErrUnknownMethod is returned by ParseMethod for unrecognised test names.
	ErrUnknownMethod = errors.New("primality: unknown test method")

	// ErrInvalidNumber is returned by ParseNumber for malformed input.
	ErrInvalidNumber = errors.New("primality: invalid number")
)
