// Package condensed: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// condensed package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. Internal invariant violations panic instead
// of returning an error.
package condensed

import "errors"

var (
	// ErrInvalidDissimilarity is returned when a NaN value is supplied through
	// a user metric function or a raw buffer constructor.
	ErrInvalidDissimilarity = errors.New("condensed: NaN dissimilarity")

	// ErrInvalidShape is returned when a flat buffer's length does not equal
	// n*(n-1)/2 for any integer n >= 1.
	ErrInvalidShape = errors.New("condensed: length is not n*(n-1)/2 for any integer n>=1")

	// ErrOutOfRange is returned when a getter/setter receives an index
	// outside [0, n).
	ErrOutOfRange = errors.New("condensed: index out of range")

	// ErrDomainViolation is returned when a caller attempts to set a
	// non-zero value on the virtual diagonal.
	ErrDomainViolation = errors.New("condensed: non-zero value on the diagonal")
)
