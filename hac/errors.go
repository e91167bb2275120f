// Package hac: sentinel error set.
package hac

import "errors"

// ErrInvalidRule is returned when Linkage is called with a Rule outside the
// seven named variants.
var ErrInvalidRule = errors.New("hac: invalid rule")
