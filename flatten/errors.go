// Package flatten: sentinel error set.
package flatten

import "errors"

// ErrInvalidCount is returned by ByCount when count is outside [1, N].
var ErrInvalidCount = errors.New("flatten: count out of range")
