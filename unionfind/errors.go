// Package unionfind: sentinel error set.
package unionfind

import "errors"

// ErrOutOfRange is returned by Find and Union when given an id that is
// neither an original leaf nor a label minted by a previous Union call.
var ErrOutOfRange = errors.New("unionfind: index out of range")
