package activeset

import "errors"

// ErrEmpty is returned by FirstOrError when the active set has no live
// indices remaining.
var ErrEmpty = errors.New("activeset: no live indices remain")

// FirstOrError returns the smallest live index, or ErrEmpty if none remain.
//
// Complexity: O(1).
func (l *List) FirstOrError() (int, error) {
	i, ok := l.First()
	if !ok {
		return 0, ErrEmpty
	}
	return i, nil
}
