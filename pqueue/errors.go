// Package pqueue: sentinel error set.
package pqueue

import "errors"

// ErrPopped is returned by PriorityOf when queried with an id that has
// already been removed from the heap.
var ErrPopped = errors.New("pqueue: id has been popped")
