package hac

import "github.com/mullner-go/hclust/condensed"

// at and ref wrap condensed.Matrix's validated accessors for the hot paths
// below. Every index reaching these calls has already been bounds-checked
// by the active-index list or the caller's own loop bounds, so an error
// here means an algorithm invariant broke; that is a bug, not a recoverable
// condition.
func at(m *condensed.Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic("hac: " + err.Error())
	}
	return v
}

// ref returns a direct handle to cell (i, j), for loops that read a cell
// and then rewrite that same cell: holding the pointer across both avoids
// computing the flat offset twice.
func ref(m *condensed.Matrix, i, j int) *float64 {
	p, err := m.Ref(i, j)
	if err != nil {
		panic("hac: " + err.Error())
	}
	return p
}
