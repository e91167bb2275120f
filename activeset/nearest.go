package activeset

import "math"

// NearestTo scans every live index except i and returns the one minimizing
// cost, together with that minimum cost. ok is false when no live index
// other than i exists.
//
// This is the pure-read overload: cost(k) must not mutate any shared state.
// It is used by NN-Chain, which only reads the condensed matrix while
// searching.
//
// Complexity: O(n) over the live indices visited.
func (l *List) NearestTo(i int, cost func(k int) float64) (best int, bestCost float64, ok bool) {
	bestCost = math.Inf(1)
	best = -1
	l.Omit(i, func(k int) bool {
		c := cost(k)
		if c < bestCost {
			bestCost = c
			best = k
		}
		return true
	})
	return best, bestCost, best >= 0
}

// NearestToUpdating scans every live index except i, calling update(k) for
// each one and tracking the smallest value it returns. update is expected
// to mutate the caller's own running-minimum state (e.g. fold CDM[i,k] into
// d_to_current[k]) and return the resulting value.
//
// MST's Prim-style growth needs to rewrite d_to_current[k] in place while
// scanning for the next nearest node, which the pure-read NearestTo cannot
// express.
//
// Complexity: O(n) over the live indices visited.
func (l *List) NearestToUpdating(i int, update func(k int) float64) (best int, bestCost float64, ok bool) {
	bestCost = math.Inf(1)
	best = -1
	l.Omit(i, func(k int) bool {
		v := update(k)
		if v < bestCost {
			bestCost = v
			best = k
		}
		return true
	})
	return best, bestCost, best >= 0
}
