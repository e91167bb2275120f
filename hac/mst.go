package hac

import (
	"math"

	"github.com/mullner-go/hclust/activeset"
	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
)

// mstLinkage produces the exact single-linkage dendrogram in Θ(N²) time via
// Prim-style minimum spanning tree growth. It does not mutate cdm.
func mstLinkage(cdm *condensed.Matrix) *dendrogram.Dendrogram {
	n := cdm.Size()
	out := dendrogram.New(n)
	if n <= 1 {
		return out
	}

	active := activeset.New(n)
	dToCurrent := make([]float64, n)
	for k := 1; k < n; k++ {
		dToCurrent[k] = at(cdm, 0, k)
	}

	current := 0
	for step := 0; step < n-1; step++ {
		active.Delete(current)

		best := -1
		bestDist := math.Inf(1)
		active.Omit(current, func(k int) bool {
			var d float64
			if k < current {
				d = at(cdm, k, current)
			} else {
				d = at(cdm, current, k)
			}
			if d < dToCurrent[k] {
				dToCurrent[k] = d
			}
			if dToCurrent[k] < bestDist {
				bestDist = dToCurrent[k]
				best = k
			}
			return true
		})

		out.Append(current, best, bestDist)
		current = best
	}

	// Single linkage is order-independent: canonicalize by ascending
	// dissimilarity.
	return out.Relabel(true)
}
