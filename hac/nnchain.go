package hac

import (
	"github.com/mullner-go/hclust/activeset"
	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/linkage"
)

// nnChainLinkage produces dendrograms for the reducible, order-independent
// rules (Complete, Average, Weighted, Ward) in Θ(N²) time using the
// reciprocal-nearest-neighbor chain algorithm. It mutates cdm in place.
func nnChainLinkage(cdm *condensed.Matrix, rule linkage.Rule) *dendrogram.Dendrogram {
	n := cdm.Size()
	out := dendrogram.New(n)
	if n <= 1 {
		return out
	}

	active := activeset.New(n)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	costFrom := func(i int) func(k int) float64 {
		return func(k int) float64 {
			if k < i {
				return at(cdm, k, i)
			}
			return at(cdm, i, k)
		}
	}

	var chain []int
	for step := 0; step < n-1; step++ {
		var j int
		if len(chain) < 4 {
			chain = chain[:0]
			start, _ := active.First()
			chain = append(chain, start)
			cand, _, _ := active.NearestTo(start, costFrom(start))
			j = cand
		} else {
			chain = chain[:len(chain)-2]       // drop the merged pair
			j = chain[len(chain)-1]            // the popped predecessor
			chain = chain[:len(chain)-1]
		}

		var i int
		var dij float64
		for {
			chain = append(chain, j)
			i = j
			cand, d, _ := active.NearestTo(i, costFrom(i))
			if len(chain) >= 2 && cand == chain[len(chain)-2] {
				j, dij = cand, d
				break
			}
			j, dij = cand, d
		}

		a, b := i, j
		if a > b {
			a, b = b, a
		}
		applyNNChainUpdate(cdm, active, rule, a, b, dij, size)
		size[b] += size[a]
		active.Delete(a)

		out.Append(i, j, dij)
	}

	_, orderDependent := linkage.Properties(rule)
	return out.Relabel(!orderDependent)
}

// applyNNChainUpdate rewrites CDM[b,k] for every live k other than a and b,
// using the rule's formula fed with the current d(a,k), d(b,k), and d(a,b).
// a is about to be deleted from the active set; b survives as the merged
// cluster's label.
func applyNNChainUpdate(cdm *condensed.Matrix, active *activeset.List, rule linkage.Rule, a, b int, dab float64, size []int) {
	na, nb := size[a], size[b]
	active.Omit(a, func(k int) bool {
		if k == b {
			return true
		}
		var dak float64
		if k < a {
			dak = at(cdm, k, a)
		} else {
			dak = at(cdm, a, k)
		}
		var dbkRef *float64
		if k < b {
			dbkRef = ref(cdm, k, b)
		} else {
			dbkRef = ref(cdm, b, k)
		}
		newVal := linkage.Update(rule, dab, dak, *dbkRef, na, nb, size[k])
		*dbkRef = newVal
		return true
	})
}
