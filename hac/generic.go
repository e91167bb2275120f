package hac

import (
	"math"

	"github.com/mullner-go/hclust/activeset"
	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/linkage"
	"github.com/mullner-go/hclust/pqueue"
)

// genericLinkage produces dendrograms for every rule, including the
// order-dependent Centroid and Median rules which can legally produce
// dendrogram inversions. It mutates cdm in place.
//
// Maintains, for every live index i < N-1, nearest[i]: the best neighbor of
// i among live indices > i, and an indexed min-heap keyed by
// CDM[i, nearest[i]]. The heap intentionally stores underestimates of the
// true current distance and repairs them lazily on pop.
func genericLinkage(cdm *condensed.Matrix, rule linkage.Rule) *dendrogram.Dendrogram {
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

	nearest := make([]int, n)
	priorities := make([]float64, n)
	nearestAbove := func(i int) (int, float64) {
		best := -1
		bestD := math.Inf(1)
		active.Omit(i, func(k int) bool {
			if k <= i {
				return true
			}
			d := at(cdm, i, k)
			if d < bestD {
				bestD = d
				best = k
			}
			return true
		})
		return best, bestD
	}
	for i := 0; i < n-1; i++ {
		best, bestD := nearestAbove(i)
		nearest[i] = best
		priorities[i] = bestD
	}
	priorities[n-1] = math.Inf(1)
	nearest[n-1] = -1

	heap := pqueue.Build(n, func(i int) float64 { return priorities[i] })

	recompute := func(i int) {
		best, bestD := nearestAbove(i)
		nearest[i] = best
		priorities[i] = bestD
		heap.SetPriority(i, bestD)
	}

	for step := 0; step < n-1; step++ {
		for {
			top := heap.Peek()
			actual := math.Inf(1)
			if nearest[top] >= 0 {
				actual = at(cdm, top, nearest[top])
			}
			p, err := heap.PriorityOf(top)
			if err != nil {
				panic("hac: " + err.Error())
			}
			if p >= actual {
				break
			}
			recompute(top)
		}

		i := heap.Pop()
		j := nearest[i]
		d := priorities[i]
		out.Append(i, j, d)

		ni, nj := size[i], size[j]
		bestJPrio := math.Inf(1)
		bestJNeighbor := -1

		active.Omit(i, func(k int) bool {
			if k == j {
				return true
			}
			var dik float64
			if k < i {
				dik = at(cdm, k, i)
			} else {
				dik = at(cdm, i, k)
			}
			var djkRef *float64
			if k < j {
				djkRef = ref(cdm, k, j)
			} else {
				djkRef = ref(cdm, j, k)
			}
			newVal := linkage.Update(rule, d, dik, *djkRef, ni, nj, size[k])
			*djkRef = newVal

			switch {
			case k < i:
				if newVal < priorities[k] {
					priorities[k] = newVal
					nearest[k] = j
					heap.SetPriority(k, newVal)
				} else if nearest[k] == i {
					nearest[k] = j
				}
			case k < j: // i < k < j
				if newVal < priorities[k] {
					priorities[k] = newVal
					nearest[k] = j
					heap.SetPriority(k, newVal)
				}
			default: // k > j
				if newVal < bestJPrio {
					bestJPrio = newVal
					bestJNeighbor = k
				}
			}
			return true
		})

		priorities[j] = bestJPrio
		nearest[j] = bestJNeighbor
		heap.SetPriority(j, bestJPrio)

		size[j] += size[i]
		active.Delete(i)
	}

	_, orderDependent := linkage.Properties(rule)
	return out.Relabel(!orderDependent)
}
