package refimpl

import (
	"math"

	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/linkage"
)

// Linkage clusters cdm with rule using the naive Θ(N³) algorithm: each of
// the N-1 steps does a full O(N²) scan for the closest live pair, so the
// whole run is O(N³). cdm is never mutated; the function works on its own
// clone.
func Linkage(cdm *condensed.Matrix, rule linkage.Rule) *dendrogram.Dendrogram {
	n := cdm.Size()
	out := dendrogram.New(n)
	if n <= 1 {
		return out
	}

	work := cdm.Clone()
	squaredInput, orderDependent := linkage.Properties(rule)
	if squaredInput {
		work.MapInPlace(func(v float64) float64 { return v * v })
	}

	size := make([]int, n)
	live := make([]bool, n)
	for i := range size {
		size[i] = 1
		live[i] = true
	}

	for step := 0; step < n-1; step++ {
		bestA, bestB := -1, -1
		bestD := math.Inf(1)
		for a := 0; a < n; a++ {
			if !live[a] {
				continue
			}
			for b := a + 1; b < n; b++ {
				if !live[b] {
					continue
				}
				d := must(work.At(a, b))
				if d < bestD {
					bestD = d
					bestA, bestB = a, b
				}
			}
		}

		for k := 0; k < n; k++ {
			if !live[k] || k == bestA || k == bestB {
				continue
			}
			dak := must(work.At(min(bestA, k), max(bestA, k)))
			dbk := must(work.At(min(bestB, k), max(bestB, k)))
			newVal := linkage.Update(rule, bestD, dak, dbk, size[bestA], size[bestB], size[k])
			must0(work.Set(min(bestB, k), max(bestB, k), newVal))
		}

		size[bestB] += size[bestA]
		live[bestA] = false

		d := bestD
		if squaredInput {
			d = math.Sqrt(d)
		}
		out.Append(bestA, bestB, d)
	}

	return out.Relabel(!orderDependent)
}

func must(v float64, err error) float64 {
	if err != nil {
		panic("refimpl: " + err.Error())
	}
	return v
}

func must0(err error) {
	if err != nil {
		panic("refimpl: " + err.Error())
	}
}
