package hac

import (
	"math"

	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/linkage"
)

// Linkage builds a dendrogram from cdm using rule, dispatching to whichever
// sub-cubic algorithm handles it: Single goes to MST, the reducible
// order-independent rules go to NN-Chain, and Centroid/Median go to
// Generic. When reuse is true, ownership of cdm's cells passes to the
// callee, which mutates it in place (the caller must not read cdm
// afterward); otherwise a defensive clone is clustered instead.
func Linkage(cdm *condensed.Matrix, rule linkage.Rule, reuse bool) (*dendrogram.Dendrogram, error) {
	if !rule.Valid() {
		return nil, ErrInvalidRule
	}

	work := cdm
	if !reuse {
		work = cdm.Clone()
	}

	squaredInput, _ := linkage.Properties(rule)
	if squaredInput {
		work.MapInPlace(func(v float64) float64 { return v * v })
	}

	var out *dendrogram.Dendrogram
	switch rule {
	case linkage.Single:
		out = mstLinkage(work)
	case linkage.Centroid, linkage.Median:
		out = genericLinkage(work, rule)
	default:
		out = nnChainLinkage(work, rule)
	}

	if squaredInput {
		for i := range out.Steps {
			out.Steps[i].Dissimilarity = math.Sqrt(out.Steps[i].Dissimilarity)
		}
	}

	return out, nil
}
