package hclust

import (
	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/hac"
	"github.com/mullner-go/hclust/linkage"
)

// Cluster builds a condensed distance matrix from items using metric, then
// clusters it with rule. metric must be symmetric and return a finite
// value for every pair; NaN results are rejected the same way
// condensed.NewFunc rejects them.
//
// CDM indices are the positions of items, so a returned dendrogram step's
// ClusterA/ClusterB, when less than len(items), is directly usable as an
// index into items.
func Cluster[T any](items []T, metric func(a, b T) float64, rule linkage.Rule, opts ...Option) (*dendrogram.Dendrogram, error) {
	o := gatherOptions(rule, opts)

	cdm, err := condensed.NewFunc(len(items), func(i, j int) (float64, error) {
		return metric(items[i], items[j]), nil
	})
	if err != nil {
		return nil, err
	}

	return hac.Linkage(cdm, o.rule, o.reuse)
}
