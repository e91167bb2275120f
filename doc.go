// Package hclust provides a convenience entry point over the clustering
// engine in packages condensed, linkage, and hac: build a condensed
// distance matrix directly from a slice of arbitrary elements and a metric
// function, then cluster it in one call.
//
// The engine itself (condensed, linkage, activeset, pqueue, unionfind, hac,
// dendrogram, flatten) has no dependency on this package; Cluster is a thin
// composition for callers who would otherwise hand-write
// condensed.NewFunc followed by hac.Linkage every time.
package hclust
