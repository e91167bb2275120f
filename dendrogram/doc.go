// Package dendrogram holds the result of a clustering run: an ordered
// sequence of merge Steps, plus the relabeling pass that rewrites a linkage
// algorithm's raw output into the canonical SciPy-compatible label
// convention (singletons 0..N-1; the i-th emitted merge creates label N+i).
//
// What & Why:
//
//	A linkage algorithm discovers merges as pairs of whatever ids happen to
//	be live at the time — which may be raw leaf indices or earlier
//	internal labels the algorithm invented for its own bookkeeping. Relabel
//	walks those raw steps through a union-find forest to replace each
//	pair with its components' current roots and mints the canonical
//	internal label for the merge, producing output any downstream
//	consumer (flatten, cophenetic-distance comparisons, a dendrogram
//	plot) can rely on without caring which algorithm produced it.
package dendrogram
