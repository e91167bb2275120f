// Package activeset implements the active-index list (AIL), an intrusive
// doubly linked list over the integers 0..n-1 used by the linkage
// algorithms in package hac to track which cluster indices are still
// unmerged.
//
// What & Why:
//
//	Every merge step removes exactly one of its two participating indices
//	from the active set (the other is reused as the new cluster's label).
//	A plain slice with tombstones would work too, but the intrusive links
//	give O(1) arbitrary deletion and cache-friendly forward iteration
//	without a separate liveness bitmap walk.
//
// Layout:
//
//	pred and succ are []int of length n+1: index n is a sentinel
//	"past-the-end" node, so succ[last live index] and pred[first live index]
//	always resolve to a valid slot without a bounds check. start holds the
//	smallest live index, or n when the list is empty. A separate bool slice
//	tracks liveness directly (Contains is then O(1) without needing to infer
//	deletion from a sentinel value shared with a real index).
//
// Complexity:
//
//	Delete, Contains, and First all run in O(1). All, Omit, Within, and
//	NearestTo/NearestToUpdating run in O(n) in the worst case, bounded by the
//	number of live indices they visit.
package activeset
