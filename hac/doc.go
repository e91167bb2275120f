// Package hac implements the three sub-cubic linkage algorithms — MST,
// NN-Chain, and Generic — and the dispatcher that selects among them based
// on the requested Lance-Williams rule.
//
// What & Why:
//
//	A single Θ(N²) algorithm does not exist that handles every rule: Single
//	linkage admits a pure minimum-spanning-tree growth with no priority
//	queue at all; the reducible, order-independent rules (Complete,
//	Average, Weighted, Ward) admit the nearest-neighbor-chain algorithm,
//	which needs no lazy correction because later distance updates can
//	only increase already-computed distances; Centroid and Median can
//	produce dendrogram inversions, which NN-Chain's reciprocal-pair
//	assumption cannot tolerate, so they fall back to the Generic
//	lazy-priority-queue algorithm. Linkage hides this selection behind one
//	call.
//
// See Müllner, "Modern hierarchical, agglomerative clustering algorithms"
// (arXiv:1109.2378), sections 3-4, for the algorithms this package follows.
package hac
