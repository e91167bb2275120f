// Package condensed implements a dense, symmetric, zero-diagonal
// dissimilarity store for hierarchical clustering: the condensed distance
// matrix (CDM).
//
// What & Why:
//
//	A pairwise dissimilarity matrix over N observations is symmetric with a
//	zero diagonal, so only the strict upper triangle carries information.
//	Matrix stores exactly that triangle in a single flat []float64 of length
//	N*(N-1)/2, addressed through one offset function, giving the same
//	cache-friendly, single-allocation layout as a row-major dense matrix
//	without wasting half the memory on a mirror image.
//
// Encoding:
//
//	The distance between row i and column j with i<j lives at offset
//	((2n-3-i)*i)/2 + j - 1. The diagonal is virtual: At(i, i) always reads 0
//	and Set(i, i, v) only accepts v == 0.
//
// Complexity:
//
//	At/Set run in O(1). Clone/Map/MapInPlace run in O(n^2). Centroid runs in
//	O(n^2) with a single pass over the upper triangle.
package condensed
