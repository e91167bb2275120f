// Package unionfind implements a disjoint-set forest used exclusively to
// relabel a raw dendrogram after construction: package dendrogram walks a
// linkage algorithm's raw merge steps (which record leaf-or-internal ids in
// whatever order the algorithm discovered them) through a Forest to rewrite
// every step's pair of ids as the pair's current component roots, minting a
// new internal label for each merge as it goes.
//
// What & Why:
//
//	The conventional dendrogram label space numbers leaves 0..N-1 and
//	internal nodes N..2N-2, one per merge, in the order merges are emitted.
//	A linkage algorithm's raw output does not necessarily discover merges
//	in an order where this labeling falls out for free (NN-Chain in
//	particular can emit merges out of final dissimilarity order), so a
//	union-find pass is run afterward purely to assign the canonical labels.
//
// Sentinel:
//
//	A root is represented by parent[x] == -1. The source material's
//	convention of parent[x] == 0 for a root does not carry over cleanly
//	here, since 0 is itself a valid leaf label; -1 is never a valid id, so
//	it is used as the "is-root" marker instead.
//
// Complexity:
//
//	Find runs in O(α(N)) amortized via path compression. Union is O(1)
//	beyond the two Find calls it performs.
package unionfind
