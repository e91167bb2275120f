// Package flatten derives disjoint groups of original observations from a
// built dendrogram, either by cutting at a dissimilarity threshold
// (ByHeight) or by stopping after enough merges remain to leave a target
// number of groups (ByCount). Both are read-only with respect to the
// dendrogram; neither touches package hac or the condensed matrix.
package flatten
