// Package linkage defines the seven Lance-Williams distance-update rules
// used by the clustering algorithms in package hac.
//
// What & Why:
//
//	When two clusters I and J merge into IJ, every rule computes the new
//	dissimilarity between IJ and a third cluster K from the three
//	dissimilarities d(I,K), d(J,K), d(I,J) and the three cluster sizes. This
//	is the Lance-Williams recurrence; see Müllner, "Modern hierarchical,
//	agglomerative clustering algorithms" (arXiv:1109.2378), table 1.
//
// Rule is a closed enumeration (Single..Median); Properties reports, for a
// given Rule, whether its formula requires squared input distances and
// whether the merge order it produces is meaningful (order-dependent). The
// dispatcher and the dendrogram relabeler both consult these properties
// instead of hard-coding which rules need which treatment, so adding a rule
// is a matter of filling in one row of the table in rules.go.
package linkage
