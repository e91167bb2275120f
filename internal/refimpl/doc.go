// Package refimpl implements the textbook Θ(N³) agglomerative clustering
// algorithm: repeatedly scan the entire live set for the globally closest
// pair, merge it, and update every remaining distance. It exists only as a
// test oracle that the sub-cubic algorithms in package hac are checked
// against, never as a production code path.
package refimpl
