package flatten

import (
	"sort"

	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/unionfind"
)

// anyLeafPerLabel returns, for every label 0..2N-3 appearing in d (leaves
// and internal merge labels alike), one arbitrary leaf drawn from that
// label's subtree. Internal labels are resolved in increasing order since a
// merge step can only reference labels minted by earlier steps.
func anyLeafPerLabel(d *dendrogram.Dendrogram) []int {
	n := d.Observations
	anyLeaf := make([]int, n+len(d.Steps))
	for l := 0; l < n; l++ {
		anyLeaf[l] = l
	}
	for i, s := range d.Steps {
		anyLeaf[n+i] = anyLeaf[s.ClusterA]
	}
	return anyLeaf
}

func groupsFromForest(uf *unionfind.Forest, n int) [][]int {
	byRoot := make(map[int][]int)
	for leaf := 0; leaf < n; leaf++ {
		root, err := uf.Find(leaf)
		if err != nil {
			panic("flatten: " + err.Error())
		}
		byRoot[root] = append(byRoot[root], leaf)
	}
	groups := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// ByHeight returns the groups of original observation indices that remain
// joined when the dendrogram is cut at the given dissimilarity: every merge
// step with Dissimilarity <= height is applied, every merge above it is
// not. Groups and the indices within each group are sorted ascending.
func ByHeight(d *dendrogram.Dendrogram, height float64) [][]int {
	n := d.Observations
	anyLeaf := anyLeafPerLabel(d)
	uf := unionfind.New(n)
	for _, s := range d.Steps {
		if s.Dissimilarity <= height {
			uf.Union(anyLeaf[s.ClusterA], anyLeaf[s.ClusterB])
		}
	}
	return groupsFromForest(uf, n)
}

// ByCount returns at most count groups of original observation indices,
// applying merge steps in stored order until exactly N-count of them have
// been applied.
func ByCount(d *dendrogram.Dendrogram, count int) ([][]int, error) {
	n := d.Observations
	if count < 1 || count > n {
		return nil, ErrInvalidCount
	}
	merges := n - count
	anyLeaf := anyLeafPerLabel(d)
	uf := unionfind.New(n)
	for i := 0; i < merges; i++ {
		s := d.Steps[i]
		uf.Union(anyLeaf[s.ClusterA], anyLeaf[s.ClusterB])
	}
	return groupsFromForest(uf, n), nil
}
