package dendrogram

import (
	"sort"

	"github.com/mullner-go/hclust/unionfind"
)

// Step records one merge: the two cluster ids that combined, and the
// dissimilarity at which they did. Relabel emits every step with ClusterA as
// the smaller id; Append stores the ids in the order given.
type Step struct {
	ClusterA      int
	ClusterB      int
	Dissimilarity float64
}

// Dendrogram is the result of clustering N observations: N-1 merge steps.
type Dendrogram struct {
	Observations int
	Steps        []Step
}

// New returns an empty Dendrogram ready to accumulate raw steps for n
// observations via Append.
func New(n int) *Dendrogram {
	return &Dendrogram{Observations: n}
}

// Append records one raw merge step as discovered by a linkage algorithm.
// Ids are whatever the algorithm used internally; they need not yet be in
// canonical form. Relabel performs that conversion afterward.
func (d *Dendrogram) Append(a, b int, dissimilarity float64) {
	d.Steps = append(d.Steps, Step{ClusterA: a, ClusterB: b, Dissimilarity: dissimilarity})
}

// Relabel walks the buffered raw steps through a fresh union-find forest,
// replacing each step's pair of ids with its components' current roots and
// minting a new canonical internal label (N, N+1, ...) for every merge. When
// ordered is true the steps are first sorted by ascending dissimilarity
// (valid only for order-independent rules); otherwise emission order is
// preserved as-is.
//
// The result's labels follow the SciPy convention: singletons are
// 0..Observations-1, and the i-th emitted merge creates label
// Observations+i.
func (d *Dendrogram) Relabel(ordered bool) *Dendrogram {
	raw := make([]Step, len(d.Steps))
	copy(raw, d.Steps)
	if ordered {
		sort.SliceStable(raw, func(i, j int) bool {
			return raw[i].Dissimilarity < raw[j].Dissimilarity
		})
	}

	uf := unionfind.New(d.Observations)
	out := New(d.Observations)
	for _, s := range raw {
		ra, err := uf.Find(s.ClusterA)
		if err != nil {
			panic("dendrogram: Relabel: " + err.Error())
		}
		rb, err := uf.Find(s.ClusterB)
		if err != nil {
			panic("dendrogram: Relabel: " + err.Error())
		}
		a, b := ra, rb
		if a > b {
			a, b = b, a
		}
		out.Append(a, b, s.Dissimilarity)
		if _, _, err := uf.Union(ra, rb); err != nil {
			panic("dendrogram: Relabel: " + err.Error())
		}
	}
	return out
}

// ApproxEqual reports whether two dendrograms have matching observation
// counts and corresponding steps whose cluster tuples match exactly and
// whose dissimilarities agree within tolerance.
func (d *Dendrogram) ApproxEqual(other *Dendrogram, tolerance float64) bool {
	if d.Observations != other.Observations || len(d.Steps) != len(other.Steps) {
		return false
	}
	for i, s := range d.Steps {
		o := other.Steps[i]
		if s.ClusterA != o.ClusterA || s.ClusterB != o.ClusterB {
			return false
		}
		diff := s.Dissimilarity - o.Dissimilarity
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}
