package unionfind

// Forest is a disjoint-set structure over an initially-N-leaf universe that
// grows by one id per Union call, mirroring the N, N+1, ... 2N-2 internal
// label sequence of a dendrogram merge order.
type Forest struct {
	parent []int // parent[x] == -1 means x is currently a root
	next   int   // next label to mint on the following Union
}

// New builds a Forest with n singleton leaves 0..n-1, each its own root.
// The first call to Union will mint label n.
func New(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	return &Forest{parent: parent, next: n}
}

// Find returns the ultimate root of x, compressing the path traversed so
// future queries through any of the visited nodes are O(1).
func (f *Forest) Find(x int) (int, error) {
	if x < 0 || x >= len(f.parent) {
		return 0, ErrOutOfRange
	}
	root := x
	for f.parent[root] != -1 {
		root = f.parent[root]
	}
	for f.parent[x] != -1 {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}
	return root, nil
}

// Union merges the components containing a and b, minting a new label for
// the merged component and returning it with merged=true. If a and b are
// already in the same component, Union is a no-op and returns merged=false.
func (f *Forest) Union(a, b int) (label int, merged bool, err error) {
	ra, err := f.Find(a)
	if err != nil {
		return 0, false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return 0, false, err
	}
	if ra == rb {
		return 0, false, nil
	}
	label = f.next
	f.next++
	f.parent = append(f.parent, -1)
	f.parent[ra] = label
	f.parent[rb] = label
	return label, true, nil
}
