package condensed

// Clone returns a deep copy of m. Clustering algorithms mutate their
// working copy in place; hac.Linkage clusters a Clone of its input unless
// reuse is requested.
//
// Complexity: O(n^2).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{n: m.n, data: data}
}

// Map returns a new Matrix with f applied to every cell of the strict upper
// triangle. The diagonal remains virtual and is unaffected.
//
// Complexity: O(n^2).
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := m.Clone()
	out.MapInPlace(f)
	return out
}

// MapInPlace applies f to every cell of the strict upper triangle in place.
// Rules that need squared Euclidean inputs (Ward, Centroid, Median) use
// MapInPlace(x -> x*x) once before the main clustering loop.
//
// Complexity: O(n^2).
func (m *Matrix) MapInPlace(f func(float64) float64) {
	for idx, v := range m.data {
		m.data[idx] = f(v)
	}
}

// Submatrix returns the condensed matrix restricted to the given indices,
// preserving their relative order. It is used by centroid-finding after
// clustering when only a subset of the original observations remains
// relevant.
//
// Complexity: O(k^2) where k = len(indices).
func (m *Matrix) Submatrix(indices []int) (*Matrix, error) {
	k := len(indices)
	out, err := New(k)
	if err != nil {
		return nil, err
	}
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			v, err := m.At(indices[a], indices[b])
			if err != nil {
				return nil, err
			}
			out.put(a, b, v)
		}
	}
	return out, nil
}

// Centroid returns the index with the smallest average dissimilarity to all
// other observations, computed in a single pass over the upper triangle.
//
// Complexity: O(n^2).
func (m *Matrix) Centroid() int {
	sums := make([]float64, m.n)
	idx := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			v := m.data[idx]
			idx++
			sums[i] += v
			sums[j] += v
		}
	}
	best := 0
	for i := 1; i < m.n; i++ {
		if sums[i] < sums[best] {
			best = i
		}
	}
	return best
}
