package condensed

import (
	"fmt"
	"math"
)

// Matrix is a condensed symmetric zero-diagonal dissimilarity store.
//
// n is the number of observations; data holds n*(n-1)/2 dissimilarities for
// the strict upper triangle (row i < col j). The diagonal is virtual and is
// never stored.
type Matrix struct {
	n    int
	data []float64
}

// matrixErrorf wraps an underlying error with method context, following the
// same wrapping convention as the rest of the package: a sentinel is
// %w-wrapped with the method name and indices at the return site, so
// errors.Is still matches it.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("condensed.%s(%d,%d): %w", method, i, j, err)
}

// triangularLen returns n*(n-1)/2 for n >= 1, and 0 for n == 0.
func triangularLen(n int) int {
	return n * (n - 1) / 2
}

// sizeFromLen inverts triangularLen: given a buffer length, returns the
// unique integer n >= 1 such that n*(n-1)/2 == length, or ok=false if no
// such integer exists.
func sizeFromLen(length int) (n int, ok bool) {
	if length == 0 {
		// n=1 is the only size with zero condensed entries.
		return 1, true
	}
	// n*(n-1) = 2*length  =>  n = (1 + sqrt(1+8*length)) / 2
	disc := 1 + 8*length
	root := math.Sqrt(float64(disc))
	n = int(math.Round((1 + root) / 2))
	if n < 1 || triangularLen(n) != length {
		return 0, false
	}
	return n, true
}

// New allocates a zero-filled Matrix of size n.
//
// Complexity: O(n^2).
func New(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("condensed.New(%d): %w", n, ErrInvalidShape)
	}
	return &Matrix{n: n, data: make([]float64, triangularLen(n))}, nil
}

// NewFunc allocates a Matrix of size n and fills every cell (i, j) with i<j
// from f(i, j). It rejects any NaN value returned by f.
//
// Complexity: O(n^2).
func NewFunc(n int, f func(i, j int) (float64, error)) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := f(i, j)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(v) {
				return nil, matrixErrorf("NewFunc", i, j, ErrInvalidDissimilarity)
			}
			m.put(i, j, v)
		}
	}
	return m, nil
}

// Wrap validates a flat condensed buffer and wraps it as a Matrix without
// copying. The buffer must have length n*(n-1)/2 for some integer n >= 1 and
// must not contain NaN.
//
// Complexity: O(len(buf)).
func Wrap(buf []float64) (*Matrix, error) {
	n, ok := sizeFromLen(len(buf))
	if !ok {
		return nil, fmt.Errorf("condensed.Wrap(len=%d): %w", len(buf), ErrInvalidShape)
	}
	for idx, v := range buf {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("condensed.Wrap(offset=%d): %w", idx, ErrInvalidDissimilarity)
		}
	}
	return &Matrix{n: n, data: buf}, nil
}

// Size returns the number of observations n.
//
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// offset computes the flat index for (i, j) with i < j, or returns
// ErrOutOfRange. Every public accessor funnels through this single helper.
func (m *Matrix) offset(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0, ErrOutOfRange
	}
	if i == j {
		// Caller should have special-cased the diagonal; offset is never
		// defined for it.
		return 0, ErrDomainViolation
	}
	if i > j {
		i, j = j, i
	}
	return ((2*m.n-3-i)*i)/2 + j - 1, nil
}

// At returns the dissimilarity between i and j. At(i, i) always returns 0.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i == j {
		if i < 0 || i >= m.n {
			return 0, matrixErrorf("At", i, j, ErrOutOfRange)
		}
		return 0, nil
	}
	off, err := m.offset(i, j)
	if err != nil {
		return 0, matrixErrorf("At", i, j, err)
	}
	return m.data[off], nil
}

// Set assigns v as the dissimilarity between i and j. Setting the diagonal
// only accepts v == 0 and is otherwise a domain violation.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if math.IsNaN(v) {
		return matrixErrorf("Set", i, j, ErrInvalidDissimilarity)
	}
	if i == j {
		if i < 0 || i >= m.n {
			return matrixErrorf("Set", i, j, ErrOutOfRange)
		}
		if v != 0 {
			return matrixErrorf("Set", i, j, ErrDomainViolation)
		}
		return nil
	}
	off, err := m.offset(i, j)
	if err != nil {
		return matrixErrorf("Set", i, j, err)
	}
	m.data[off] = v
	return nil
}

// at is the bounds-free variant of At, required by the hot loops of the
// linkage algorithms. Callers guarantee i<j.
//
// Complexity: O(1).
func (m *Matrix) at(i, j int) float64 {
	return m.data[((2*m.n-3-i)*i)/2+j-1]
}

// put is the bounds-free variant of Set. Callers guarantee i<j.
//
// Complexity: O(1).
func (m *Matrix) put(i, j int, v float64) {
	m.data[((2*m.n-3-i)*i)/2+j-1] = v
}

// cellRef returns an in-place handle to cell (i, j) (i<j) so that a linkage
// rule can rewrite d_jk without a second offset computation. Callers
// guarantee i<j.
//
// Complexity: O(1).
func (m *Matrix) cellRef(i, j int) *float64 {
	return &m.data[((2*m.n-3-i)*i)/2+j-1]
}

// Ref returns a direct pointer to cell (i, j)'s dissimilarity. A hot loop
// that reads a cell and then rewrites that same cell (as the linkage update
// rules do) can hold onto the pointer instead of paying for the offset
// computation twice. The diagonal is virtual and has no addressable cell:
// Ref(i, i) always errors.
//
// Complexity: O(1).
func (m *Matrix) Ref(i, j int) (*float64, error) {
	if i == j {
		return nil, matrixErrorf("Ref", i, j, ErrDomainViolation)
	}
	if _, err := m.offset(i, j); err != nil {
		return nil, matrixErrorf("Ref", i, j, err)
	}
	if i > j {
		i, j = j, i
	}
	return m.cellRef(i, j), nil
}
