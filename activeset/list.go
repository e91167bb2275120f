package activeset

// List is the active-index list over 0..n-1.
type List struct {
	n     int
	start int   // smallest live index, or n if empty
	pred  []int // pred[i]: predecessor of i in the chain
	succ  []int // succ[i]: successor of i in the chain; succ[n-1... ] reach n at the end
	live  []bool
}

// New builds a List with every index 0..n-1 live.
//
// Complexity: O(n).
func New(n int) *List {
	l := &List{
		n:     n,
		start: 0,
		pred:  make([]int, n+1),
		succ:  make([]int, n+1),
		live:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		l.succ[i] = i + 1
		l.live[i] = true
	}
	for i := 1; i <= n; i++ {
		l.pred[i] = i - 1
	}
	return l
}

// Contains reports whether i is still live.
//
// Complexity: O(1).
func (l *List) Contains(i int) bool {
	return i >= 0 && i < l.n && l.live[i]
}

// First returns the smallest live index, or ok=false if the list is empty.
//
// Complexity: O(1).
func (l *List) First() (int, bool) {
	if l.start >= l.n {
		return 0, false
	}
	return l.start, true
}

// Delete removes i from the active set in O(1). Deleting an already-absent
// index is a silent no-op. Deleting the current start advances start to its
// successor.
//
// Complexity: O(1).
func (l *List) Delete(i int) {
	if i < 0 || i >= l.n || !l.live[i] {
		return
	}
	l.live[i] = false
	p, s := l.pred[i], l.succ[i]
	if i == l.start {
		l.start = s
	} else {
		l.succ[p] = s
	}
	if s <= l.n {
		l.pred[s] = p
	}
}

// All yields every live index in ascending order.
//
// Complexity: O(n) over the live indices visited.
func (l *List) All(yield func(int) bool) {
	i, ok := l.First()
	for ok {
		if !yield(i) {
			return
		}
		i, ok = l.succ[i], l.succ[i] < l.n
	}
}

// Omit yields every live index except skip, in ascending order.
//
// Complexity: O(n) over the live indices visited.
func (l *List) Omit(skip int, yield func(int) bool) {
	l.All(func(i int) bool {
		if i == skip {
			return true
		}
		return yield(i)
	})
}

// Within yields every live index k with lo <= k < hi, in ascending order,
// skipping the first `skip` matches (used to cleanly exclude a pivot from a
// half-open range scan).
//
// Complexity: O(n) over the live indices visited.
func (l *List) Within(lo, hi, skip int, yield func(int) bool) {
	if lo < 0 {
		lo = 0
	}
	seen := 0
	i, ok := l.start, l.start < l.n
	// Fast-forward to the first live index >= lo.
	for ok && i < lo {
		i, ok = l.succ[i], l.succ[i] < l.n
	}
	for ok && i < hi {
		if seen < skip {
			seen++
		} else if !yield(i) {
			return
		}
		i, ok = l.succ[i], l.succ[i] < l.n
	}
}
