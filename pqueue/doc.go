// Package pqueue implements the indexed min-heap (IMH) used by the Generic
// linkage algorithm in package hac to repeatedly find the cluster whose
// nearest-neighbor distance is globally smallest.
//
// What & Why:
//
//	A plain container/heap works fine until the caller needs to lower an
//	arbitrary element's priority and still run in O(log n): that requires
//	knowing the element's current slot, which container/heap does not
//	expose. The indexed variant keeps a position map alongside the heap
//	array so SetPriority can locate and re-sift any id directly.
//
// Layout:
//
//	heap[slot] holds an id; pos[id] holds that id's current slot; prio[id]
//	holds its priority. popped ids are masked out of pos (set to -1) so
//	PriorityOf can report ErrPopped instead of reading stale data.
//
// Complexity:
//
//	Build is O(n). Peek and PriorityOf are O(1). Pop and SetPriority are
//	O(log n).
package pqueue
