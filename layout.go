package segtree

import "fmt"

// layout describes the implicit shape of a complete binary tree with
// capacity leaves, of which the first length are in use.
//
// Nodes are numbered 0 … 2·capacity-2 in breadth-first order. Node v covers a
// half-open range of leaves and has children 2v+1 and 2v+2, each covering
// one half of it. Leaf i is node capacity-1+i.
type layout struct {
	length   int // number of leaves in use
	capacity int // number of leaves, a power of two
}

func newLayout(length int) layout {
	assert(length > 0, "layout requires a positive length")
	capacity := 1
	for capacity < length {
		capacity <<= 1
	}
	return layout{length: length, capacity: capacity}
}

// Len returns the number of leaves in use.
func (lo layout) Len() int {
	return lo.length
}

// Capacity returns the number of leaves allocated, i.e. Len rounded up to
// the next power of two.
func (lo layout) Capacity() int {
	return lo.capacity
}

func (lo layout) nodeCount() int {
	return 2*lo.capacity - 1
}

func (lo layout) innerCount() int {
	return lo.capacity - 1
}

func (lo layout) leaf(index int) int {
	return lo.capacity - 1 + index
}

func (lo layout) isLeaf(v int) bool {
	return v >= lo.capacity-1
}

func leftChild(v int) int  { return 2*v + 1 }
func rightChild(v int) int { return 2*v + 2 }
func parent(v int) int     { return (v - 1) / 2 }

// disjoint reports whether node range [from, to) does not meet [l, r).
func disjoint(from, to, l, r int) bool {
	return r <= from || to <= l
}

// covers reports whether [l, r) contains node range [from, to).
func covers(l, r, from, to int) bool {
	return l <= from && to <= r
}

func (lo layout) checkIndex(index int) error {
	if index < 0 || index >= lo.length {
		tracer().Errorf("segtree: index %d outside of [0,%d)", index, lo.length)
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, lo.length)
	}
	return nil
}

func (lo layout) checkRange(l, r int) error {
	if l < 0 || l > r || r > lo.length {
		tracer().Errorf("segtree: range [%d,%d) invalid for length %d", l, r, lo.length)
		return fmt.Errorf("%w: [%d,%d), length %d", ErrInvalidRange, l, r, lo.length)
	}
	return nil
}
