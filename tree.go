package segtree

import (
	"fmt"
)

// Tree is a segment tree supporting point updates and range queries.
//
// T is the aggregate type; Config.Monoid defines how aggregates combine.
type Tree[T any] struct {
	cfg Config[T]
	layout
	values []T // aggregates, indexed by node
}

// New creates a tree over length leaves, each holding initial.
func New[T any](cfg Config[T], length int, initial T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	t := newTree(cfg.normalized(), length)
	for i := 0; i < length; i++ {
		t.values[t.leaf(i)] = initial
	}
	t.build()
	tracer().Debugf("segtree: created tree of length %d, capacity %d", t.length, t.capacity)
	return t, nil
}

// FromSlice creates a tree with one leaf per element of values.
// values is copied and not retained.
func FromSlice[T any](cfg Config[T], values []T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty slice", ErrInvalidLength)
	}
	t := newTree(cfg.normalized(), len(values))
	copy(t.values[t.leaf(0):], values)
	t.build()
	tracer().Debugf("segtree: created tree from %d values, capacity %d", t.length, t.capacity)
	return t, nil
}

func newTree[T any](cfg Config[T], length int) *Tree[T] {
	t := &Tree[T]{cfg: cfg, layout: newLayout(length)}
	t.values = make([]T, t.nodeCount())
	unity := cfg.Monoid.Unity()
	for i := length; i < t.capacity; i++ {
		t.values[t.leaf(i)] = unity
	}
	return t
}

// build recomputes all internal aggregates from the leaves.
func (t *Tree[T]) build() {
	for v := t.innerCount() - 1; v >= 0; v-- {
		t.values[v] = t.cfg.Monoid.Op(t.values[leftChild(v)], t.values[rightChild(v)])
	}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// All returns the aggregate over all leaves. It is equal to Query(0, Len()).
func (t *Tree[T]) All() T {
	return t.values[0]
}

// Get returns the value of leaf index.
func (t *Tree[T]) Get(index int) (T, error) {
	if err := t.checkIndex(index); err != nil {
		return t.cfg.Monoid.Unity(), err
	}
	return t.values[t.leaf(index)], nil
}

// Values returns a copy of the leaf values in use.
func (t *Tree[T]) Values() []T {
	out := make([]T, t.length)
	copy(out, t.values[t.leaf(0):t.leaf(t.length)])
	return out
}

// Update overwrites leaf index with value and recomputes the aggregates of
// all its ancestors.
func (t *Tree[T]) Update(index int, value T) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	v := t.leaf(index)
	t.values[v] = value
	for v > 0 {
		v = parent(v)
		t.values[v] = t.cfg.Monoid.Op(t.values[leftChild(v)], t.values[rightChild(v)])
	}
	return nil
}

// Query returns the aggregate over leaves [l, r). An empty range yields Unity.
func (t *Tree[T]) Query(l, r int) (T, error) {
	if err := t.checkRange(l, r); err != nil {
		return t.cfg.Monoid.Unity(), err
	}
	if l == r {
		return t.cfg.Monoid.Unity(), nil
	}
	return t.query(0, 0, t.capacity, l, r), nil
}

func (t *Tree[T]) query(v, from, to, l, r int) T {
	if covers(l, r, from, to) {
		return t.values[v]
	}
	if disjoint(from, to, l, r) {
		return t.cfg.Monoid.Unity()
	}
	assert(!t.isLeaf(v), "query cannot partially overlap a leaf")
	mid := (from + to) / 2
	left := t.query(leftChild(v), from, mid, l, r)
	right := t.query(rightChild(v), mid, to, l, r)
	return t.cfg.Monoid.Op(left, right)
}
