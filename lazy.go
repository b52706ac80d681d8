package segtree

import (
	"fmt"
)

// LazyTree is a segment tree supporting range updates with lazy propagation.
//
// T is the aggregate type, U the effect type. An effect applied to a range is
// applied to the aggregates of the O(log n) nodes covering the range right
// away and kept as pending for their children. Pending effects are pushed one
// level down whenever an operation descends through a node.
//
// Between operations, for every internal node v
//
//	value(v) == Apply(Op(value(left), value(right)), pending(v), from, to)
//
// i.e., a node's aggregate is always current for its own range, and its
// pending effect is exactly the part not yet reflected in its children.
type LazyTree[T, U any] struct {
	cfg LazyConfig[T, U]
	layout
	values  []T    // aggregates, indexed by node
	pending []U    // pending effects, indexed by internal node
	dirty   []bool // dirty[v] is false iff pending[v] is known to be Unity
}

// NewLazy creates a lazy tree over length leaves, each holding initial.
func NewLazy[T, U any](cfg LazyConfig[T, U], length int, initial T) (*LazyTree[T, U], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	t := newLazyTree(cfg.normalized(), length)
	for i := 0; i < length; i++ {
		t.values[t.leaf(i)] = initial
	}
	t.build()
	tracer().Debugf("segtree: created lazy tree of length %d, capacity %d", t.length, t.capacity)
	return t, nil
}

// NewLazyFromSlice creates a lazy tree with one leaf per element of values.
// values is copied and not retained.
func NewLazyFromSlice[T, U any](cfg LazyConfig[T, U], values []T) (*LazyTree[T, U], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty slice", ErrInvalidLength)
	}
	t := newLazyTree(cfg.normalized(), len(values))
	copy(t.values[t.leaf(0):], values)
	t.build()
	tracer().Debugf("segtree: created lazy tree from %d values, capacity %d", t.length, t.capacity)
	return t, nil
}

func newLazyTree[T, U any](cfg LazyConfig[T, U], length int) *LazyTree[T, U] {
	t := &LazyTree[T, U]{cfg: cfg, layout: newLayout(length)}
	t.values = make([]T, t.nodeCount())
	t.pending = make([]U, t.innerCount())
	t.dirty = make([]bool, t.innerCount())
	unity := cfg.Monoid.Unity()
	for i := length; i < t.capacity; i++ {
		t.values[t.leaf(i)] = unity
	}
	noop := cfg.Effect.Unity()
	for v := range t.pending {
		t.pending[v] = noop
	}
	return t
}

func (t *LazyTree[T, U]) build() {
	for v := t.innerCount() - 1; v >= 0; v-- {
		t.combine(v)
	}
}

func (t *LazyTree[T, U]) combine(v int) {
	t.values[v] = t.cfg.Monoid.Op(t.values[leftChild(v)], t.values[rightChild(v)])
}

// receive applies effect to node v covering [from, to). Internal nodes keep
// the effect as pending for their children, after whatever they already owe.
func (t *LazyTree[T, U]) receive(v int, effect U, from, to int) {
	t.values[v] = t.cfg.Effect.Apply(t.values[v], effect, from, to)
	if !t.isLeaf(v) {
		t.pending[v] = t.cfg.Effect.Compose(t.pending[v], effect)
		t.dirty[v] = true
	}
}

// propagate pushes the pending effect of node v covering [from, to) to its
// children. It has to be called before any child of v is read or written.
func (t *LazyTree[T, U]) propagate(v, from, to int) {
	if t.isLeaf(v) || !t.dirty[v] {
		return
	}
	effect := t.pending[v]
	t.pending[v] = t.cfg.Effect.Unity()
	t.dirty[v] = false
	mid := (from + to) / 2
	t.receive(leftChild(v), effect, from, mid)
	t.receive(rightChild(v), effect, mid, to)
	t.combine(v)
}

// Config returns a copy of the effective tree configuration.
func (t *LazyTree[T, U]) Config() LazyConfig[T, U] {
	return t.cfg
}

// All returns the aggregate over all leaves. It is equal to Query(0, Len()).
func (t *LazyTree[T, U]) All() T {
	return t.values[0]
}

// Update overwrites leaf index with value. Pending effects on the path from
// the root to the leaf are pushed down first, so they do not reach the new
// value.
func (t *LazyTree[T, U]) Update(index int, value T) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.update(0, 0, t.capacity, index, value)
	return nil
}

func (t *LazyTree[T, U]) update(v, from, to, index int, value T) {
	if t.isLeaf(v) {
		t.values[v] = value
		return
	}
	t.propagate(v, from, to)
	mid := (from + to) / 2
	if index < mid {
		t.update(leftChild(v), from, mid, index, value)
	} else {
		t.update(rightChild(v), mid, to, index, value)
	}
	t.combine(v)
}

// RangeApply applies effect to every leaf in [l, r). An empty range is a no-op.
func (t *LazyTree[T, U]) RangeApply(l, r int, effect U) error {
	if err := t.checkRange(l, r); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	t.rangeApply(0, 0, t.capacity, l, r, effect)
	return nil
}

func (t *LazyTree[T, U]) rangeApply(v, from, to, l, r int, effect U) {
	t.propagate(v, from, to)
	if disjoint(from, to, l, r) {
		return
	}
	if covers(l, r, from, to) {
		t.receive(v, effect, from, to)
		return
	}
	assert(!t.isLeaf(v), "range update cannot partially overlap a leaf")
	mid := (from + to) / 2
	t.rangeApply(leftChild(v), from, mid, l, r, effect)
	t.rangeApply(rightChild(v), mid, to, l, r, effect)
	t.combine(v)
}

// Query returns the aggregate over leaves [l, r). An empty range yields Unity.
//
// Query pushes pending effects along the visited paths and therefore
// modifies the tree's internal state, though not its observable content.
func (t *LazyTree[T, U]) Query(l, r int) (T, error) {
	if err := t.checkRange(l, r); err != nil {
		return t.cfg.Monoid.Unity(), err
	}
	if l == r {
		return t.cfg.Monoid.Unity(), nil
	}
	return t.query(0, 0, t.capacity, l, r), nil
}

func (t *LazyTree[T, U]) query(v, from, to, l, r int) T {
	t.propagate(v, from, to)
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

// Get returns the current value of leaf index.
func (t *LazyTree[T, U]) Get(index int) (T, error) {
	if err := t.checkIndex(index); err != nil {
		return t.cfg.Monoid.Unity(), err
	}
	v, from, to := 0, 0, t.capacity
	for !t.isLeaf(v) {
		t.propagate(v, from, to)
		mid := (from + to) / 2
		if index < mid {
			v, to = leftChild(v), mid
		} else {
			v, from = rightChild(v), mid
		}
	}
	return t.values[v], nil
}

// Values returns a copy of the current leaf values in use. All pending
// effects are pushed down to the leaves beforehand.
func (t *LazyTree[T, U]) Values() []T {
	t.propagateAll(0, 0, t.capacity)
	out := make([]T, t.length)
	copy(out, t.values[t.leaf(0):t.leaf(t.length)])
	return out
}

func (t *LazyTree[T, U]) propagateAll(v, from, to int) {
	if t.isLeaf(v) || from >= t.length {
		return
	}
	t.propagate(v, from, to)
	mid := (from + to) / 2
	t.propagateAll(leftChild(v), from, mid)
	t.propagateAll(rightChild(v), mid, to)
}
