package segtree

import "fmt"

// Check validates structural tree invariants, using eq to compare aggregates.
//
// Padding leaves must hold Unity and every internal node must hold the
// combination of its children. Check is intended to be used in tests.
func (t *Tree[T]) Check(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if eq == nil {
		return fmt.Errorf("%w: no equality given", ErrInvalidConfig)
	}
	if err := checkPadding(t.layout, t.values, t.cfg.Monoid.Unity(), eq); err != nil {
		return err
	}
	for v := t.innerCount() - 1; v >= 0; v-- {
		want := t.cfg.Monoid.Op(t.values[leftChild(v)], t.values[rightChild(v)])
		if !eq(t.values[v], want) {
			return fmt.Errorf("%w: node %d: aggregate %v, children combine to %v",
				ErrInvariant, v, t.values[v], want)
		}
	}
	return nil
}

// Check validates structural tree invariants, using eq to compare aggregates.
//
// Padding leaves must hold Unity, and every internal node's aggregate must
// equal the combination of its children with the node's pending effect
// applied on top. Check does not push down pending effects.
func (t *LazyTree[T, U]) Check(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if eq == nil {
		return fmt.Errorf("%w: no equality given", ErrInvalidConfig)
	}
	if len(t.pending) != t.innerCount() || len(t.dirty) != t.innerCount() {
		return fmt.Errorf("%w: pending effects allocated for %d nodes, want %d",
			ErrInvariant, len(t.pending), t.innerCount())
	}
	if err := checkPadding(t.layout, t.values, t.cfg.Monoid.Unity(), eq); err != nil {
		return err
	}
	return t.checkNode(0, 0, t.capacity, eq)
}

func (t *LazyTree[T, U]) checkNode(v, from, to int, eq func(a, b T) bool) error {
	if t.isLeaf(v) {
		return nil
	}
	mid := (from + to) / 2
	if err := t.checkNode(leftChild(v), from, mid, eq); err != nil {
		return err
	}
	if err := t.checkNode(rightChild(v), mid, to, eq); err != nil {
		return err
	}
	want := t.cfg.Monoid.Op(t.values[leftChild(v)], t.values[rightChild(v)])
	if t.dirty[v] {
		want = t.cfg.Effect.Apply(want, t.pending[v], from, to)
	}
	if !eq(t.values[v], want) {
		return fmt.Errorf("%w: node %d [%d,%d): aggregate %v, expected %v",
			ErrInvariant, v, from, to, t.values[v], want)
	}
	return nil
}

func checkPadding[T any](lo layout, values []T, unity T, eq func(a, b T) bool) error {
	if len(values) != lo.nodeCount() {
		return fmt.Errorf("%w: %d aggregates allocated, want %d", ErrInvariant, len(values), lo.nodeCount())
	}
	for i := lo.length; i < lo.capacity; i++ {
		if !eq(values[lo.leaf(i)], unity) {
			return fmt.Errorf("%w: padding leaf %d holds %v", ErrInvariant, i, values[lo.leaf(i)])
		}
	}
	return nil
}
