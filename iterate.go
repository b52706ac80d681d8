package segtree

// NodeInfo describes a single tree node, as reported by Each.
type NodeInfo[T, U any] struct {
	Index    int  // position in breadth-first order
	Depth    int  // 0 for the root
	From, To int  // covered leaves [From, To)
	Leaf     bool // true for leaves, including padding leaves
	Padding  bool // true if the node covers padding leaves only
	Value    T    // aggregate of the node
	Pending  U    // pending effect; Unity for plain trees and leaves
	Deferred bool // true if Pending has not yet been pushed to the children
}

// Each walks the tree nodes in pre-order. No effects are
// propagated.
//
// Iteration stops early if callback returns false.
func (t *Tree[T]) Each(fn func(n NodeInfo[T, struct{}]) bool) {
	if t == nil || fn == nil {
		return
	}
	walkLayout(t.layout, 0, 0, 0, t.capacity, func(v, depth, from, to int) bool {
		return fn(NodeInfo[T, struct{}]{
			Index:   v,
			Depth:   depth,
			From:    from,
			To:      to,
			Leaf:    t.isLeaf(v),
			Padding: from >= t.length,
			Value:   t.values[v],
		})
	})
}

// Each walks the tree nodes in pre-order. No effects are
// propagated; a node with a deferred effect reports it in NodeInfo.Pending.
//
// Iteration stops early if callback returns false.
func (t *LazyTree[T, U]) Each(fn func(n NodeInfo[T, U]) bool) {
	if t == nil || fn == nil {
		return
	}
	noop := t.cfg.Effect.Unity()
	walkLayout(t.layout, 0, 0, 0, t.capacity, func(v, depth, from, to int) bool {
		info := NodeInfo[T, U]{
			Index:   v,
			Depth:   depth,
			From:    from,
			To:      to,
			Leaf:    t.isLeaf(v),
			Padding: from >= t.length,
			Value:   t.values[v],
			Pending: noop,
		}
		if !info.Leaf {
			info.Pending = t.pending[v]
			info.Deferred = t.dirty[v]
		}
		return fn(info)
	})
}

func walkLayout(lo layout, v, depth, from, to int, fn func(v, depth, from, to int) bool) bool {
	if !fn(v, depth, from, to) {
		return false
	}
	if lo.isLeaf(v) {
		return true
	}
	mid := (from + to) / 2
	if !walkLayout(lo, leftChild(v), depth+1, from, mid, fn) {
		return false
	}
	return walkLayout(lo, rightChild(v), depth+1, mid, to, fn)
}
