/*
Package segtree provides array-backed segment trees over a caller-supplied
monoid, with an optional lazy-propagation variant for range updates.

# Segment Trees

A segment tree summarizes a fixed-length sequence of values such that the
aggregate of any contiguous range [l, r) can be computed in O(log n). The
aggregate is defined by a monoid: an associative operation Op together with a
neutral element Unity. Typical aggregates are sums, minima, maxima or counts.
Op is not required to be commutative; the left operand always summarizes the
lower index range.

Tree supports point updates and range queries. LazyTree additionally supports
applying an effect to every element of a range, e.g. "add 3" or "set to 0".
Effects form a second monoid (composition of effects) and are tied to the
aggregates by an apply function, which receives the width of the range a node
covers. Applying an effect to a range touches O(log n) nodes: an effect is
applied to a node's own aggregate immediately and is remembered as pending
for the node's children, which receive it only when a later operation descends
into them.

Both trees are stored in flat slices using the implicit layout of a complete
binary tree: children of node v are 2v+1 and 2v+2. The number of leaves is
rounded up to a power of two; padding leaves hold Unity.

Trees are not safe for concurrent use. Queries on a LazyTree push pending
effects downwards and therefore mutate the tree; even concurrent readers have
to be serialized by the client.

# Algebra Contract

Clients are responsible for supplying lawful algebras. For aggregates a, b, c
and effects e, f:

	Op(Op(a, b), c) == Op(a, Op(b, c))
	Op(Unity(), a) == a == Op(a, Unity())
	Apply(a, Unity(), from, to) == a
	Apply(Apply(a, e, from, to), f, from, to) == Apply(a, Compose(e, f), from, to)
	Apply(Op(a, b), e, from, to) == Op(Apply(a, e, from, mid), Apply(b, e, mid, to))

None of these can be verified at runtime. Package monoids offers a selection
of ready-made algebras.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
