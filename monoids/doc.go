/*
Package monoids provides some pre-manufactured algebras for segment trees.

Aggregates are provided as implementations of segtree.Monoid, range updates
as implementations of segtree.Effect. Functions named Range… bundle a
matching pair into a segtree.LazyConfig.

Effects which shift values (Add, AddExtreme) are not checked for overflow.
Clients using Min or Max with a sentinel of math.MaxInt (or similar) should
take care not to apply effects to ranges holding sentinel values.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package monoids

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
