/*
Package inspect renders the internal state of segment trees to a console,
for debugging purposes.

Every node is printed on a line of its own, indented by depth, showing the
range of leaves it covers, its aggregate and, for lazy trees, a pending
effect not yet pushed to its children. Pending effects are highlighted if
output goes to a terminal.

	tree, _ := segtree.NewLazy(monoids.RangeAddSum[int](), 8, 0)
	tree.RangeApply(2, 5, 3)
	inspect.Fprint(os.Stdout, tree.Each)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
