package segtree

import (
	"math"
	"strings"
)

// Algebras used throughout the tests of this package.

type sumMonoid struct{}

func (sumMonoid) Unity() int             { return 0 }
func (sumMonoid) Op(left, right int) int { return left + right }

type addEffect struct{}

func (addEffect) Unity() int                     { return 0 }
func (addEffect) Compose(earlier, later int) int { return earlier + later }
func (addEffect) Apply(value, effect, from, to int) int {
	return value + effect*(to-from)
}

var minMonoid = MonoidFuncs[int]{
	UnityFn: func() int { return math.MaxInt },
	OpFn:    func(left, right int) int { return min(left, right) },
}

// assignment is an effect setting every element to value; the zero value
// is the no-op.
type assignment struct {
	set   bool
	value int
}

var assignMinEffect = EffectFuncs[int, assignment]{
	UnityFn: func() assignment { return assignment{} },
	ComposeFn: func(earlier, later assignment) assignment {
		if later.set {
			return later
		}
		return earlier
	},
	ApplyFn: func(value int, effect assignment, _, _ int) int {
		if effect.set {
			return effect.value
		}
		return value
	},
}

// affine maps x ↦ mul·x + add modulo a small prime.
type affine struct {
	mul, add int
}

const testModulus = 10007

type modSumMonoid struct{}

func (modSumMonoid) Unity() int             { return 0 }
func (modSumMonoid) Op(left, right int) int { return (left + right) % testModulus }

type affineEffect struct{}

func (affineEffect) Unity() affine { return affine{mul: 1} }

func (affineEffect) Compose(earlier, later affine) affine {
	return affine{
		mul: later.mul * earlier.mul % testModulus,
		add: (later.mul*earlier.add + later.add) % testModulus,
	}
}

func (affineEffect) Apply(value int, f affine, from, to int) int {
	return (f.mul*value + f.add*(to-from)) % testModulus
}

// concatMonoid is not commutative, which makes it sensitive to the order
// of operands.
type concatMonoid struct{}

func (concatMonoid) Unity() string                { return "" }
func (concatMonoid) Op(left, right string) string { return left + right }

// rotEffect rotates every lower-case letter through the alphabet.
type rotEffect struct{}

func (rotEffect) Unity() int                     { return 0 }
func (rotEffect) Compose(earlier, later int) int { return (earlier + later) % 26 }

func (rotEffect) Apply(value string, shift int, _, _ int) string {
	if shift == 0 {
		return value
	}
	return strings.Map(func(r rune) rune {
		if r < 'a' || r > 'z' {
			return r
		}
		return 'a' + (r-'a'+rune(shift))%26
	}, value)
}

func sumAddConfig() LazyConfig[int, int] {
	return LazyConfig[int, int]{Monoid: sumMonoid{}, Effect: addEffect{}}
}

func minAssignConfig() LazyConfig[int, assignment] {
	return LazyConfig[int, assignment]{Monoid: minMonoid, Effect: assignMinEffect}
}

func affineConfig() LazyConfig[int, affine] {
	return LazyConfig[int, affine]{Monoid: modSumMonoid{}, Effect: affineEffect{}}
}

func concatRotConfig() LazyConfig[string, int] {
	return LazyConfig[string, int]{Monoid: concatMonoid{}, Effect: rotEffect{}}
}

func eqInt(a, b int) bool       { return a == b }
func eqString(a, b string) bool { return a == b }
