package monoids

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/segtree"
)

// Add adds a constant to every element of a range, for trees aggregating
// with Sum.
type Add[N Number] struct{}

func (Add[N]) Unity() N                   { return 0 }
func (Add[N]) Compose(earlier, later N) N { return earlier + later }

func (Add[N]) Apply(value N, effect N, from, to int) N {
	return value + effect*N(to-from)
}

// AddExtreme adds a constant to every element of a range, for trees
// aggregating with Min or Max. Shifting all elements shifts the extreme.
type AddExtreme[N Number] struct{}

func (AddExtreme[N]) Unity() N                   { return 0 }
func (AddExtreme[N]) Compose(earlier, later N) N { return earlier + later }

func (AddExtreme[N]) Apply(value N, effect N, _, _ int) N {
	return value + effect
}

// Assignment is an effect setting every element of a range to Value.
// The zero Assignment is the no-op.
type Assignment[N any] struct {
	Valid bool
	Value N
}

// Set creates an assignment of value.
func Set[N any](value N) Assignment[N] {
	return Assignment[N]{Valid: true, Value: value}
}

func (a Assignment[N]) String() string {
	if !a.Valid {
		return "·"
	}
	return fmt.Sprintf("=%v", a.Value)
}

func composeAssignments[N any](earlier, later Assignment[N]) Assignment[N] {
	if later.Valid {
		return later
	}
	return earlier
}

// AssignSum assigns a value to every element of a range, for trees
// aggregating with Sum.
type AssignSum[N Number] struct{}

func (AssignSum[N]) Unity() Assignment[N] { return Assignment[N]{} }

func (AssignSum[N]) Compose(earlier, later Assignment[N]) Assignment[N] {
	return composeAssignments(earlier, later)
}

func (AssignSum[N]) Apply(value N, effect Assignment[N], from, to int) N {
	if !effect.Valid {
		return value
	}
	return effect.Value * N(to-from)
}

// AssignExtreme assigns a value to every element of a range, for trees
// aggregating with Min or Max.
type AssignExtreme[N cmp.Ordered] struct{}

func (AssignExtreme[N]) Unity() Assignment[N] { return Assignment[N]{} }

func (AssignExtreme[N]) Compose(earlier, later Assignment[N]) Assignment[N] {
	return composeAssignments(earlier, later)
}

func (AssignExtreme[N]) Apply(value N, effect Assignment[N], _, _ int) N {
	if !effect.Valid {
		return value
	}
	return effect.Value
}

// AffineMap is the effect x ↦ Mul·x + Add.
type AffineMap[N Number] struct {
	Mul, Add N
}

func (f AffineMap[N]) String() string {
	return fmt.Sprintf("x↦%v·x+%v", f.Mul, f.Add)
}

// Affine applies an affine map to every element of a range, for trees
// aggregating with Sum.
type Affine[N Number] struct{}

func (Affine[N]) Unity() AffineMap[N] { return AffineMap[N]{Mul: 1} }

func (Affine[N]) Compose(earlier, later AffineMap[N]) AffineMap[N] {
	return AffineMap[N]{
		Mul: later.Mul * earlier.Mul,
		Add: later.Mul*earlier.Add + later.Add,
	}
}

func (Affine[N]) Apply(value N, effect AffineMap[N], from, to int) N {
	return effect.Mul*value + effect.Add*N(to-from)
}

// ModAffine applies an affine map modulo Modulus to every element of a
// range, for trees aggregating with ModSum of the same modulus. As with
// ModSum, a Modulus ≤ 0 stands for DefaultModulus.
type ModAffine struct {
	Modulus int64
}

func (m ModAffine) Unity() AffineMap[int64] { return AffineMap[int64]{Mul: 1} }

func (m ModAffine) Compose(earlier, later AffineMap[int64]) AffineMap[int64] {
	mod := ModSum(m).modulus()
	return AffineMap[int64]{
		Mul: later.Mul * earlier.Mul % mod,
		Add: (later.Mul*earlier.Add%mod + later.Add) % mod,
	}
}

func (m ModAffine) Apply(value int64, effect AffineMap[int64], from, to int) int64 {
	mod := ModSum(m).modulus()
	width := int64(to-from) % mod
	return (effect.Mul*value%mod + effect.Add*width%mod) % mod
}

// Map creates an affine map modulo Modulus, normalizing mul and add.
func (m ModAffine) Map(mul, add int64) AffineMap[int64] {
	norm := ModSum(m)
	return AffineMap[int64]{Mul: norm.Normalize(mul), Add: norm.Normalize(add)}
}

// RangeAddSum configures a lazy tree for range-add / range-sum.
func RangeAddSum[N Number]() segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Sum[N]{}, Effect: Add[N]{}}
}

// RangeAddMin configures a lazy tree for range-add / range-minimum.
func RangeAddMin[N Number](sentinel N) segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Min[N]{Sentinel: sentinel}, Effect: AddExtreme[N]{}}
}

// RangeAddMax configures a lazy tree for range-add / range-maximum.
func RangeAddMax[N Number](sentinel N) segtree.LazyConfig[N, N] {
	return segtree.LazyConfig[N, N]{Monoid: Max[N]{Sentinel: sentinel}, Effect: AddExtreme[N]{}}
}

// RangeAssignSum configures a lazy tree for range-assign / range-sum.
func RangeAssignSum[N Number]() segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{Monoid: Sum[N]{}, Effect: AssignSum[N]{}}
}

// RangeAssignMin configures a lazy tree for range-assign / range-minimum.
func RangeAssignMin[N cmp.Ordered](sentinel N) segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{
		Monoid: Min[N]{Sentinel: sentinel},
		Effect: AssignExtreme[N]{},
	}
}

// RangeAssignMax configures a lazy tree for range-assign / range-maximum.
func RangeAssignMax[N cmp.Ordered](sentinel N) segtree.LazyConfig[N, Assignment[N]] {
	return segtree.LazyConfig[N, Assignment[N]]{
		Monoid: Max[N]{Sentinel: sentinel},
		Effect: AssignExtreme[N]{},
	}
}

// RangeAffineSum configures a lazy tree for range-affine / range-sum.
func RangeAffineSum[N Number]() segtree.LazyConfig[N, AffineMap[N]] {
	return segtree.LazyConfig[N, AffineMap[N]]{Monoid: Sum[N]{}, Effect: Affine[N]{}}
}

// RangeAffineModSum configures a lazy tree for range-affine / range-sum
// modulo modulus. The modulus has to be positive and small enough for the
// product of two residues to fit into an int64.
func RangeAffineModSum(modulus int64) (segtree.LazyConfig[int64, AffineMap[int64]], error) {
	if modulus <= 0 || modulus > 3_037_000_499 {
		tracer().Errorf("monoids: modulus %d out of range", modulus)
		return segtree.LazyConfig[int64, AffineMap[int64]]{},
			fmt.Errorf("%w: modulus %d", segtree.ErrInvalidConfig, modulus)
	}
	return segtree.LazyConfig[int64, AffineMap[int64]]{
		Monoid: ModSum{Modulus: modulus},
		Effect: ModAffine{Modulus: modulus},
	}, nil
}
