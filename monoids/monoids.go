package monoids

import (
	"cmp"

	"github.com/npillmayer/segtree"
)

// Number is the set of numeric types usable with the arithmetic algebras.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum aggregates by addition.
type Sum[N Number] struct{}

func (Sum[N]) Unity() N           { return 0 }
func (Sum[N]) Op(left, right N) N { return left + right }

// Product aggregates by multiplication.
type Product[N Number] struct{}

func (Product[N]) Unity() N           { return 1 }
func (Product[N]) Op(left, right N) N { return left * right }

// Min aggregates to the minimum. Sentinel serves as Unity and has to be
// greater than or equal to every value stored in the tree.
type Min[N cmp.Ordered] struct {
	Sentinel N
}

func (m Min[N]) Unity() N           { return m.Sentinel }
func (m Min[N]) Op(left, right N) N { return min(left, right) }

// Max aggregates to the maximum. Sentinel serves as Unity and has to be
// less than or equal to every value stored in the tree.
type Max[N cmp.Ordered] struct {
	Sentinel N
}

func (m Max[N]) Unity() N           { return m.Sentinel }
func (m Max[N]) Op(left, right N) N { return max(left, right) }

// ModSum aggregates by addition modulo Modulus. Values are expected to be
// normalized to [0, Modulus). A Modulus ≤ 0, as in the zero value, stands
// for DefaultModulus.
type ModSum struct {
	Modulus int64
}

func (m ModSum) Unity() int64 { return 0 }

func (m ModSum) Op(left, right int64) int64 {
	return (left + right) % m.modulus()
}

func (m ModSum) modulus() int64 {
	if m.Modulus <= 0 {
		return DefaultModulus
	}
	return m.Modulus
}

// DefaultModulus is the prime modulus 10^9+7.
const DefaultModulus int64 = 1_000_000_007

// Normalize maps x to its representative in [0, Modulus).
func (m ModSum) Normalize(x int64) int64 {
	mod := m.modulus()
	x %= mod
	if x < 0 {
		x += mod
	}
	return x
}

// SumConfig configures a plain tree summing up values.
func SumConfig[N Number]() segtree.Config[N] {
	return segtree.Config[N]{Monoid: Sum[N]{}}
}

// MinConfig configures a plain tree reporting range minima.
func MinConfig[N cmp.Ordered](sentinel N) segtree.Config[N] {
	return segtree.Config[N]{Monoid: Min[N]{Sentinel: sentinel}}
}

// MaxConfig configures a plain tree reporting range maxima.
func MaxConfig[N cmp.Ordered](sentinel N) segtree.Config[N] {
	return segtree.Config[N]{Monoid: Max[N]{Sentinel: sentinel}}
}
