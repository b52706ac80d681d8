package segtree

import "fmt"

// Monoid defines how aggregates are combined up the tree.
//
// For aggregates a, b, c, Op should be associative:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//
// and Unity should be the neutral element:
//
//	Op(Unity(), a) == a == Op(a, Unity())
type Monoid[T any] interface {
	Unity() T
	Op(left, right T) T
}

// Effect defines deferred updates of type U on aggregates of type T.
//
// Unity is the no-op effect. Compose(earlier, later) has to return the effect
// equivalent to applying earlier first and later second. Apply transforms the
// aggregate of a node covering leaves [from, to); it may use the width of the
// range, e.g. adding k to every element increases a sum by k·(to-from).
type Effect[T, U any] interface {
	Unity() U
	Compose(earlier, later U) U
	Apply(value T, effect U, from, to int) T
}

// MonoidFuncs adapts a pair of functions to the Monoid interface.
type MonoidFuncs[T any] struct {
	UnityFn func() T
	OpFn    func(left, right T) T
}

func (m MonoidFuncs[T]) Unity() T           { return m.UnityFn() }
func (m MonoidFuncs[T]) Op(left, right T) T { return m.OpFn(left, right) }

// EffectFuncs adapts a set of functions to the Effect interface.
type EffectFuncs[T, U any] struct {
	UnityFn   func() U
	ComposeFn func(earlier, later U) U
	ApplyFn   func(value T, effect U, from, to int) T
}

func (e EffectFuncs[T, U]) Unity() U                   { return e.UnityFn() }
func (e EffectFuncs[T, U]) Compose(earlier, later U) U { return e.ComposeFn(earlier, later) }
func (e EffectFuncs[T, U]) Apply(value T, effect U, from, to int) T {
	return e.ApplyFn(value, effect, from, to)
}

// Config configures a plain segment tree.
type Config[T any] struct {
	// Monoid aggregates values up the tree.
	Monoid Monoid[T]
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if m, ok := cfg.Monoid.(MonoidFuncs[T]); ok && (m.UnityFn == nil || m.OpFn == nil) {
		return fmt.Errorf("%w: monoid functions must not be nil", ErrInvalidConfig)
	}
	return nil
}

// LazyConfig configures a segment tree with lazy range updates.
type LazyConfig[T, U any] struct {
	// Monoid aggregates values up the tree.
	Monoid Monoid[T]
	// Effect describes range updates and how they change aggregates.
	Effect Effect[T, U]
}

func (cfg LazyConfig[T, U]) normalized() LazyConfig[T, U] {
	return cfg
}

func (cfg LazyConfig[T, U]) validate() error {
	cfg = cfg.normalized()
	if err := (Config[T]{Monoid: cfg.Monoid}).validate(); err != nil {
		return err
	}
	if cfg.Effect == nil {
		return fmt.Errorf("%w: effect is required", ErrInvalidConfig)
	}
	if e, ok := cfg.Effect.(EffectFuncs[T, U]); ok &&
		(e.UnityFn == nil || e.ComposeFn == nil || e.ApplyFn == nil) {
		return fmt.Errorf("%w: effect functions must not be nil", ErrInvalidConfig)
	}
	return nil
}
