// Package fluent offers a LINQ-style dialect over gen and prop, for callers
// who prefer method-chaining names to the direct combinator surface. It is
// a thin wrapper: every function here delegates straight to gen or prop.
package fluent

import (
	"testing"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/prop"
)

// Select maps a generator's values through f, the fluent name for gen.Map.
func Select[A, B any](g gen.Generator[A], f func(A) B) gen.Generator[B] {
	return gen.Map(g, f)
}

// SelectMany sequences a generator through f, the fluent name for gen.Bind.
func SelectMany[A, B any](g gen.Generator[A], f func(A) gen.Generator[B]) gen.Generator[B] {
	return gen.Bind(g, f)
}

// Where restricts a generator to values satisfying pred, the fluent name
// for gen.Filter. retriesPerLevel bounds the number of redraws attempted
// at a given size level before growing the size, as in gen.Filter; 0 uses
// gen.Filter's default.
func Where[A any](g gen.Generator[A], pred func(A) bool, retriesPerLevel int) gen.Generator[A] {
	return gen.Filter(g, pred, retriesPerLevel)
}

// ForAll runs a property-based test over g using cfg, the fluent name for
// prop.ForAll.
func ForAll[T any](t *testing.T, cfg prop.Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return prop.ForAll(t, cfg, g)
}
