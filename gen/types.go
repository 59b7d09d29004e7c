// Package gen provides generators for property-based testing in Go.
// A Generator[T] is a Random that produces a lazy shrink tree instead of a
// bare value, so every generated example already carries the candidates a
// failing property will search through for a minimal counterexample.
package gen

import (
	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// Generator is the public contract for all generators: run it with a seed
// and a size to get a tree whose root is the example and whose shrinks are
// the candidates to try if the example falsifies a property.
type Generator[T any] random.Random[tree.Tree[T]]

// Size is re-exported from xrange so callers don't need a second import for
// the runner's cycling size budget.
type Size = xrange.Size

// Shrinking strategy constants, naming the traversal order the runner uses
// when walking a failing example's shrink tree.
const (
	ShrinkStrategyBFS = "bfs"
	ShrinkStrategyDFS = "dfs"
)

var shrinkStrategy = ShrinkStrategyBFS

// SetShrinkStrategy sets the shrink traversal order. Valid strategies are
// "dfs" and "bfs"; any other value defaults to "bfs".
func SetShrinkStrategy(s string) {
	if s == ShrinkStrategyDFS {
		shrinkStrategy = ShrinkStrategyDFS
	} else {
		shrinkStrategy = ShrinkStrategyBFS
	}
}

// GetShrinkStrategy returns the current shrink traversal order.
func GetShrinkStrategy() string {
	return shrinkStrategy
}

// From builds a Generator directly from its underlying tree-valued Random.
func From[T any](fn func(seed.Seed, Size) tree.Tree[T]) Generator[T] {
	return Generator[T](fn)
}

// Generate runs g at the given seed and size, producing the example tree.
func (g Generator[T]) Generate(s seed.Seed, sz Size) tree.Tree[T] {
	return random.Random[tree.Tree[T]](g)(s, sz)
}

// AsRandom exposes g as the underlying Random of trees, for combinators that
// live in the random package (Bind, Replicate, ...).
func (g Generator[T]) AsRandom() random.Random[tree.Tree[T]] {
	return random.Random[tree.Tree[T]](g)
}

// Run clamps size to at least 1 and generates g's example tree.
func Run[T any](s seed.Seed, sz Size, g Generator[T]) tree.Tree[T] {
	return random.Run(s, sz, g.AsRandom())
}
