package gen

import (
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
)

// ArrayOf generates a slice of exactly n elements. Unlike SliceOf it never
// removes elements while shrinking: only per-position element values are
// tried, so the result always has length n.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	if n < 0 {
		n = 0
	}
	return From(func(s seed.Seed, sz Size) tree.Tree[[]T] {
		elems := replicateTrees(s, sz, n, elem)
		return shrink.SequenceElems(elems)
	})
}
