package gen

import (
	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// SliceOf generates []T with length in [minLen, maxLen], the length itself
// scaling with the ambient size. Shrinking tries, in order: the empty
// slice, then progressively smaller removals (shrink.ListShrink over the
// current roots), then shrinking individual element values while holding
// the length fixed — but every candidate shorter than
// lenRange.LowerBound(size) is pruned, so a slice built with a non-zero
// minLen (NonEmptySlice in particular) never shrinks below its declared
// domain.
func SliceOf[T any](elem Generator[T], minLen, maxLen int) Generator[[]T] {
	if maxLen < minLen {
		maxLen = minLen
	}
	lenRange := xrange.LinearFrom(minLen, minLen, maxLen)
	return From(func(s seed.Seed, sz Size) tree.Tree[[]T] {
		sl, sr := seed.Split(s)
		n := random.Integral(lenRange)(sl, sz)
		elems := replicateTrees(sr, sz, n, elem)
		t := shrink.SequenceList(elems)
		lo := lenRange.LowerBound(sz)
		return tree.Filter(func(xs []T) bool { return len(xs) >= lo }, t)
	})
}

// Slice is SliceOf with the teacher's old default bounds (0..16), scaling
// with size.
func Slice[T any](elem Generator[T]) Generator[[]T] {
	return SliceOf(elem, 0, 16)
}

// NonEmptySlice is SliceOf with a minimum length of 1.
func NonEmptySlice[T any](elem Generator[T], maxLen int) Generator[[]T] {
	return SliceOf(elem, 1, maxLen)
}
