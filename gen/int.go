package gen

import (
	"math"

	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// signedIntegral builds a generator over a signed range, drawing its
// example with random.Integral and seeding the shrink tree from
// shrink.TowardsInt64 toward the range's origin.
func signedIntegral[T xrange.Signed](rng xrange.Range[T]) Generator[T] {
	origin := rng.Origin()
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		root := random.Integral(rng)(s, sz)
		return tree.Unfold(id[T], func(x T) []T {
			cands := shrink.TowardsInt64(int64(origin), int64(x))
			out := make([]T, len(cands))
			for i, c := range cands {
				out[i] = T(c)
			}
			return out
		}, root)
	})
}

// Int draws an int from a range that grows linearly with size outward from
// its origin and covers all of [lo, hi] at size 99, shrinking toward zero
// when zero is within range, or toward whichever bound is closest to zero
// otherwise.
func Int(lo, hi int) Generator[int] {
	return signedIntegral[int](xrange.LinearFrom(clampToZero(lo, hi), lo, hi))
}

// Int8 is Int specialised to int8.
func Int8(lo, hi int8) Generator[int8] {
	return signedIntegral[int8](xrange.LinearFrom(clampToZero(lo, hi), lo, hi))
}

// Int16 is Int specialised to int16.
func Int16(lo, hi int16) Generator[int16] {
	return signedIntegral[int16](xrange.LinearFrom(clampToZero(lo, hi), lo, hi))
}

// Int32 is Int specialised to int32.
func Int32(lo, hi int32) Generator[int32] {
	return signedIntegral[int32](xrange.LinearFrom(clampToZero(lo, hi), lo, hi))
}

// Int64 is Int specialised to int64.
func Int64(lo, hi int64) Generator[int64] {
	return signedIntegral[int64](xrange.LinearFrom(clampToZero(lo, hi), lo, hi))
}

// IntBounded draws an int across its full platform-defined range, shrinking
// toward zero, scaling with size like the spec's bounded-range family.
func IntBounded() Generator[int] {
	lo, hi := math.MinInt, math.MaxInt
	return Int(lo, hi)
}

// Int8Bounded draws across the full int8 range, shrinking toward zero.
func Int8Bounded() Generator[int8] {
	return signedIntegral[int8](xrange.LinearBoundedInt8())
}

// Int16Bounded draws across the full int16 range, shrinking toward zero.
func Int16Bounded() Generator[int16] {
	return signedIntegral[int16](xrange.LinearBoundedInt16())
}

// Int32Bounded draws across the full int32 range, shrinking toward zero.
func Int32Bounded() Generator[int32] {
	return signedIntegral[int32](xrange.LinearBoundedInt32())
}

// Int64Bounded draws across the full int64 range, shrinking toward zero.
func Int64Bounded() Generator[int64] {
	return signedIntegral[int64](xrange.LinearBoundedInt64())
}

func clampToZero[T xrange.Signed](lo, hi T) T {
	var zero T
	if lo > zero {
		return lo
	}
	if hi < zero {
		return hi
	}
	return zero
}
