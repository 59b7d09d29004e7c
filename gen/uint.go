package gen

import (
	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// unsignedIntegral builds a generator over an unsigned range, drawing its
// example with random.IntegralUnsigned and seeding the shrink tree from
// shrink.TowardsUint64 toward the range's origin (always <= the value).
func unsignedIntegral[T xrange.Ordered](rng xrange.Range[T]) Generator[T] {
	origin := rng.Origin()
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		root := random.IntegralUnsigned(rng)(s, sz)
		return tree.Unfold(id[T], func(x T) []T {
			cands := shrink.TowardsUint64(uint64(origin), uint64(x))
			out := make([]T, len(cands))
			for i, c := range cands {
				out[i] = T(c)
			}
			return out
		}, root)
	})
}

// Uint draws a uint uniformly in [lo, hi], shrinking toward lo.
func Uint(lo, hi uint) Generator[uint] {
	return unsignedIntegral[uint](xrange.ConstantFrom(lo, lo, hi))
}

// Uint8 is Uint specialised to uint8.
func Uint8(lo, hi uint8) Generator[uint8] {
	return unsignedIntegral[uint8](xrange.ConstantFrom(lo, lo, hi))
}

// Uint16 is Uint specialised to uint16.
func Uint16(lo, hi uint16) Generator[uint16] {
	return unsignedIntegral[uint16](xrange.ConstantFrom(lo, lo, hi))
}

// Uint32 is Uint specialised to uint32.
func Uint32(lo, hi uint32) Generator[uint32] {
	return unsignedIntegral[uint32](xrange.ConstantFrom(lo, lo, hi))
}

// Uint64 is Uint specialised to uint64.
func Uint64(lo, hi uint64) Generator[uint64] {
	return unsignedIntegral[uint64](xrange.ConstantFrom(lo, lo, hi))
}

// Uint8Bounded draws across the full uint8 range, shrinking toward zero.
func Uint8Bounded() Generator[uint8] {
	return unsignedIntegral[uint8](xrange.LinearBoundedUint8())
}

// Uint16Bounded draws across the full uint16 range, shrinking toward zero.
func Uint16Bounded() Generator[uint16] {
	return unsignedIntegral[uint16](xrange.LinearBoundedUint16())
}

// Uint32Bounded draws across the full uint32 range, shrinking toward zero.
func Uint32Bounded() Generator[uint32] {
	return unsignedIntegral[uint32](xrange.LinearBoundedUint32())
}

// Uint64Bounded draws across the full uint64 range, shrinking toward zero.
func Uint64Bounded() Generator[uint64] {
	return unsignedIntegral[uint64](xrange.LinearBoundedUint64())
}
