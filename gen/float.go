package gen

import (
	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// Float64 draws a float64 uniformly in [lo, hi], shrinking toward zero when
// in range, or toward whichever bound is closest to zero otherwise.
func Float64(lo, hi float64) Generator[float64] {
	origin := clampToZero(lo, hi)
	rng := xrange.ConstantFrom(origin, lo, hi)
	return From(func(s seed.Seed, sz Size) tree.Tree[float64] {
		root := random.Double(rng)(s, sz)
		return tree.Unfold(id[float64], func(x float64) []float64 {
			return shrink.TowardsDouble(origin, x)
		}, root)
	})
}

// Float32 is Float64 narrowed to float32; the draw happens in float64
// precision and is converted (rounded to nearest) at every node of the tree.
func Float32(lo, hi float32) Generator[float32] {
	inner := Float64(float64(lo), float64(hi))
	return Map(inner, func(x float64) float32 { return float32(x) })
}
