package gen

import (
	"math/big"

	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
)

// BigInt draws a *big.Int uniformly in [lo, hi] via seed.NextBigInt's
// rejection-free base-2^64 digit accumulation, shrinking toward 0 when 0 is
// within range, or toward whichever bound is closest to 0 otherwise. Unlike
// the fixed-width primitives, the bounds here don't scale with the ambient
// size — arbitrary precision has no natural "small" end to grow from.
func BigInt(lo, hi *big.Int) Generator[*big.Int] {
	origin := bigIntOrigin(lo, hi)
	return From(func(s seed.Seed, _ Size) tree.Tree[*big.Int] {
		root, _ := seed.NextBigInt(lo, hi, s)
		return tree.Unfold(bigIntCopy, func(x *big.Int) []*big.Int {
			return shrink.TowardsBigInt(origin, x)
		}, root)
	})
}

func bigIntCopy(x *big.Int) *big.Int { return new(big.Int).Set(x) }

func bigIntOrigin(lo, hi *big.Int) *big.Int {
	zero := big.NewInt(0)
	if lo.Cmp(zero) <= 0 && hi.Cmp(zero) >= 0 {
		return zero
	}
	if lo.Cmp(zero) > 0 {
		return bigIntCopy(lo)
	}
	return bigIntCopy(hi)
}
