package gen

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal draws a fixed-point decimal.Decimal in [lo, hi] at the given
// scale (digits after the decimal point). It works by generating a BigInt
// numerator over the range scaled by 10^scale and rescaling the result, so
// it inherits BigInt's shrink-toward-zero-or-nearest-bound behaviour and
// its rejection-free sampling.
func Decimal(lo, hi decimal.Decimal, scale int32) Generator[decimal.Decimal] {
	factor := decimal.New(1, scale)
	loNum := lo.Mul(factor).Round(0).BigInt()
	hiNum := hi.Mul(factor).Round(0).BigInt()
	return Map(BigInt(loNum, hiNum), func(n *big.Int) decimal.Decimal {
		return decimal.NewFromBigInt(n, -scale)
	})
}
