package gen

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lucaskalb/gopbt/seed"
)

func TestDecimal_StaysWithinBoundsAtRequestedScale(t *testing.T) {
	lo := decimal.NewFromFloat(-100.50)
	hi := decimal.NewFromFloat(100.50)
	g := Decimal(lo, hi, 2)
	for i := 0; i < 100; i++ {
		v := Run(seed.From(uint64(i)), 50, g).Outcome()
		if v.LessThan(lo) || v.GreaterThan(hi) {
			t.Fatalf("Decimal(%s,%s) produced %s, out of bounds", lo, hi, v)
		}
		if v.Exponent() < -2 {
			t.Fatalf("Decimal at scale 2 produced %s with more precision than requested", v)
		}
	}
}

func TestDecimal_ShrinksTowardZeroWhenInRange(t *testing.T) {
	g := Decimal(decimal.NewFromFloat(-50), decimal.NewFromFloat(50), 2)
	tr := Run(seed.From(1), 99, g)
	if tr.Outcome().IsZero() {
		return
	}
	found := false
	for _, k := range tr.Shrinks() {
		if k.Outcome().IsZero() {
			found = true
		}
	}
	if !found {
		t.Fatalf("Decimal outcome %s has no shrink reaching zero", tr.Outcome())
	}
}
