package gen

import (
	"testing"

	"github.com/lucaskalb/gopbt/seed"
)

func TestInt_StaysWithinBounds(t *testing.T) {
	g := Int(-50, 50)
	for i := 0; i < 200; i++ {
		tr := Run(seed.From(uint64(i)), 50, g)
		if tr.Outcome() < -50 || tr.Outcome() > 50 {
			t.Fatalf("Int(-50,50) produced %d, out of bounds", tr.Outcome())
		}
	}
}

func TestInt_ShrinksTowardZeroWhenInRange(t *testing.T) {
	g := Int(-50, 50)
	tr := Run(seed.From(1), 99, g)
	if tr.Outcome() == 0 {
		return
	}
	found := false
	for _, k := range tr.Shrinks() {
		if k.Outcome() == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("Int(-50,50) outcome %d has no shrink reaching zero", tr.Outcome())
	}
}

func TestInt_OriginOutsideRangeShrinksTowardClosestBound(t *testing.T) {
	g := Int(10, 50)
	tr := Run(seed.From(1), 99, g)
	if tr.Outcome() == 10 {
		return
	}
	found := false
	for _, k := range tr.Shrinks() {
		if k.Outcome() == 10 {
			found = true
		}
	}
	if !found {
		t.Fatalf("Int(10,50) outcome %d has no shrink reaching the lower bound 10", tr.Outcome())
	}
}

func TestInt8Bounded_IsDeterministic(t *testing.T) {
	g := Int8Bounded()
	s := seed.From(5)
	a := Run(s, 50, g).Outcome()
	b := Run(s, 50, g).Outcome()
	if a != b {
		t.Fatalf("Int8Bounded was not deterministic: %d != %d", a, b)
	}
}

func TestInt64_StaysWithinBounds(t *testing.T) {
	g := Int64(-1_000_000_000_000, 1_000_000_000_000)
	for i := 0; i < 50; i++ {
		tr := Run(seed.From(uint64(i)), 50, g)
		if tr.Outcome() < -1_000_000_000_000 || tr.Outcome() > 1_000_000_000_000 {
			t.Fatalf("Int64 produced %d, out of bounds", tr.Outcome())
		}
	}
}
