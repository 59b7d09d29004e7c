package gen

import (
	"testing"

	"github.com/lucaskalb/gopbt/seed"
)

func TestBool_ProducesBothValuesAcrossSeeds(t *testing.T) {
	sawTrue, sawFalse := false, false
	for i := 0; i < 50; i++ {
		if Run(seed.From(uint64(i)), 50, Bool()).Outcome() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Fatalf("Bool() did not produce both values over 50 seeds (true=%v false=%v)", sawTrue, sawFalse)
	}
}

func TestBool_TrueShrinksToFalse(t *testing.T) {
	for i := 0; i < 50; i++ {
		tr := Run(seed.From(uint64(i)), 50, Bool())
		if !tr.Outcome() {
			if len(tr.Shrinks()) != 0 {
				t.Fatalf("Bool() false should have no shrinks, got %v", tr.Shrinks())
			}
			continue
		}
		kids := tr.Shrinks()
		if len(kids) != 1 || kids[0].Outcome() != false {
			t.Fatalf("Bool() true should shrink to exactly [false], got %v", kids)
		}
	}
}
