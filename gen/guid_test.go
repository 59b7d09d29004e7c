package gen

import (
	"testing"

	"github.com/lucaskalb/gopbt/seed"
)

func TestGuid_ProducesVersion4Variant1(t *testing.T) {
	g := Guid()
	for i := 0; i < 50; i++ {
		v := Run(seed.From(uint64(i)), 50, g).Outcome()
		if v.Version().String() != "VERSION_4" {
			t.Fatalf("Guid produced version %s, want VERSION_4", v.Version())
		}
		if v.Variant().String() != "RFC4122" {
			t.Fatalf("Guid produced variant %s, want RFC4122", v.Variant())
		}
	}
}

func TestGuid_IsDeterministicForAGivenSeed(t *testing.T) {
	g := Guid()
	a := Run(seed.From(7), 50, g).Outcome()
	b := Run(seed.From(7), 50, g).Outcome()
	if a != b {
		t.Fatalf("Guid was not deterministic: %s vs %s", a, b)
	}
}

func TestGuid_NeverShrinks(t *testing.T) {
	g := Guid()
	tr := Run(seed.From(1), 50, g)
	if len(tr.Shrinks()) != 0 {
		t.Fatalf("Guid should have no shrinks, got %v", tr.Shrinks())
	}
}
