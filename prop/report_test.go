package prop

import (
	"testing"

	"github.com/lucaskalb/gopbt/quick"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/xrange"
)

func TestRecheckData_RoundTrip(t *testing.T) {
	s := seed.From(12345)
	sz := xrange.Size(42)
	data := RecheckFrom(s, sz)

	parsed, err := ParseRecheckData(data.String())
	if err != nil {
		t.Fatalf("ParseRecheckData(%q) error: %v", data.String(), err)
	}
	quick.Equal(t, parsed, data)

	gotSeed, gotSize, err := Recheck(data.String())
	if err != nil {
		t.Fatalf("Recheck(%q) error: %v", data.String(), err)
	}
	if gotSize != sz {
		t.Fatalf("Recheck size = %d, want %d", gotSize, sz)
	}
	if gotSeed.Value() != s.Value() || gotSeed.Gamma() != s.Gamma() {
		t.Fatalf("Recheck seed = %+v, want %+v", gotSeed, s)
	}
}

func TestParseRecheckData_RejectsMalformedInput(t *testing.T) {
	if _, err := ParseRecheckData("not-a-valid-recheck-string"); err == nil {
		t.Fatalf("ParseRecheckData accepted malformed input")
	}
	if _, err := ParseRecheckData("1_2"); err == nil {
		t.Fatalf("ParseRecheckData accepted a two-field string")
	}
}

func TestReport_RenderIncludesRecheckRecipe(t *testing.T) {
	r := Report{
		RunnerSeed:     7,
		ExamplesRun:    3,
		ShrinkSteps:    2,
		Status:         ReportFailed,
		Counterexample: "101",
		Recheck:        RecheckFrom(seed.From(7), 5),
	}
	rendered := r.Render()
	if !contains(rendered, "*** Failed! Falsifiable (after 3 tests and 2 shrinks):") {
		t.Fatalf("Report.Render() missing the Failed header, got: %s", rendered)
	}
	if !contains(rendered, "counterexample (min): 101") {
		t.Fatalf("Report.Render() missing counterexample, got: %s", rendered)
	}
	if !contains(rendered, r.Recheck.String()) {
		t.Fatalf("Report.Render() missing recheck recipe, got: %s", rendered)
	}
}

func TestReport_RenderOK(t *testing.T) {
	r := Report{ExamplesRun: 100, Status: ReportOK}
	if got := r.Render(); got != "+++ OK, passed 100 tests." {
		t.Fatalf("Report.Render() = %q, want %q", got, "+++ OK, passed 100 tests.")
	}
}

func TestReport_RenderGaveUp(t *testing.T) {
	r := Report{ExamplesRun: 0, Discards: 100, Status: ReportGaveUp}
	if got := r.Render(); got != "*** Gave up after 100 discards, passed 0 tests." {
		t.Fatalf("Report.Render() = %q, want %q", got, "*** Gave up after 100 discards, passed 0 tests.")
	}
}

func TestReport_TryRaise_NoopWhenOK(t *testing.T) {
	r := Report{ExamplesRun: 100, Status: ReportOK}
	r.TryRaise(t)
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && indexOf(s, substr) >= 0
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
