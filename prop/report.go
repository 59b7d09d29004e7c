package prop

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/lucaskalb/gopbt/journal"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/xrange"
)

// ReportStatus is the tri-state a finished run settles into.
type ReportStatus int

const (
	// ReportOK means testLimit examples ran and none failed.
	ReportOK ReportStatus = iota
	// ReportGaveUp means the run aborted after discardLimit consecutive
	// discards without reaching testLimit examples.
	ReportGaveUp
	// ReportFailed means some example falsified the property; Counterexample,
	// Journal and Recheck describe the shrink-minimised failure.
	ReportFailed
)

func (s ReportStatus) String() string {
	switch s {
	case ReportOK:
		return "OK"
	case ReportGaveUp:
		return "GaveUp"
	case ReportFailed:
		return "Failed"
	default:
		return "unknown"
	}
}

// Report summarizes a finished property run: how far it got, and, if it
// failed, the minimal counterexample found and why.
type Report struct {
	RunnerSeed     int64
	ExamplesRun    int
	ShrinkSteps    int
	Discards       int
	Status         ReportStatus
	Counterexample string
	Journal        journal.Journal
	Recheck        RecheckData
}

// Render formats r as one of the three stable forms a report can take:
// "+++ OK, passed N tests.", "*** Gave up after D discards, passed N
// tests.", or "*** Failed! Falsifiable (after N tests[ and K shrinks][ and
// D discards]):" followed by the evaluated journal and a replay recipe.
func (r Report) Render() string {
	switch r.Status {
	case ReportOK:
		return fmt.Sprintf("+++ OK, passed %d tests.", r.ExamplesRun)
	case ReportGaveUp:
		return fmt.Sprintf("*** Gave up after %d discards, passed %d tests.", r.Discards, r.ExamplesRun)
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "*** Failed! Falsifiable (after %d tests", r.ExamplesRun)
		if r.ShrinkSteps > 0 {
			fmt.Fprintf(&b, " and %d shrinks", r.ShrinkSteps)
		}
		if r.Discards > 0 {
			fmt.Fprintf(&b, " and %d discards", r.Discards)
		}
		b.WriteString("):\n")
		fmt.Fprintf(&b, "counterexample (min): %s\n", r.Counterexample)
		for _, msg := range r.Journal.Eval() {
			b.WriteString(msg)
			b.WriteString("\n")
		}
		b.WriteString("This failure can be reproduced by running:\n")
		fmt.Fprintf(&b, "go test -rapidx.seed=%d -rapidx.recheck=%s", r.RunnerSeed, r.Recheck.String())
		return b.String()
	}
}

// TryRaise fails t with r's rendered report whenever status is not OK, and
// is a no-op otherwise.
func (r Report) TryRaise(t *testing.T) {
	if r.Status != ReportOK {
		t.Fatal(r.Render())
	}
}

// RecheckData is the minimal state needed to reproduce one generated
// example exactly: the size it was drawn at, and the seed's two internal
// words. Its String form is the size_value_gamma text codec.
type RecheckData struct {
	Size  xrange.Size
	Value uint64
	Gamma uint64
}

// String renders r as "size_value_gamma".
func (r RecheckData) String() string {
	return fmt.Sprintf("%d_%d_%d", r.Size, r.Value, r.Gamma)
}

// RecheckFrom captures the RecheckData needed to replay a draw from s at sz.
func RecheckFrom(s seed.Seed, sz xrange.Size) RecheckData {
	return RecheckData{Size: sz, Value: s.Value(), Gamma: s.Gamma()}
}

// ParseRecheckData parses the size_value_gamma form String produces.
func ParseRecheckData(text string) (RecheckData, error) {
	parts := strings.Split(text, "_")
	if len(parts) != 3 {
		return RecheckData{}, fmt.Errorf("prop: malformed recheck data %q: want size_value_gamma", text)
	}
	sz, err := strconv.Atoi(parts[0])
	if err != nil {
		return RecheckData{}, fmt.Errorf("prop: malformed recheck size in %q: %w", text, err)
	}
	value, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return RecheckData{}, fmt.Errorf("prop: malformed recheck value in %q: %w", text, err)
	}
	gamma, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return RecheckData{}, fmt.Errorf("prop: malformed recheck gamma in %q: %w", text, err)
	}
	return RecheckData{Size: xrange.Size(sz), Value: value, Gamma: gamma}, nil
}

// Recheck decodes text back into the exact (Seed, Size) pair String/
// RecheckFrom captured, so a failing example can be regenerated bit for
// bit without replaying the whole run from the original runner seed.
func Recheck(text string) (seed.Seed, xrange.Size, error) {
	data, err := ParseRecheckData(text)
	if err != nil {
		return seed.Seed{}, 0, err
	}
	return seed.FromParts(data.Value, data.Gamma), data.Size, nil
}
