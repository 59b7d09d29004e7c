package prop

import (
	"fmt"
	"testing"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// Check runs a Property directly, honoring Discard by retrying (up to
// cfg.DiscardLimit consecutive discards) without consuming an example slot,
// and shrinking on Failure via the same greedy walk ForAll uses. It is the
// Outcome-returning counterpart to ForAll, for callers that build checks
// out of the Success/Failure/Discard combinators instead of calling
// t.Errorf directly.
func Check[T any](t *testing.T, cfg Config, g gen.Generator[T], p Property[T]) {
	runnerSeed := cfg.effectiveSeed()
	s := seed.From(uint64(runnerSeed))
	gen.SetShrinkStrategy(cfg.ShrinkStrat)

	t.Logf("[rapidx] seed=%d examples=%d maxshrink=%d discardlimit=%d strategy=%s",
		runnerSeed, cfg.Examples, cfg.shrinkBudget(), cfg.DiscardLimit, cfg.ShrinkStrat)

	cur := s
	consecutiveDiscards := 0
	for i := 0; i < cfg.Examples; i++ {
		var exampleSeed seed.Seed
		exampleSeed, cur = seed.Split(cur)
		sz := xrange.Size(i%100 + 1)
		tr := gen.Run(exampleSeed, sz, g)

		outcome := p(tr.Outcome())
		switch outcome.Status {
		case StatusSuccess:
			consecutiveDiscards = 0
			continue
		case StatusDiscard:
			consecutiveDiscards++
			if consecutiveDiscards >= cfg.DiscardLimit {
				Report{
					RunnerSeed:  runnerSeed,
					ExamplesRun: i,
					Discards:    consecutiveDiscards,
					Status:      ReportGaveUp,
				}.TryRaise(t)
				return
			}
			i--
			continue
		}
		consecutiveDiscards = 0

		min, minOutcome, steps := checkShrinkWalk(tr, p, cfg.shrinkBudget())
		Report{
			RunnerSeed:     runnerSeed,
			ExamplesRun:    i + 1,
			ShrinkSteps:    steps,
			Status:         ReportFailed,
			Counterexample: fmt.Sprintf("%#v", min),
			Journal:        minOutcome.Journal,
			Recheck:        RecheckFrom(exampleSeed, sz),
		}.TryRaise(t)
		return
	}

	Report{RunnerSeed: runnerSeed, ExamplesRun: cfg.Examples, Status: ReportOK}.TryRaise(t)
}

func checkShrinkWalk[T any](tr tree.Tree[T], p Property[T], budget int) (T, Outcome, int) {
	min := tr.Outcome()
	minOutcome := p(min)
	cur := tr
	steps := 0
	for steps < budget {
		kids := cur.Shrinks()
		if gen.GetShrinkStrategy() == gen.ShrinkStrategyDFS {
			kids = reverseTrees(kids)
		}
		foundFailing := false
		for _, k := range kids {
			if steps >= budget {
				break
			}
			steps++
			o := p(k.Outcome())
			if o.Status == StatusFailure {
				min = k.Outcome()
				minOutcome = o
				cur = k
				foundFailing = true
				break
			}
		}
		if !foundFailing {
			break
		}
	}
	return min, minOutcome, steps
}
