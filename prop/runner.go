// Package prop provides property-based testing functionality for Go.
// It allows you to test properties of your code by generating random test
// cases and automatically shrinking counterexamples when failures are
// found, walking the generator's integrated shrink tree greedily.
package prop

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// ForAll creates a property-based test that generates examples from g and
// runs them against body. It returns a function that takes the test body
// as a parameter.
//
// The run generates cfg.Examples examples, cycling the size budget 1..100
// as the teacher's size parameter once did; any failure triggers a greedy
// walk of the failing example's shrink tree to find a minimal
// counterexample before reporting.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int(0, 100))(func(t *testing.T, x int) {
//	    if x < 0 {
//	        t.Errorf("generated a negative int: %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		runnerSeed := cfg.effectiveSeed()
		s := seed.From(uint64(runnerSeed))
		gen.SetShrinkStrategy(cfg.ShrinkStrat)

		t.Logf("[rapidx] seed=%d examples=%d maxshrink=%d strategy=%s parallelism=%d",
			runnerSeed, cfg.Examples, cfg.shrinkBudget(), cfg.ShrinkStrat, cfg.Parallelism)

		if cfg.Parallelism <= 1 {
			runSequential(t, cfg, g, body, runnerSeed, s)
		} else {
			runParallel(t, cfg, g, body, runnerSeed, s)
		}
	}
}

func runSequential[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), runnerSeed int64, s seed.Seed) {
	cur := s
	for i := 0; i < cfg.Examples; i++ {
		var exampleSeed seed.Seed
		exampleSeed, cur = seed.Split(cur)
		sz := xrange.Size(i%100 + 1)
		tr := gen.Run(exampleSeed, sz, g)

		name := fmt.Sprintf("ex#%d", i+1)
		passed := t.Run(name, func(st *testing.T) { body(st, tr.Outcome()) })
		if passed {
			continue
		}

		min, steps := shrinkWalk(t, name, tr, body, cfg.shrinkBudget())

		Report{
			RunnerSeed:     runnerSeed,
			ExamplesRun:    i + 1,
			ShrinkSteps:    steps,
			Status:         ReportFailed,
			Counterexample: fmt.Sprintf("%#v", min),
			Recheck:        RecheckFrom(exampleSeed, sz),
		}.TryRaise(t)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// shrinkWalk performs the greedy integrated-shrink search against a real
// *testing.T, naming each candidate "name/shrink#N" as it goes. It defers
// the actual descent logic to walkShrinks so that logic can be exercised
// directly, without the pass/fail of individual shrink candidates
// propagating up into a test's own result.
func shrinkWalk[T any](t *testing.T, name string, tr tree.Tree[T], body func(*testing.T, T), budget int) (T, int) {
	step := 0
	min, _ := walkShrinks(tr, func(x T) bool {
		step++
		sname := fmt.Sprintf("%s/shrink#%d", name, step)
		return !t.Run(sname, func(st *testing.T) { body(st, x) })
	}, budget)
	return min, step
}

// walkShrinks is the pure core of the greedy integrated-shrink search: at
// each step it tries the current node's shrink candidates, in the
// configured traversal order, asks fails whether a candidate still
// falsifies the property, and descends into the first one that does. It
// stops when no candidate at a level still fails, or when the shrink
// budget is exhausted.
func walkShrinks[T any](tr tree.Tree[T], fails func(T) bool, budget int) (T, int) {
	min := tr.Outcome()
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
			if fails(k.Outcome()) {
				min = k.Outcome()
				cur = k
				foundFailing = true
				break
			}
		}
		if !foundFailing {
			break
		}
	}
	return min, steps
}

func reverseTrees[T any](xs []tree.Tree[T]) []tree.Tree[T] {
	out := make([]tree.Tree[T], len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func runParallel[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), runnerSeed int64, s seed.Seed) {
	testChan := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		testChan <- i
	}
	close(testChan)

	var wg sync.WaitGroup
	var seedMutex sync.Mutex
	cur := s

	failureChan := make(chan failureResult[T], cfg.Examples)

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range testChan {
				seedMutex.Lock()
				var exampleSeed seed.Seed
				exampleSeed, cur = seed.Split(cur)
				seedMutex.Unlock()

				sz := xrange.Size(i%100 + 1)
				tr := gen.Run(exampleSeed, sz, g)
				name := fmt.Sprintf("ex#%d", i+1)

				passed := t.Run(name, func(st *testing.T) { body(st, tr.Outcome()) })
				if passed {
					continue
				}

				min, steps := shrinkWalk(t, name, tr, body, cfg.shrinkBudget())
				failureChan <- failureResult[T]{index: i, name: name, min: min, steps: steps, exampleSeed: exampleSeed, size: sz}

				if cfg.StopOnFirstFailure {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failureChan)
	}()

	for failure := range failureChan {
		Report{
			RunnerSeed:     runnerSeed,
			ExamplesRun:    failure.index + 1,
			ShrinkSteps:    failure.steps,
			Status:         ReportFailed,
			Counterexample: fmt.Sprintf("%#v", failure.min),
			Recheck:        RecheckFrom(failure.exampleSeed, failure.size),
		}.TryRaise(t)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

type failureResult[T any] struct {
	index       int
	name        string
	min         T
	steps       int
	exampleSeed seed.Seed
	size        xrange.Size
}
