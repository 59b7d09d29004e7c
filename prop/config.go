package prop

import (
	"flag"
	"time"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation. If zero, a
	// random seed is generated from the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxShrink is the maximum number of shrinking steps to perform once a
	// counterexample is found.
	MaxShrink int

	// ShrinkLimit further bounds the number of shrink attempts; nil means
	// unbounded (only MaxShrink applies). Unlike MaxShrink this can be set
	// to zero to disable shrinking entirely and report the first failure
	// as-is.
	ShrinkLimit *int

	// DiscardLimit is the number of consecutive discarded examples at which
	// the run aborts with a "too many discards" failure.
	DiscardLimit int

	// ShrinkStrat specifies the shrink tree traversal order: "bfs" or "dfs".
	ShrinkStrat string

	// StopOnFirstFailure determines whether to stop testing after the
	// first failing example is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use for
	// running test cases. Must be at least 1.
	Parallelism int
}

var (
	flagSeed = flag.Int64("rapidx.seed", 0, "Random seed for test case generation")

	flagExamples = flag.Int("rapidx.examples", 100, "Number of test cases to generate")

	flagMaxShrink = flag.Int("rapidx.maxshrink", 400, "Maximum number of shrinking steps")

	flagDiscardLimit = flag.Int("rapidx.discardlimit", 100, "Consecutive discards at which the run aborts")

	flagShrinkStrat = flag.String("rapidx.shrink.strategy", "bfs", "Shrinking strategy (bfs or dfs)")

	flagParallelism = flag.Int("rapidx.shrink.parallel", 1, "Number of parallel workers")
)

// Default returns a Config with default values based on command-line flags.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		MaxShrink:          *flagMaxShrink,
		DiscardLimit:       *flagDiscardLimit,
		ShrinkStrat:        *flagShrinkStrat,
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
	}
}

// effectiveSeed returns the configured seed, or one derived from the
// current time if none was set.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// shrinkBudget returns the number of shrink attempts still allowed, taking
// both MaxShrink and the optional ShrinkLimit into account.
func (c Config) shrinkBudget() int {
	budget := c.MaxShrink
	if c.ShrinkLimit != nil && *c.ShrinkLimit < budget {
		budget = *c.ShrinkLimit
	}
	return budget
}
