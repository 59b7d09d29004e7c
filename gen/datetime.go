package gen

import (
	"time"

	"github.com/lucaskalb/gopbt/random"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// DateTime draws a UTC time.Time between lo and hi (inclusive, second
// precision), shrinking toward the Unix epoch when it falls within range,
// or toward whichever bound is closest to it otherwise.
func DateTime(lo, hi time.Time) Generator[time.Time] {
	return dateTimeIn(lo, hi, time.UTC)
}

// DateTimeOffset is DateTime with a fixed, non-UTC offset attached, so the
// generated instant carries its originating zone rather than always
// reporting UTC.
func DateTimeOffset(lo, hi time.Time, offset time.Duration) Generator[time.Time] {
	loc := time.FixedZone("", int(offset.Seconds()))
	return dateTimeIn(lo, hi, loc)
}

func dateTimeIn(lo, hi time.Time, loc *time.Location) Generator[time.Time] {
	loUnix, hiUnix := lo.Unix(), hi.Unix()
	origin := clampToZero(loUnix, hiUnix)
	rng := xrange.LinearFrom(origin, loUnix, hiUnix)
	return From(func(s seed.Seed, sz Size) tree.Tree[time.Time] {
		root := random.Integral(rng)(s, sz)
		return tree.Unfold(func(x int64) time.Time { return time.Unix(x, 0).In(loc) }, func(x int64) []int64 {
			return shrink.TowardsInt64(origin, x)
		}, root)
	})
}

// TimeSpan draws a time.Duration in [lo, hi], shrinking toward zero when
// zero is within range, or toward whichever bound is closest to zero
// otherwise.
func TimeSpan(lo, hi time.Duration) Generator[time.Duration] {
	origin := clampToZero(int64(lo), int64(hi))
	rng := xrange.LinearFrom(origin, int64(lo), int64(hi))
	return From(func(s seed.Seed, sz Size) tree.Tree[time.Duration] {
		root := random.Integral(rng)(s, sz)
		return tree.Unfold(func(x int64) time.Duration { return time.Duration(x) }, func(x int64) []int64 {
			return shrink.TowardsInt64(origin, x)
		}, root)
	})
}
