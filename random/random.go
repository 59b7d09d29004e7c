// Package random provides the size-aware, splittable random effect that
// generators are built from: a Random[T] is a pure function from a seed and
// a size budget to a value, composed without ever sharing mutable PRNG
// state between branches.
package random

import (
	"math/big"

	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/xrange"
)

// Random is a pure computation that consumes a Seed and a Size and produces
// a T. Two Random values run side by side (Replicate, Bind) always draw from
// independently split sub-seeds, so neither can observe the other's draws.
type Random[T any] func(s seed.Seed, sz xrange.Size) T

// Run clamps size to at least 1 and evaluates r against s.
func Run[T any](s seed.Seed, size xrange.Size, r Random[T]) T {
	return r(s, size.Clamp())
}

// Constant always returns v without consuming the seed.
func Constant[T any](v T) Random[T] {
	return func(seed.Seed, xrange.Size) T { return v }
}

// Map transforms the result of r with f.
func Map[A, B any](f func(A) B, r Random[A]) Random[B] {
	return func(s seed.Seed, sz xrange.Size) B {
		return f(r(s, sz))
	}
}

// Apply applies a Random function to a Random argument, splitting the seed
// so the function and the argument are drawn independently.
func Apply[A, B any](rf Random[func(A) B], ra Random[A]) Random[B] {
	return Bind(func(f func(A) B) Random[B] {
		return Map(f, ra)
	}, rf)
}

// Bind sequences r into f, splitting the incoming seed so r's draw and f's
// continuation draw from independent streams.
func Bind[A, B any](f func(A) Random[B], r Random[A]) Random[B] {
	return func(s seed.Seed, sz xrange.Size) B {
		sl, sr := seed.Split(s)
		a := r(sl, sz)
		return f(a)(sr, sz)
	}
}

// Replicate draws n independent values from r, splitting the seed once per
// element.
func Replicate[T any](n int, r Random[T]) Random[[]T] {
	return func(s seed.Seed, sz xrange.Size) []T {
		out := make([]T, 0, max(n, 0))
		cur := s
		for i := 0; i < n; i++ {
			var sl seed.Seed
			sl, cur = seed.Split(cur)
			out = append(out, r(sl, sz))
		}
		return out
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Sized builds a Random whose shape depends on the ambient Size, re-reading
// it on every run rather than baking a fixed size in at construction time.
func Sized[T any](f func(xrange.Size) Random[T]) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		return f(sz)(s, sz)
	}
}

// Resize overrides the size r sees with a fixed value, ignoring whatever
// size the caller is running at.
func Resize[T any](fixed xrange.Size, r Random[T]) Random[T] {
	return func(s seed.Seed, _ xrange.Size) T {
		return r(s, fixed)
	}
}

// Scale transforms the ambient size before r sees it, e.g. to make a nested
// generator grow more slowly than its container.
func Scale[T any](f func(xrange.Size) xrange.Size, r Random[T]) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		return r(s, f(sz).Clamp())
	}
}

// TryWith runs acquire to obtain a resource, passes it to use, and always
// runs release afterward, even though Random itself never panics under
// normal generation.
func TryWith[R, T any](acquire func() R, use func(R) Random[T], release func(R)) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		res := acquire()
		defer release(res)
		return use(res)(s, sz)
	}
}

// TryFinally runs r and always invokes finally afterward, including when r
// panics; the panic is re-raised once finally has run.
func TryFinally[T any](r Random[T], finally func()) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		defer finally()
		return r(s, sz)
	}
}

// Integral draws a uniform value within rng's bounds at the given size,
// using the seed's rejection-free big-integer sampler. T is converted
// through int64, which covers every signed integer width gen exposes.
func Integral[T xrange.Signed](rng xrange.Range[T]) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		lo, hi := rng.Bounds(sz)
		loBig := big.NewInt(int64(lo))
		hiBig := big.NewInt(int64(hi))
		v, _ := seed.NextBigInt(loBig, hiBig, s)
		return T(v.Int64())
	}
}

// IntegralUnsigned is Integral specialised to unsigned integer widths,
// routed through uint64 instead of int64 so the full range is reachable.
func IntegralUnsigned[T xrange.Ordered](rng xrange.Range[T]) Random[T] {
	return func(s seed.Seed, sz xrange.Size) T {
		lo, hi := rng.Bounds(sz)
		loBig := new(big.Int).SetUint64(uint64(lo))
		hiBig := new(big.Int).SetUint64(uint64(hi))
		v, _ := seed.NextBigInt(loBig, hiBig, s)
		return T(v.Uint64())
	}
}

// Double draws a uniform float64 within rng's bounds at the given size.
func Double(rng xrange.Range[float64]) Random[float64] {
	return func(s seed.Seed, sz xrange.Size) float64 {
		lo, hi := rng.Bounds(sz)
		v, _ := seed.NextDouble(lo, hi, s)
		return v
	}
}
