package gen

import (
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
	"github.com/lucaskalb/gopbt/xrange"
)

// Const always produces v, with no shrinking.
func Const[T any](v T) Generator[T] {
	return From(func(seed.Seed, Size) tree.Tree[T] {
		return tree.Singleton(v)
	})
}

// Map transforms every value g produces, including every candidate in its
// shrink tree, with f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return From(func(s seed.Seed, sz Size) tree.Tree[B] {
		return tree.Map(f, g.Generate(s, sz))
	})
}

// Bind sequences g into a generator that depends on g's value; the
// resulting tree puts g's own shrinks ahead of f's (upstream first), per
// the integrated-shrinking contract.
func Bind[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return From(func(s seed.Seed, sz Size) tree.Tree[B] {
		sl, sr := seed.Split(s)
		ta := g.Generate(sl, sz)
		return tree.Bind(func(a A) tree.Tree[B] {
			return f(a).Generate(sr, sz)
		}, ta)
	})
}

// Apply combines a generator of functions with a generator of arguments.
func Apply[A, B any](gf Generator[func(A) B], ga Generator[A]) Generator[B] {
	return From(func(s seed.Seed, sz Size) tree.Tree[B] {
		sl, sr := seed.Split(s)
		return tree.Apply(gf.Generate(sl, sz), ga.Generate(sr, sz))
	})
}

// Map2 combines two generators' values with f, threading both through
// shrinking via Apply.
func Map2[A, B, C any](ga Generator[A], gb Generator[B], f func(A, B) C) Generator[C] {
	curried := Map(ga, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return Apply(curried, gb)
}

// Filter keeps only values satisfying pred. It retries with growing size —
// the k-th retry at a size level draws at size 2k+n (n = max(1, ambient
// size)) — and, once retriesPerLevel attempts at a level are exhausted
// without success, moves on to the next level (n+1) and starts over.
// This never fails fatally at the combinator level: an infeasible
// predicate just keeps the loop growing rather than panicking.
// retriesPerLevel <= 0 defaults to 100.
func Filter[T any](g Generator[T], pred func(T) bool, retriesPerLevel int) Generator[T] {
	if retriesPerLevel <= 0 {
		retriesPerLevel = 100
	}
	return Sized(func(sz Size) Generator[T] {
		n := sz
		if n < 1 {
			n = 1
		}
		return From(func(s seed.Seed, _ Size) tree.Tree[T] {
			cur := s
			for {
				for k := 0; k < retriesPerLevel; k++ {
					levelSize := (Size(2*k) + n).Clamp()
					var sl seed.Seed
					sl, cur = seed.Split(cur)
					candidate := g.Generate(sl, levelSize)
					if pred(candidate.Outcome()) {
						return tree.Filter(pred, candidate)
					}
				}
				n++
			}
		})
	})
}

// TryFilter is Filter's bounded cousin: it follows the same growing-size
// retry schedule within a single size level, but gives up after
// retriesPerLevel attempts instead of moving on to the next level,
// reporting failure via the second field instead of looping forever.
func TryFilter[T any](g Generator[T], pred func(T) bool, retriesPerLevel int) Generator[struct {
	Value T
	Ok    bool
}] {
	if retriesPerLevel <= 0 {
		retriesPerLevel = 100
	}
	type result = struct {
		Value T
		Ok    bool
	}
	return Sized(func(sz Size) Generator[result] {
		n := sz
		if n < 1 {
			n = 1
		}
		return From(func(s seed.Seed, _ Size) tree.Tree[result] {
			cur := s
			for k := 0; k < retriesPerLevel; k++ {
				levelSize := (Size(2*k) + n).Clamp()
				var sl seed.Seed
				sl, cur = seed.Split(cur)
				candidate := g.Generate(sl, levelSize)
				if pred(candidate.Outcome()) {
					filtered := tree.Filter(pred, candidate)
					return tree.Map(func(v T) result { return result{Value: v, Ok: true} }, filtered)
				}
			}
			var zero T
			return tree.Singleton(result{Value: zero, Ok: false})
		})
	})
}

// Choice picks uniformly among the given generators.
func Choice[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic("gen.Choice: needs at least one generator")
	}
	idx := signedIntegral[int](xrange.Constant(0, len(gs)-1))
	return Bind(idx, func(i int) Generator[T] { return gs[i] })
}

// WeightedChoice is a (weight, generator) pair for Frequency.
type WeightedChoice[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Frequency picks among generators with probability proportional to each
// entry's weight. Weights must be positive. Shrinking first moves the pick
// toward the first entry, so the result shrinks toward choices[0]'s
// generator before shrinking within the branch that was picked.
func Frequency[T any](choices ...WeightedChoice[T]) Generator[T] {
	if len(choices) == 0 {
		panic("gen.Frequency: needs at least one choice")
	}
	total := 0
	for _, c := range choices {
		if c.Weight <= 0 {
			panic("gen.Frequency: weights must be positive")
		}
		total += c.Weight
	}
	pick := signedIntegral[int](xrange.Constant(0, total-1))
	return Bind(pick, func(n int) Generator[T] {
		acc := 0
		for _, c := range choices {
			acc += c.Weight
			if n < acc {
				return c.Gen
			}
		}
		return choices[len(choices)-1].Gen
	})
}

// Item picks uniformly among a fixed slice of values (Choice over Const).
// The values themselves are not shrunk; the choice shrinks toward xs[0].
func Item[T any](xs ...T) Generator[T] {
	if len(xs) == 0 {
		panic("gen.Item: needs at least one value")
	}
	gs := make([]Generator[T], len(xs))
	for i, x := range xs {
		gs[i] = Const(x)
	}
	return Choice(gs...)
}

// ChoiceRec builds a recursive generator: nonrecursive gives the base
// cases, recursive receives itself (already size-scaled down) to build
// recursive cases, and the two pools are combined with Frequency so the
// recursion terminates as size shrinks toward 0.
func ChoiceRec[T any](nonrecursive []Generator[T], recursive []func(Generator[T]) Generator[T]) Generator[T] {
	if len(nonrecursive) == 0 {
		panic("gen.ChoiceRec: needs at least one nonrecursive generator")
	}
	var self Generator[T]
	self = Sized(func(sz Size) Generator[T] {
		base := Choice(nonrecursive...)
		if sz <= 1 || len(recursive) == 0 {
			return base
		}
		smaller := Scale(func(s Size) Size { return s / 2 }, self)
		rec := make([]Generator[T], len(recursive))
		for i, f := range recursive {
			rec[i] = f(smaller)
		}
		return Frequency(
			WeightedChoice[T]{Weight: 2, Gen: base},
			WeightedChoice[T]{Weight: 1, Gen: Choice(rec...)},
		)
	})
	return self
}

// Sized builds a generator whose shape depends on the ambient size.
func Sized[T any](f func(Size) Generator[T]) Generator[T] {
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		return f(sz).Generate(s, sz)
	})
}

// Resize overrides the size g sees with a fixed value.
func Resize[T any](fixed Size, g Generator[T]) Generator[T] {
	return From(func(s seed.Seed, _ Size) tree.Tree[T] {
		return g.Generate(s, fixed)
	})
}

// Scale transforms the ambient size before g sees it.
func Scale[T any](f func(Size) Size, g Generator[T]) Generator[T] {
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		return g.Generate(s, f(sz).Clamp())
	})
}

// NoShrink wraps g so its result never offers any shrink candidates, while
// still drawing from g's own distribution.
func NoShrink[T any](g Generator[T]) Generator[T] {
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		return tree.Singleton(g.Generate(s, sz).Outcome())
	})
}

// ShrinkWith replaces g's shrink candidates with however many candidates
// shrinkFn proposes for a given outcome, discarding g's own shrink tree.
func ShrinkWith[T any](g Generator[T], shrinkFn func(T) []T) Generator[T] {
	return From(func(s seed.Seed, sz Size) tree.Tree[T] {
		root := g.Generate(s, sz).Outcome()
		return tree.Unfold(id[T], shrinkFn, root)
	})
}

func id[T any](x T) T { return x }

// Option wraps g so it produces either a None marker or a generated value,
// shrinking toward None first. The choice is size-weighted: None carries a
// constant weight of 2 while Some carries 1+size, so larger ambient sizes
// skew increasingly toward producing a value.
func Option[T any](g Generator[T]) Generator[Maybe[T]] {
	none := Const(Maybe[T]{HasValue: false})
	some := Map(g, func(v T) Maybe[T] { return Maybe[T]{HasValue: true, Value: v} })
	return Sized(func(sz Size) Generator[Maybe[T]] {
		return Frequency(
			WeightedChoice[Maybe[T]]{Weight: 2, Gen: none},
			WeightedChoice[Maybe[T]]{Weight: 1 + int(sz), Gen: some},
		)
	})
}

// Maybe is the Option generator's result type: either nothing, or a value.
type Maybe[T any] struct {
	HasValue bool
	Value    T
}

// replicateTrees draws n independent trees from g, splitting the seed once
// per element; used by the slice/array generators in slice.go and array.go.
func replicateTrees[T any](s seed.Seed, sz Size, n int, g Generator[T]) []tree.Tree[T] {
	out := make([]tree.Tree[T], 0, max0(n))
	cur := s
	for i := 0; i < n; i++ {
		var sl seed.Seed
		sl, cur = seed.Split(cur)
		out = append(out, g.Generate(sl, sz))
	}
	return out
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
