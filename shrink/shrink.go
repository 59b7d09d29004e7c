// Package shrink provides the pure shrink-schedule library used to seed
// integrated shrink trees: numeric halving towards an origin, list removal
// schedules, and the combinators that assemble per-element shrinkers into a
// single list-valued tree.
package shrink

import (
	"fmt"
	"math/big"

	"github.com/lucaskalb/gopbt/tree"
)

// Halves produces the unfold n, n/2, n/4, … stopping just before it would
// reach zero (Halves(15) == [15, 7, 3, 1]; Halves(0) == nil).
func Halves(n int) []int {
	out := []int{}
	for n != 0 {
		out = append(out, n)
		n /= 2
	}
	return out
}

// Towards produces the finite sequence that shrinks x toward origin: empty
// if origin == x; otherwise x minus each successive value of
// Halves(x-origin) — since Halves(diff)'s first element is diff itself,
// the sequence's head works out to origin, as the spec requires, without
// a separate case.
func Towards(origin, x int) []int {
	if origin == x {
		return nil
	}
	diff := x - origin
	halves := Halves(diff)
	out := make([]int, len(halves))
	for i, h := range halves {
		out[i] = x - h
	}
	return out
}

// HalvesInt64 is Halves widened to int64, for generators whose domain
// doesn't fit in int (Int64 and the other signed widths gen exposes).
func HalvesInt64(n int64) []int64 {
	out := []int64{}
	for n != 0 {
		out = append(out, n)
		n /= 2
	}
	return out
}

// TowardsInt64 is Towards widened to int64.
func TowardsInt64(origin, x int64) []int64 {
	if origin == x {
		return nil
	}
	diff := x - origin
	halves := HalvesInt64(diff)
	out := make([]int64, len(halves))
	for i, h := range halves {
		out[i] = x - h
	}
	return out
}

// TowardsUint64 is Towards for unsigned 64-bit domains, where origin is
// always <= x (unsigned generators shrink down toward a lower bound, never
// negate a difference).
func TowardsUint64(origin, x uint64) []uint64 {
	if origin == x {
		return nil
	}
	diff := x - origin
	out := []uint64{}
	for diff != 0 {
		out = append(out, x-diff)
		diff /= 2
	}
	return out
}

// TowardsDouble is the float64 analogue of Towards: diff is halved
// repeatedly (diff/2 iteration) instead of using integer division, stopping
// once halving no longer moves the candidate (float64 precision floor).
func TowardsDouble(origin, x float64) []float64 {
	if origin == x {
		return nil
	}
	diff := x - origin
	out := []float64{}
	for diff != 0 {
		cand := x - diff
		if cand == x {
			break
		}
		out = append(out, cand)
		next := diff / 2
		if next == diff {
			break
		}
		diff = next
	}
	return out
}

// TowardsBigInt is Towards for arbitrary-precision domains: diff is halved
// by repeated division by two (rounding toward zero) until it reaches zero.
func TowardsBigInt(origin, x *big.Int) []*big.Int {
	if origin.Cmp(x) == 0 {
		return nil
	}
	two := big.NewInt(2)
	diff := new(big.Int).Sub(x, origin)
	out := []*big.Int{}
	for diff.Sign() != 0 {
		out = append(out, new(big.Int).Sub(x, diff))
		diff = new(big.Int).Quo(diff, two)
	}
	return out
}

// Removes returns, for a list-of-length-n shrink at chunk size k, every
// result of deleting k consecutive elements from xs (indices 0..n in steps
// of k, left to right).
func Removes[T any](k int, xs []T) [][]T {
	n := len(xs)
	if k <= 0 || k > n {
		return nil
	}
	out := make([][]T, 0, n/k+1)
	for i := 0; i+k <= n; i += k {
		rest := make([]T, 0, n-k)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+k:]...)
		out = append(out, rest)
	}
	return out
}

// ListShrink yields the smaller permutations of xs in the order: empty,
// then for each k in Halves(len(xs)) every result of removing k consecutive
// elements, with duplicates (e.g. a whole-list removal re-producing empty)
// collapsed out.
func ListShrink[T any](xs []T) [][]T {
	n := len(xs)
	if n == 0 {
		return nil
	}
	seen := map[string]struct{}{}
	out := [][]T{}
	push := func(s []T) {
		k := fmt.Sprintf("%v", s)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	push([]T{})
	for _, k := range Halves(n) {
		for _, r := range Removes(k, xs) {
			push(r)
		}
	}
	return out
}

// Elems shrinks each position of xs in turn using shrinker, producing one
// candidate list per produced element-shrink, smallest-first, leaving the
// list length unchanged.
func Elems[T any](shrinker func(T) []T, xs []T) [][]T {
	out := [][]T{}
	for i, x := range xs {
		for _, s := range shrinker(x) {
			cand := append([]T(nil), xs...)
			cand[i] = s
			out = append(out, cand)
		}
	}
	return out
}

// SequenceList combines a list of per-element trees into a single
// Tree[[]T] whose shrinks try both removing list elements (via ListShrink
// on the roots) and shrinking element values (via each element's own
// tree), smallest candidate first.
func SequenceList[T any](trees []tree.Tree[T]) tree.Tree[[]T] {
	roots := rootsOf(trees)
	return tree.Node(roots, func() []tree.Tree[[]T] {
		out := []tree.Tree[[]T]{}
		for _, smaller := range ListShrink(roots) {
			out = append(out, tree.Singleton(smaller))
		}
		for i, et := range trees {
			for _, shrunk := range et.Shrinks() {
				cand := append([]tree.Tree[T](nil), trees...)
				cand[i] = shrunk
				out = append(out, SequenceList(cand))
			}
		}
		return out
	})
}

// SequenceElems is like SequenceList but never changes the list's length:
// only per-element shrinks are tried.
func SequenceElems[T any](trees []tree.Tree[T]) tree.Tree[[]T] {
	roots := rootsOf(trees)
	return tree.Node(roots, func() []tree.Tree[[]T] {
		out := []tree.Tree[[]T]{}
		for i, et := range trees {
			for _, shrunk := range et.Shrinks() {
				cand := append([]tree.Tree[T](nil), trees...)
				cand[i] = shrunk
				out = append(out, SequenceElems(cand))
			}
		}
		return out
	})
}

func rootsOf[T any](trees []tree.Tree[T]) []T {
	out := make([]T, len(trees))
	for i, t := range trees {
		out[i] = t.Outcome()
	}
	return out
}
