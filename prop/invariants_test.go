package prop

import (
	"testing"

	"github.com/lucaskalb/gopbt/shrink"
	"github.com/lucaskalb/gopbt/tree"
)

// tryAdd mirrors a classic buggy optional-adder: it silently refuses to add
// once its first operand exceeds 100, instead of just computing a+b.
func tryAdd(a, b int) (int, bool) {
	if a > 100 {
		return 0, false
	}
	return a + b, true
}

func TestCheckShrinkWalk_TryAddCounterexampleShrinksToBoundary(t *testing.T) {
	// A pair (a, b) shrinking independently toward (0, 0); tryAdd disagrees
	// with plain addition once a > 100, so the minimal failing a is 101
	// regardless of which seed first stumbled onto a larger failing pair.
	type pair struct{ a, b int }

	root := tree.Unfold(
		func(p pair) pair { return p },
		func(p pair) []pair {
			out := make([]pair, 0, 8)
			for _, a := range shrink.Towards(0, p.a) {
				out = append(out, pair{a, p.b})
			}
			for _, b := range shrink.Towards(0, p.b) {
				out = append(out, pair{p.a, b})
			}
			return out
		},
		pair{150, 37},
	)

	p := Property[pair](func(p pair) Outcome {
		got, ok := tryAdd(p.a, p.b)
		want := p.a + p.b
		return OfBool(ok && got == want)
	})

	min, outcome, steps := checkShrinkWalk(root, p, 1000)
	if min.a != 101 {
		t.Fatalf("tryAdd counterexample shrunk to a=%d, want 101", min.a)
	}
	if outcome.Status != StatusFailure {
		t.Fatalf("tryAdd counterexample outcome.Status = %v, want failure", outcome.Status)
	}
	if steps == 0 {
		t.Fatalf("tryAdd shrink performed no steps")
	}
}

// exp is a tiny arithmetic expression tree: a literal, or the application
// of one expression to another.
type exp struct {
	isApp bool
	lit   int
	fn    *exp
	arg   *exp
}

func lit(n int) exp { return exp{lit: n} }
func app(f, a exp) exp {
	fc, ac := f, a
	return exp{isApp: true, fn: &fc, arg: &ac}
}

func (e exp) equal(o exp) bool {
	if e.isApp != o.isApp {
		return false
	}
	if !e.isApp {
		return e.lit == o.lit
	}
	return e.fn.equal(*o.fn) && e.arg.equal(*o.arg)
}

// hasAppOfLit10 reports whether e contains an App whose argument is Lit 10
// anywhere in the tree.
func hasAppOfLit10(e exp) bool {
	if !e.isApp {
		return false
	}
	if !e.arg.isApp && e.arg.lit == 10 {
		return true
	}
	return hasAppOfLit10(*e.fn) || hasAppOfLit10(*e.arg)
}

// expShrinks drops one sub-expression at a time: an App can shrink to
// either its function or its argument side, or to a version of itself with
// one side shrunk.
func expShrinks(e exp) []exp {
	if !e.isApp {
		return nil
	}
	out := []exp{*e.fn, *e.arg}
	for _, f := range expShrinks(*e.fn) {
		out = append(out, app(f, *e.arg))
	}
	for _, a := range expShrinks(*e.arg) {
		out = append(out, app(*e.fn, a))
	}
	return out
}

func TestCheckShrinkWalk_GreedyShrinkOnExpressionTree(t *testing.T) {
	root := tree.Unfold(func(e exp) exp { return e }, expShrinks, app(app(lit(3), lit(7)), app(lit(0), lit(10))))

	p := Property[exp](func(e exp) Outcome { return OfBool(!hasAppOfLit10(e)) })

	min, outcome, _ := checkShrinkWalk(root, p, 1000)
	want := app(lit(0), lit(10))
	if !min.equal(want) {
		t.Fatalf("greedy shrink reduced to %+v, want App(Lit 0, Lit 10)", min)
	}
	if outcome.Status != StatusFailure {
		t.Fatalf("greedy shrink outcome.Status = %v, want failure", outcome.Status)
	}
}
