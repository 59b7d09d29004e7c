//go:build demo
// +build demo

// Package demo contains demonstration tests that are designed to fail
// intentionally. They showcase the shrinking mechanism and property-based
// testing capabilities of gopbt, and are not run as part of the normal test
// suite (build it with -tags demo to see them fail and shrink).
package demo

import (
	"testing"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/gen/domain"
	"github.com/lucaskalb/gopbt/prop"
)

// Test_String_FalsaRegra demonstrates a property-based test designed to
// fail: it claims every generated alphanumeric string is empty. Running it
// shows the shrink walk narrowing the counterexample down to a single
// character.
func Test_String_FalsaRegra(t *testing.T) {
	prop.ForAll(t, prop.Default(), gen.StringAlphaNum())(
		func(t *testing.T, s string) {
			if s != "" {
				t.Fatalf("expected empty string, got %q", s)
			}
		},
	)
}

// Test_CPF_Invalid demonstrates a property-based test designed to fail: it
// claims every generated CPF starts with '9', which isn't true for valid
// CPF generation in general.
func Test_CPF_Invalid(t *testing.T) {
	prop.ForAll(t, prop.Default(), domain.CPF(false))(func(t *testing.T, cpf string) {
		if cpf[0] != '9' {
			t.Fatalf("expected to start with 9, but got %q", cpf)
		}
	})
}

// tryAdd mirrors a classic buggy optional-adder: it silently refuses to add
// once its first operand exceeds 100, instead of computing a+b as promised.
func tryAdd(a, b int) (int, bool) {
	if a > 100 {
		return 0, false
	}
	return a + b, true
}

// Test_TryAdd_ShrinksToBoundary demonstrates the shrink walk converging on
// the minimal counterexample for a buggy adder: whatever pair first
// falsifies the property, the reported failure's first value is 101 after
// shrinking.
func Test_TryAdd_ShrinksToBoundary(t *testing.T) {
	type pair struct{ a, b int }

	pairs := gen.Map2(gen.Int(0, 1000), gen.Int(0, 1000), func(a, b int) pair { return pair{a, b} })

	prop.ForAll(t, prop.Default(), pairs)(func(t *testing.T, p pair) {
		got, ok := tryAdd(p.a, p.b)
		want := p.a + p.b
		if !ok || got != want {
			t.Fatalf("tryAdd(%d, %d) = (%d, %v), want (%d, true)", p.a, p.b, got, ok, want)
		}
	})
}
