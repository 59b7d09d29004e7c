package journal

import (
	"reflect"
	"testing"
)

func TestEmpty_HasNoEntries(t *testing.T) {
	if got := Empty().Eval(); len(got) != 0 {
		t.Fatalf("Empty().Eval() = %v, want empty", got)
	}
}

func TestSingleton_DoesNotCallFnUntilEval(t *testing.T) {
	called := false
	j := Singleton(func() string { called = true; return "x" })
	if called {
		t.Fatalf("Singleton forced its closure before Eval was called")
	}
	got := j.Eval()
	if !called {
		t.Fatalf("Eval did not force the closure")
	}
	if !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("Singleton(\"x\").Eval() = %v, want [x]", got)
	}
}

func TestAppend_PreservesOrder(t *testing.T) {
	a := Singleton(func() string { return "a" })
	b := Singleton(func() string { return "b" })
	got := Append(a, b).Eval()
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Append(a,b).Eval() = %v, want %v", got, want)
	}
}

func TestAppend_Nested(t *testing.T) {
	a := Singleton(func() string { return "a" })
	b := Singleton(func() string { return "b" })
	c := Singleton(func() string { return "c" })
	got := Append(Append(a, b), c).Eval()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Append(Append(a,b),c).Eval() = %v, want %v", got, want)
	}
}
