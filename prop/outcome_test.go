package prop

import (
	"testing"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/journal"
	"github.com/lucaskalb/gopbt/seed"
)

func TestOfBool_TrueIsSuccess(t *testing.T) {
	if OfBool(true).Status != StatusSuccess {
		t.Fatalf("OfBool(true).Status = %v, want success", OfBool(true).Status)
	}
}

func TestOfBool_FalseIsFailure(t *testing.T) {
	if OfBool(false).Status != StatusFailure {
		t.Fatalf("OfBool(false).Status = %v, want failure", OfBool(false).Status)
	}
}

func TestCounterexample_CarriesMessage(t *testing.T) {
	o := Counterexample("boom")
	if o.Status != StatusFailure {
		t.Fatalf("Counterexample.Status = %v, want failure", o.Status)
	}
	msgs := o.Journal.Eval()
	if len(msgs) != 1 || msgs[0] != "boom" {
		t.Fatalf("Counterexample journal = %v, want [boom]", msgs)
	}
}

func TestFilterProperty_DiscardsNonMatching(t *testing.T) {
	p := FilterProperty(func(x int) bool { return x > 0 }, func(int) Outcome { return Success() })
	if p(-1).Status != StatusDiscard {
		t.Fatalf("FilterProperty(-1).Status = %v, want discard", p(-1).Status)
	}
	if p(1).Status != StatusSuccess {
		t.Fatalf("FilterProperty(1).Status = %v, want success", p(1).Status)
	}
}

func TestAndProperty_FailsIfEitherFails(t *testing.T) {
	pass := func(int) Outcome { return Success() }
	fail := func(int) Outcome { return Counterexample("nope") }
	if AndProperty(pass, fail)(0).Status != StatusFailure {
		t.Fatalf("AndProperty(pass,fail) did not fail")
	}
	if AndProperty(pass, pass)(0).Status != StatusSuccess {
		t.Fatalf("AndProperty(pass,pass) did not succeed")
	}
}

func TestTryFinally_RunsCleanupOnPanic(t *testing.T) {
	ran := false
	p := TryFinally(Property[int](func(int) Outcome {
		panic("boom")
	}), func() { ran = true })

	func() {
		defer func() { recover() }()
		p(0)
	}()

	if !ran {
		t.Fatalf("TryFinally did not run cleanup after a panic")
	}
}

func TestTryWith_ReleasesResource(t *testing.T) {
	released := false
	p := TryWith(
		func() int { return 5 },
		func(r int) Property[int] {
			return func(x int) Outcome { return OfBool(x < r) }
		},
		func(int) { released = true },
	)
	if p(3).Status != StatusSuccess {
		t.Fatalf("TryWith property should have succeeded")
	}
	if !released {
		t.Fatalf("TryWith did not release its resource")
	}
}

func TestBind_PrependsUpstreamJournalOnSuccess(t *testing.T) {
	m := SuccessOf(3)
	p := Bind(m, func(x int) Sampled[int] {
		return Sampled[int](gen.Const(SampledOutcome[int]{
			Status:  StatusSuccess,
			Journal: journal.Singleton(func() string { return "k" }),
			Value:   x + 1,
		}))
	})
	o := p.Sample(seed.From(1), 10)
	if o.Status != StatusSuccess || o.Value != 4 {
		t.Fatalf("Bind(Success(3), +1) = %+v, want Success(4)", o)
	}
	if msgs := o.Journal.Eval(); len(msgs) != 1 || msgs[0] != "k" {
		t.Fatalf("Bind journal = %v, want [k] (m's empty journal contributes nothing)", msgs)
	}
}

func TestBind_PropagatesFailureWithoutRunningContinuation(t *testing.T) {
	m := FailureOf[int](journal.Singleton(func() string { return "m failed" }))
	ran := false
	p := Bind(m, func(x int) Sampled[int] {
		ran = true
		return SuccessOf(x)
	})
	o := p.Sample(seed.From(1), 10)
	if o.Status != StatusFailure {
		t.Fatalf("Bind(Failure, k).Status = %v, want failure", o.Status)
	}
	if ran {
		t.Fatalf("Bind ran its continuation after an upstream Failure")
	}
	if msgs := o.Journal.Eval(); len(msgs) != 1 || msgs[0] != "m failed" {
		t.Fatalf("Bind journal = %v, want [m failed]", msgs)
	}
}

func TestBind_PropagatesDiscardWithoutRunningContinuation(t *testing.T) {
	ran := false
	p := Bind(DiscardOf[int](), func(x int) Sampled[int] {
		ran = true
		return SuccessOf(x)
	})
	o := p.Sample(seed.From(1), 10)
	if o.Status != StatusDiscard {
		t.Fatalf("Bind(Discard, k).Status = %v, want discard", o.Status)
	}
	if ran {
		t.Fatalf("Bind ran its continuation after an upstream Discard")
	}
}

func TestForAllM_RecordsCounterexampleLineAndSucceeds(t *testing.T) {
	p := ForAllM(gen.Const(7), func(x int) string { return "x = 7" }, func(x int) Sampled[int] {
		return SuccessOf(x * 2)
	})
	o := p.Sample(seed.From(1), 10)
	if o.Status != StatusSuccess || o.Value != 14 {
		t.Fatalf("ForAllM success path = %+v, want Success(14)", o)
	}
	if msgs := o.Journal.Eval(); len(msgs) != 1 || msgs[0] != "x = 7" {
		t.Fatalf("ForAllM journal = %v, want [x = 7]", msgs)
	}
}

func TestForAllM_CatchesPanicAsFailure(t *testing.T) {
	p := ForAllM(gen.Const(7), func(x int) string { return "x = 7" }, func(x int) Sampled[int] {
		panic("boom")
	})
	o := p.Sample(seed.From(1), 10)
	if o.Status != StatusFailure {
		t.Fatalf("ForAllM over a panicking continuation = %v, want failure", o.Status)
	}
	msgs := o.Journal.Eval()
	if len(msgs) != 2 || msgs[0] != "x = 7" || msgs[1] != "boom" {
		t.Fatalf("ForAllM journal = %v, want [x = 7, boom]", msgs)
	}
}
