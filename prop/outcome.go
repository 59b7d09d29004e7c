package prop

import (
	"fmt"

	"github.com/lucaskalb/gopbt/gen"
	"github.com/lucaskalb/gopbt/journal"
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
)

// Status names which of the three states an Outcome is in.
type Status int

const (
	// StatusSuccess means the property held for its input.
	StatusSuccess Status = iota
	// StatusFailure means the property was falsified; Journal carries why.
	StatusFailure
	// StatusDiscard means the input should not count toward the example
	// budget (e.g. it failed a precondition filter).
	StatusDiscard
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Outcome is the sum type a Property evaluates to: success, failure (with a
// deferred journal of messages explaining why), or discard.
type Outcome struct {
	Status  Status
	Journal journal.Journal
}

// Success reports the property held, with no messages attached.
func Success() Outcome {
	return Outcome{Status: StatusSuccess, Journal: journal.Empty()}
}

// Failure reports the property was falsified, carrying j as the
// explanation rendered on a failing run.
func Failure(j journal.Journal) Outcome {
	return Outcome{Status: StatusFailure, Journal: j}
}

// Discard reports the input should be thrown away without counting against
// the example budget.
func Discard() Outcome {
	return Outcome{Status: StatusDiscard, Journal: journal.Empty()}
}

// OfBool converts a plain boolean check into Success or an unlabelled
// Failure.
func OfBool(ok bool) Outcome {
	if ok {
		return Success()
	}
	return Failure(journal.Empty())
}

// Counterexample is Failure with a single fixed message.
func Counterexample(msg string) Outcome {
	return Failure(journal.Singleton(func() string { return msg }))
}

// Property is a check over a generated value T, reducing to one of the
// three Outcome states.
type Property[T any] func(T) Outcome

// OfOutcome lifts a constant Outcome into a Property that ignores its input.
func OfOutcome[T any](o Outcome) Property[T] {
	return func(T) Outcome { return o }
}

// MapProperty transforms the input a Property sees, so a Property[B] can be
// reused to check A values.
func MapProperty[A, B any](f func(A) B, p Property[B]) Property[A] {
	return func(a A) Outcome { return p(f(a)) }
}

// FilterProperty discards any input not satisfying pred before p runs.
func FilterProperty[T any](pred func(T) bool, p Property[T]) Property[T] {
	return func(t T) Outcome {
		if !pred(t) {
			return Discard()
		}
		return p(t)
	}
}

// AndProperty combines two properties on the same input: the result fails
// if either does, discards if either discards and neither fails, and
// otherwise succeeds. Journals of any failing check are concatenated.
func AndProperty[T any](a, b Property[T]) Property[T] {
	return func(t T) Outcome {
		oa := a(t)
		ob := b(t)
		if oa.Status == StatusFailure || ob.Status == StatusFailure {
			return Failure(journal.Append(oa.Journal, ob.Journal))
		}
		if oa.Status == StatusDiscard || ob.Status == StatusDiscard {
			return Discard()
		}
		return Success()
	}
}

// TryFinally runs p and always invokes finally afterward, including when p
// panics; the panic is re-raised once finally has run.
func TryFinally[T any](p Property[T], finally func()) Property[T] {
	return func(t T) Outcome {
		defer finally()
		return p(t)
	}
}

// TryWith runs acquire to obtain a resource, passes it through use to build
// a Property, checks t against it, and always releases the resource
// afterward.
func TryWith[R, T any](acquire func() R, use func(R) Property[T], release func(R)) Property[T] {
	return func(t T) Outcome {
		res := acquire()
		defer release(res)
		return use(res)(t)
	}
}

// Using is TryWith specialised to resources that clean up via a no-argument
// close function, matching the common io.Closer-shaped acquire/use pattern.
func Using[R, T any](acquire func() R, use func(R) Property[T], close func(R) error) Property[T] {
	return TryWith(acquire, use, func(r R) { _ = close(r) })
}

// Sampled is a self-sampling property: evaluating it draws whatever values
// it needs and reduces to a single SampledOutcome, journal included. This
// is distinct from the plain Property[T] checker above, which is applied to
// a value the runner already generated; Sampled carries its own generator
// draws so several of them can compose into one property via Bind and
// ForAll without the caller threading a shared input type through every
// step.
type Sampled[T any] gen.Generator[SampledOutcome[T]]

// SampledOutcome is Outcome with the value produced on Success attached, so
// Bind has something to hand to its continuation.
type SampledOutcome[T any] struct {
	Status  Status
	Journal journal.Journal
	Value   T
}

// toOutcome drops the carried value, for callers that only care about pass/
// fail/discard and the journal.
func (o SampledOutcome[T]) toOutcome() Outcome {
	return Outcome{Status: o.Status, Journal: o.Journal}
}

// SuccessOf lifts a value into a Sampled that always succeeds with it.
func SuccessOf[T any](v T) Sampled[T] {
	return Sampled[T](gen.Const(SampledOutcome[T]{Status: StatusSuccess, Journal: journal.Empty(), Value: v}))
}

// FailureOf lifts a journal into a Sampled that always fails.
func FailureOf[T any](j journal.Journal) Sampled[T] {
	var zero T
	return Sampled[T](gen.Const(SampledOutcome[T]{Status: StatusFailure, Journal: j, Value: zero}))
}

// DiscardOf is a Sampled that always discards.
func DiscardOf[T any]() Sampled[T] {
	var zero T
	return Sampled[T](gen.Const(SampledOutcome[T]{Status: StatusDiscard, Journal: journal.Empty(), Value: zero}))
}

// Sample draws m's outcome at (s, sz).
func (m Sampled[T]) Sample(s seed.Seed, sz gen.Size) SampledOutcome[T] {
	return gen.Generator[SampledOutcome[T]](m).Generate(s, sz).Outcome()
}

// Bind samples m; Failure and Discard propagate unchanged, carrying m's
// accumulated journal. On Success(x), it runs k(x) and prepends m's journal
// to k's, so journal entries stay in root-to-leaf, left-to-right order
// across a chain of binds.
func Bind[A, B any](m Sampled[A], k func(A) Sampled[B]) Sampled[B] {
	return Sampled[B](func(s seed.Seed, sz gen.Size) tree.Tree[SampledOutcome[B]] {
		sl, sr := seed.Split(s)
		mo := m.Sample(sl, sz)
		if mo.Status != StatusSuccess {
			var zero B
			return tree.Singleton(SampledOutcome[B]{Status: mo.Status, Journal: mo.Journal, Value: zero})
		}
		ko := k(mo.Value).Sample(sr, sz)
		return tree.Singleton(SampledOutcome[B]{
			Status:  ko.Status,
			Journal: journal.Append(mo.Journal, ko.Journal),
			Value:   ko.Value,
		})
	})
}

// ForAllM samples a value from g, appends a counter-example line rendered
// from it to the journal, and runs k(x). A panic inside k is caught here —
// the forAll boundary — and reported as a Failure carrying the panic text,
// mirroring how the runner catches exceptions thrown by a property body.
// Named with the M suffix (for "monadic") to sit alongside the *testing.T-
// driven ForAll in runner.go without colliding with it.
func ForAllM[A, B any](g gen.Generator[A], render func(A) string, k func(A) Sampled[B]) Sampled[B] {
	return Sampled[B](func(s seed.Seed, sz gen.Size) (result tree.Tree[SampledOutcome[B]]) {
		sl, sr := seed.Split(s)
		x := g.Generate(sl, sz).Outcome()
		line := journal.Singleton(func() string { return render(x) })
		defer func() {
			if r := recover(); r != nil {
				var zero B
				result = tree.Singleton(SampledOutcome[B]{
					Status:  StatusFailure,
					Journal: journal.Append(line, journal.Singleton(func() string { return fmt.Sprint(r) })),
					Value:   zero,
				})
			}
		}()
		ko := k(x).Sample(sr, sz)
		return tree.Singleton(SampledOutcome[B]{
			Status:  ko.Status,
			Journal: journal.Append(line, ko.Journal),
			Value:   ko.Value,
		})
	})
}
