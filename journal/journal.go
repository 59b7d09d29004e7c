// Package journal implements the lazily-evaluated message log a property
// accumulates as it runs. Logging a message never formats anything until
// the journal is actually rendered, so a passing property pays nothing for
// labels and counterexample context it never needed.
package journal

// Journal is a deferred sequence of log entries. Entry order is preserved
// by Append: everything already in a comes before everything in b.
type Journal struct {
	eval func() []string
}

// Empty is the journal with no entries.
func Empty() Journal {
	return Journal{eval: func() []string { return nil }}
}

// Singleton defers fn until Eval is called, then records its result as the
// journal's single entry.
func Singleton(fn func() string) Journal {
	return Journal{eval: func() []string { return []string{fn()} }}
}

// Append concatenates two journals without forcing either.
func Append(a, b Journal) Journal {
	return Journal{eval: func() []string {
		return append(a.Eval(), b.Eval()...)
	}}
}

// Eval forces every deferred entry and returns them in order.
func (j Journal) Eval() []string {
	if j.eval == nil {
		return nil
	}
	return j.eval()
}
