// Package tree implements the lazy rose tree that carries a generated value
// alongside its integrated shrink candidates. Every combinator here
// preserves laziness: forcing a node's outcome never forces its shrinks,
// and forcing one shrink never forces its siblings.
package tree

// Tree is a node holding an outcome and a thunk producing its shrink
// children, smallest-candidate-first. Shrinks memoises the thunk's result
// in the Tree value it is called on, so repeated calls on that value don't
// redo work; copies of a Tree taken before forcing each run the thunk on
// their own. Re-running the generator that produced the tree is always safe
// since Tree values are never mutated behind the caller's back.
type Tree[T any] struct {
	outcome T
	children func() []Tree[T]
	forced   []Tree[T]
	done     bool
}

// Node builds a tree from an outcome and a lazy children thunk.
func Node[T any](outcome T, children func() []Tree[T]) Tree[T] {
	return Tree[T]{outcome: outcome, children: children}
}

// Singleton builds a leaf tree: an outcome with no shrink candidates.
func Singleton[T any](x T) Tree[T] {
	return Node(x, func() []Tree[T] { return nil })
}

// Outcome returns the root value. Never forces children.
func (t Tree[T]) Outcome() T { return t.outcome }

// Shrinks forces and returns the (memoised) shrink children, smallest-first.
func (t *Tree[T]) Shrinks() []Tree[T] {
	if !t.done {
		if t.children != nil {
			t.forced = t.children()
		}
		t.done = true
	}
	return t.forced
}

// shrinksOf is a value-receiver convenience for call sites that only hold a
// Tree by value (Shrinks needs a pointer to memoise, but most combinators
// operate on trees received by value; they force through a local copy).
func shrinksOf[T any](t Tree[T]) []Tree[T] {
	return t.Shrinks()
}

// Map applies f to every outcome in the tree, root and shrinks alike,
// preserving structure. Forcing the mapped root never forces t's shrinks.
func Map[A, B any](f func(A) B, t Tree[A]) Tree[B] {
	return Node(f(t.Outcome()), func() []Tree[B] {
		kids := shrinksOf(t)
		out := make([]Tree[B], len(kids))
		for i, k := range kids {
			out[i] = Map(f, k)
		}
		return out
	})
}

// Bind substitutes f(root) at the root, appending t's shrinks (themselves
// recursively bound) to the FRONT of f(root)'s own shrinks. This ordering
// is the integrated-shrinking invariant: every shrink of the upstream value
// is tried before any shrink introduced purely by the downstream
// dependency, so minimality found upstream is never lost by composition.
// fRoot is forced once, eagerly, since its outcome is needed for the bound
// tree's own root; its shrinks, and t's, stay behind the lazy thunk.
func Bind[A, B any](f func(A) Tree[B], t Tree[A]) Tree[B] {
	fRoot := f(t.Outcome())
	return Node(fRoot.Outcome(), func() []Tree[B] {
		tKids := shrinksOf(t)
		upstream := make([]Tree[B], len(tKids))
		for i, k := range tKids {
			upstream[i] = Bind(f, k)
		}
		return append(upstream, shrinksOf(fRoot)...)
	})
}

// Expand layers an additional shrink schedule on top of an existing tree:
// at every node, it appends Unfold(f) trees built from that node's outcome
// to the node's existing shrinks, without discarding what was already
// there.
func Expand[T any](f func(T) []T, t Tree[T]) Tree[T] {
	return Node(t.Outcome(), func() []Tree[T] {
		kids := shrinksOf(t)
		out := make([]Tree[T], 0, len(kids)+1)
		for _, k := range kids {
			out = append(out, Expand(f, k))
		}
		for _, smaller := range f(t.Outcome()) {
			out = append(out, Unfold(func(x T) T { return x }, f, smaller))
		}
		return out
	})
}

// Filter prunes any shrink subtree whose root fails p, recursively. The
// tree's own root is never discarded — callers must ensure it already
// satisfies p.
func Filter[T any](p func(T) bool, t Tree[T]) Tree[T] {
	return Node(t.Outcome(), func() []Tree[T] {
		kids := shrinksOf(t)
		out := make([]Tree[T], 0, len(kids))
		for _, k := range kids {
			if p(k.Outcome()) {
				out = append(out, Filter(p, k))
			}
		}
		return out
	})
}

// Unfold builds a tree from a seed value: rootFn computes the outcome,
// childrenFn computes the smaller seeds to recurse into.
func Unfold[S, T any](rootFn func(S) T, childrenFn func(S) []S, s S) Tree[T] {
	return Node(rootFn(s), func() []Tree[T] {
		children := childrenFn(s)
		out := make([]Tree[T], len(children))
		for i, c := range children {
			out[i] = Unfold(rootFn, childrenFn, c)
		}
		return out
	})
}

// Apply combines a tree of functions with a tree of values, shrinking the
// function side before the argument side — the same ordering Bind commits
// to, since Apply is defined in terms of it (f <*> x = f >>= \g -> x >>= \v -> pure (g v)).
func Apply[A, B any](tf Tree[func(A) B], tx Tree[A]) Tree[B] {
	return Bind(func(g func(A) B) Tree[B] {
		return Bind(func(a A) Tree[B] {
			return Singleton(g(a))
		}, tx)
	}, tf)
}
