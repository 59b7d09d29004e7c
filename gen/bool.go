package gen

import (
	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
)

// Bool draws true or false with equal probability, shrinking true toward
// false (false has no further shrinks).
func Bool() Generator[bool] {
	return From(func(s seed.Seed, sz Size) tree.Tree[bool] {
		word, _ := seed.Next(s)
		v := word%2 == 0
		if !v {
			return tree.Singleton(false)
		}
		return tree.Node(true, func() []tree.Tree[bool] {
			return []tree.Tree[bool]{tree.Singleton(false)}
		})
	})
}
