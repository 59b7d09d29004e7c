package gen

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
)

// Guid draws a random version-4, RFC 4122 variant UUID from two raw
// seed.Next draws. UUIDs are opaque identifiers with no natural ordering to
// shrink toward, so a Guid generator never offers shrink candidates.
func Guid() Generator[uuid.UUID] {
	return From(func(s seed.Seed, _ Size) tree.Tree[uuid.UUID] {
		hi, s1 := seed.Next(s)
		lo, _ := seed.Next(s1)
		var u uuid.UUID
		binary.BigEndian.PutUint64(u[0:8], hi)
		binary.BigEndian.PutUint64(u[8:16], lo)
		u[6] = (u[6] & 0x0f) | 0x40
		u[8] = (u[8] & 0x3f) | 0x80
		return tree.Singleton(u)
	})
}
