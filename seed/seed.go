// Package seed implements a splittable, deterministic 64-bit pseudo-random
// generator after the "Fast Splittable Pseudorandom Number Generators"
// algorithm (Steele, Lea, Flood). A Seed is a pure value: sampling never
// mutates the receiver, and split produces two sub-streams that are
// statistically independent of each other and of the parent.
package seed

import (
	"math/big"
	"math/bits"
	"time"
)

// goldenGamma is the odd increment used to seed gamma from a fresh clock
// reading; it is the golden-ratio-scaled constant from the reference paper.
const goldenGamma = 0x9e3779b97f4a7c15

// Seed is a pure splittable PRNG state. gamma is always odd.
type Seed struct {
	value uint64
	gamma uint64
}

// Random builds a fresh Seed from a high-resolution clock source.
func Random() Seed {
	now := uint64(time.Now().UnixNano())
	return Seed{
		value: mix64(now + goldenGamma + goldenGamma),
		gamma: (mixGamma(now) + goldenGamma) | 1,
	}
}

// From deterministically constructs a Seed from a single uint64, using the
// same mixing as Random so that equal inputs always produce equal seeds.
func From(x uint64) Seed {
	return Seed{
		value: mix64(x + goldenGamma + goldenGamma),
		gamma: (mixGamma(x) + goldenGamma) | 1,
	}
}

// Next advances the seed and returns the next emitted 64-bit value along
// with the successor seed. Seed values are never mutated in place.
func Next(s Seed) (uint64, Seed) {
	next := Seed{value: s.value + s.gamma, gamma: s.gamma}
	return mix64(next.value), next
}

// Split derives two independent sub-seeds from s. The implementation draws
// two successive advances and builds seedL from the first, seedR from the
// second with a freshly mixed gamma. This is the "mirror the Haskell
// original less literally" variant mentioned as an open question in the
// spec: it is not guaranteed bit-compatible with other splittable-PRNG
// implementations, and recheck payloads are only meaningful within a single
// build of this package.
func Split(s Seed) (Seed, Seed) {
	s1 := Seed{value: s.value + s.gamma, gamma: s.gamma}
	s2 := Seed{value: s1.value + s1.gamma, gamma: s1.gamma}

	seedL := Seed{value: mix64(s1.value), gamma: s.gamma}
	seedR := Seed{value: mix64(s2.value), gamma: mixGamma(s2.value)}
	return seedL, seedR
}

// Value exposes the raw state word, chiefly so RecheckData can serialise it.
func (s Seed) Value() uint64 { return s.value }

// Gamma exposes the raw gamma word, chiefly so RecheckData can serialise it.
func (s Seed) Gamma() uint64 { return s.gamma }

// FromParts reconstructs a Seed from previously-serialised state/gamma words
// (used by prop.RecheckData to replay an exact failing draw). gamma is
// forced odd to preserve the type invariant even if the caller hands us a
// corrupted value.
func FromParts(value, gamma uint64) Seed {
	if gamma%2 == 0 {
		gamma |= 1
	}
	return Seed{value: value, gamma: gamma}
}

// mix64 is the MurmurHash3 finalizer, used both to scramble the advancing
// state into an output value and to scramble split sub-streams.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xFF51AFD7ED558CCD
	z = (z ^ (z >> 33)) * 0xC4CEB9FE1A85EC53
	return z ^ (z >> 33)
}

// mixGamma derives an odd increment with good bit-mixing properties from a
// state word: it runs the same Murmur3 finalizer steps as mix64, forces
// oddness, and rejects candidates with fewer than 24 differing bit
// positions in g ^ (g>>1) (a measure of "not too many long runs of equal
// bits"), falling back to XOR with an alternating-bit mask.
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xFF51AFD7ED558CCD
	z = (z ^ (z >> 33)) * 0xC4CEB9FE1A85EC53
	z = (z ^ (z >> 33)) | 1

	n := bits.OnesCount64(z ^ (z >> 1))
	if n < 24 {
		z ^= 0xAAAAAAAAAAAAAAAA
	}
	return z
}

// q is the rejection-sampling quality factor from the spec: the accumulated
// magnitude must exceed k*q before reduction, bounding the uniformity skew
// to within a factor of 1±1/q.
const q = 1000

// NextBigInt samples an integer uniformly (within a 1±1/q skew) from the
// inclusive range [lo, hi], accumulating base-2^64 digits from successive
// Next draws until the accumulated magnitude exceeds k*q, then reducing
// modulo k. Runs in expected O(log k / 64) draws.
func NextBigInt(lo, hi *big.Int, s Seed) (*big.Int, Seed) {
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	k := new(big.Int).Sub(hi, lo)
	k.Add(k, big.NewInt(1))
	if k.Sign() <= 0 {
		return new(big.Int).Set(lo), s
	}

	threshold := new(big.Int).Mul(k, big.NewInt(q))

	acc := new(big.Int)
	cur := s
	for acc.Cmp(threshold) <= 0 {
		var word uint64
		word, cur = Next(cur)
		acc.Lsh(acc, 64)
		acc.Or(acc, new(big.Int).SetUint64(word))
	}

	acc.Mod(acc, k)
	acc.Add(acc, lo)
	return acc, cur
}

// NextDouble draws an integer in [math.MinInt32, math.MaxInt32] and
// linearly rescales it to [lo, hi].
func NextDouble(lo, hi float64, s Seed) (float64, Seed) {
	if lo > hi {
		lo, hi = hi, lo
	}
	word, next := Next(s)
	// Interpret the low 32 bits as a signed int32 to get a value uniform
	// over [MinInt32, MaxInt32].
	raw := int32(uint32(word))
	const lo32, hi32 = float64(-2147483648), float64(2147483647)
	t := (float64(raw) - lo32) / (hi32 - lo32)
	return lo + t*(hi-lo), next
}
