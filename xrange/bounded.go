package xrange

import "math"

// signedLimits returns the [min,max] of a signed integer type with the
// given bit width, used by the *Bounded constructors below. Go generics
// can't recover a type parameter's numeric limits at compile time, so each
// bounded constructor supplies its own width explicitly.
func signedLimits[T Signed](bits int) (T, T) {
	maxV := int64(1)<<(uint(bits)-1) - 1
	minV := -maxV - 1
	return T(minV), T(maxV)
}

func unsignedLimits[T Ordered](bits int) (T, T) {
	maxV := uint64(math.MaxUint64)
	if bits < 64 {
		maxV = uint64(1)<<uint(bits) - 1
	}
	return T(0), T(maxV)
}

// ConstantBoundedInt8, LinearBoundedInt8, ExponentialBoundedInt8 and their
// siblings below instantiate constantBounded<T>()/linearBounded<T>()/
// exponentialBounded<T>() from the spec for each integer width gen uses.
// The origin is always 0, matching constantBounded<T>() = constantFrom(0,
// T::MIN, T::MAX).

func ConstantBoundedInt8() Range[int8]   { lo, hi := signedLimits[int8](8); return ConstantFrom[int8](0, lo, hi) }
func LinearBoundedInt8() Range[int8]     { lo, hi := signedLimits[int8](8); return LinearFrom[int8](0, lo, hi) }
func ExponentialBoundedInt8() Range[int8] { lo, hi := signedLimits[int8](8); return ExponentialFrom[int8](0, lo, hi) }

func ConstantBoundedInt16() Range[int16]   { lo, hi := signedLimits[int16](16); return ConstantFrom[int16](0, lo, hi) }
func LinearBoundedInt16() Range[int16]     { lo, hi := signedLimits[int16](16); return LinearFrom[int16](0, lo, hi) }
func ExponentialBoundedInt16() Range[int16] { lo, hi := signedLimits[int16](16); return ExponentialFrom[int16](0, lo, hi) }

func ConstantBoundedInt32() Range[int32]   { lo, hi := signedLimits[int32](32); return ConstantFrom[int32](0, lo, hi) }
func LinearBoundedInt32() Range[int32]     { lo, hi := signedLimits[int32](32); return LinearFrom[int32](0, lo, hi) }
func ExponentialBoundedInt32() Range[int32] { lo, hi := signedLimits[int32](32); return ExponentialFrom[int32](0, lo, hi) }

func ConstantBoundedInt64() Range[int64]   { lo, hi := signedLimits[int64](64); return ConstantFrom[int64](0, lo, hi) }
func LinearBoundedInt64() Range[int64]     { lo, hi := signedLimits[int64](64); return LinearFrom[int64](0, lo, hi) }
func ExponentialBoundedInt64() Range[int64] { lo, hi := signedLimits[int64](64); return ExponentialFrom[int64](0, lo, hi) }

func ConstantBoundedUint8() Range[uint8] { lo, hi := unsignedLimits[uint8](8); return ConstantFrom[uint8](0, lo, hi) }
func LinearBoundedUint8() Range[uint8]   { lo, hi := unsignedLimits[uint8](8); return LinearFromUnsigned[uint8](0, lo, hi) }

func ConstantBoundedUint16() Range[uint16] { lo, hi := unsignedLimits[uint16](16); return ConstantFrom[uint16](0, lo, hi) }
func LinearBoundedUint16() Range[uint16]   { lo, hi := unsignedLimits[uint16](16); return LinearFromUnsigned[uint16](0, lo, hi) }

func ConstantBoundedUint32() Range[uint32] { lo, hi := unsignedLimits[uint32](32); return ConstantFrom[uint32](0, lo, hi) }
func LinearBoundedUint32() Range[uint32]   { lo, hi := unsignedLimits[uint32](32); return LinearFromUnsigned[uint32](0, lo, hi) }

func ConstantBoundedUint64() Range[uint64] { lo, hi := unsignedLimits[uint64](64); return ConstantFrom[uint64](0, lo, hi) }
func LinearBoundedUint64() Range[uint64]   { lo, hi := unsignedLimits[uint64](64); return LinearFromUnsigned[uint64](0, lo, hi) }

// LinearFromUnsigned is LinearFrom specialised to unsigned integer types,
// which can't be passed through the Signed-constrained family since they
// don't support negation; the interpolation instead clamps at zero from
// below.
func LinearFromUnsigned[T Ordered](origin, lo, hi T) Range[T] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range[T]{
		origin: origin,
		bounds: func(size Size) (T, T) {
			s := size.Clamp()
			if s > maxSize {
				s = maxSize
			}
			d, n, m := uint64(hi-origin), uint64(s), uint64(maxSize)
			scaledHi := clamp(lo, hi, origin+T(d/m*n+d%m*n/m))
			return lo, scaledHi
		},
	}
}
