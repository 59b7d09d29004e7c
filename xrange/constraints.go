package xrange

// Ordered and Signed are hand-written type-set constraints rather than ones
// taken from an external constraints package.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed is Ordered restricted to types that support negation, needed by
// the linear/exponential families since their origin may sit strictly
// between the declared bounds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}
