package types

import "golang.org/x/exp/constraints"

// IntBounds gives the representable range of a concrete integer kind,
// used to validate an integer literal against the concrete target it
// resolved to.
func IntBounds(k Kind) (min, max int64, ok bool) {
	switch k {
	case KindI32:
		return -2147483648, 2147483647, true
	case KindI64:
		return -9223372036854775808, 9223372036854775807, true
	case KindUsize:
		return 0, 9223372036854775807, true
	default:
		return 0, 0, false
	}
}

// FitsInt reports whether v lies within kind's representable range.
func FitsInt(v int64, k Kind) bool {
	min, max, ok := IntBounds(k)
	if !ok {
		return false
	}
	return v >= min && v <= max
}

// Min and Max are small generic ordering helpers over any
// constraints.Ordered type. The analyzer's range-length clamping in
// computeRangeLength does its own comparison and does not call them.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
