package types

// DefaultConcrete returns the concrete type a comptime type resolves
// to when nothing in the surrounding context supplies a target:
// comptime_int defaults to i32, comptime_float to f64. Any other type
// is returned unchanged.
func DefaultConcrete(t *Type) *Type {
	switch t.Kind {
	case KindComptimeInt:
		return I32()
	case KindComptimeFloat:
		return F64()
	default:
		return t
	}
}

// CanAdaptImplicit reports whether a value of type `from` may flow
// into a `to`-typed slot with no explicit conversion syntax.
func CanAdaptImplicit(from, to *Type) bool {
	if from == nil || to == nil {
		return false
	}
	if from.Equal(to) {
		return true
	}
	switch from.Kind {
	case KindComptimeInt:
		switch to.Kind {
		case KindI32, KindI64, KindF32, KindF64, KindUsize:
			return true
		}
		return false
	case KindComptimeFloat:
		switch to.Kind {
		case KindF32, KindF64:
			return true
		}
		return false
	case KindComptimeArray:
		if to.Kind != KindArray {
			return false
		}
		return comptimeArrayAdapts(from, to)
	default:
		return false
	}
}

// comptimeArrayAdapts checks shape compatibility (wildcard dims accept
// any source size, fixed dims must match) and that the element kinds
// are compatible without requiring an explicit array conversion. An
// integer-element comptime array adapts implicitly to any numeric
// element target, float included; a comptime_float element array
// never adapts implicitly to an integer-element target.
func comptimeArrayAdapts(from, to *Type) bool {
	if len(from.Dims) != len(to.Dims) {
		return false
	}
	for i := range from.Dims {
		if to.Dims[i].Wildcard {
			continue
		}
		if from.Dims[i].Size != to.Dims[i].Size {
			return false
		}
	}
	return CanAdaptImplicit(from.Elem, to.Elem)
}

// CanAdaptExplicit reports whether `expr : to` is a legal explicit
// conversion given `from`. This is a superset of CanAdaptImplicit: it
// additionally allows concrete-to-concrete numeric narrowing,
// comptime_float to an integer type, and comptime array conversions
// across int/float element kinds. usize never accepts a float source,
// even explicitly, since that would silently discard fractional bits
// a systems programmer needs to see named by a real rounding function.
func CanAdaptExplicit(from, to *Type) bool {
	if CanAdaptImplicit(from, to) {
		return true
	}
	if from == nil || to == nil {
		return false
	}
	switch from.Kind {
	case KindComptimeFloat:
		switch to.Kind {
		case KindI32, KindI64:
			return true
		}
		return false
	case KindComptimeArray:
		if to.Kind != KindArray {
			return false
		}
		if len(from.Dims) != len(to.Dims) {
			return false
		}
		for i := range from.Dims {
			if to.Dims[i].Wildcard {
				continue
			}
			if from.Dims[i].Size != to.Dims[i].Size {
				return false
			}
		}
		return CanAdaptExplicit(from.Elem, to.Elem)
	case KindI32, KindI64, KindF32, KindF64:
		if to.Kind == KindUsize && from.IsFloat() {
			return false
		}
		return to.IsConcreteNumeric()
	case KindUsize:
		// usize -> float forbidden even explicitly.
		return to.Kind == KindI32 || to.Kind == KindI64 || to.Kind == KindUsize
	case KindRange:
		if to.Kind != KindRange {
			return false
		}
		if from.Elem.IsFloat() {
			return false // float ranges never convert to anything, including range[usize]
		}
		return CanAdaptExplicit(from.Elem, to.Elem)
	default:
		return false
	}
}

// UnifyComptime combines two comptime operand types for a binary
// operation with no external target: two ints stay comptime_int;
// either side being comptime_float promotes the result to
// comptime_float.
func UnifyComptime(a, b *Type) *Type {
	if a.Kind == KindComptimeFloat || b.Kind == KindComptimeFloat {
		return ComptimeFloat()
	}
	return ComptimeInt()
}
