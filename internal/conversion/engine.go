// Package conversion implements the explicit/implicit conversion
// decision order the expression analyzer consults at every point two
// types meet: a declaration's initializer against its annotation, a
// binary operator's operands against each other and an external
// target, an array literal's elements, and a conditional's branches.
package conversion

import (
	"hexen/internal/diagnostics"
	"hexen/internal/types"
)

// Engine is stateless; it exists as a type so call sites read as
// conversion.New().ResolveValue(...) alongside the rest of the
// analyzer's Foo{}.Visit-style collaborators, and so a future version
// can carry configuration (e.g. a strictness flag) without changing
// every call site.
type Engine struct{}

func New() *Engine { return &Engine{} }

// ResolveValue resolves a single expression's type against an
// optional external target. target == nil means no context is
// propagated: a comptime type defaults per §3.2, anything else is
// returned unchanged. explicit marks a `expr : T` conversion site,
// which accepts the wider CanAdaptExplicit rule instead of
// CanAdaptImplicit.
//
// A failure is classified per §4.1's taxonomy rather than reported as
// one generic TypeMismatch: an array shape clash is
// ArraySizeMismatch, anything touching bool/string is
// ForbiddenConversion (rule 2b/3c), a concrete-to-concrete numeric
// mismatch that only needs explicit syntax is PotentialTruncation or
// PotentialPrecisionLoss (rule 3b), and TypeMismatch is left as the
// fallback for shapes those rules don't cover.
func (e *Engine) ResolveValue(from *types.Type, target *types.Type, explicit bool, pos diagnostics.Position) (*types.Type, *diagnostics.Diagnostic) {
	if target == nil {
		return types.DefaultConcrete(from), nil
	}
	if from.Equal(target) {
		return target, nil
	}
	if explicit {
		if types.CanAdaptExplicit(from, target) {
			return target, nil
		}
		return nil, e.mismatchDiagnostic(from, target, pos)
	}
	if types.CanAdaptImplicit(from, target) {
		return target, nil
	}
	return nil, e.mismatchDiagnostic(from, target, pos)
}

// mismatchDiagnostic builds the right diagnostic for a from->target
// conversion that has already failed every CanAdapt* check.
func (e *Engine) mismatchDiagnostic(from, target *types.Type, pos diagnostics.Position) *diagnostics.Diagnostic {
	if from.IsArray() && target.IsArray() {
		return diagnostics.New(diagnostics.ArraySizeMismatch, pos,
			"array size mismatch: expected %s, found %s", target, from)
	}
	if isForbiddenPair(from, target) {
		return diagnostics.New(diagnostics.ForbiddenConversion, pos,
			"cannot convert %s to %s", from, target).
			WithHint(forbiddenConversionHint(from, target))
	}
	if isNumericMismatch(from, target) {
		code := classifyNumericMismatch(from, target)
		kind := "truncation"
		if code == diagnostics.PotentialPrecisionLoss {
			kind = "precision loss"
		}
		return diagnostics.New(code, pos, "Potential %s: use explicit conversion 'value:%s'", kind, target)
	}
	return diagnostics.New(diagnostics.TypeMismatch, pos,
		"expected %s, found %s", target, from).
		WithHint("add an explicit conversion: value : %s", target)
}

// isForbiddenPair reports whether either side of the conversion is
// bool or string: §4.1 rules 2b/3c forbid these outright rather than
// merely requiring explicit syntax.
func isForbiddenPair(from, target *types.Type) bool {
	return from.Kind == types.KindBool || target.Kind == types.KindBool ||
		from.Kind == types.KindString || target.Kind == types.KindString
}

// forbiddenConversionHint suggests the domain-appropriate alternative
// instead of a conversion syntax that doesn't exist.
func forbiddenConversionHint(from, target *types.Type) string {
	if from.Kind == types.KindBool || target.Kind == types.KindBool {
		return "use an explicit comparison instead of converting to or from bool"
	}
	return "use a parsing function instead of converting to or from string"
}

// isNumericMismatch reports whether both sides are concrete numeric
// types (comptime sources are handled by CanAdaptImplicit/Explicit
// already and never reach here).
func isNumericMismatch(from, target *types.Type) bool {
	numeric := func(t *types.Type) bool { return (t.IsInteger() || t.IsFloat()) && !t.IsComptime() }
	return numeric(from) && numeric(target)
}

// classifyNumericMismatch decides whether narrowing from -> target
// drops whole digits (truncation) or just representational accuracy
// (precision loss): integer-to-integer and float-to-integer narrowing
// truncate; anything landing on a float type risks precision loss
// instead, since the full integer range or the wider float's mantissa
// may not survive the trip.
func classifyNumericMismatch(from, target *types.Type) diagnostics.Code {
	if target.IsFloat() {
		return diagnostics.PotentialPrecisionLoss
	}
	return diagnostics.PotentialTruncation
}

// ResolveBinary implements §4.1's resolution order for a binary
// operator's two operand types:
//  1. both comptime -> unify to one comptime type
//  2. exactly one concrete -> the comptime side adapts to it
//  3. both concrete and equal -> that type
//  4. both concrete and different -> target must be supplied, and
//     both operands must adapt to it; otherwise MixedConcreteRequiresContext
func (e *Engine) ResolveBinary(left, right, target *types.Type, pos diagnostics.Position) (*types.Type, *diagnostics.Diagnostic) {
	leftComptime, rightComptime := left.IsComptime(), right.IsComptime()

	switch {
	case leftComptime && rightComptime:
		unified := types.UnifyComptime(left, right)
		if target != nil {
			return e.ResolveValue(unified, target, false, pos)
		}
		return unified, nil

	case leftComptime != rightComptime:
		comptimeSide, concreteSide := left, right
		if rightComptime {
			comptimeSide, concreteSide = right, left
		}
		if target != nil {
			concreteResolved, d := e.ResolveValue(concreteSide, target, false, pos)
			if d != nil {
				return nil, d
			}
			if _, d := e.ResolveValue(comptimeSide, target, false, pos); d != nil {
				return nil, d
			}
			return concreteResolved, nil
		}
		if !types.CanAdaptImplicit(comptimeSide, concreteSide) {
			return nil, diagnostics.New(diagnostics.TypeMismatch, pos,
				"cannot combine %s with %s without an explicit conversion", comptimeSide, concreteSide).
				WithHint("convert the comptime operand explicitly: value : %s", concreteSide)
		}
		return concreteSide, nil

	case left.Equal(right):
		if target != nil {
			return e.ResolveValue(left, target, false, pos)
		}
		return left, nil

	default:
		if target == nil {
			return nil, diagnostics.New(diagnostics.MixedConcreteRequiresContext, pos,
				"operands have different concrete types %s and %s with no target type", left, right).
				WithHint("add a target type, or convert one operand explicitly")
		}
		if _, d := e.ResolveValue(left, target, false, pos); d != nil {
			return nil, d
		}
		if _, d := e.ResolveValue(right, target, false, pos); d != nil {
			return nil, d
		}
		return target, nil
	}
}

// ResolveArrayElements implements §4.3's element-unification rule for
// an array literal: all-comptime-int stays ComptimeArray(int), any
// comptime_float promotes to ComptimeArray(float), and a mix with a
// concrete element requires the other elements to adapt to it (or an
// external target to resolve the whole literal against).
func (e *Engine) ResolveArrayElements(elems []*types.Type, target *types.Type, pos diagnostics.Position) (*types.Type, *diagnostics.Diagnostic) {
	allComptime := true
	var concreteElem *types.Type
	sawFloat := false
	for _, t := range elems {
		if !t.IsComptime() {
			allComptime = false
			if concreteElem == nil {
				concreteElem = t
			} else if !concreteElem.Equal(t) {
				if target == nil {
					return nil, diagnostics.New(diagnostics.MixedArrayRequiresContext, pos,
						"array elements have different concrete types %s and %s", concreteElem, t).
						WithHint("add a target array type, or convert the mismatched elements explicitly")
				}
			}
		} else if t.Kind == types.KindComptimeFloat {
			sawFloat = true
		}
	}

	if allComptime {
		elemType := types.ComptimeInt()
		if sawFloat {
			elemType = types.ComptimeFloat()
		}
		return elemType, nil
	}

	for _, t := range elems {
		if t.IsComptime() {
			if !types.CanAdaptImplicit(t, concreteElem) && target == nil {
				return nil, diagnostics.New(diagnostics.MixedArrayRequiresContext, pos,
					"comptime element %s does not adapt to concrete element type %s", t, concreteElem).
					WithHint("add a target array type, or convert this element explicitly")
			}
		}
	}
	return concreteElem, nil
}

// ResolveConditionalBranches implements §4.8's branch-unification
// rule for a conditional expression: with a target present, every
// branch is checked against it individually; without one, every
// branch's own resolved type must already agree.
func (e *Engine) ResolveConditionalBranches(branches []*types.Type, target *types.Type, pos diagnostics.Position) (*types.Type, *diagnostics.Diagnostic) {
	if target != nil {
		for _, b := range branches {
			if _, d := e.ResolveValue(b, target, false, pos); d != nil {
				return nil, d
			}
		}
		return target, nil
	}

	resolved := make([]*types.Type, len(branches))
	for i, b := range branches {
		resolved[i] = types.DefaultConcrete(b)
	}
	for i := 1; i < len(resolved); i++ {
		if !resolved[i].Equal(resolved[0]) {
			return nil, diagnostics.New(diagnostics.ConditionalRequiresContext, pos,
				"branches resolve to different types %s and %s with no target type", resolved[0], resolved[i]).
				WithHint("add a target type to the receiving declaration")
		}
	}
	if len(resolved) == 0 {
		return types.Void(), nil
	}
	return resolved[0], nil
}
