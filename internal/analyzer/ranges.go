package analyzer

import (
	"hexen/internal/conversion"
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/types"
)

// rangeElemType resolves a RangeExpr's element type against an
// optional target element type, unifying whichever of Start/End/Step
// are present the same way a binary operator's operands unify, and
// enforcing that a float-element range always carries an explicit
// step.
func (a *Analyzer) rangeElemType(n *parser.RangeExpr, targetElem *types.Type, pos diagnostics.Position) *types.Type {
	var bounds []*types.Type
	for _, e := range []parser.Expr{n.Start, n.End, n.Step} {
		if e != nil {
			bounds = append(bounds, a.typeOf(e, targetElem))
		}
	}

	var elem *types.Type
	switch {
	case len(bounds) == 0:
		elem = types.ComptimeInt()
	case targetElem != nil:
		elem = targetElem
	default:
		elem = bounds[0]
		for _, b := range bounds[1:] {
			if elem.IsComptime() && b.IsComptime() {
				elem = types.UnifyComptime(elem, b)
			} else if elem.IsComptime() && types.CanAdaptImplicit(elem, b) {
				elem = b
			} else if b.IsComptime() && types.CanAdaptImplicit(b, elem) {
				continue
			} else if !elem.Equal(b) {
				a.report(diagnostics.New(diagnostics.MixedConcreteRequiresContext, pos,
					"range bounds have different types %s and %s with no target type", elem, b))
				return types.Unknown()
			}
		}
	}

	if elem.IsFloat() && n.Step == nil {
		a.report(diagnostics.New(diagnostics.FloatRangeMissingStep, pos,
			"a float-element range requires an explicit step"))
	}
	return elem
}

func (a *Analyzer) VisitRangeExpr(n *parser.RangeExpr) interface{} {
	var targetElem *types.Type
	if a.target != nil && a.target.IsRange() {
		targetElem = a.target.Elem
	}
	elem := a.rangeElemType(n, targetElem, posOf(n.Pos))
	return types.Range(elem, n.Start != nil, n.End != nil, n.Step != nil, n.Inclusive)
}

// resolveRangeIndex handles `arr[range]`: the shared array-copy and
// range-slicing syntax. The range's element type must be usize, or a
// comptime_int range that adapts to it implicitly; range[i32]/i64
// must be converted explicitly first, and float ranges are rejected
// outright.
func (a *Analyzer) resolveRangeIndex(objType *types.Type, n *parser.RangeExpr, pos parser.Position) interface{} {
	elem := a.rangeElemType(n, nil, posOf(pos))
	if elem.IsFloat() {
		a.report(diagnostics.New(diagnostics.FloatRangeNotIndex, posOf(pos),
			"a float-element range cannot be used to index an array"))
		return types.Unknown()
	}
	if elem.Kind != types.KindUsize && elem.Kind != types.KindComptimeInt {
		a.report(diagnostics.New(diagnostics.InvalidArrayIndex, posOf(pos),
			"range[%s] must be explicitly converted to range[usize] before indexing", elem))
	}

	var dim types.Dim
	if n.Start == nil && n.End == nil && n.Step == nil {
		// arr[..]: the bare copy syntax. Its shape is the source
		// array's own leading dimension, not a runtime-bounded one —
		// this is what lets `f(arr[..])` satisfy a fixed-size [3]i32
		// parameter.
		dim = objType.Dims[0]
	} else if length, known := computeRangeLength(n); known {
		dim = types.FixedDim(length)
	} else {
		dim = types.RuntimeDim()
	}
	dims := append([]types.Dim{dim}, objType.Dims[1:]...)
	return types.Array(objType.Elem, dims)
}

// materializeRange handles `[start..end]`: an array literal whose
// sole element is a range expression, which builds a concrete array
// out of the range's sequence instead of a one-element array of
// ranges. An unbounded or half-open range (`[a..]`, `[..]`) has no
// end to materialize toward and is rejected outright; a range with a
// runtime (non-literal) bound is valid and simply produces an
// inferred dimension instead of a statically-known one.
func (a *Analyzer) materializeRange(n *parser.RangeExpr, pos parser.Position) interface{} {
	elem := a.rangeElemType(n, nil, posOf(pos))
	if elem.IsFloat() && n.Step == nil {
		// rangeElemType already reported FloatRangeMissingStep; a
		// float range with no step has no well-defined length either,
		// so stop here instead of piling on a second diagnostic.
		return types.Unknown()
	}
	if n.End == nil {
		a.report(diagnostics.New(diagnostics.UnboundedRangeNotMaterializable, posOf(pos),
			"a range with no end bound cannot be materialized into an array"))
		return types.Unknown()
	}

	var dim types.Dim
	if length, known := computeRangeLength(n); known {
		dim = types.FixedDim(length)
	} else {
		dim = types.RuntimeDim()
	}

	if elem.IsComptime() {
		return types.ComptimeArray(elem, []types.Dim{dim})
	}
	return types.Array(elem, []types.Dim{dim})
}

// computeRangeLength statically counts a range's elements when every
// present bound is a plain integer literal: (end-start)/step, +1 when
// inclusive, clamped at 0 for an inverted or empty range. A start
// omitted defaults to 0; a step omitted defaults to 1. Any non-literal
// bound makes the length a runtime quantity.
func computeRangeLength(n *parser.RangeExpr) (int, bool) {
	start, ok := literalIntValue(n.Start, 0)
	if !ok {
		return 0, false
	}
	end, ok := literalIntValue(n.End, 0)
	if n.End == nil || !ok {
		return 0, false
	}
	step, ok := literalIntValue(n.Step, 1)
	if !ok || step == 0 {
		return 0, false
	}

	count := (end - start) / step
	if n.Inclusive {
		count++
	}
	if count < 0 {
		count = 0
	}
	return int(count), true
}

func literalIntValue(e parser.Expr, def int64) (int64, bool) {
	if e == nil {
		return def, true
	}
	lit, ok := e.(*parser.IntLiteral)
	if !ok {
		return 0, false
	}
	v, err := conversion.ParseIntLexeme(lit.Lexeme)
	if err != nil {
		return 0, false
	}
	return v, true
}
