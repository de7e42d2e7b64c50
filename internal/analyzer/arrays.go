package analyzer

import (
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/types"
)

func (a *Analyzer) VisitArrayLiteral(n *parser.ArrayLiteral) interface{} {
	// [1..10] — an array literal containing exactly one range element
	// is range materialization, not a one-element array.
	if len(n.Elements) == 1 {
		if rng, ok := n.Elements[0].(*parser.RangeExpr); ok {
			return a.materializeRange(rng, n.Pos)
		}
	}

	if len(n.Elements) == 0 {
		if a.target != nil && a.target.IsArray() {
			return types.Array(a.target.Elem, a.target.Dims)
		}
		a.report(diagnostics.New(diagnostics.EmptyArrayRequiresContext, posOf(n.Pos),
			"Empty array literal requires explicit type context"))
		return types.Unknown()
	}

	var elemTarget *types.Type
	if a.target != nil && a.target.IsArray() {
		elemTarget = a.target.Elem
	}

	elemTypes := make([]*types.Type, len(n.Elements))
	for i, el := range n.Elements {
		elemTypes[i] = a.typeOf(el, elemTarget)
	}

	if !a.checkNestedArrayConsistency(elemTypes, posOf(n.Pos)) {
		return types.Unknown()
	}

	elemType, d := a.conv.ResolveArrayElements(elemTypes, elemTarget, posOf(n.Pos))
	if d != nil {
		a.report(d)
		return types.Unknown()
	}
	for i, el := range n.Elements {
		a.checkOverflow(el, elemType, posOf(n.Pos))
		_ = elemTypes[i]
	}

	dims := []types.Dim{types.FixedDim(len(n.Elements))}
	if elemType.IsComptime() {
		return types.ComptimeArray(elemType, dims)
	}
	return types.Array(elemType, dims)
}

// checkNestedArrayConsistency verifies that every element of a
// multidimensional array literal shares the first element's inner
// shape; a scalar-element literal (the common case) is a no-op since
// its first element is never itself an array.
func (a *Analyzer) checkNestedArrayConsistency(elemTypes []*types.Type, pos diagnostics.Position) bool {
	first := elemTypes[0]
	if !first.IsArray() {
		return true
	}
	for _, t := range elemTypes[1:] {
		if !t.IsArray() || !sameShape(first.Dims, t.Dims) {
			a.report(diagnostics.New(diagnostics.InconsistentArrayDimensions, pos,
				"inconsistent inner array dimensions: expected %s, found %s", first, t))
			return false
		}
	}
	return true
}

func sameShape(a, b []types.Dim) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Wildcard || b[i].Wildcard {
			continue
		}
		if a[i].Size != b[i].Size {
			return false
		}
	}
	return true
}

func (a *Analyzer) VisitIndexExpr(n *parser.IndexExpr) interface{} {
	objType := a.typeOf(n.Object, nil)
	if !objType.IsArray() {
		a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
			"cannot index non-array type %s", objType))
		a.typeOf(n.Index, nil)
		return types.Unknown()
	}

	if rng, ok := n.Index.(*parser.RangeExpr); ok {
		return a.resolveRangeIndex(objType, rng, n.Pos)
	}

	idxType := a.typeOf(n.Index, types.Usize())
	if !idxType.IsInteger() {
		a.report(diagnostics.New(diagnostics.InvalidArrayIndex, posOf(n.Pos),
			"array index must be an integer type, found %s", idxType))
		return types.Unknown()
	}
	return peelDim(objType)
}

// peelDim removes the outermost dimension of an array type: [3][4]i32
// indexed once yields [4]i32; indexed again yields i32.
func peelDim(t *types.Type) *types.Type {
	if len(t.Dims) <= 1 {
		return t.Elem
	}
	return types.Array(t.Elem, t.Dims[1:])
}
