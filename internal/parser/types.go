package parser

import "strconv"

// TypeNode is the syntactic form of a type annotation, as written by
// the user — i32, [3]i32, [_][2]f64, range[usize], and so on. The
// analyzer resolves a TypeNode into a types.Type; the parser never
// interprets it.
type TypeNode struct {
	Pos Position

	// Named covers every non-composite type name: i32, i64, f32, f64,
	// usize, bool, string, void. Empty when Array or RangeOf is set.
	Named string

	// Array is non-nil for array type syntax: Dims holds one entry per
	// '[' ']' pair (outermost first), Elem is the element type.
	Dims []DimSpec
	Elem *TypeNode

	// RangeOf is non-nil for `range[T]` syntax.
	RangeOf *TypeNode
}

// DimSpec is one dimension of an array type: either a fixed size or
// the wildcard `_`.
type DimSpec struct {
	Wildcard bool
	Size     int
}

func (t *TypeNode) IsArray() bool { return t != nil && len(t.Dims) > 0 }
func (t *TypeNode) IsRange() bool { return t != nil && t.RangeOf != nil }

func (t *TypeNode) String() string {
	if t == nil {
		return "<none>"
	}
	if t.RangeOf != nil {
		return "range[" + t.RangeOf.String() + "]"
	}
	s := ""
	for _, d := range t.Dims {
		if d.Wildcard {
			s += "[_]"
		} else {
			s += "[" + strconv.Itoa(d.Size) + "]"
		}
	}
	if len(t.Dims) > 0 {
		return s + t.Elem.String()
	}
	return t.Named
}
