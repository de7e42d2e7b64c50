// Package diagnostics implements the analyzer's error-accumulation
// model: every problem found during a run becomes one Diagnostic
// carrying a stable Code, and analysis continues past it rather than
// aborting, the same way the teacher's parser collects a slice of
// errors instead of stopping at the first one.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/text"
	"github.com/pkg/errors"
)

// Code is a stable, documented error-code identifier. Codes are part
// of the analyzer's external contract: tooling matches on them, so
// renaming one is a breaking change.
type Code string

const (
	TypeMismatch                     Code = "TypeMismatch"
	PotentialTruncation              Code = "PotentialTruncation"
	PotentialPrecisionLoss           Code = "PotentialPrecisionLoss"
	ForbiddenConversion              Code = "ForbiddenConversion"
	MixedConcreteRequiresContext     Code = "MixedConcreteRequiresContext"
	LiteralOverflow                  Code = "LiteralOverflow"
	UseOfUninitialized               Code = "UseOfUninitialized"
	AssignToImmutable                Code = "AssignToImmutable"
	ValWithUndef                     Code = "ValWithUndef"
	DuplicateFunction                Code = "DuplicateFunction"
	DuplicateParameter               Code = "DuplicateParameter"
	ForbiddenVoidParameter           Code = "ForbiddenVoidParameter"
	UndefinedVariable                Code = "UndefinedVariable"
	UndefinedFunction                Code = "UndefinedFunction"
	ArityMismatch                    Code = "ArityMismatch"
	ConditionNotBool                 Code = "ConditionNotBool"
	ConditionalRequiresContext       Code = "ConditionalRequiresContext"
	MissingExplicitCopy              Code = "MissingExplicitCopy"
	InconsistentArrayDimensions      Code = "InconsistentArrayDimensions"
	ArraySizeMismatch                Code = "ArraySizeMismatch"
	EmptyArrayRequiresContext        Code = "EmptyArrayRequiresContext"
	MixedArrayRequiresContext        Code = "MixedArrayRequiresContext"
	InvalidArrayIndex                Code = "InvalidArrayIndex"
	PropertyNotFound                 Code = "PropertyNotFound"
	FloatRangeMissingStep            Code = "FloatRangeMissingStep"
	FloatRangeNotIndex               Code = "FloatRangeNotIndex"
	UnboundedRangeNotMaterializable  Code = "UnboundedRangeNotMaterializable"
	ReturnInVoidFunction             Code = "ReturnInVoidFunction"
	ReturnMissingValue               Code = "ReturnMissingValue"
	ExpressionBlockMissingTerminator Code = "ExpressionBlockMissingTerminator"
	RuntimeBlockRequiresContext      Code = "RuntimeBlockRequiresContext"
	UnreachableYield                 Code = "UnreachableYield"
	InternalError                    Code = "InternalError"
)

// Position locates a diagnostic in the originating source file. It is
// a plain value type so this package never needs to import the
// parser — the analyzer is the only thing that translates a
// parser.Position into one of these.
type Position struct {
	Line   int
	Column int
}

// Diagnostic is one reported problem. Hint is an optional, already
// human-phrased suggestion (e.g. a rewrite); it renders indented
// beneath the main message.
type Diagnostic struct {
	Code    Code
	Message string
	Hint    string
	Pos     Position
	Source  string // the offending source line, when available
}

func New(code Code, pos Position, message string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Message: fmt.Sprintf(message, args...)}
}

func (d *Diagnostic) WithHint(hint string, args ...interface{}) *Diagnostic {
	d.Hint = fmt.Sprintf(hint, args...)
	return d
}

func (d *Diagnostic) WithSource(line string) *Diagnostic {
	d.Source = line
	return d
}

func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d: %s: %s", d.Pos.Line, d.Pos.Column, d.Code, d.Message)
	if d.Source != "" {
		fmt.Fprintf(&sb, "\n%s", text.Indent(d.Source, "    "))
		if d.Pos.Column > 0 {
			fmt.Fprintf(&sb, "\n%s^", text.Indent(strings.Repeat(" ", d.Pos.Column-1), "    "))
		}
	}
	if d.Hint != "" {
		fmt.Fprintf(&sb, "\n%s", text.Indent("hint: "+d.Hint, "    "))
	}
	return sb.String()
}

// Internal wraps an unexpected error (a recovered panic, a
// programming invariant violated mid-walk) into an InternalError
// diagnostic. It is the only Code the user is never expected to fix
// by editing their source.
func Internal(pos Position, cause error, context string) *Diagnostic {
	wrapped := errors.Wrap(cause, context)
	return New(InternalError, pos, "%s", wrapped.Error())
}

// FormatCount renders a count for inclusion in a message or hint,
// e.g. an out-of-range literal's expected bound, with thousands
// separators so a 19-digit i64 bound is actually legible.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// List accumulates diagnostics across an analysis run in the order
// they were raised.
type List []*Diagnostic

func (l *List) Add(d *Diagnostic) {
	*l = append(*l, d)
}

func (l List) HasErrors() bool { return len(l) > 0 }

func (l List) Error() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n\n")
}
