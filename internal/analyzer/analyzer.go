// Package analyzer implements Hexen's semantic analysis phase: a
// single-pass tree walker over the parser's AST, preceded by a
// function-signature pre-pass so call sites can reference functions
// declared later in the file the same way the teacher's compiler
// hoists function declarations before compiling call sites against
// them.
package analyzer

import (
	"github.com/google/uuid"

	"hexen/internal/conversion"
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// Analyzer walks one compilation unit and accumulates diagnostics
// rather than stopping at the first one, mirroring the teacher
// parser's Errors-slice model.
type Analyzer struct {
	runID string

	table *symbols.Table
	conv  *conversion.Engine

	functions  map[string]*parser.FunctionDecl
	signatures map[string]*types.Type

	diags diagnostics.List

	currentFn  *parser.FunctionDecl
	currentRet *types.Type

	// target is the context-propagated type threaded through the
	// current Accept call, mirroring the currentLine/currentColumn
	// fields the teacher's StmtCompiler mutates as it walks.
	target *types.Type
}

func New() *Analyzer {
	return &Analyzer{
		runID:      uuid.NewString(),
		table:      symbols.NewTable(),
		conv:       conversion.New(),
		functions:  make(map[string]*parser.FunctionDecl),
		signatures: make(map[string]*types.Type),
	}
}

// RunID identifies one Analyze invocation, useful for correlating
// diagnostics across a batch run in the CLI's JSON output.
func (a *Analyzer) RunID() string { return a.runID }

// Analyze runs the full pipeline: pre-pass, then per-function body
// analysis. The returned list is empty when the program is valid.
func (a *Analyzer) Analyze(prog *parser.Program) diagnostics.List {
	a.collectSignatures(prog)
	for _, fn := range prog.Functions {
		a.analyzeFunction(fn)
	}
	return a.diags
}

func (a *Analyzer) report(d *diagnostics.Diagnostic) {
	if d == nil {
		return
	}
	a.diags.Add(d)
}

func posOf(p parser.Position) diagnostics.Position {
	return diagnostics.Position{Line: p.Line, Column: p.Column}
}

// resolveTypeNode turns the parser's syntactic TypeNode into a
// resolved types.Type, recursing through array and range syntax.
func resolveTypeNode(tn *parser.TypeNode) *types.Type {
	if tn == nil {
		return types.Void()
	}
	switch {
	case tn.IsRange():
		return types.Range(resolveTypeNode(tn.RangeOf), true, true, true, false)
	case tn.IsArray():
		dims := make([]types.Dim, len(tn.Dims))
		for i, d := range tn.Dims {
			if d.Wildcard {
				dims[i] = types.WildcardDim()
			} else {
				dims[i] = types.FixedDim(d.Size)
			}
		}
		return types.Array(resolveTypeNode(tn.Elem), dims)
	default:
		switch tn.Named {
		case "i32":
			return types.I32()
		case "i64":
			return types.I64()
		case "f32":
			return types.F32()
		case "f64":
			return types.F64()
		case "usize":
			return types.Usize()
		case "bool":
			return types.Bool()
		case "string":
			return types.String()
		case "void":
			return types.Void()
		default:
			return types.Unknown()
		}
	}
}
