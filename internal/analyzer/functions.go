package analyzer

import (
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// collectSignatures is the pre-pass: every top-level function is
// registered by name before any body is analyzed, so a function may
// call another declared later in the same file. Grounded on the
// teacher compiler's two-pass hoisting: collect first, compile (here,
// analyze) second.
func (a *Analyzer) collectSignatures(prog *parser.Program) {
	for _, fn := range prog.Functions {
		if _, exists := a.functions[fn.Name]; exists {
			a.report(diagnostics.New(diagnostics.DuplicateFunction, posOf(fn.Pos),
				"function %q already declared", fn.Name))
			continue
		}
		a.functions[fn.Name] = fn

		params := make([]*types.Type, len(fn.Params))
		seen := make(map[string]bool, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = resolveTypeNode(p.Type)
			if params[i].Kind == types.KindVoid {
				a.report(diagnostics.New(diagnostics.ForbiddenVoidParameter, posOf(p.Pos),
					"parameter %q cannot have void type", p.Name))
			}
			if seen[p.Name] {
				a.report(diagnostics.New(diagnostics.DuplicateParameter, posOf(p.Pos),
					"duplicate parameter name %q", p.Name))
			}
			seen[p.Name] = true
		}
		ret := resolveTypeNode(fn.ReturnType)
		a.signatures[fn.Name] = types.Function(params, ret)
	}
}

// analyzeFunction pushes the function's own scope, declares its
// parameters, analyzes its body in function-body role, and verifies
// every control-flow path yields a value when the return type is not
// void.
func (a *Analyzer) analyzeFunction(fn *parser.FunctionDecl) {
	prevFn, prevRet := a.currentFn, a.currentRet
	a.currentFn = fn
	sig := a.signatures[fn.Name]
	a.currentRet = sig.Return

	a.table.EnterScope(symbols.FunctionScope)
	for i, p := range fn.Params {
		sym := &symbols.Symbol{Name: p.Name, Type: sig.Params[i], Mut: p.Mut, Initialized: true, Pos: posOf(p.Pos)}
		// A duplicate here was already reported as DuplicateParameter by
		// collectSignatures; this declare just needs to not crash on it.
		_ = a.table.Declare(sym)
	}

	a.analyzeFunctionBody(fn.Body, sig.Return)

	a.table.ExitScope()
	a.currentFn, a.currentRet = prevFn, prevRet
}

// analyzeFunctionBody treats the outermost block as the
// function-body role: it behaves like a statement block (its
// trailing value, if any, must come from an explicit `return`), but
// unlike a nested block it does not open an additional scope — the
// function's own scope already covers it.
func (a *Analyzer) analyzeFunctionBody(block *parser.Block, ret *types.Type) {
	sawReturn := false
	for _, stmt := range block.Statements {
		if _, ok := stmt.(*parser.ReturnStmt); ok {
			sawReturn = true
		}
		stmt.Accept(a)
	}
	if ret.Kind != types.KindVoid && !sawReturn && !blockAlwaysReturns(block) {
		a.report(diagnostics.New(diagnostics.ReturnMissingValue, posOf(block.Pos),
			"function %q must return a value of type %s on every path", a.currentFn.Name, ret))
	}
}

// blockAlwaysReturns is a conservative, purely-syntactic check: a
// block is guaranteed to return if its last statement is a return, or
// an if/elif/else where every branch (including an else) always
// returns. It never claims a path returns when it might not.
func blockAlwaysReturns(block *parser.Block) bool {
	if len(block.Statements) == 0 {
		return false
	}
	last := block.Statements[len(block.Statements)-1]
	switch s := last.(type) {
	case *parser.ReturnStmt:
		return true
	case *parser.IfStmt:
		if s.Else == nil {
			return false
		}
		if !blockAlwaysReturns(s.Then) {
			return false
		}
		for _, elif := range s.Elifs {
			if !blockAlwaysReturns(elif.Block) {
				return false
			}
		}
		return blockAlwaysReturns(s.Else)
	case *parser.BareBlock:
		return blockAlwaysReturns(s.Block)
	default:
		return false
	}
}
