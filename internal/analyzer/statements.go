package analyzer

import (
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

var _ parser.StmtVisitor = (*Analyzer)(nil)

func (a *Analyzer) VisitVarDecl(n *parser.VarDecl) interface{} {
	var declared *types.Type
	if n.Type != nil {
		declared = resolveTypeNode(n.Type)
	}

	if n.IsUndef {
		if !n.Mut {
			a.report(diagnostics.New(diagnostics.ValWithUndef, posOf(n.Pos),
				"%q is declared with val but never given an initial value", n.Name).
				WithHint("declare %q with mut to defer its initialization", n.Name))
		}
		if declared == nil {
			a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
				"undef declaration requires an explicit type annotation"))
			declared = types.Unknown()
		}
		a.declare(n.Name, declared, n.Mut, false, n.Pos)
		return nil
	}

	initType := a.typeOf(n.Init, declared)
	resolved := declared
	if resolved == nil {
		resolved = types.DefaultConcrete(initType)
	} else if initType.IsUnknown() {
		// The initializer already reported its own diagnostic further
		// down; piling a TypeMismatch on top of it here would just be
		// noise about a value that was never going to resolve.
	} else if !initType.Equal(resolved) {
		if adapted, d := a.conv.ResolveValue(initType, resolved, false, posOf(n.Pos)); d != nil {
			a.report(d)
		} else {
			resolved = adapted
		}
	}
	a.checkOverflow(n.Init, resolved, posOf(n.Pos))
	a.declare(n.Name, resolved, n.Mut, true, n.Pos)
	return nil
}

// declare registers a new symbol in the current scope. A name already
// declared there has no dedicated spec code of its own — it reuses
// DuplicateFunction's "already declared" phrasing, since both are the
// same shape of mistake: binding a name the scope already owns.
func (a *Analyzer) declare(name string, t *types.Type, mut, initialized bool, pos parser.Position) {
	sym := &symbols.Symbol{Name: name, Type: t, Mut: mut, Initialized: initialized, Pos: posOf(pos)}
	if err := a.table.Declare(sym); err != nil {
		a.report(diagnostics.New(diagnostics.DuplicateFunction, posOf(pos), "%s", err))
	}
}

func (a *Analyzer) VisitAssignStmt(n *parser.AssignStmt) interface{} {
	sym, ok := a.table.Lookup(n.Target)
	if !ok {
		a.report(diagnostics.New(diagnostics.UndefinedVariable, posOf(n.Pos), "undefined name %q", n.Target))
		a.typeOf(n.Value, nil)
		return nil
	}
	if sym.Initialized && !sym.Mut {
		a.report(diagnostics.New(diagnostics.AssignToImmutable, posOf(n.Pos),
			"cannot assign to %q declared with val", n.Target))
	}

	valueType := a.typeOf(n.Value, sym.Type)
	if !valueType.Equal(sym.Type) {
		if _, d := a.conv.ResolveValue(valueType, sym.Type, false, posOf(n.Pos)); d != nil {
			a.report(d)
		}
	}
	a.checkOverflow(n.Value, sym.Type, posOf(n.Pos))
	sym.Initialized = true
	return nil
}

func (a *Analyzer) VisitReturnStmt(n *parser.ReturnStmt) interface{} {
	if n.Value == nil {
		if a.currentRet != nil && a.currentRet.Kind != types.KindVoid {
			a.report(diagnostics.New(diagnostics.ReturnMissingValue, posOf(n.Pos),
				"function expects a return value of type %s", a.currentRet))
		}
		return nil
	}
	if a.currentRet != nil && a.currentRet.Kind == types.KindVoid {
		a.report(diagnostics.New(diagnostics.ReturnInVoidFunction, posOf(n.Pos),
			"cannot return a value from a void function"))
		a.typeOf(n.Value, nil)
		return nil
	}
	valueType := a.typeOf(n.Value, a.currentRet)
	if a.currentRet != nil && !valueType.Equal(a.currentRet) {
		if _, d := a.conv.ResolveValue(valueType, a.currentRet, false, posOf(n.Pos)); d != nil {
			a.report(d)
		}
	}
	a.checkOverflow(n.Value, a.currentRet, posOf(n.Pos))
	return nil
}

// VisitYieldStmt analyzes `-> expr`. It is only meaningful as the
// final statement of a block being analyzed in expression role;
// analyzeBlockAsExpression reads the yielded value directly rather
// than dispatching through here, so this path only runs when a yield
// turns up somewhere else, which is always a misplaced one.
func (a *Analyzer) VisitYieldStmt(n *parser.YieldStmt) interface{} {
	a.report(diagnostics.New(diagnostics.UnreachableYield, posOf(n.Pos),
		"'->' is only valid as the last statement of a block used as an expression"))
	a.typeOf(n.Value, nil)
	return nil
}

func (a *Analyzer) VisitIfStmt(n *parser.IfStmt) interface{} {
	a.analyzeConditionalStatement(n.IfNode)
	return nil
}

func (a *Analyzer) VisitExprStmt(n *parser.ExprStmt) interface{} {
	a.typeOf(n.Expr, nil)
	return nil
}

func (a *Analyzer) VisitBareBlock(n *parser.BareBlock) interface{} {
	a.table.EnterScope(symbols.BlockScope)
	a.analyzeBlockAsStatements(n.Block)
	a.table.ExitScope()
	return nil
}

// analyzeBlockAsStatements visits every statement in a block used for
// its side effects; a trailing YieldStmt here is a misuse the visitor
// itself reports.
func (a *Analyzer) analyzeBlockAsStatements(block *parser.Block) {
	for _, stmt := range block.Statements {
		stmt.Accept(a)
	}
}

// analyzeConditionalStatement handles `if` in statement role,
// including the per-branch initialization intersection rule: a
// variable assigned on every branch (including an else, explicit or
// implicitly empty) comes out initialized; otherwise it doesn't.
func (a *Analyzer) analyzeConditionalStatement(n *parser.IfNode) {
	a.checkConditionIsBool(n.Cond)
	before := a.table.Snapshot()

	candidates := make([]string, 0, len(before))
	for name, init := range before {
		if !init {
			candidates = append(candidates, name)
		}
	}

	// resetCandidates undoes a branch's hypothetical initialization of
	// the still-uninitialized names once that branch's snapshot is
	// captured. Symbols are shared, mutable pointers looked up through
	// the scope chain — without this, an assignment made while
	// analyzing one branch would still be sitting there, Initialized
	// == true, when the next branch starts, making the branches look
	// dependent on each other instead of independent possibilities.
	resetCandidates := func() {
		for _, name := range candidates {
			if sym, ok := a.table.Lookup(name); ok {
				sym.Initialized = false
			}
		}
	}

	var branchSnaps []map[string]bool
	runBranch := func(block *parser.Block) {
		a.table.EnterScope(symbols.ConditionalBranchScope)
		a.analyzeBlockAsStatements(block)
		branchSnaps = append(branchSnaps, a.table.Snapshot())
		a.table.ExitScope()
		resetCandidates()
	}

	runBranch(n.Then)
	for _, elif := range n.Elifs {
		a.checkConditionIsBool(elif.Cond)
		runBranch(elif.Block)
	}
	if n.Else != nil {
		runBranch(n.Else)
	} else {
		branchSnaps = append(branchSnaps, before) // no-op branch: nothing new initialized
	}

	result := symbols.IntersectInitialized(candidates, branchSnaps)
	a.table.ApplyInitialized(result)
}
