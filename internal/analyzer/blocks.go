package analyzer

import (
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// analyzeBlockAsExpression treats a block in expression role: every
// statement but the last behaves exactly as in statement role, and
// the last must be a `-> value` yield (or a `return`, which exits the
// function outright rather than producing a block value). This is
// the same Block node statement role uses — role lives in the
// caller's context, never on the node.
func (a *Analyzer) analyzeBlockAsExpression(block *parser.Block, target *types.Type) *types.Type {
	a.table.EnterScope(symbols.BlockScope)
	defer a.table.ExitScope()

	if len(block.Statements) == 0 {
		a.report(diagnostics.New(diagnostics.ExpressionBlockMissingTerminator, posOf(block.Pos),
			"expression block must end with '->' or 'return'"))
		return types.Unknown()
	}

	for _, stmt := range block.Statements[:len(block.Statements)-1] {
		stmt.Accept(a)
	}

	var result *types.Type
	switch last := block.Statements[len(block.Statements)-1].(type) {
	case *parser.YieldStmt:
		result = a.typeOf(last.Value, target)
	case *parser.ReturnStmt:
		last.Accept(a)
		if target != nil {
			return target
		}
		return types.Void()
	default:
		last.Accept(a)
		a.report(diagnostics.New(diagnostics.ExpressionBlockMissingTerminator, posOf(block.Pos),
			"expression block must end with '->' or 'return'"))
		return types.Unknown()
	}

	// A runtime (non-comptime) result with no external target forces
	// the caller to be explicit about the type it expects, the same
	// way a bare concrete literal would — an expression block is not
	// allowed to quietly decide its own concrete type for the caller.
	if target == nil && !result.IsUnknown() && !result.IsComptime() {
		a.report(diagnostics.New(diagnostics.RuntimeBlockRequiresContext, posOf(block.Pos),
			"an expression block yielding a runtime value requires an explicit target type"))
		return types.Unknown()
	}
	return result
}

// checkConditionIsBool types a conditional's condition expression and
// reports ConditionNotBool when it isn't bool; the comptime int/float
// produced by a bare `0`/`1` literal doesn't implicitly become bool
// either, since Hexen has no truthy-value coercion.
func (a *Analyzer) checkConditionIsBool(cond parser.Expr) {
	condType := a.typeOf(cond, types.Bool())
	if condType.IsUnknown() || condType.Kind == types.KindBool {
		return
	}
	a.report(diagnostics.New(diagnostics.ConditionNotBool, posOf(cond.Position()),
		"Condition must be of type bool, got %s", condType))
}

// analyzeConditionalExpression handles `if` in expression role: every
// branch, including an else (mandatory here, since a conditional
// expression must produce a value on every path), is analyzed as an
// expression block and their results are unified per the conversion
// engine's branch-unification rule.
func (a *Analyzer) analyzeConditionalExpression(n *parser.IfNode, target *types.Type) *types.Type {
	a.checkConditionIsBool(n.Cond)

	if n.Else == nil {
		a.report(diagnostics.New(diagnostics.ConditionalRequiresContext, posOf(n.Pos),
			"a conditional expression must have an else branch so every path produces a value"))
	}

	var branchTypes []*types.Type
	branchTypes = append(branchTypes, a.analyzeBlockAsExpression(n.Then, target))
	for _, elif := range n.Elifs {
		a.checkConditionIsBool(elif.Cond)
		branchTypes = append(branchTypes, a.analyzeBlockAsExpression(elif.Block, target))
	}
	if n.Else != nil {
		branchTypes = append(branchTypes, a.analyzeBlockAsExpression(n.Else, target))
	}

	resolved, d := a.conv.ResolveConditionalBranches(branchTypes, target, posOf(n.Pos))
	if d != nil {
		a.report(d)
		return types.Unknown()
	}
	return resolved
}
