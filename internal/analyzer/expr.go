package analyzer

import (
	"hexen/internal/conversion"
	"hexen/internal/diagnostics"
	"hexen/internal/parser"
	"hexen/internal/types"
)

var _ parser.ExprVisitor = (*Analyzer)(nil)

// typeOf resolves expr's type under target (nil means no propagated
// context). It threads target through the Accept call the same way
// the teacher's compiler mutates currentLine/currentColumn around a
// recursive Accept: save, set, call, restore.
func (a *Analyzer) typeOf(expr parser.Expr, target *types.Type) *types.Type {
	prev := a.target
	a.target = target
	result := expr.Accept(a)
	a.target = prev
	if t, ok := result.(*types.Type); ok && t != nil {
		return t
	}
	return types.Unknown()
}

// checkOverflow reports LiteralOverflow when expr is an integer
// literal that doesn't fit resolved. It is a no-op for any other
// expression shape, since overflow is only ever diagnosed at the
// literal that produced the out-of-range value.
func (a *Analyzer) checkOverflow(expr parser.Expr, resolved *types.Type, pos diagnostics.Position) {
	if resolved == nil || !resolved.IsInteger() || resolved.Kind == types.KindComptimeInt {
		return
	}
	if lit, ok := expr.(*parser.IntLiteral); ok {
		a.report(conversion.CheckIntOverflow(lit.Lexeme, resolved, pos))
	}
}

func (a *Analyzer) VisitIntLiteral(n *parser.IntLiteral) interface{} {
	return types.ComptimeInt()
}

func (a *Analyzer) VisitFloatLiteral(n *parser.FloatLiteral) interface{} {
	return types.ComptimeFloat()
}

func (a *Analyzer) VisitBoolLiteral(n *parser.BoolLiteral) interface{} {
	return types.Bool()
}

func (a *Analyzer) VisitStringLiteral(n *parser.StringLiteral) interface{} {
	return types.String()
}

func (a *Analyzer) VisitIdentifier(n *parser.Identifier) interface{} {
	sym, ok := a.table.Lookup(n.Name)
	if !ok {
		a.report(diagnostics.New(diagnostics.UndefinedVariable, posOf(n.Pos), "undefined name %q", n.Name))
		return types.Unknown()
	}
	if !sym.Initialized {
		a.report(diagnostics.New(diagnostics.UseOfUninitialized, posOf(n.Pos),
			"%q is used before being initialized", n.Name))
	}
	return sym.Type
}

func (a *Analyzer) VisitUnaryExpr(n *parser.UnaryExpr) interface{} {
	switch n.Operator {
	case "-":
		operand := a.typeOf(n.Operand, a.target)
		if !operand.IsInteger() && !operand.IsFloat() {
			a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
				"unary '-' requires a numeric operand, found %s", operand))
			return types.Unknown()
		}
		if operand.Kind == types.KindUsize {
			a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
				"unary '-' cannot be applied to usize, which has no signed form"))
			return types.Unknown()
		}
		a.checkOverflow(n.Operand, operand, posOf(n.Pos))
		return operand
	case "!":
		operand := a.typeOf(n.Operand, types.Bool())
		if operand.Kind != types.KindBool {
			a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
				"unary '!' requires a bool operand, found %s", operand))
			return types.Unknown()
		}
		return types.Bool()
	default:
		return types.Unknown()
	}
}

func isLogicalOp(op string) bool    { return op == "&&" || op == "||" }
func isComparisonOp(op string) bool {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

func (a *Analyzer) VisitBinaryExpr(n *parser.BinaryExpr) interface{} {
	if isLogicalOp(n.Operator) {
		left := a.typeOf(n.Left, types.Bool())
		right := a.typeOf(n.Right, types.Bool())
		if left.Kind != types.KindBool || right.Kind != types.KindBool {
			a.report(diagnostics.New(diagnostics.TypeMismatch, posOf(n.Pos),
				"%s requires bool operands, found %s and %s", n.Operator, left, right))
			return types.Unknown()
		}
		return types.Bool()
	}

	left := a.typeOf(n.Left, nil)
	right := a.typeOf(n.Right, nil)

	if isComparisonOp(n.Operator) {
		resolved, d := a.conv.ResolveBinary(left, right, nil, posOf(n.Pos))
		if d != nil {
			a.report(d)
			return types.Bool()
		}
		a.checkOverflow(n.Left, resolved, posOf(n.Pos))
		a.checkOverflow(n.Right, resolved, posOf(n.Pos))
		return types.Bool()
	}

	resolved, d := a.conv.ResolveBinary(left, right, a.target, posOf(n.Pos))
	if d != nil {
		a.report(d)
		return types.Unknown()
	}
	a.checkOverflow(n.Left, resolved, posOf(n.Pos))
	a.checkOverflow(n.Right, resolved, posOf(n.Pos))
	return resolved
}

func (a *Analyzer) VisitCallExpr(n *parser.CallExpr) interface{} {
	sig, ok := a.signatures[n.Callee]
	if !ok {
		a.report(diagnostics.New(diagnostics.UndefinedFunction, posOf(n.Pos), "undefined function %q", n.Callee))
		for _, arg := range n.Args {
			a.typeOf(arg, nil)
		}
		return types.Unknown()
	}
	if len(n.Args) != len(sig.Params) {
		a.report(diagnostics.New(diagnostics.ArityMismatch, posOf(n.Pos),
			"%q expects %d argument(s), got %d", n.Callee, len(sig.Params), len(n.Args)))
	}
	for i, arg := range n.Args {
		if i >= len(sig.Params) {
			a.typeOf(arg, nil)
			continue
		}
		paramType := sig.Params[i]
		argType := a.typeOf(arg, paramType)
		if !argType.Equal(paramType) {
			if _, d := a.conv.ResolveValue(argType, paramType, false, posOf(n.Pos)); d != nil {
				a.report(d)
			}
		}
		a.checkOverflow(arg, paramType, posOf(n.Pos))
		if paramType.IsArray() {
			a.checkArrayCopyDiscipline(arg, argType, posOf(n.Pos))
		}
	}
	return sig.Return
}

// checkArrayCopyDiscipline enforces that an array argument is either a
// fresh value built right at the call site (a literal, a call result,
// an expression-block/conditional-expression result, or a slice/index
// expression) or a concrete variable explicitly copied with `[..]`.
// A bare reference to a concrete array variable is rejected: passing
// it unmarked would silently alias rather than copy.
func (a *Analyzer) checkArrayCopyDiscipline(arg parser.Expr, argType *types.Type, pos diagnostics.Position) {
	if argType == nil || argType.IsComptime() {
		return
	}
	ident, ok := arg.(*parser.Identifier)
	if !ok {
		return
	}
	a.report(diagnostics.New(diagnostics.MissingExplicitCopy, pos,
		"passing array variable %q without an explicit copy", ident.Name).
		WithHint("write %s[..] to copy it explicitly", ident.Name))
}

func (a *Analyzer) VisitConversionExpr(n *parser.ConversionExpr) interface{} {
	target := resolveTypeNode(n.Target)
	inner := a.typeOf(n.Inner, nil)
	resolved, d := a.conv.ResolveValue(inner, target, true, posOf(n.Pos))
	if d != nil {
		a.report(d)
		return types.Unknown()
	}
	a.checkOverflow(n.Inner, resolved, posOf(n.Pos))
	return resolved
}

func (a *Analyzer) VisitExprBlock(n *parser.ExprBlock) interface{} {
	return a.analyzeBlockAsExpression(n.Block, a.target)
}

func (a *Analyzer) VisitCondExpr(n *parser.CondExpr) interface{} {
	return a.analyzeConditionalExpression(n.IfNode, a.target)
}

func (a *Analyzer) VisitPropertyExpr(n *parser.PropertyExpr) interface{} {
	objType := a.typeOf(n.Object, nil)
	if n.Property != "length" {
		a.report(diagnostics.New(diagnostics.PropertyNotFound, posOf(n.Pos),
			"Property %q not found on type %s", n.Property, objType))
		return types.Unknown()
	}
	if !objType.IsArray() {
		a.report(diagnostics.New(diagnostics.PropertyNotFound, posOf(n.Pos),
			"Property 'length' is only available on array types"))
		return types.Unknown()
	}
	return types.ComptimeInt()
}
