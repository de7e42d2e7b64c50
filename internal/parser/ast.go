// internal/parser/ast.go
package parser

// Expr is any Hexen expression node. Dispatch is via Accept, the same
// single-method-per-node-kind visitor the rest of this codebase uses
// for tree walks.
type Expr interface {
	Accept(visitor ExprVisitor) interface{}
	Position() Position
}

// IntLiteral: 42, 0x2a, 0b101010. Lexeme is preserved verbatim so
// overflow diagnostics can quote exactly what the user wrote.
type IntLiteral struct {
	Pos    Position
	Lexeme string
}

func (n *IntLiteral) Accept(v ExprVisitor) interface{} { return v.VisitIntLiteral(n) }
func (n *IntLiteral) Position() Position               { return n.Pos }

// FloatLiteral: 3.14, 1e10, 2.5e-3.
type FloatLiteral struct {
	Pos    Position
	Lexeme string
}

func (n *FloatLiteral) Accept(v ExprVisitor) interface{} { return v.VisitFloatLiteral(n) }
func (n *FloatLiteral) Position() Position               { return n.Pos }

// BoolLiteral: true, false.
type BoolLiteral struct {
	Pos   Position
	Value bool
}

func (n *BoolLiteral) Accept(v ExprVisitor) interface{} { return v.VisitBoolLiteral(n) }
func (n *BoolLiteral) Position() Position               { return n.Pos }

// StringLiteral: "hello".
type StringLiteral struct {
	Pos   Position
	Value string
}

func (n *StringLiteral) Accept(v ExprVisitor) interface{} { return v.VisitStringLiteral(n) }
func (n *StringLiteral) Position() Position               { return n.Pos }

// Identifier: a bare name reference.
type Identifier struct {
	Pos  Position
	Name string
}

func (n *Identifier) Accept(v ExprVisitor) interface{} { return v.VisitIdentifier(n) }
func (n *Identifier) Position() Position               { return n.Pos }

// UnaryExpr: -x, !x.
type UnaryExpr struct {
	Pos      Position
	Operator string
	Operand  Expr
}

func (n *UnaryExpr) Accept(v ExprVisitor) interface{} { return v.VisitUnaryExpr(n) }
func (n *UnaryExpr) Position() Position               { return n.Pos }

// BinaryExpr: a + b, a == b, and so on (logical && / || included —
// Hexen does not distinguish a separate logical-expression node).
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator string
	Right    Expr
}

func (n *BinaryExpr) Accept(v ExprVisitor) interface{} { return v.VisitBinaryExpr(n) }
func (n *BinaryExpr) Position() Position               { return n.Pos }

// CallExpr: callee(args...).
type CallExpr struct {
	Pos    Position
	Callee string
	Args   []Expr
}

func (n *CallExpr) Accept(v ExprVisitor) interface{} { return v.VisitCallExpr(n) }
func (n *CallExpr) Position() Position               { return n.Pos }

// IndexExpr: a[expr]. Index may itself be a RangeExpr (including the
// unbounded `..`), which is how array copy and range-slicing share
// one syntactic form.
type IndexExpr struct {
	Pos    Position
	Object Expr
	Index  Expr
}

func (n *IndexExpr) Accept(v ExprVisitor) interface{} { return v.VisitIndexExpr(n) }
func (n *IndexExpr) Position() Position               { return n.Pos }

// RangeExpr: a..b, a..=b, a..b:s, a..=b:s, a.., ..b, ... Start, End,
// and Step are nil when the corresponding bound is absent.
type RangeExpr struct {
	Pos       Position
	Start     Expr
	End       Expr
	Step      Expr
	Inclusive bool
}

func (n *RangeExpr) Accept(v ExprVisitor) interface{} { return v.VisitRangeExpr(n) }
func (n *RangeExpr) Position() Position               { return n.Pos }

// ArrayLiteral: [e1, e2, ...] (including the empty literal []).
type ArrayLiteral struct {
	Pos      Position
	Elements []Expr
}

func (n *ArrayLiteral) Accept(v ExprVisitor) interface{} { return v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) Position() Position               { return n.Pos }

// ConversionExpr: expr : T, the explicit-conversion syntax.
type ConversionExpr struct {
	Pos    Position
	Inner  Expr
	Target *TypeNode
}

func (n *ConversionExpr) Accept(v ExprVisitor) interface{} { return v.VisitConversionExpr(n) }
func (n *ConversionExpr) Position() Position               { return n.Pos }

// ExprBlock: a block appearing in expression position. Its role is
// decided by where the parser found it, not by its own shape.
type ExprBlock struct {
	Pos   Position
	Block *Block
}

func (n *ExprBlock) Accept(v ExprVisitor) interface{} { return v.VisitExprBlock(n) }
func (n *ExprBlock) Position() Position               { return n.Pos }

// CondExpr: the expression-position form of `if`. Shares IfNode with
// IfStmt — same syntax, different role, per the unified block rule.
type CondExpr struct {
	*IfNode
}

func (n *CondExpr) Accept(v ExprVisitor) interface{} { return v.VisitCondExpr(n) }
func (n *CondExpr) Position() Position               { return n.Pos }

// PropertyExpr: object.property. Only `.length` is defined.
type PropertyExpr struct {
	Pos      Position
	Object   Expr
	Property string
}

func (n *PropertyExpr) Accept(v ExprVisitor) interface{} { return v.VisitPropertyExpr(n) }
func (n *PropertyExpr) Position() Position               { return n.Pos }

// ExprVisitor dispatches over every expression node kind.
type ExprVisitor interface {
	VisitIntLiteral(n *IntLiteral) interface{}
	VisitFloatLiteral(n *FloatLiteral) interface{}
	VisitBoolLiteral(n *BoolLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitIdentifier(n *Identifier) interface{}
	VisitUnaryExpr(n *UnaryExpr) interface{}
	VisitBinaryExpr(n *BinaryExpr) interface{}
	VisitCallExpr(n *CallExpr) interface{}
	VisitIndexExpr(n *IndexExpr) interface{}
	VisitRangeExpr(n *RangeExpr) interface{}
	VisitArrayLiteral(n *ArrayLiteral) interface{}
	VisitConversionExpr(n *ConversionExpr) interface{}
	VisitExprBlock(n *ExprBlock) interface{}
	VisitCondExpr(n *CondExpr) interface{}
	VisitPropertyExpr(n *PropertyExpr) interface{}
}
