package ast

import "github.com/Andlon/numeric-literals/internal/lexer"

// LetStmt represents a let binding statement.
type LetStmt struct {
	Mut   bool
	Name  *Ident
	Type  TypeExpr
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// NewLetStmt constructs a let statement node.
func NewLetStmt(mut bool, name *Ident, typ TypeExpr, value Expr, span lexer.Span) *LetStmt {
	return &LetStmt{
		Mut:   mut,
		Name:  name,
		Type:  typ,
		Value: value,
		span:  span,
	}
}

// stmtNode marks LetStmt as a statement.
func (*LetStmt) stmtNode() {}

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	Value Expr // nil for a bare return
	span  lexer.Span
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{
		Value: value,
		span:  span,
	}
}

// stmtNode marks ReturnStmt as a statement.
func (*ReturnStmt) stmtNode() {}

// ExprStmt represents an expression statement. Semi records whether the
// statement was terminated by a semicolon; block-like expressions (if,
// while, blocks) may stand alone without one.
type ExprStmt struct {
	Expr Expr
	Semi bool
	span lexer.Span
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// stmtNode marks ExprStmt as a statement.
func (*ExprStmt) stmtNode() {}

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, semi bool, span lexer.Span) *ExprStmt {
	return &ExprStmt{
		Expr: expr,
		Semi: semi,
		span: span,
	}
}

// ItemStmt represents a nested item declaration inside a block, such as a
// local helper function.
type ItemStmt struct {
	Item Item
	span lexer.Span
}

// Span returns the statement span.
func (s *ItemStmt) Span() lexer.Span { return s.span }

// stmtNode marks ItemStmt as a statement.
func (*ItemStmt) stmtNode() {}

// NewItemStmt constructs a nested item statement node.
func NewItemStmt(item Item, span lexer.Span) *ItemStmt {
	return &ItemStmt{
		Item: item,
		span: span,
	}
}
