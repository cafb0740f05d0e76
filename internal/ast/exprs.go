package ast

import "github.com/Andlon/numeric-literals/internal/lexer"

// PathExpr represents a path used in expression position: literal, x,
// T::from, std::f64::consts::PI. Bare identifiers are single-segment paths.
type PathExpr struct {
	Segments []*PathSegment
	span     lexer.Span
}

// Span returns the expression span.
func (e *PathExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *PathExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks PathExpr as an expression.
func (*PathExpr) exprNode() {}

// NewPathExpr constructs a path expression node.
func NewPathExpr(segments []*PathSegment, span lexer.Span) *PathExpr {
	return &PathExpr{
		Segments: segments,
		span:     span,
	}
}

// LastSegment returns the final segment of the path, or nil for an empty
// path (which the parser never produces).
func (e *PathExpr) LastSegment() *PathSegment {
	if len(e.Segments) == 0 {
		return nil
	}
	return e.Segments[len(e.Segments)-1]
}

// IntLit represents an integer literal. Text is the exact source text,
// including any base prefix and type suffix (0xff, 42u8).
type IntLit struct {
	Text string
	span lexer.Span
}

// Span returns the literal span.
func (l *IntLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *IntLit) SetSpan(span lexer.Span) {
	l.span = span
}

// exprNode marks IntLit as an expression.
func (*IntLit) exprNode() {}

// NewIntLit constructs an integer literal node.
func NewIntLit(text string, span lexer.Span) *IntLit {
	return &IntLit{
		Text: text,
		span: span,
	}
}

// FloatLit represents a floating-point literal. Text is the exact source
// text, including any type suffix (3.2, 1e9, 3f64).
type FloatLit struct {
	Text string
	span lexer.Span
}

// Span returns the literal span.
func (l *FloatLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *FloatLit) SetSpan(span lexer.Span) {
	l.span = span
}

// exprNode marks FloatLit as an expression.
func (*FloatLit) exprNode() {}

// NewFloatLit constructs a float literal node.
func NewFloatLit(text string, span lexer.Span) *FloatLit {
	return &FloatLit{
		Text: text,
		span: span,
	}
}

// StringLit represents a string literal; Raw includes the quotes.
type StringLit struct {
	Raw   string
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }

// exprNode marks StringLit as an expression.
func (*StringLit) exprNode() {}

// NewStringLit constructs a string literal node.
func NewStringLit(raw, value string, span lexer.Span) *StringLit {
	return &StringLit{Raw: raw, Value: value, span: span}
}

// RawStringLit represents a raw string literal: r"..." or r#"..."#.
type RawStringLit struct {
	Raw   string
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *RawStringLit) Span() lexer.Span { return l.span }

// exprNode marks RawStringLit as an expression.
func (*RawStringLit) exprNode() {}

// NewRawStringLit constructs a raw string literal node.
func NewRawStringLit(raw, value string, span lexer.Span) *RawStringLit {
	return &RawStringLit{Raw: raw, Value: value, span: span}
}

// ByteStringLit represents a byte string literal: b"...".
type ByteStringLit struct {
	Raw   string
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *ByteStringLit) Span() lexer.Span { return l.span }

// exprNode marks ByteStringLit as an expression.
func (*ByteStringLit) exprNode() {}

// NewByteStringLit constructs a byte string literal node.
func NewByteStringLit(raw, value string, span lexer.Span) *ByteStringLit {
	return &ByteStringLit{Raw: raw, Value: value, span: span}
}

// ByteLit represents a byte literal: b'a'.
type ByteLit struct {
	Raw   string
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *ByteLit) Span() lexer.Span { return l.span }

// exprNode marks ByteLit as an expression.
func (*ByteLit) exprNode() {}

// NewByteLit constructs a byte literal node.
func NewByteLit(raw, value string, span lexer.Span) *ByteLit {
	return &ByteLit{Raw: raw, Value: value, span: span}
}

// CharLit represents a character literal: 'a'.
type CharLit struct {
	Raw   string
	Value string
	span  lexer.Span
}

// Span returns the literal span.
func (l *CharLit) Span() lexer.Span { return l.span }

// exprNode marks CharLit as an expression.
func (*CharLit) exprNode() {}

// NewCharLit constructs a character literal node.
func NewCharLit(raw, value string, span lexer.Span) *CharLit {
	return &CharLit{Raw: raw, Value: value, span: span}
}

// BoolLit represents true or false.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

// Span returns the literal span.
func (l *BoolLit) Span() lexer.Span { return l.span }

// exprNode marks BoolLit as an expression.
func (*BoolLit) exprNode() {}

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

// PrefixExpr represents a prefix expression: -x, !x, &x, &mut x.
type PrefixExpr struct {
	Op   lexer.TokenType
	Expr Expr
	span lexer.Span
}

// Span returns the expression span.
func (e *PrefixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *PrefixExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks PrefixExpr as an expression.
func (*PrefixExpr) exprNode() {}

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(op lexer.TokenType, expr Expr, span lexer.Span) *PrefixExpr {
	return &PrefixExpr{
		Op:   op,
		Expr: expr,
		span: span,
	}
}

// InfixExpr represents an infix binary expression.
type InfixExpr struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *InfixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the infix expression span.
func (e *InfixExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks InfixExpr as an expression.
func (*InfixExpr) exprNode() {}

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(op lexer.TokenType, left, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{
		Op:    op,
		Left:  left,
		Right: right,
		span:  span,
	}
}

// AssignExpr represents an assignment expression.
type AssignExpr struct {
	Target Expr
	Value  Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *AssignExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *AssignExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks AssignExpr as an expression.
func (*AssignExpr) exprNode() {}

// NewAssignExpr constructs an assignment expression node.
func NewAssignExpr(target, value Expr, span lexer.Span) *AssignExpr {
	return &AssignExpr{Target: target, Value: value, span: span}
}

// CallExpr represents a function call: callee(args).
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *CallExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks CallExpr as an expression.
func (*CallExpr) exprNode() {}

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

// MethodCallExpr represents a method call: receiver.method(args).
type MethodCallExpr struct {
	Receiver Expr
	Method   *Ident
	Args     []Expr
	span     lexer.Span
}

// Span returns the expression span.
func (e *MethodCallExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *MethodCallExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks MethodCallExpr as an expression.
func (*MethodCallExpr) exprNode() {}

// NewMethodCallExpr constructs a method call expression node.
func NewMethodCallExpr(receiver Expr, method *Ident, args []Expr, span lexer.Span) *MethodCallExpr {
	return &MethodCallExpr{Receiver: receiver, Method: method, Args: args, span: span}
}

// FieldExpr represents a field access: target.field or target.0.
type FieldExpr struct {
	Target Expr
	Field  *Ident
	span   lexer.Span
}

// Span returns the expression span.
func (e *FieldExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *FieldExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks FieldExpr as an expression.
func (*FieldExpr) exprNode() {}

// NewFieldExpr constructs a field access expression node.
func NewFieldExpr(target Expr, field *Ident, span lexer.Span) *FieldExpr {
	return &FieldExpr{Target: target, Field: field, span: span}
}

// IndexExpr represents an index expression: target[index].
type IndexExpr struct {
	Target Expr
	Index  Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *IndexExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *IndexExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks IndexExpr as an expression.
func (*IndexExpr) exprNode() {}

// NewIndexExpr constructs an index expression node.
func NewIndexExpr(target, index Expr, span lexer.Span) *IndexExpr {
	return &IndexExpr{Target: target, Index: index, span: span}
}

// CastExpr represents a cast: expr as Type.
type CastExpr struct {
	Expr Expr
	Type TypeExpr
	span lexer.Span
}

// Span returns the expression span.
func (e *CastExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *CastExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks CastExpr as an expression.
func (*CastExpr) exprNode() {}

// NewCastExpr constructs a cast expression node.
func NewCastExpr(expr Expr, typ TypeExpr, span lexer.Span) *CastExpr {
	return &CastExpr{Expr: expr, Type: typ, span: span}
}

// TryExpr represents the ? postfix operator.
type TryExpr struct {
	Expr Expr
	span lexer.Span
}

// Span returns the expression span.
func (e *TryExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *TryExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks TryExpr as an expression.
func (*TryExpr) exprNode() {}

// NewTryExpr constructs a try (?) expression node.
func NewTryExpr(expr Expr, span lexer.Span) *TryExpr {
	return &TryExpr{Expr: expr, span: span}
}

// ArrayLit represents an array literal: [a, b, c].
type ArrayLit struct {
	Elems []Expr
	span  lexer.Span
}

// Span returns the literal span.
func (e *ArrayLit) Span() lexer.Span { return e.span }

// SetSpan updates the literal span.
func (e *ArrayLit) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks ArrayLit as an expression.
func (*ArrayLit) exprNode() {}

// NewArrayLit constructs an array literal node.
func NewArrayLit(elems []Expr, span lexer.Span) *ArrayLit {
	return &ArrayLit{Elems: elems, span: span}
}

// RepeatLit represents an array repeat literal: [value; count].
type RepeatLit struct {
	Elem Expr
	Len  Expr
	span lexer.Span
}

// Span returns the literal span.
func (e *RepeatLit) Span() lexer.Span { return e.span }

// SetSpan updates the literal span.
func (e *RepeatLit) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks RepeatLit as an expression.
func (*RepeatLit) exprNode() {}

// NewRepeatLit constructs an array repeat literal node.
func NewRepeatLit(elem, length Expr, span lexer.Span) *RepeatLit {
	return &RepeatLit{Elem: elem, Len: length, span: span}
}

// TupleLit represents a tuple literal: (a, b); the empty tuple is unit.
type TupleLit struct {
	Elems []Expr
	span  lexer.Span
}

// Span returns the literal span.
func (e *TupleLit) Span() lexer.Span { return e.span }

// SetSpan updates the literal span.
func (e *TupleLit) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks TupleLit as an expression.
func (*TupleLit) exprNode() {}

// NewTupleLit constructs a tuple literal node.
func NewTupleLit(elems []Expr, span lexer.Span) *TupleLit {
	return &TupleLit{Elems: elems, span: span}
}

// StructLit represents a struct literal: Point { x: 1, y: 2 }.
type StructLit struct {
	Path   *PathExpr
	Fields []*FieldInit
	span   lexer.Span
}

// Span returns the literal span.
func (e *StructLit) Span() lexer.Span { return e.span }

// SetSpan updates the literal span.
func (e *StructLit) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks StructLit as an expression.
func (*StructLit) exprNode() {}

// NewStructLit constructs a struct literal node.
func NewStructLit(path *PathExpr, fields []*FieldInit, span lexer.Span) *StructLit {
	return &StructLit{Path: path, Fields: fields, span: span}
}

// FieldInit represents one field initializer in a struct literal.
type FieldInit struct {
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// Span returns the initializer span.
func (f *FieldInit) Span() lexer.Span { return f.span }

// NewFieldInit constructs a field initializer node.
func NewFieldInit(name *Ident, value Expr, span lexer.Span) *FieldInit {
	return &FieldInit{Name: name, Value: value, span: span}
}

// BlockExpr represents a block: statements followed by an optional tail
// expression whose value the block evaluates to.
type BlockExpr struct {
	Stmts []Stmt
	Tail  Expr
	span  lexer.Span
}

// Span returns the block span.
func (b *BlockExpr) Span() lexer.Span { return b.span }

// SetSpan updates the block span.
func (b *BlockExpr) SetSpan(span lexer.Span) {
	b.span = span
}

// exprNode marks BlockExpr as an expression.
func (*BlockExpr) exprNode() {}

// NewBlockExpr constructs a block expression node.
func NewBlockExpr(stmts []Stmt, tail Expr, span lexer.Span) *BlockExpr {
	return &BlockExpr{
		Stmts: stmts,
		Tail:  tail,
		span:  span,
	}
}

// IfExpr represents if/else. Else is nil, a *BlockExpr, or another *IfExpr
// for else-if chains.
type IfExpr struct {
	Cond Expr
	Then *BlockExpr
	Else Expr
	span lexer.Span
}

// Span returns the expression span.
func (e *IfExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *IfExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks IfExpr as an expression.
func (*IfExpr) exprNode() {}

// NewIfExpr constructs an if expression node.
func NewIfExpr(cond Expr, then *BlockExpr, els Expr, span lexer.Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: span}
}

// WhileExpr represents a while loop.
type WhileExpr struct {
	Cond Expr
	Body *BlockExpr
	span lexer.Span
}

// Span returns the expression span.
func (e *WhileExpr) Span() lexer.Span { return e.span }

// exprNode marks WhileExpr as an expression.
func (*WhileExpr) exprNode() {}

// NewWhileExpr constructs a while loop node.
func NewWhileExpr(cond Expr, body *BlockExpr, span lexer.Span) *WhileExpr {
	return &WhileExpr{Cond: cond, Body: body, span: span}
}

// ClosureExpr represents a closure: |x| x + 1 or |x: i32| -> i32 { x }.
type ClosureExpr struct {
	Params []*Param
	Body   Expr
	span   lexer.Span
}

// Span returns the expression span.
func (e *ClosureExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *ClosureExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks ClosureExpr as an expression.
func (*ClosureExpr) exprNode() {}

// NewClosureExpr constructs a closure expression node.
func NewClosureExpr(params []*Param, body Expr, span lexer.Span) *ClosureExpr {
	return &ClosureExpr{Params: params, Body: body, span: span}
}

// MacroExpr represents a macro invocation: vec![...], assert!(...),
// println!("..."). The body is an opaque token sequence; the host grammar
// does not parse macro arguments into expressions.
type MacroExpr struct {
	Path   []*Ident
	Delim  lexer.TokenType // LPAREN, LBRACKET, or LBRACE
	Tokens []lexer.Token   // raw tokens between the delimiters
	Raw    string          // exact source text between the delimiters
	span   lexer.Span
}

// Span returns the expression span.
func (e *MacroExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *MacroExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks MacroExpr as an expression.
func (*MacroExpr) exprNode() {}

// NewMacroExpr constructs a macro invocation node.
func NewMacroExpr(path []*Ident, delim lexer.TokenType, tokens []lexer.Token, raw string, span lexer.Span) *MacroExpr {
	return &MacroExpr{
		Path:   path,
		Delim:  delim,
		Tokens: tokens,
		Raw:    raw,
		span:   span,
	}
}
