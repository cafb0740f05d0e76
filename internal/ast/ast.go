package ast

import "github.com/Andlon/numeric-literals/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Item represents a top-level declaration: a function, trait, or impl block.
type Item interface {
	Node
	itemNode()
}

// TypeExpr represents a type annotation expression.
type TypeExpr interface {
	Node
	typeNode()
}

// File represents a parsed source file: a sequence of items.
type File struct {
	Items []Item
	span  lexer.Span
}

// Span returns the span covering the entire file.
func (f *File) Span() lexer.Span { return f.span }

// NewFile constructs a file node with the provided span.
func NewFile(span lexer.Span) *File {
	return &File{span: span}
}

// SetSpan updates the file span.
func (f *File) SetSpan(span lexer.Span) {
	f.span = span
}

// Ident represents an identifier used as a name (not as an expression;
// bare identifiers in expression position are single-segment PathExprs).
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{
		Name: name,
		span: span,
	}
}

// Attribute represents a #[name(...)] annotation attached to an item.
// The argument tokens are kept raw: attribute grammars are defined by
// whoever consumes the attribute, not by the host parser.
type Attribute struct {
	Name   *Ident
	Tokens []lexer.Token // raw tokens between the parentheses
	Raw    string        // exact source text between the parentheses
	span   lexer.Span
}

// Span returns the attribute span, covering #[...] entirely.
func (a *Attribute) Span() lexer.Span { return a.span }

// NewAttribute constructs an attribute node.
func NewAttribute(name *Ident, tokens []lexer.Token, raw string, span lexer.Span) *Attribute {
	return &Attribute{
		Name:   name,
		Tokens: tokens,
		Raw:    raw,
		span:   span,
	}
}

// FnDecl represents a function declaration. Body is nil for trait method
// signatures without a default implementation.
type FnDecl struct {
	Attrs      []*Attribute
	Name       *Ident
	Generics   *GenericParams
	Params     []*Param
	ReturnType TypeExpr
	Where      *WhereClause
	Body       *BlockExpr
	span       lexer.Span
}

// Span returns the declaration span.
func (d *FnDecl) Span() lexer.Span { return d.span }

// SetSpan updates the function declaration span.
func (d *FnDecl) SetSpan(span lexer.Span) {
	d.span = span
}

// itemNode marks FnDecl as an item.
func (*FnDecl) itemNode() {}

// TraitDecl represents a trait declaration.
type TraitDecl struct {
	Attrs    []*Attribute
	Name     *Ident
	Generics *GenericParams
	Methods  []*FnDecl
	span     lexer.Span
}

// Span returns the declaration span.
func (d *TraitDecl) Span() lexer.Span { return d.span }

// SetSpan updates the trait declaration span.
func (d *TraitDecl) SetSpan(span lexer.Span) {
	d.span = span
}

// itemNode marks TraitDecl as an item.
func (*TraitDecl) itemNode() {}

// ImplDecl represents an implementation block, either inherent
// (impl Type { ... }) or for a trait (impl Trait for Type { ... }).
type ImplDecl struct {
	Attrs    []*Attribute
	Generics *GenericParams
	Trait    TypeExpr // nil for inherent impls
	Target   TypeExpr
	Where    *WhereClause
	Methods  []*FnDecl
	span     lexer.Span
}

// Span returns the declaration span.
func (d *ImplDecl) Span() lexer.Span { return d.span }

// SetSpan updates the impl declaration span.
func (d *ImplDecl) SetSpan(span lexer.Span) {
	d.span = span
}

// itemNode marks ImplDecl as an item.
func (*ImplDecl) itemNode() {}

// Param represents a function parameter. Self parameters carry a nil Type
// and the name "self".
type Param struct {
	Ref  bool // &self / &x patterns
	Mut  bool
	Name *Ident
	Type TypeExpr
	span lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(ref, mut bool, name *Ident, typ TypeExpr, span lexer.Span) *Param {
	return &Param{
		Ref:  ref,
		Mut:  mut,
		Name: name,
		Type: typ,
		span: span,
	}
}

// GenericParams represents a <T, U: Bound> parameter list.
type GenericParams struct {
	Params []*GenericParam
	span   lexer.Span
}

// Span returns the parameter list span.
func (g *GenericParams) Span() lexer.Span { return g.span }

// NewGenericParams constructs a generic parameter list node.
func NewGenericParams(params []*GenericParam, span lexer.Span) *GenericParams {
	return &GenericParams{
		Params: params,
		span:   span,
	}
}

// GenericParam represents one generic type parameter with optional bounds.
type GenericParam struct {
	Name   *Ident
	Bounds []TypeExpr
	span   lexer.Span
}

// Span returns the parameter span.
func (g *GenericParam) Span() lexer.Span { return g.span }

// NewGenericParam constructs one generic parameter node.
func NewGenericParam(name *Ident, bounds []TypeExpr, span lexer.Span) *GenericParam {
	return &GenericParam{
		Name:   name,
		Bounds: bounds,
		span:   span,
	}
}

// WhereClause represents a where clause on a function or impl.
type WhereClause struct {
	Preds []*WherePred
	span  lexer.Span
}

// Span returns the clause span.
func (w *WhereClause) Span() lexer.Span { return w.span }

// NewWhereClause constructs a where clause node.
func NewWhereClause(preds []*WherePred, span lexer.Span) *WhereClause {
	return &WhereClause{
		Preds: preds,
		span:  span,
	}
}

// WherePred represents one predicate: Target: Bound + Bound.
type WherePred struct {
	Target TypeExpr
	Bounds []TypeExpr
	span   lexer.Span
}

// Span returns the predicate span.
func (w *WherePred) Span() lexer.Span { return w.span }

// NewWherePred constructs one where predicate node.
func NewWherePred(target TypeExpr, bounds []TypeExpr, span lexer.Span) *WherePred {
	return &WherePred{
		Target: target,
		Bounds: bounds,
		span:   span,
	}
}
