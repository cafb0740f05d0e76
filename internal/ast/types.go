package ast

import "github.com/Andlon/numeric-literals/internal/lexer"

// PathSegment is one segment of a path, with optional generic arguments:
// from, Vec<T>, Div<Output = T>.
type PathSegment struct {
	Name *Ident
	Args []*TypeArg
	span lexer.Span
}

// Span returns the segment span.
func (s *PathSegment) Span() lexer.Span { return s.span }

// NewPathSegment constructs a path segment node.
func NewPathSegment(name *Ident, args []*TypeArg, span lexer.Span) *PathSegment {
	return &PathSegment{
		Name: name,
		Args: args,
		span: span,
	}
}

// TypeArg is a generic argument: either a plain type or an associated type
// binding like Output = T.
type TypeArg struct {
	Name *Ident // nil for plain type arguments
	Type TypeExpr
	span lexer.Span
}

// Span returns the argument span.
func (a *TypeArg) Span() lexer.Span { return a.span }

// NewTypeArg constructs a generic argument node; name is nil for plain
// type arguments.
func NewTypeArg(name *Ident, typ TypeExpr, span lexer.Span) *TypeArg {
	return &TypeArg{
		Name: name,
		Type: typ,
		span: span,
	}
}

// PathType represents a (possibly qualified, possibly generic) named type:
// i32, num::Float, Vec<T>.
type PathType struct {
	Segments []*PathSegment
	span     lexer.Span
}

// Span returns the type span.
func (t *PathType) Span() lexer.Span { return t.span }

// SetSpan updates the type span.
func (t *PathType) SetSpan(span lexer.Span) {
	t.span = span
}

// typeNode marks PathType as a type expression.
func (*PathType) typeNode() {}

// NewPathType constructs a named type node.
func NewPathType(segments []*PathSegment, span lexer.Span) *PathType {
	return &PathType{
		Segments: segments,
		span:     span,
	}
}

// RefType represents &T or &mut T.
type RefType struct {
	Mut  bool
	Elem TypeExpr
	span lexer.Span
}

// Span returns the type span.
func (t *RefType) Span() lexer.Span { return t.span }

// typeNode marks RefType as a type expression.
func (*RefType) typeNode() {}

// NewRefType constructs a reference type node.
func NewRefType(mut bool, elem TypeExpr, span lexer.Span) *RefType {
	return &RefType{
		Mut:  mut,
		Elem: elem,
		span: span,
	}
}

// SliceType represents [T].
type SliceType struct {
	Elem TypeExpr
	span lexer.Span
}

// Span returns the type span.
func (t *SliceType) Span() lexer.Span { return t.span }

// typeNode marks SliceType as a type expression.
func (*SliceType) typeNode() {}

// NewSliceType constructs a slice type node.
func NewSliceType(elem TypeExpr, span lexer.Span) *SliceType {
	return &SliceType{
		Elem: elem,
		span: span,
	}
}

// ArrayType represents [T; N].
type ArrayType struct {
	Elem TypeExpr
	Len  Expr
	span lexer.Span
}

// Span returns the type span.
func (t *ArrayType) Span() lexer.Span { return t.span }

// typeNode marks ArrayType as a type expression.
func (*ArrayType) typeNode() {}

// NewArrayType constructs a sized array type node.
func NewArrayType(elem TypeExpr, length Expr, span lexer.Span) *ArrayType {
	return &ArrayType{
		Elem: elem,
		Len:  length,
		span: span,
	}
}

// TupleType represents (A, B); an empty element list is the unit type.
type TupleType struct {
	Elems []TypeExpr
	span  lexer.Span
}

// Span returns the type span.
func (t *TupleType) Span() lexer.Span { return t.span }

// typeNode marks TupleType as a type expression.
func (*TupleType) typeNode() {}

// NewTupleType constructs a tuple type node; an empty element list is the
// unit type.
func NewTupleType(elems []TypeExpr, span lexer.Span) *TupleType {
	return &TupleType{
		Elems: elems,
		span:  span,
	}
}
