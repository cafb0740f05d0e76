package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// parseItem parses an attributed top-level item, entered with curTok on
// '#' or the item keyword and leaving curTok on the item's final token.
func (p *Parser) parseItem() ast.Item {
	var attrs []*ast.Attribute

	for p.curTok.Type == lexer.POUND {
		attr := p.parseAttribute()
		if attr == nil {
			return nil
		}
		attrs = append(attrs, attr)
		p.nextToken()
	}

	switch p.curTok.Type {
	case lexer.FN:
		fn := p.parseFnDecl(attrs)
		if fn == nil {
			return nil
		}
		return fn
	case lexer.TRAIT:
		trait := p.parseTraitDecl(attrs)
		if trait == nil {
			return nil
		}
		return trait
	case lexer.IMPL:
		impl := p.parseImplDecl(attrs)
		if impl == nil {
			return nil
		}
		return impl
	default:
		p.reportError("expected 'fn', 'trait' or 'impl'", p.curTok.Span)
		return nil
	}
}

// parseAttribute parses #[name] or #[name(args)], entered with curTok on
// '#' and leaving curTok on ']'. The argument tokens are collected raw and
// delimiter-balanced; their grammar belongs to the attribute's consumer.
func (p *Parser) parseAttribute() *ast.Attribute {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACKET) {
		return nil
	}
	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

	var tokens []lexer.Token
	raw := ""

	if p.peekTok.Type == lexer.LPAREN {
		p.nextToken() // onto '('
		open := p.curTok

		depth := 1
		for depth > 0 {
			p.nextToken()
			if p.curTok.Type == lexer.EOF {
				p.reportError("unterminated attribute arguments", open.Span)
				return nil
			}

			switch p.curTok.Type {
			case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
				depth++
			case lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE:
				depth--
				if depth == 0 {
					continue
				}
			}

			tokens = append(tokens, p.curTok)
		}

		if p.curTok.Type != lexer.RPAREN {
			p.reportError("mismatched closing delimiter in attribute arguments", p.curTok.Span)
			return nil
		}

		raw = p.rawText(open.Span.End, p.curTok.Span.Start)
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	return ast.NewAttribute(name, tokens, raw, mergeSpan(start, p.curTok.Span))
}

// parseFnDecl parses a function declaration, entered with curTok on 'fn'
// and leaving curTok on the closing '}' of the body (or ';' for a
// body-less trait method signature).
func (p *Parser) parseFnDecl(attrs []*ast.Attribute) *ast.FnDecl {
	start := p.curTok.Span
	if len(attrs) > 0 {
		start = mergeSpan(attrs[0].Span(), start)
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}
	decl := &ast.FnDecl{
		Attrs: attrs,
		Name:  ast.NewIdent(p.curTok.Raw, p.curTok.Span),
	}

	if p.peekTok.Type == lexer.LT {
		p.nextToken() // onto '<'
		generics := p.parseGenericParams()
		if generics == nil {
			return nil
		}
		decl.Generics = generics
	}

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	params, ok := p.parseFnParams()
	if !ok {
		return nil
	}
	decl.Params = params

	if p.peekTok.Type == lexer.ARROW {
		p.nextToken() // onto '->'
		p.nextToken() // onto the return type
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		decl.ReturnType = typ
	}

	if p.peekTok.Type == lexer.WHERE {
		p.nextToken() // onto 'where'
		where := p.parseWhereClause()
		if where == nil {
			return nil
		}
		decl.Where = where
	}

	switch p.peekTok.Type {
	case lexer.LBRACE:
		p.nextToken()
		body := p.parseBlockExpr()
		if body == nil {
			return nil
		}
		decl.Body = body
	case lexer.SEMICOLON:
		// Signature only, as in trait method declarations.
		p.nextToken()
	default:
		p.reportError("expected function body or ';'", p.peekTok.Span)
		return nil
	}

	decl.SetSpan(mergeSpan(start, p.curTok.Span))
	return decl
}

// parseFnParams parses a parenthesized parameter list, entered with curTok
// on '(' and leaving curTok on ')'.
func (p *Parser) parseFnParams() ([]*ast.Param, bool) {
	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return nil, true
	}

	p.nextToken() // onto the first parameter
	list, ok := parseCommaList(p, lexer.RPAREN, true, "expected parameter", func() (*ast.Param, bool) {
		return p.parseFnParam()
	})
	if !ok {
		return nil, false
	}

	return list.items, true
}

func (p *Parser) parseFnParam() (*ast.Param, bool) {
	start := p.curTok.Span

	ref := false
	mut := false

	if p.curTok.Type == lexer.AMPERSAND {
		ref = true
		p.nextToken()
	}
	if p.curTok.Type == lexer.MUT {
		mut = true
		p.nextToken()
	}

	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected parameter name", p.curTok.Span)
		return nil, false
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
	span := mergeSpan(start, p.curTok.Span)

	// self, &self and &mut self carry no type annotation.
	if name.Name == "self" {
		return ast.NewParam(ref, mut, name, nil, span), true
	}

	if !p.expect(lexer.COLON) {
		return nil, false
	}
	p.nextToken() // onto the type

	typ := p.parseType()
	if typ == nil {
		return nil, false
	}

	return ast.NewParam(ref, mut, name, typ, mergeSpan(span, typ.Span())), true
}

// parseGenericParams parses <T, U: Bound>, entered with curTok on '<' and
// leaving curTok on '>'.
func (p *Parser) parseGenericParams() *ast.GenericParams {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.GT {
		p.nextToken()
		return ast.NewGenericParams(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken() // onto the first parameter
	list, ok := parseCommaList(p, lexer.GT, true, "expected generic parameter", func() (*ast.GenericParam, bool) {
		return p.parseGenericParam()
	})
	if !ok {
		return nil
	}

	return ast.NewGenericParams(list.items, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseGenericParam() (*ast.GenericParam, bool) {
	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected generic parameter name", p.curTok.Span)
		return nil, false
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
	span := p.curTok.Span

	var bounds []ast.TypeExpr
	if p.peekTok.Type == lexer.COLON {
		p.nextToken() // onto ':'
		p.nextToken() // onto the first bound

		parsed, ok := p.parseBounds()
		if !ok {
			return nil, false
		}
		bounds = parsed
		span = mergeSpan(span, p.curTok.Span)
	}

	return ast.NewGenericParam(name, bounds, span), true
}

// parseBounds parses a '+'-separated list of trait bounds, entered with
// curTok on the first bound and leaving curTok on the last bound's final
// token.
func (p *Parser) parseBounds() ([]ast.TypeExpr, bool) {
	var bounds []ast.TypeExpr

	for {
		bound := p.parseType()
		if bound == nil {
			return nil, false
		}
		bounds = append(bounds, bound)

		if p.peekTok.Type != lexer.PLUS {
			return bounds, true
		}
		p.nextToken() // onto '+'
		p.nextToken() // onto the next bound
	}
}

// parseWhereClause parses where Target: Bound + Bound, ..., entered with
// curTok on 'where' and leaving curTok on the final bound token. A
// trailing comma before the body is tolerated.
func (p *Parser) parseWhereClause() *ast.WhereClause {
	start := p.curTok.Span
	var preds []*ast.WherePred

	for {
		p.nextToken() // onto the predicate target

		target := p.parseType()
		if target == nil {
			return nil
		}

		if !p.expect(lexer.COLON) {
			return nil
		}
		p.nextToken() // onto the first bound

		bounds, ok := p.parseBounds()
		if !ok {
			return nil
		}

		preds = append(preds, ast.NewWherePred(target, bounds, mergeSpan(target.Span(), p.curTok.Span)))

		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken() // onto ','

		if p.peekTok.Type == lexer.LBRACE || p.peekTok.Type == lexer.SEMICOLON {
			break
		}
	}

	return ast.NewWhereClause(preds, mergeSpan(start, p.curTok.Span))
}

// parseTraitDecl parses a trait declaration, entered with curTok on
// 'trait' and leaving curTok on the closing '}'.
func (p *Parser) parseTraitDecl(attrs []*ast.Attribute) *ast.TraitDecl {
	start := p.curTok.Span
	if len(attrs) > 0 {
		start = mergeSpan(attrs[0].Span(), start)
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}
	decl := &ast.TraitDecl{
		Attrs: attrs,
		Name:  ast.NewIdent(p.curTok.Raw, p.curTok.Span),
	}

	if p.peekTok.Type == lexer.LT {
		p.nextToken()
		generics := p.parseGenericParams()
		if generics == nil {
			return nil
		}
		decl.Generics = generics
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	methods, ok := p.parseMethodList()
	if !ok {
		return nil
	}
	decl.Methods = methods

	decl.SetSpan(mergeSpan(start, p.curTok.Span))
	return decl
}

// parseImplDecl parses impl Type { ... } or impl Trait for Type { ... },
// entered with curTok on 'impl' and leaving curTok on the closing '}'.
func (p *Parser) parseImplDecl(attrs []*ast.Attribute) *ast.ImplDecl {
	start := p.curTok.Span
	if len(attrs) > 0 {
		start = mergeSpan(attrs[0].Span(), start)
	}

	decl := &ast.ImplDecl{Attrs: attrs}

	if p.peekTok.Type == lexer.LT {
		p.nextToken()
		generics := p.parseGenericParams()
		if generics == nil {
			return nil
		}
		decl.Generics = generics
	}

	p.nextToken() // onto the implemented type (or trait)
	first := p.parseType()
	if first == nil {
		return nil
	}
	decl.Target = first

	if p.peekTok.Type == lexer.FOR {
		decl.Trait = first
		p.nextToken() // onto 'for'
		p.nextToken() // onto the target type
		target := p.parseType()
		if target == nil {
			return nil
		}
		decl.Target = target
	}

	if p.peekTok.Type == lexer.WHERE {
		p.nextToken()
		where := p.parseWhereClause()
		if where == nil {
			return nil
		}
		decl.Where = where
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	methods, ok := p.parseMethodList()
	if !ok {
		return nil
	}
	decl.Methods = methods

	decl.SetSpan(mergeSpan(start, p.curTok.Span))
	return decl
}

// parseMethodList parses attributed fn declarations up to the closing
// brace, entered with curTok on '{' and leaving curTok on '}'.
func (p *Parser) parseMethodList() ([]*ast.FnDecl, bool) {
	var methods []*ast.FnDecl

	for p.peekTok.Type != lexer.RBRACE && p.peekTok.Type != lexer.EOF {
		p.nextToken()

		var attrs []*ast.Attribute
		for p.curTok.Type == lexer.POUND {
			attr := p.parseAttribute()
			if attr == nil {
				return nil, false
			}
			attrs = append(attrs, attr)
			p.nextToken()
		}

		if p.curTok.Type != lexer.FN {
			p.reportError("expected method declaration", p.curTok.Span)
			return nil, false
		}

		method := p.parseFnDecl(attrs)
		if method == nil {
			return nil, false
		}
		methods = append(methods, method)
	}

	if !p.expect(lexer.RBRACE) {
		return nil, false
	}

	return methods, true
}
