package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// parseType parses a type expression, entered with curTok on its first
// token and leaving curTok on its last.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.curTok.Type {
	case lexer.IDENT:
		return p.parsePathType()

	case lexer.AMPERSAND:
		start := p.curTok.Span
		mut := false
		if p.peekTok.Type == lexer.MUT {
			p.nextToken()
			mut = true
		}
		p.nextToken() // onto the referent type

		elem := p.parseType()
		if elem == nil {
			return nil
		}
		return ast.NewRefType(mut, elem, mergeSpan(start, elem.Span()))

	case lexer.LBRACKET:
		start := p.curTok.Span
		p.nextToken() // onto the element type

		elem := p.parseType()
		if elem == nil {
			return nil
		}

		if p.peekTok.Type == lexer.SEMICOLON {
			p.nextToken() // onto ';'
			p.nextToken() // onto the length
			length := p.parseExpr()
			if length == nil {
				return nil
			}
			if !p.expect(lexer.RBRACKET) {
				return nil
			}
			return ast.NewArrayType(elem, length, mergeSpan(start, p.curTok.Span))
		}

		if !p.expect(lexer.RBRACKET) {
			return nil
		}
		return ast.NewSliceType(elem, mergeSpan(start, p.curTok.Span))

	case lexer.LPAREN:
		start := p.curTok.Span
		if p.peekTok.Type == lexer.RPAREN {
			p.nextToken()
			return ast.NewTupleType(nil, mergeSpan(start, p.curTok.Span))
		}

		p.nextToken() // onto the first element
		list, ok := parseCommaList(p, lexer.RPAREN, true, "expected type", func() (ast.TypeExpr, bool) {
			typ := p.parseType()
			return typ, typ != nil
		})
		if !ok {
			return nil
		}

		if len(list.items) == 1 && !list.trailing {
			return list.items[0]
		}
		return ast.NewTupleType(list.items, mergeSpan(start, p.curTok.Span))

	default:
		p.reportError("expected type, found '"+p.curTok.Raw+"'", p.curTok.Span)
		return nil
	}
}

func (p *Parser) parsePathType() ast.TypeExpr {
	start := p.curTok.Span
	var segments []*ast.PathSegment

	for {
		if p.curTok.Type != lexer.IDENT {
			p.reportError("expected type name", p.curTok.Span)
			return nil
		}

		name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
		segSpan := p.curTok.Span

		var args []*ast.TypeArg
		if p.peekTok.Type == lexer.LT {
			p.nextToken() // onto '<'
			parsed, ok := p.parseTypeArgs()
			if !ok {
				return nil
			}
			args = parsed
			segSpan = mergeSpan(segSpan, p.curTok.Span)
		}

		segments = append(segments, ast.NewPathSegment(name, args, segSpan))

		if p.peekTok.Type != lexer.DOUBLE_COLON {
			break
		}
		p.nextToken() // onto '::'
		p.nextToken() // onto the next segment
	}

	return ast.NewPathType(segments, mergeSpan(start, p.curTok.Span))
}

// parseTypeArgs parses a <...> argument list, entered with curTok on '<'
// and leaving curTok on '>'. Nested generics close cleanly because the
// lexer never fuses two '>' runes into a shift token.
func (p *Parser) parseTypeArgs() ([]*ast.TypeArg, bool) {
	if p.peekTok.Type == lexer.GT {
		p.nextToken()
		return nil, true
	}

	p.nextToken() // onto the first argument
	list, ok := parseCommaList(p, lexer.GT, true, "expected type argument", func() (*ast.TypeArg, bool) {
		return p.parseTypeArg()
	})
	if !ok {
		return nil, false
	}

	return list.items, true
}

func (p *Parser) parseTypeArg() (*ast.TypeArg, bool) {
	// Associated type binding: Div<Output = T>
	if p.curTok.Type == lexer.IDENT && p.peekTok.Type == lexer.ASSIGN {
		name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
		start := p.curTok.Span

		p.nextToken() // onto '='
		p.nextToken() // onto the bound type

		typ := p.parseType()
		if typ == nil {
			return nil, false
		}
		return ast.NewTypeArg(name, typ, mergeSpan(start, typ.Span())), true
	}

	typ := p.parseType()
	if typ == nil {
		return nil, false
	}
	return ast.NewTypeArg(nil, typ, typ.Span()), true
}
