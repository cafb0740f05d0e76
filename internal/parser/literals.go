package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// Literal nodes carry the exact source text so the printer can reproduce
// base prefixes, digit separators and type suffixes unchanged.

func (p *Parser) parseIntLiteral() ast.Expr {
	return ast.NewIntLit(p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	return ast.NewFloatLit(p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Raw, p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseRawStringLiteral() ast.Expr {
	return ast.NewRawStringLit(p.curTok.Raw, p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseByteStringLiteral() ast.Expr {
	return ast.NewByteStringLit(p.curTok.Raw, p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseByteLiteral() ast.Expr {
	return ast.NewByteLit(p.curTok.Raw, p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseCharLiteral() ast.Expr {
	return ast.NewCharLit(p.curTok.Raw, p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.curTok.Span)
}

// parseArrayLiteral handles both the element list form [a, b, c] and the
// repeat form [value; count].
func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.RBRACKET {
		p.nextToken()
		return ast.NewArrayLit(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken() // onto the first element

	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	first := p.parseExpr()
	if first == nil {
		return nil
	}

	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken() // onto ';'
		p.nextToken() // onto the count
		count := p.parseExpr()
		if count == nil {
			return nil
		}
		if !p.expect(lexer.RBRACKET) {
			return nil
		}
		return ast.NewRepeatLit(first, count, mergeSpan(start, p.curTok.Span))
	}

	elems := []ast.Expr{first}
	for p.peekTok.Type == lexer.COMMA {
		p.nextToken() // onto ','
		if p.peekTok.Type == lexer.RBRACKET {
			break
		}
		p.nextToken() // onto the next element

		elem := p.parseExpr()
		if elem == nil {
			return nil
		}
		elems = append(elems, elem)
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	return ast.NewArrayLit(elems, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseBlockLiteral() ast.Expr {
	block := p.parseBlockExpr()
	if block == nil {
		return nil
	}
	return block
}
