package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// parseBlockExpr parses { stmt* tail? }, entered with curTok on '{' and
// leaving curTok on '}'. An expression directly before the closing brace
// becomes the block's tail; block-like expressions (if, while, nested
// blocks) may stand as statements without a trailing semicolon.
func (p *Parser) parseBlockExpr() *ast.BlockExpr {
	start := p.curTok.Span
	if p.curTok.Type != lexer.LBRACE {
		p.reportError("expected '{'", p.curTok.Span)
		return nil
	}

	block := ast.NewBlockExpr(nil, nil, start)

	// Struct literals are unambiguous again inside a block body.
	saved := p.noStructLit
	p.noStructLit = false
	defer func() { p.noStructLit = saved }()

	p.nextToken()

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		prevTok := p.curTok

		switch p.curTok.Type {
		case lexer.LET:
			stmt := p.parseLetStmt()
			if stmt == nil {
				p.recoverStatement(prevTok)
				continue
			}
			block.Stmts = append(block.Stmts, stmt)
			p.nextToken()

		case lexer.RETURN:
			stmt := p.parseReturnStmt()
			if stmt == nil {
				p.recoverStatement(prevTok)
				continue
			}
			block.Stmts = append(block.Stmts, stmt)
			p.nextToken()

		case lexer.FN, lexer.POUND:
			item := p.parseItem()
			if item == nil {
				p.recoverStatement(prevTok)
				continue
			}
			block.Stmts = append(block.Stmts, ast.NewItemStmt(item, item.Span()))
			p.nextToken()

		default:
			expr := p.parseExpr()
			if expr == nil {
				p.recoverStatement(prevTok)
				continue
			}

			switch {
			case p.peekTok.Type == lexer.SEMICOLON:
				p.nextToken() // onto ';'
				block.Stmts = append(block.Stmts,
					ast.NewExprStmt(expr, true, mergeSpan(expr.Span(), p.curTok.Span)))
				p.nextToken()

			case p.peekTok.Type == lexer.RBRACE:
				block.Tail = expr
				p.nextToken() // onto '}'

			case isBlockLike(expr):
				block.Stmts = append(block.Stmts, ast.NewExprStmt(expr, false, expr.Span()))
				p.nextToken()

			default:
				p.reportError("expected ';' after expression", p.peekTok.Span)
				p.recoverStatement(prevTok)
			}
		}
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportError("expected '}' to close block", p.curTok.Span)
		return nil
	}

	block.SetSpan(mergeSpan(start, p.curTok.Span))
	return block
}

// parseLetStmt parses let [mut] name [: type] = value; entered with curTok
// on 'let' and leaving curTok on ';'.
func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.curTok.Span

	mut := false
	if p.peekTok.Type == lexer.MUT {
		p.nextToken()
		mut = true
	}

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

	var typ ast.TypeExpr
	if p.peekTok.Type == lexer.COLON {
		p.nextToken() // onto ':'
		p.nextToken() // onto the type
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}

	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	p.nextToken() // onto the initializer

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return ast.NewLetStmt(mut, name, typ, value, mergeSpan(start, p.curTok.Span))
}

// parseReturnStmt parses return [value]; a tail `return value` directly
// before the closing brace needs no semicolon.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
		return ast.NewReturnStmt(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken() // onto the return value

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	span := mergeSpan(start, value.Span())

	switch p.peekTok.Type {
	case lexer.SEMICOLON:
		p.nextToken()
		span = mergeSpan(span, p.curTok.Span)
	case lexer.RBRACE:
		// tail return
	default:
		p.reportError("expected ';' after return value", p.peekTok.Span)
		return nil
	}

	return ast.NewReturnStmt(value, span)
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken() // onto the condition

	saved := p.noStructLit
	p.noStructLit = true
	cond := p.parseExpr()
	p.noStructLit = saved
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	then := p.parseBlockExpr()
	if then == nil {
		return nil
	}

	var els ast.Expr
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken() // onto 'else'

		switch p.peekTok.Type {
		case lexer.IF:
			p.nextToken()
			chained := p.parseIfExpr()
			if chained == nil {
				return nil
			}
			els = chained
		case lexer.LBRACE:
			p.nextToken()
			block := p.parseBlockExpr()
			if block == nil {
				return nil
			}
			els = block
		default:
			p.reportError("expected '{' or 'if' after 'else'", p.peekTok.Span)
			return nil
		}
	}

	return ast.NewIfExpr(cond, then, els, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseWhileExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken() // onto the condition

	saved := p.noStructLit
	p.noStructLit = true
	cond := p.parseExpr()
	p.noStructLit = saved
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockExpr()
	if body == nil {
		return nil
	}

	return ast.NewWhileExpr(cond, body, mergeSpan(start, p.curTok.Span))
}

func isBlockLike(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.IfExpr, *ast.WhileExpr, *ast.BlockExpr:
		return true
	default:
		return false
	}
}
