package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

// parseExprPrecedence is the core Pratt loop. It is entered with curTok on
// the first token of the expression and leaves curTok on its last token.
func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportError("expected expression, found '"+p.curTok.Raw+"'", p.curTok.Span)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}

		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	start := p.curTok.Span
	op := p.curTok.Type

	// &mut is two tokens; fold them into a single prefix operator.
	if op == lexer.AMPERSAND && p.peekTok.Type == lexer.MUT {
		p.nextToken()
		op = lexer.REF_MUT
	}

	p.nextToken()

	operand := p.parseExprPrecedence(precedencePrefix)
	if operand == nil {
		return nil
	}

	return ast.NewPrefixExpr(op, operand, mergeSpan(start, operand.Span()))
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curTok.Type
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExprPrecedence(precedence)
	if right == nil {
		return nil
	}

	return ast.NewInfixExpr(op, left, right, mergeSpan(left.Span(), right.Span()))
}

// parseAssignExpr parses right-associatively so a = b = c groups as
// a = (b = c).
func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	p.nextToken()

	value := p.parseExprPrecedence(precedenceAssign - 1)
	if value == nil {
		return nil
	}

	return ast.NewAssignExpr(left, value, mergeSpan(left.Span(), value.Span()))
}

// parseGroupedExpr handles (a), the unit value (), and tuples (a, b).
// A single parenthesized expression is returned as-is: the printer restores
// grouping from operator precedence, so no dedicated paren node exists.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return ast.NewTupleLit(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken() // onto the first element

	saved := p.noStructLit
	p.noStructLit = false
	list, ok := parseCommaList(p, lexer.RPAREN, true, "expected expression", func() (ast.Expr, bool) {
		expr := p.parseExpr()
		return expr, expr != nil
	})
	p.noStructLit = saved
	if !ok {
		return nil
	}

	if len(list.items) == 1 && !list.trailing {
		return list.items[0]
	}

	return ast.NewTupleLit(list.items, mergeSpan(start, p.curTok.Span))
}

// parseCallArgs parses a parenthesized argument list, entered with curTok on
// '(' and leaving curTok on ')'.
func (p *Parser) parseCallArgs() ([]ast.Expr, bool) {
	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return nil, true
	}

	p.nextToken() // onto the first argument

	saved := p.noStructLit
	p.noStructLit = false
	list, ok := parseCommaList(p, lexer.RPAREN, true, "expected argument", func() (ast.Expr, bool) {
		expr := p.parseExpr()
		return expr, expr != nil
	})
	p.noStructLit = saved
	if !ok {
		return nil, false
	}

	return list.items, true
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	args, ok := p.parseCallArgs()
	if !ok {
		return nil
	}

	return ast.NewCallExpr(callee, args, mergeSpan(callee.Span(), p.curTok.Span))
}

func (p *Parser) parseIndexExpr(target ast.Expr) ast.Expr {
	p.nextToken() // onto the index expression

	saved := p.noStructLit
	p.noStructLit = false
	index := p.parseExpr()
	p.noStructLit = saved
	if index == nil {
		return nil
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	return ast.NewIndexExpr(target, index, mergeSpan(target.Span(), p.curTok.Span))
}

// parseFieldOrMethodExpr handles x.field, x.0 tuple indexing and
// x.method(args).
func (p *Parser) parseFieldOrMethodExpr(target ast.Expr) ast.Expr {
	switch p.peekTok.Type {
	case lexer.IDENT:
		p.nextToken()
		name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)

		if p.peekTok.Type == lexer.LPAREN {
			p.nextToken() // onto '('
			args, ok := p.parseCallArgs()
			if !ok {
				return nil
			}
			return ast.NewMethodCallExpr(target, name, args, mergeSpan(target.Span(), p.curTok.Span))
		}

		return ast.NewFieldExpr(target, name, mergeSpan(target.Span(), p.curTok.Span))

	case lexer.INT:
		p.nextToken()
		name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
		return ast.NewFieldExpr(target, name, mergeSpan(target.Span(), p.curTok.Span))

	default:
		p.reportError("expected field or method name after '.'", p.peekTok.Span)
		return nil
	}
}

func (p *Parser) parseCastExpr(left ast.Expr) ast.Expr {
	p.nextToken() // onto the target type

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	return ast.NewCastExpr(left, typ, mergeSpan(left.Span(), typ.Span()))
}

func (p *Parser) parseTryExpr(left ast.Expr) ast.Expr {
	return ast.NewTryExpr(left, mergeSpan(left.Span(), p.curTok.Span))
}

func (p *Parser) parseClosureExpr() ast.Expr {
	start := p.curTok.Span
	var params []*ast.Param

	if p.curTok.Type == lexer.PIPE {
		if p.peekTok.Type == lexer.PIPE {
			p.nextToken() // onto the closing '|'
		} else {
			p.nextToken() // onto the first parameter
			list, ok := parseCommaList(p, lexer.PIPE, false, "expected closure parameter", func() (*ast.Param, bool) {
				return p.parseClosureParam()
			})
			if !ok {
				return nil
			}
			params = list.items
		}
	}
	// curTok is now the closing '|' (or the single '||' token).

	p.nextToken() // onto the body

	body := p.parseExprPrecedence(precedenceLowest)
	if body == nil {
		return nil
	}

	return ast.NewClosureExpr(params, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseClosureParam() (*ast.Param, bool) {
	start := p.curTok.Span

	mut := false
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

	var typ ast.TypeExpr
	if p.peekTok.Type == lexer.COLON {
		p.nextToken() // onto ':'
		p.nextToken() // onto the type
		typ = p.parseType()
		if typ == nil {
			return nil, false
		}
		span = mergeSpan(span, typ.Span())
	}

	return ast.NewParam(false, mut, name, typ, span), true
}

// parsePathOrMacroExpr parses bare identifiers, qualified paths with
// optional turbofish arguments (T::<f64>::from), macro invocations
// (vec![...]) and struct literals (Point { x: 1 }). All of these start with
// an identifier, so disambiguation happens via lookahead.
func (p *Parser) parsePathOrMacroExpr() ast.Expr {
	start := p.curTok.Span
	segments := []*ast.PathSegment{
		ast.NewPathSegment(ast.NewIdent(p.curTok.Raw, p.curTok.Span), nil, p.curTok.Span),
	}

	for {
		if p.peekTok.Type == lexer.BANG && isMacroDelimiter(p.peekTokenAt(2).Type) {
			return p.parseMacroExpr(segments, start)
		}

		if p.peekTok.Type != lexer.DOUBLE_COLON {
			break
		}

		switch p.peekTokenAt(2).Type {
		case lexer.IDENT:
			p.nextToken() // onto '::'
			p.nextToken() // onto the segment name
			segments = append(segments,
				ast.NewPathSegment(ast.NewIdent(p.curTok.Raw, p.curTok.Span), nil, p.curTok.Span))

		case lexer.LT:
			p.nextToken() // onto '::'
			p.nextToken() // onto '<'
			args, ok := p.parseTypeArgs()
			if !ok {
				return nil
			}
			segments[len(segments)-1].Args = args

		default:
			p.reportError("expected identifier after '::'", p.peekTokenAt(2).Span)
			return nil
		}
	}

	path := ast.NewPathExpr(segments, mergeSpan(start, p.curTok.Span))

	if !p.noStructLit && p.peekTok.Type == lexer.LBRACE {
		return p.parseStructLit(path)
	}

	return path
}

func (p *Parser) parseStructLit(path *ast.PathExpr) ast.Expr {
	p.nextToken() // onto '{'

	if p.peekTok.Type == lexer.RBRACE {
		p.nextToken()
		return ast.NewStructLit(path, nil, mergeSpan(path.Span(), p.curTok.Span))
	}

	p.nextToken() // onto the first field

	saved := p.noStructLit
	p.noStructLit = false
	list, ok := parseCommaList(p, lexer.RBRACE, true, "expected field initializer", func() (*ast.FieldInit, bool) {
		return p.parseFieldInit()
	})
	p.noStructLit = saved
	if !ok {
		return nil
	}

	return ast.NewStructLit(path, list.items, mergeSpan(path.Span(), p.curTok.Span))
}

func (p *Parser) parseFieldInit() (*ast.FieldInit, bool) {
	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected field name", p.curTok.Span)
		return nil, false
	}
	name := ast.NewIdent(p.curTok.Raw, p.curTok.Span)
	start := p.curTok.Span

	// Shorthand: Point { x, y } initializes fields from same-named bindings.
	if p.peekTok.Type != lexer.COLON {
		value := ast.NewPathExpr([]*ast.PathSegment{
			ast.NewPathSegment(name, nil, name.Span()),
		}, name.Span())
		return ast.NewFieldInit(name, value, start), true
	}

	p.nextToken() // onto ':'
	p.nextToken() // onto the value

	value := p.parseExpr()
	if value == nil {
		return nil, false
	}

	return ast.NewFieldInit(name, value, mergeSpan(start, value.Span())), true
}

// parseMacroExpr consumes name!(...), name![...] or name!{...}. The body
// is collected as a raw, delimiter-balanced token sequence; macro arguments
// follow their own grammars, so no expression structure is imposed here.
func (p *Parser) parseMacroExpr(segments []*ast.PathSegment, start lexer.Span) ast.Expr {
	path := make([]*ast.Ident, len(segments))
	for i, seg := range segments {
		path[i] = seg.Name
	}

	p.nextToken() // onto '!'
	p.nextToken() // onto the opening delimiter

	open := p.curTok
	closing := closingDelimiter(open.Type)

	var tokens []lexer.Token
	depth := 1
	for depth > 0 {
		p.nextToken()
		if p.curTok.Type == lexer.EOF {
			p.reportError("unterminated macro invocation", open.Span)
			return nil
		}

		switch p.curTok.Type {
		case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
			depth++
		case lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE:
			depth--
			if depth == 0 {
				if p.curTok.Type != closing {
					p.reportError("mismatched closing delimiter in macro invocation", p.curTok.Span)
					return nil
				}
				continue
			}
		}

		tokens = append(tokens, p.curTok)
	}

	raw := p.rawText(open.Span.End, p.curTok.Span.Start)
	return ast.NewMacroExpr(path, open.Type, tokens, raw, mergeSpan(start, p.curTok.Span))
}

func isMacroDelimiter(tt lexer.TokenType) bool {
	switch tt {
	case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
		return true
	default:
		return false
	}
}

func closingDelimiter(open lexer.TokenType) lexer.TokenType {
	switch open {
	case lexer.LPAREN:
		return lexer.RPAREN
	case lexer.LBRACKET:
		return lexer.RBRACKET
	default:
		return lexer.RBRACE
	}
}
