package parser

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

const (
	precedenceLowest = iota
	precedenceAssign
	precedenceRange
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedenceCast
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   precedenceAssign,
	lexer.DOTDOT:   precedenceRange,
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.PERCENT:  precedenceProduct,
	lexer.AS:       precedenceCast,
	lexer.LPAREN:   precedencePostfix,
	lexer.LBRACKET: precedencePostfix,
	lexer.DOT:      precedencePostfix,
	lexer.QUESTION: precedencePostfix,
}

// ParseError captures a recoverable parsing error with location context.
type ParseError struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
}

// ToDiagnostic converts the parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     diag.CodeParseError,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a Pratt-style recursive descent parser for the
// Rust-flavoured surface syntax the rewriter operates on.
// Invariants:
//   - Lookahead: curTok always reflects the token currently under
//     examination; peekTok mirrors the next token pulled from the lexer.
//     Further lookahead goes through peekTokenAt, which buffers tokens so
//     the window is only ever advanced via nextToken.
//   - Diagnostics: errors is an append-only accumulator of recoverable
//     diagnostics. Callers are expected to consult Errors() after parsing.
//   - Spans: AST node spans are composed via mergeSpan so that tail.End is
//     never less than head.End.
type Parser struct {
	lx      *lexer.Lexer
	input   []rune
	curTok  lexer.Token
	peekTok lexer.Token
	buffer  []lexer.Token // lookahead beyond peekTok

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	// noStructLit disables struct literal parsing while an if/while
	// condition is being parsed, mirroring the host grammar's restriction.
	noStructLit bool
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		input:     []rune(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.IDENT, p.parsePathOrMacroExpr)
	p.registerPrefix(lexer.INT, p.parseIntLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.RAWSTRING, p.parseRawStringLiteral)
	p.registerPrefix(lexer.BYTESTRING, p.parseByteStringLiteral)
	p.registerPrefix(lexer.BYTE, p.parseByteLiteral)
	p.registerPrefix(lexer.CHAR, p.parseCharLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.ASTERISK, p.parsePrefixExpr)
	p.registerPrefix(lexer.AMPERSAND, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseBlockLiteral)
	p.registerPrefix(lexer.IF, p.parseIfExpr)
	p.registerPrefix(lexer.WHILE, p.parseWhileExpr)
	p.registerPrefix(lexer.PIPE, p.parseClosureExpr)
	p.registerPrefix(lexer.OR, p.parseClosureExpr)

	p.registerInfix(lexer.ASSIGN, p.parseAssignExpr)
	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpr)
	p.registerInfix(lexer.SLASH, p.parseInfixExpr)
	p.registerInfix(lexer.PERCENT, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.LE, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.GE, p.parseInfixExpr)
	p.registerInfix(lexer.DOTDOT, p.parseInfixExpr)
	p.registerInfix(lexer.AS, p.parseCastExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpr)
	p.registerInfix(lexer.DOT, p.parseFieldOrMethodExpr)
	p.registerInfix(lexer.QUESTION, p.parseTryExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all recoverable parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	errs := p.errors
	for _, lexErr := range p.lx.Errors {
		errs = append(errs, ParseError{
			Message:  lexErr.Message,
			Span:     lexErr.Span,
			Severity: diag.SeverityError,
		})
	}
	return errs
}

// ParseFile parses a full source file: a sequence of attributed items.
func (p *Parser) ParseFile() *ast.File {
	file := ast.NewFile(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		prevTok := p.curTok
		item := p.parseItem()
		if item != nil {
			file.Items = append(file.Items, item)
			file.SetSpan(mergeSpan(file.Span(), item.Span()))
			p.nextToken()
			continue
		}

		if p.curTok.Type == lexer.EOF {
			break
		}

		p.recoverItem(prevTok)
	}

	file.SetSpan(mergeSpan(file.Span(), p.curTok.Span))

	return file
}

// ParseExpr parses the input as exactly one expression. Trailing tokens
// after the expression are reported as an error.
func (p *Parser) ParseExpr() ast.Expr {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if p.peekTok.Type != lexer.EOF {
		p.reportError("unexpected trailing tokens after expression", p.peekTok.Span)
		return nil
	}

	return expr
}

// ParseExprList parses the input as a non-empty comma-separated expression
// list. A trailing comma is tolerated.
func (p *Parser) ParseExprList() []ast.Expr {
	if p.curTok.Type == lexer.EOF {
		p.reportError("expected expression", p.curTok.Span)
		return nil
	}

	var exprs []ast.Expr

	for {
		expr := p.parseExpr()
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)

		switch p.peekTok.Type {
		case lexer.COMMA:
			p.nextToken() // move to comma
			p.nextToken() // move to next element

			// Trailing comma: [a, b, ]
			if p.curTok.Type == lexer.EOF {
				return exprs
			}
		case lexer.EOF:
			return exprs
		default:
			p.reportError("expected ',' between expressions", p.peekTok.Span)
			return nil
		}
	}
}

// ParseExprPair parses the input as two expressions separated by a
// semicolon, the value-and-repeat-count form of array-building macros.
func (p *Parser) ParseExprPair() (ast.Expr, ast.Expr) {
	first := p.parseExpr()
	if first == nil {
		return nil, nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil, nil
	}
	p.nextToken()

	second := p.parseExpr()
	if second == nil {
		return nil, nil
	}

	if p.peekTok.Type != lexer.EOF {
		p.reportError("unexpected trailing tokens after expression pair", p.peekTok.Span)
		return nil, nil
	}

	return first, second
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The lexer is
// only queried from this hop (or via peekTokenAt's buffer) to keep
// lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if len(p.buffer) > 0 {
		p.peekTok = p.buffer[0]
		p.buffer = p.buffer[1:]
		return
	}
	p.peekTok = p.lx.NextToken()
}

// peekTokenAt returns the token n positions ahead of curTok without
// advancing; peekTokenAt(1) is peekTok.
func (p *Parser) peekTokenAt(n int) lexer.Token {
	if n <= 1 {
		return p.peekTok
	}
	for len(p.buffer) < n-1 {
		p.buffer = append(p.buffer, p.lx.NextToken())
	}
	return p.buffer[n-2]
}

// expect asserts that the peek token matches the provided type.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	lexeme := string(tt)
	msg := "expected '" + lexeme + "'"
	p.reportError(msg, p.peekTok.Span)
	return false
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}

// rawText returns the exact source text between two rune offsets.
func (p *Parser) rawText(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(p.input) {
		end = len(p.input)
	}
	if start >= end {
		return ""
	}
	return string(p.input[start:end])
}
