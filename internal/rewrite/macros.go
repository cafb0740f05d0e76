package rewrite

import (
	"strings"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
	"github.com/Andlon/numeric-literals/internal/parser"
	"github.com/Andlon/numeric-literals/internal/printer"
)

// rewriteMacro tries to interpret an opaque macro body as expressions so
// literals inside common macros (vec!, assert_eq!, println! arguments)
// get rewritten too. Three grammars are attempted in order, first success
// wins:
//
//  1. a single expression            assert!(x > 3.0)
//  2. a comma-separated list         vec![3.2, 5.7, 10.1]
//  3. an expr; expr pair             vec![0.0; 100]
//
// A body that fits none of them is left untouched; macro arguments may
// follow arbitrary grammars and guessing further would corrupt them.
func (r *Rewriter) rewriteMacro(m *ast.MacroExpr) ast.Expr {
	if strings.TrimSpace(m.Raw) == "" {
		return m
	}

	if expr := parseMacroExprBody(m.Raw); expr != nil {
		rewritten := r.RewriteExpr(expr)
		return rebuildMacro(m, printer.PrintExpr(rewritten))
	}

	if exprs := parseMacroListBody(m.Raw); exprs != nil {
		parts := make([]string, len(exprs))
		for i, e := range exprs {
			parts[i] = printer.PrintExpr(r.RewriteExpr(e))
		}
		return rebuildMacro(m, strings.Join(parts, ", "))
	}

	if first, second := parseMacroPairBody(m.Raw); first != nil {
		first = r.RewriteExpr(first)
		second = r.RewriteExpr(second)
		return rebuildMacro(m, printer.PrintExpr(first)+"; "+printer.PrintExpr(second))
	}

	return m
}

func parseMacroExprBody(src string) ast.Expr {
	p := parser.New(src)
	expr := p.ParseExpr()
	if expr == nil || len(p.Errors()) > 0 {
		return nil
	}
	return expr
}

func parseMacroListBody(src string) []ast.Expr {
	p := parser.New(src)
	exprs := p.ParseExprList()
	if exprs == nil || len(p.Errors()) > 0 {
		return nil
	}
	return exprs
}

func parseMacroPairBody(src string) (ast.Expr, ast.Expr) {
	p := parser.New(src)
	first, second := p.ParseExprPair()
	if first == nil || second == nil || len(p.Errors()) > 0 {
		return nil, nil
	}
	return first, second
}

// rebuildMacro replaces the macro's body with freshly printed text and
// re-lexes it so the token view stays consistent with the raw view.
func rebuildMacro(m *ast.MacroExpr, body string) *ast.MacroExpr {
	lx := lexer.New(body)
	var tokens []lexer.Token
	for {
		tok := lx.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	m.Tokens = tokens
	m.Raw = body
	return m
}
