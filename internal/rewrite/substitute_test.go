package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
	"github.com/Andlon/numeric-literals/internal/parser"
	"github.com/Andlon/numeric-literals/internal/printer"
	"github.com/Andlon/numeric-literals/internal/rewrite"
)

func mustExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	p := parser.New(src)
	expr := p.ParseExpr()
	require.Empty(t, p.Errors())
	require.NotNil(t, expr)
	return expr
}

func TestSubstituteSimplePlaceholder(t *testing.T) {
	template := mustExpr(t, "T::from(literal)")
	lit := ast.NewIntLit("5", lexer.Span{})

	out := rewrite.Substitute(template, rewrite.Placeholder, lit)
	require.Equal(t, "T::from(5)", printer.PrintExpr(out))
}

func TestSubstituteMatchesLastPathSegment(t *testing.T) {
	// Any path ending in the placeholder is an insertion point.
	template := mustExpr(t, "f(foo::literal)")
	lit := ast.NewFloatLit("2.5", lexer.Span{})

	out := rewrite.Substitute(template, rewrite.Placeholder, lit)
	require.Equal(t, "f(2.5)", printer.PrintExpr(out))
}

func TestSubstituteLeavesOtherPaths(t *testing.T) {
	template := mustExpr(t, "literal + offset")
	lit := ast.NewIntLit("3", lexer.Span{})

	out := rewrite.Substitute(template, rewrite.Placeholder, lit)
	require.Equal(t, "3 + offset", printer.PrintExpr(out))
}

func TestSubstituteDoesNotMutateTemplate(t *testing.T) {
	template := mustExpr(t, "T::from(literal)")

	rewrite.Substitute(template, rewrite.Placeholder, ast.NewIntLit("1", lexer.Span{}))
	require.Equal(t, "T::from(literal)", printer.PrintExpr(template))
}

func TestSubstituteClonesPerSite(t *testing.T) {
	template := mustExpr(t, "literal + literal")
	lit := ast.NewIntLit("4", lexer.Span{})

	out := rewrite.Substitute(template, rewrite.Placeholder, lit).(*ast.InfixExpr)
	require.Equal(t, "4 + 4", printer.PrintExpr(out))
	require.NotSame(t, out.Left, out.Right)
}

func TestSubstituteInsideMacroLeavesBody(t *testing.T) {
	// Macro bodies are opaque token streams; substitution never reaches in.
	template := mustExpr(t, "dbg!(literal)")
	lit := ast.NewIntLit("9", lexer.Span{})

	out := rewrite.Substitute(template, rewrite.Placeholder, lit)
	require.Equal(t, "dbg!(literal)", printer.PrintExpr(out))
}
