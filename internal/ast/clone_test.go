package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/parser"
)

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	p := parser.New(src)
	expr := p.ParseExpr()
	require.Empty(t, p.Errors())
	require.NotNil(t, expr)
	return expr
}

func TestCloneExprIsDeep(t *testing.T) {
	orig := mustParseExpr(t, "T::from(literal).unwrap() + 1")

	clone := ast.CloneExpr(orig)
	require.NotSame(t, orig, clone)

	origAdd := orig.(*ast.InfixExpr)
	cloneAdd := clone.(*ast.InfixExpr)
	require.NotSame(t, origAdd.Left, cloneAdd.Left)
	require.NotSame(t, origAdd.Right, cloneAdd.Right)

	// Mutating the original must not leak into the clone.
	origAdd.Right.(*ast.IntLit).Text = "99"
	require.Equal(t, "1", cloneAdd.Right.(*ast.IntLit).Text)
}

func TestCloneExprCopiesCallArgs(t *testing.T) {
	orig := mustParseExpr(t, "f(1, 2.5)").(*ast.CallExpr)
	clone := ast.CloneExpr(orig).(*ast.CallExpr)

	require.Len(t, clone.Args, 2)
	for i := range orig.Args {
		require.NotSame(t, orig.Args[i], clone.Args[i])
	}

	orig.Args[0].(*ast.IntLit).Text = "7"
	require.Equal(t, "1", clone.Args[0].(*ast.IntLit).Text)
}

func TestCloneExprCopiesBlocks(t *testing.T) {
	orig := mustParseExpr(t, "{ let x = 1; x + 2 }").(*ast.BlockExpr)
	clone := ast.CloneExpr(orig).(*ast.BlockExpr)

	require.Len(t, clone.Stmts, 1)
	require.NotSame(t, orig.Stmts[0], clone.Stmts[0])
	require.NotSame(t, orig.Tail, clone.Tail)
}

func TestCloneExprCopiesMacroTokens(t *testing.T) {
	orig := mustParseExpr(t, "vec![1, 2]").(*ast.MacroExpr)
	clone := ast.CloneExpr(orig).(*ast.MacroExpr)

	require.NotSame(t, orig, clone)
	require.Equal(t, orig.Raw, clone.Raw)

	// The token slice must not be shared with the original.
	orig.Tokens[0].Raw = "9"
	require.Equal(t, "1", clone.Tokens[0].Raw)
}
