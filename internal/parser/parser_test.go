package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
	"github.com/Andlon/numeric-literals/internal/parser"
)

// parseFile parses the source and fails the test on any parse error.
func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()

	p := parser.New(src)
	file := p.ParseFile()
	assertNoErrors(t, p)
	return file
}

// parseExpr parses the source as a single expression.
func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	p := parser.New(src)
	expr := p.ParseExpr()
	assertNoErrors(t, p)
	require.NotNil(t, expr)
	return expr
}

func assertNoErrors(t *testing.T, p *parser.Parser) {
	t.Helper()

	for _, err := range p.Errors() {
		t.Errorf("parser error at %d:%d: %s", err.Span.Line, err.Span.Column, err.Message)
	}
	if t.Failed() {
		t.FailNow()
	}
}

func TestParseFnWithGenericsAndWhere(t *testing.T) {
	src := `#[replace_numeric_literals(T::from(literal))]
fn half_of_half<T>() -> T
where
    T: From<i8> + Div<Output = T>,
{
    3 / 2 / 2
}
`
	file := parseFile(t, src)
	require.Len(t, file.Items, 1)

	fn, ok := file.Items[0].(*ast.FnDecl)
	require.True(t, ok, "expected *ast.FnDecl, got %T", file.Items[0])
	require.Equal(t, "half_of_half", fn.Name.Name)

	require.Len(t, fn.Attrs, 1)
	require.Equal(t, "replace_numeric_literals", fn.Attrs[0].Name.Name)
	require.Equal(t, "T::from(literal)", fn.Attrs[0].Raw)

	require.NotNil(t, fn.Generics)
	require.Len(t, fn.Generics.Params, 1)
	require.Equal(t, "T", fn.Generics.Params[0].Name.Name)

	require.NotNil(t, fn.Where)
	require.Len(t, fn.Where.Preds, 1)
	require.Len(t, fn.Where.Preds[0].Bounds, 2)

	require.NotNil(t, fn.Body)
	require.NotNil(t, fn.Body.Tail)
}

func TestParseTraitWithMethods(t *testing.T) {
	src := `trait Scale<T> {
    fn factor(&self) -> T;

    fn apply(&mut self, x: T) -> T {
        x * self.factor()
    }
}
`
	file := parseFile(t, src)
	require.Len(t, file.Items, 1)

	trait, ok := file.Items[0].(*ast.TraitDecl)
	require.True(t, ok, "expected *ast.TraitDecl, got %T", file.Items[0])
	require.Equal(t, "Scale", trait.Name.Name)
	require.Len(t, trait.Methods, 2)

	sig := trait.Methods[0]
	require.Equal(t, "factor", sig.Name.Name)
	require.Nil(t, sig.Body)
	require.Len(t, sig.Params, 1)
	require.True(t, sig.Params[0].Ref)
	require.Equal(t, "self", sig.Params[0].Name.Name)

	method := trait.Methods[1]
	require.Equal(t, "apply", method.Name.Name)
	require.NotNil(t, method.Body)
	require.True(t, method.Params[0].Ref)
	require.True(t, method.Params[0].Mut)
}

func TestParseImplForTrait(t *testing.T) {
	src := `impl<T> Scale<T> for Matrix<T> {
    fn factor(&self) -> T {
        self.scale
    }
}
`
	file := parseFile(t, src)
	require.Len(t, file.Items, 1)

	impl, ok := file.Items[0].(*ast.ImplDecl)
	require.True(t, ok, "expected *ast.ImplDecl, got %T", file.Items[0])
	require.NotNil(t, impl.Trait)
	require.NotNil(t, impl.Target)
	require.Len(t, impl.Methods, 1)
}

func TestParseInherentImpl(t *testing.T) {
	src := `impl Counter {
    fn bump(&mut self) {
        self.count = self.count + 1;
    }
}
`
	file := parseFile(t, src)
	impl, ok := file.Items[0].(*ast.ImplDecl)
	require.True(t, ok)
	require.Nil(t, impl.Trait)
	require.Len(t, impl.Methods, 1)
}

func TestParseMacroInvocation(t *testing.T) {
	expr := parseExpr(t, "vec![3.2, 5.7]")

	m, ok := expr.(*ast.MacroExpr)
	require.True(t, ok, "expected *ast.MacroExpr, got %T", expr)
	require.Len(t, m.Path, 1)
	require.Equal(t, "vec", m.Path[0].Name)
	require.Equal(t, lexer.LBRACKET, m.Delim)
	require.Equal(t, "3.2, 5.7", m.Raw)
	require.Len(t, m.Tokens, 3)
}

func TestParseMacroNestedDelimiters(t *testing.T) {
	expr := parseExpr(t, "assert!(v[0] > (1 + 2))")

	m, ok := expr.(*ast.MacroExpr)
	require.True(t, ok)
	require.Equal(t, lexer.LPAREN, m.Delim)
	require.Equal(t, "v[0] > (1 + 2)", m.Raw)
}

func TestParsePrecedence(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")

	add, ok := expr.(*ast.InfixExpr)
	require.True(t, ok)
	require.Equal(t, lexer.PLUS, add.Op)

	_, ok = add.Left.(*ast.IntLit)
	require.True(t, ok, "left of + should be a literal, got %T", add.Left)

	mul, ok := add.Right.(*ast.InfixExpr)
	require.True(t, ok, "right of + should be *, got %T", add.Right)
	require.Equal(t, lexer.ASTERISK, mul.Op)
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")

	mul, ok := expr.(*ast.InfixExpr)
	require.True(t, ok)
	require.Equal(t, lexer.ASTERISK, mul.Op)

	add, ok := mul.Left.(*ast.InfixExpr)
	require.True(t, ok, "left of * should be +, got %T", mul.Left)
	require.Equal(t, lexer.PLUS, add.Op)
}

func TestParseCastBindsTighterThanSum(t *testing.T) {
	expr := parseExpr(t, "x as f64 + 1.0")

	add, ok := expr.(*ast.InfixExpr)
	require.True(t, ok)
	_, ok = add.Left.(*ast.CastExpr)
	require.True(t, ok, "left of + should be a cast, got %T", add.Left)
}

func TestParseTurbofish(t *testing.T) {
	expr := parseExpr(t, "T::<f64>::from(5)")

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)

	path, ok := call.Callee.(*ast.PathExpr)
	require.True(t, ok)
	require.Len(t, path.Segments, 2)
	require.Equal(t, "T", path.Segments[0].Name.Name)
	require.Len(t, path.Segments[0].Args, 1)
	require.Equal(t, "from", path.Segments[1].Name.Name)
}

func TestParseMethodChain(t *testing.T) {
	expr := parseExpr(t, "T::from(literal).unwrap()")

	m, ok := expr.(*ast.MethodCallExpr)
	require.True(t, ok, "expected method call, got %T", expr)
	require.Equal(t, "unwrap", m.Method.Name)
	require.Empty(t, m.Args)

	_, ok = m.Receiver.(*ast.CallExpr)
	require.True(t, ok, "receiver should be a call, got %T", m.Receiver)
}

func TestParseStructLiteral(t *testing.T) {
	expr := parseExpr(t, "Point { x: 1.0, y }")

	s, ok := expr.(*ast.StructLit)
	require.True(t, ok)
	require.Len(t, s.Fields, 2)
	require.Equal(t, "x", s.Fields[0].Name.Name)
	require.NotNil(t, s.Fields[1].Value, "shorthand field should carry a value")
}

func TestParseIfConditionRejectsStructLiteral(t *testing.T) {
	src := `fn f() {
    if x { 1 } else { 2 };
}
`
	file := parseFile(t, src)
	fn := file.Items[0].(*ast.FnDecl)
	require.Len(t, fn.Body.Stmts, 1)

	stmt, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)

	ifExpr, ok := stmt.Expr.(*ast.IfExpr)
	require.True(t, ok, "expected if expression, got %T", stmt.Expr)
	_, ok = ifExpr.Cond.(*ast.PathExpr)
	require.True(t, ok, "condition should stay a path, got %T", ifExpr.Cond)
}

func TestParseClosures(t *testing.T) {
	expr := parseExpr(t, "|x| x + 1")
	c, ok := expr.(*ast.ClosureExpr)
	require.True(t, ok)
	require.Len(t, c.Params, 1)

	expr = parseExpr(t, "|| 0")
	c, ok = expr.(*ast.ClosureExpr)
	require.True(t, ok)
	require.Empty(t, c.Params)
}

func TestParseTrailingCommaMakesTuple(t *testing.T) {
	expr := parseExpr(t, "(1,)")
	tup, ok := expr.(*ast.TupleLit)
	require.True(t, ok, "expected tuple literal, got %T", expr)
	require.Len(t, tup.Elems, 1)

	expr = parseExpr(t, "(1)")
	_, ok = expr.(*ast.IntLit)
	require.True(t, ok, "parenthesized expression should stay a grouping, got %T", expr)
}

func TestParseClosureParamsRejectTrailingComma(t *testing.T) {
	p := parser.New("|x,| x")
	expr := p.ParseExpr()
	require.Nil(t, expr)
	require.NotEmpty(t, p.Errors())
}

func TestParseRepeatArrayLiteral(t *testing.T) {
	expr := parseExpr(t, "[0.0; 4]")

	r, ok := expr.(*ast.RepeatLit)
	require.True(t, ok, "expected repeat literal, got %T", expr)
	_, ok = r.Elem.(*ast.FloatLit)
	require.True(t, ok)
	_, ok = r.Len.(*ast.IntLit)
	require.True(t, ok)
}

func TestParseExprList(t *testing.T) {
	p := parser.New("1, 2.5, x + 1")
	exprs := p.ParseExprList()
	require.Empty(t, p.Errors())
	require.Len(t, exprs, 3)
}

func TestParseExprListTrailingComma(t *testing.T) {
	p := parser.New("1, 2,")
	exprs := p.ParseExprList()
	require.Empty(t, p.Errors())
	require.Len(t, exprs, 2)
}

func TestParseExprPair(t *testing.T) {
	p := parser.New("0.5; 100")
	first, second := p.ParseExprPair()
	require.Empty(t, p.Errors())

	_, ok := first.(*ast.FloatLit)
	require.True(t, ok)
	_, ok = second.(*ast.IntLit)
	require.True(t, ok)
}

func TestParseExprRejectsTrailingTokens(t *testing.T) {
	p := parser.New("1 + 2 3")
	expr := p.ParseExpr()
	require.Nil(t, expr)
	require.NotEmpty(t, p.Errors())
}

func TestParseRecoversFromBadItem(t *testing.T) {
	src := `let x = 1;

fn ok() {
    2
}
`
	p := parser.New(src)
	file := p.ParseFile()

	require.NotEmpty(t, p.Errors(), "top-level let should be rejected")
	require.Len(t, file.Items, 1, "recovery should still pick up the fn")

	fn, ok := file.Items[0].(*ast.FnDecl)
	require.True(t, ok)
	require.Equal(t, "ok", fn.Name.Name)
}

func TestParseUnterminatedMacroReported(t *testing.T) {
	p := parser.New("fn f() { vec![1, 2 }")
	p.ParseFile()
	require.NotEmpty(t, p.Errors())
}

func TestParseFilenamePropagates(t *testing.T) {
	p := parser.New("fn f() {}", parser.WithFilename("lib.rs"))
	file := p.ParseFile()
	require.Empty(t, p.Errors())
	require.Equal(t, "lib.rs", file.Items[0].Span().Filename)
}
