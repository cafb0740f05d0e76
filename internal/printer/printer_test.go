package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/parser"
	"github.com/Andlon/numeric-literals/internal/printer"
)

// exprString parses the source as one expression and prints it back.
func exprString(t *testing.T, src string) string {
	t.Helper()

	p := parser.New(src)
	expr := p.ParseExpr()
	require.Empty(t, p.Errors())
	require.NotNil(t, expr)
	return printer.PrintExpr(expr)
}

// roundTrip asserts that a canonically formatted file prints back to
// exactly its own source.
func roundTrip(t *testing.T, src string) {
	t.Helper()

	p := parser.New(src)
	file := p.ParseFile()
	require.Empty(t, p.Errors())
	require.Equal(t, src, printer.Print(file))
}

func TestExprParenthesization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Grouping parens survive only where precedence demands them.
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"1 * 2 + 3", "1 * 2 + 3"},
		{"(1 * 2) + 3", "1 * 2 + 3"},
		{"1 + (2 + 3)", "1 + (2 + 3)"},
		{"(1 + 2) as f64", "(1 + 2) as f64"},
		{"x as f64 + 1.0", "x as f64 + 1.0"},
		{"-(1 + 2)", "-(1 + 2)"},
		{"-T::from(2.5).unwrap()", "-T::from(2.5).unwrap()"},
		{"(1 + 2).max(3)", "(1 + 2).max(3)"},
		{"1..10", "1..10"},
		{"(1..10)[0]", "(1..10)[0]"},
		{"!(a && b)", "!(a && b)"},
		{"a == b && c == d", "a == b && c == d"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, exprString(t, tt.input), "input %q", tt.input)
	}
}

func TestExprAtoms(t *testing.T) {
	tests := []string{
		"42u8",
		"3.14f32",
		`"hello\nworld"`,
		`r#"raw "text""#`,
		"b'a'",
		"'x'",
		"true",
		"T::<f64>::from(5)",
		"Point { x: 1, y: 2 }",
		"[1, 2, 3]",
		"[0.0; 4]",
		"(1,)",
		"x.0",
		"f()?",
		"|x: f64| x + 1.0",
	}

	for _, src := range tests {
		require.Equal(t, src, exprString(t, src), "input %q", src)
	}
}

func TestMacroBodyPrintedVerbatim(t *testing.T) {
	// Macro bodies are opaque; whatever spacing the source had survives.
	src := "vec![3.2,   5.7]"
	require.Equal(t, src, exprString(t, src))

	src = "assert!(x > 3.0)"
	require.Equal(t, src, exprString(t, src))
}

func TestFnRoundTrip(t *testing.T) {
	roundTrip(t, `fn half_of_half<T>() -> T
where
    T: From<i8> + Div<Output = T>,
{
    3 / 2 / 2
}
`)
}

func TestFnWithAttrsRoundTrip(t *testing.T) {
	roundTrip(t, `#[inline]
#[replace_numeric_literals(T::from(literal))]
fn two<T>() -> T {
    2
}
`)
}

func TestEmptyBodyRoundTrip(t *testing.T) {
	roundTrip(t, `fn noop() {}
`)
}

func TestTraitRoundTrip(t *testing.T) {
	roundTrip(t, `trait Scale<T> {
    fn factor(&self) -> T;

    fn apply(&mut self, x: T) -> T {
        x * self.factor()
    }
}
`)
}

func TestImplRoundTrip(t *testing.T) {
	roundTrip(t, `impl<T> Scale<T> for Matrix<T> {
    fn factor(&self) -> T {
        self.scale
    }
}
`)
}

func TestStatementsRoundTrip(t *testing.T) {
	roundTrip(t, `fn f(n: i32) -> i32 {
    let mut acc = 0;
    while acc < n {
        acc = acc + 1;
    }
    if acc == n {
        return acc;
    }
    acc
}
`)
}

func TestMultipleItemsSeparatedByBlankLine(t *testing.T) {
	roundTrip(t, `fn a() {
    1
}

fn b() {
    2
}
`)
}

func TestTypesPrinted(t *testing.T) {
	tests := []string{
		"fn f(x: &mut Vec<f64>, y: [f64; 3], z: &[u8], w: (i32, i32)) {}\n",
	}
	for _, src := range tests {
		roundTrip(t, src)
	}
}
