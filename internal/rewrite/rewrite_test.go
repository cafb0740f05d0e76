package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/rewrite"
)

// expand runs the whole pipeline over src and fails the test on any
// diagnostic.
func expand(t *testing.T, src string) string {
	t.Helper()

	out, diags := rewrite.ExpandSource(src, "input.rs")
	for _, d := range diags {
		t.Errorf("unexpected diagnostic: %s: %s", d.Code, d.Message)
	}
	if t.Failed() {
		t.FailNow()
	}
	return out
}

func TestExpandNumericLiterals(t *testing.T) {
	src := `#[replace_numeric_literals(T::from(literal))]
fn half_of_half<T>() -> T
where
    T: From<i8> + Div<Output = T>,
{
    3 / 2 / 2
}
`
	want := `fn half_of_half<T>() -> T
where
    T: From<i8> + Div<Output = T>,
{
    T::from(3) / T::from(2) / T::from(2)
}
`
	require.Equal(t, want, expand(t, src))
}

func TestExpandNumericCoversBothKinds(t *testing.T) {
	src := `#[replace_numeric_literals(T::from(literal).unwrap())]
fn golden_ratio<T: Float>() -> T {
    (1 + T::sqrt(5)) / 2 * 1.61
}
`
	want := `fn golden_ratio<T: Float>() -> T {
    (T::from(1).unwrap() + T::sqrt(T::from(5).unwrap())) / T::from(2).unwrap() * T::from(1.61).unwrap()
}
`
	require.Equal(t, want, expand(t, src))
}

func TestExpandFloatLiteralsLeavesInts(t *testing.T) {
	src := `#[replace_float_literals(literal as f64)]
fn mix() -> f64 {
    2 + 0.5
}
`
	want := `fn mix() -> f64 {
    2 + 0.5 as f64
}
`
	require.Equal(t, want, expand(t, src))
}

func TestExpandIntLiteralsLeavesFloats(t *testing.T) {
	src := `#[replace_int_literals(T::from(literal))]
fn mix() -> f64 {
    2 + 0.5
}
`
	want := `fn mix() -> f64 {
    T::from(2) + 0.5
}
`
	require.Equal(t, want, expand(t, src))
}

func TestExpandTrailingDotFloat(t *testing.T) {
	src := `#[replace_float_literals(T::from(literal))]
fn f<T>() -> T {
    3.
}
`
	want := `fn f<T>() -> T {
    T::from(3.)
}
`
	require.Equal(t, want, expand(t, src))
}

func TestReplacementsAreNotRescanned(t *testing.T) {
	// The template's own literal must survive substitution untouched.
	src := `#[replace_int_literals(literal + 1)]
fn f() -> i32 {
    2
}
`
	want := `fn f() -> i32 {
    2 + 1
}
`
	require.Equal(t, want, expand(t, src))
}

func TestStringLikeLiteralsUntouched(t *testing.T) {
	src := `#[replace_numeric_literals(())]
fn strings() {
    let a = "string";
    let b = b"byte string";
    let c = 'a';
    let d = b'a';
    let e = r#"raw "string""#;
    let f = 1;
}
`
	want := `fn strings() {
    let a = "string";
    let b = b"byte string";
    let c = 'a';
    let d = b'a';
    let e = r#"raw "string""#;
    let f = ();
}
`
	require.Equal(t, want, expand(t, src))
}

func TestMacroListBodyRewritten(t *testing.T) {
	src := `#[replace_float_literals(T::from(literal).unwrap())]
fn vector_of_floats<T: Float>() -> Vec<T> {
    vec![3.2, 5.7, 10.1]
}
`
	want := `fn vector_of_floats<T: Float>() -> Vec<T> {
    vec![T::from(3.2).unwrap(), T::from(5.7).unwrap(), T::from(10.1).unwrap()]
}
`
	require.Equal(t, want, expand(t, src))
}

func TestMacroSingleExprBodyRewritten(t *testing.T) {
	src := `#[replace_float_literals(T::from(literal).unwrap())]
fn check<T: Float>(x: T) {
    assert!(x > 3.0);
}
`
	want := `fn check<T: Float>(x: T) {
    assert!(x > T::from(3.0).unwrap());
}
`
	require.Equal(t, want, expand(t, src))
}

func TestMacroRepeatBodyRewritten(t *testing.T) {
	src := `#[replace_float_literals(T::from(literal).unwrap())]
fn repeated_scalar<T: Float>() -> Vec<T> {
    vec![0.5; 100]
}
`
	want := `fn repeated_scalar<T: Float>() -> Vec<T> {
    vec![T::from(0.5).unwrap(); 100]
}
`
	require.Equal(t, want, expand(t, src))
}

func TestVisitMacrosDisabled(t *testing.T) {
	src := `#[replace_float_literals(T::from(literal).unwrap(), visit_macros = false)]
fn repeated_scalar<T: Float>() -> Vec<T> {
    vec![0.5; 100]
}
`
	want := `fn repeated_scalar<T: Float>() -> Vec<T> {
    vec![0.5; 100]
}
`
	require.Equal(t, want, expand(t, src))
}

func TestUnrecognizedMacroBodyUntouched(t *testing.T) {
	src := `#[replace_float_literals(literal)]
fn f() {
    m!(=> 3.0);
}
`
	want := `fn f() {
    m!(=> 3.0);
}
`
	require.Equal(t, want, expand(t, src))
}

func TestRecognizedAttributesStrippedOthersKept(t *testing.T) {
	src := `#[inline]
#[replace_numeric_literals(T::from(literal))]
fn two<T>() -> T {
    2
}
`
	want := `#[inline]
fn two<T>() -> T {
    T::from(2)
}
`
	require.Equal(t, want, expand(t, src))
}

func TestTraitLevelAttributeAppliesToAllMethods(t *testing.T) {
	src := `#[replace_numeric_literals(T::from(literal))]
trait Pi<T> {
    fn tau(&self) -> T;

    fn approx(&self) -> T {
        22 / 7
    }
}
`
	want := `trait Pi<T> {
    fn tau(&self) -> T;

    fn approx(&self) -> T {
        T::from(22) / T::from(7)
    }
}
`
	require.Equal(t, want, expand(t, src))
}

func TestImplLevelAttribute(t *testing.T) {
	src := `#[replace_numeric_literals(T::from(literal))]
impl<T> Pi<T> for Circle<T> {
    fn approx(&self) -> T {
        22 / 7
    }
}
`
	want := `impl<T> Pi<T> for Circle<T> {
    fn approx(&self) -> T {
        T::from(22) / T::from(7)
    }
}
`
	require.Equal(t, want, expand(t, src))
}

func TestMethodLevelAttribute(t *testing.T) {
	src := `impl Circle {
    #[replace_numeric_literals(f64::from(literal))]
    fn approx(&self) -> f64 {
        22 / 7
    }

    fn untouched(&self) -> i32 {
        22 / 7
    }
}
`
	want := `impl Circle {
    fn approx(&self) -> f64 {
        f64::from(22) / f64::from(7)
    }

    fn untouched(&self) -> i32 {
        22 / 7
    }
}
`
	require.Equal(t, want, expand(t, src))
}

func TestNestedFnRewritten(t *testing.T) {
	src := `#[replace_int_literals(T::lit(literal))]
fn outer() {
    fn inner() -> i32 {
        7
    }
    inner();
}
`
	want := `fn outer() {
    fn inner() -> i32 {
        T::lit(7)
    }
    inner();
}
`
	require.Equal(t, want, expand(t, src))
}

func TestArrayLengthInTypeRewritten(t *testing.T) {
	src := `#[replace_int_literals(N::lit(literal))]
fn f(y: Y) {
    let x: [f64; 2] = y;
}
`
	want := `fn f(y: Y) {
    let x: [f64; N::lit(2)] = y;
}
`
	require.Equal(t, want, expand(t, src))
}

func TestControlFlowBodiesRewritten(t *testing.T) {
	src := `#[replace_int_literals(W::w(literal))]
fn f(n: i32) -> i32 {
    let mut acc = 0;
    while acc < n {
        acc = acc + 1;
    }
    if acc == n {
        return acc;
    }
    acc
}
`
	want := `fn f(n: i32) -> i32 {
    let mut acc = W::w(0);
    while acc < n {
        acc = acc + W::w(1);
    }
    if acc == n {
        return acc;
    }
    acc
}
`
	require.Equal(t, want, expand(t, src))
}

func TestEmptyArgsDiagnostic(t *testing.T) {
	for _, src := range []string{
		"#[replace_float_literals]\nfn f() {\n    1.0\n}\n",
		"#[replace_float_literals()]\nfn f() {\n    1.0\n}\n",
	} {
		out, diags := rewrite.ExpandSource(src, "input.rs")
		require.Len(t, diags, 1, "input %q", src)
		require.Equal(t, diag.CodeExpandEmptyArgs, diags[0].Code)
		require.Contains(t, out, "1.0", "item must stay unrewritten")
	}
}

func TestMalformedArgsDiagnostic(t *testing.T) {
	src := "#[replace_float_literals(fn)]\nfn f() {\n    1.0\n}\n"

	out, diags := rewrite.ExpandSource(src, "input.rs")
	require.Len(t, diags, 1)
	require.Equal(t, diag.CodeExpandBadArgs, diags[0].Code)
	require.Contains(t, out, "1.0")
}

func TestLaterFlagWins(t *testing.T) {
	src := `#[replace_float_literals(g(literal), visit_macros = false, visit_macros = true)]
fn f() {
    vec![1.5];
}
`
	want := `fn f() {
    vec![g(1.5)];
}
`
	require.Equal(t, want, expand(t, src))

	flipped := `#[replace_float_literals(g(literal), visit_macros = true, visit_macros = false)]
fn f() {
    vec![1.5];
}
`
	wantFlipped := `fn f() {
    vec![1.5];
}
`
	require.Equal(t, wantFlipped, expand(t, flipped))
}

func TestUnknownFlagsIgnored(t *testing.T) {
	src := `#[replace_float_literals(f(literal), frobnicate = true, visit_macros = 1)]
fn f() -> f64 {
    1.5
}
`
	want := `fn f() -> f64 {
    f(1.5)
}
`
	require.Equal(t, want, expand(t, src))
}

func TestParseErrorsAbortExpansion(t *testing.T) {
	out, diags := rewrite.ExpandSource("fn f( {", "input.rs")
	require.Empty(t, out)
	require.NotEmpty(t, diags)
	require.Equal(t, diag.StageParser, diags[0].Stage)
}
