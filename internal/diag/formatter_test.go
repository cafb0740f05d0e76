package diag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/diag"
)

func TestFormatWithSnippet(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)
	f.SetColor(false)
	f.AddSource("input.rs", "fn f() {\n    let x = $;\n}\n")

	f.Format(diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     diag.CodeLexerIllegalRune,
		Message:  `illegal character "$"`,
		Span: diag.Span{
			Filename: "input.rs",
			Line:     2,
			Column:   13,
			Start:    21,
			End:      22,
		},
	})

	out := buf.String()
	require.Contains(t, out, `error[LEXER_ILLEGAL_RUNE]: illegal character "$"`)
	require.Contains(t, out, "--> input.rs:2:13")
	require.Contains(t, out, "2 |     let x = $;")
	require.Contains(t, out, "^")
}

func TestFormatCaretAlignment(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)
	f.SetColor(false)
	f.AddSource("x.rs", "let q = 1;\n")

	f.Format(diag.Diagnostic{
		Severity: diag.SeverityError,
		Code:     diag.CodeParseError,
		Message:  "expected 'fn', 'trait' or 'impl'",
		Span:     diag.Span{Filename: "x.rs", Line: 1, Column: 1, Start: 0, End: 3},
	})

	lines := strings.Split(buf.String(), "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	require.Equal(t, "   | ^^^", caretLine)
}

func TestFormatNotesAndHelp(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)
	f.SetColor(false)

	d := diag.Diagnostic{
		Severity: diag.SeverityError,
		Code:     diag.CodeExpandEmptyArgs,
		Message:  "attribute 'replace_float_literals' requires a replacement expression",
	}
	d = d.WithNote("the argument list was empty")
	d = d.WithHelp("write a template containing the placeholder, e.g. #[replace_float_literals(T::from(literal))]")

	f.Format(d)

	out := buf.String()
	require.Contains(t, out, "= note: the argument list was empty")
	require.Contains(t, out, "help: write a template containing the placeholder")
}

func TestFormatWithoutSourceFallsBackToLocation(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)
	f.SetColor(false)

	f.Format(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Message:  "something looks off",
		Span:     diag.Span{Filename: "missing-file.rs", Line: 3, Column: 7},
	})

	out := buf.String()
	require.Contains(t, out, "warning: something looks off")
	require.Contains(t, out, "--> missing-file.rs:3:7")
}

func TestSpanString(t *testing.T) {
	require.Equal(t, "a.rs:1:2", diag.Span{Filename: "a.rs", Line: 1, Column: 2}.String())
	require.Equal(t, "1:2", diag.Span{Line: 1, Column: 2}.String())
	require.False(t, diag.Span{}.IsValid())
	require.True(t, diag.Span{Line: 1, Column: 1}.IsValid())
}
