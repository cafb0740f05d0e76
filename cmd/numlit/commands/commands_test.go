package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const annotatedSource = `#[replace_numeric_literals(T::from(literal))]
fn two<T>() -> T {
    2
}
`

const expandedSource = `fn two<T>() -> T {
    T::from(2)
}
`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOutputPath(t *testing.T) {
	require.Equal(t, "lib.expanded.rs", outputPath("lib.rs", ".expanded.rs"))
	require.Equal(t, "src/a.gen.rs", outputPath("src/a.rs", ".gen.rs"))
	require.Equal(t, "noext.expanded.rs", outputPath("noext", ".expanded.rs"))
}

func TestExpandWritesSiblingFile(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", input})
	var out, errOut strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, cmd.Execute(), "stderr: %s", errOut.String())

	data, err := os.ReadFile(filepath.Join(filepath.Dir(input), "two.expanded.rs"))
	require.NoError(t, err)
	require.Equal(t, expandedSource, string(data))

	// The input itself stays untouched.
	orig, err := os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, annotatedSource, string(orig))
}

func TestExpandToStdout(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", "-o", "-", input})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&strings.Builder{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, expandedSource, out.String())
}

func TestExpandInPlace(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", "-i", input})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	require.Equal(t, expandedSource, string(data))
}

func TestExpandCustomSuffix(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", "--suffix", ".gen.rs", input})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(filepath.Dir(input), "two.gen.rs"))
	require.NoError(t, err)
}

func TestExpandOutputRequiresSingleInput(t *testing.T) {
	a := writeInput(t, "a.rs", annotatedSource)
	b := writeInput(t, "b.rs", annotatedSource)

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"-o", "out.rs", a, b})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one input file")
}

func TestExpandReportsDiagnostics(t *testing.T) {
	input := writeInput(t, "bad.rs", "#[replace_float_literals()]\nfn f() {\n    1.0\n}\n")

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", input})
	cmd.SetOut(&strings.Builder{})
	var errOut strings.Builder
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "expansion failed for 1 file(s)")
	require.Contains(t, errOut.String(), "EXPAND_EMPTY_ATTRIBUTE_ARGS")
}

func TestExpandExampleFile(t *testing.T) {
	example := filepath.Join("..", "..", "..", "examples", "basic.rs")
	if _, err := os.Stat(example); err != nil {
		t.Skipf("example input not available: %v", err)
	}
	out := filepath.Join(t.TempDir(), "basic.expanded.rs")

	cmd := NewExpandCommand()
	cmd.SetArgs([]string{"--no-color", "-o", out, example})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := `fn fraction<T>() -> T
where
    T: From<i8> + Div<Output = T>,
{
    T::from(3) / T::from(2) / T::from(2)
}
`
	require.Equal(t, want, string(data))
}

func TestCheckReportsOk(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{"--no-color", input})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&strings.Builder{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), input+": ok")
}

func TestCheckFailsOnParseError(t *testing.T) {
	input := writeInput(t, "broken.rs", "fn f( {\n")

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{"--no-color", input})
	cmd.SetOut(&strings.Builder{})
	var errOut strings.Builder
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "check failed for 1 file(s)")
	require.NotEmpty(t, errOut.String())
}

func TestCheckDoesNotWriteFiles(t *testing.T) {
	input := writeInput(t, "two.rs", annotatedSource)

	cmd := NewCheckCommand()
	cmd.SetArgs([]string{"--no-color", input})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
