package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats diagnostics in a Rust-style format with source code
// snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // Cache of source files by filename

	severityColors map[Severity]*color.Color
	gutterColor    *color.Color
}

// NewFormatter creates a formatter writing to out. Pass nil to write to
// stderr.
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stderr
	}
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
		severityColors: map[Severity]*color.Color{
			SeverityError:   color.New(color.FgRed, color.Bold),
			SeverityWarning: color.New(color.FgYellow, color.Bold),
			SeverityNote:    color.New(color.FgCyan, color.Bold),
		},
		gutterColor: color.New(color.FgBlue, color.Bold),
	}
}

// SetColor forces colored output on or off regardless of terminal detection.
func (f *Formatter) SetColor(enabled bool) {
	for _, c := range f.severityColors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if enabled {
		f.gutterColor.EnableColor()
	} else {
		f.gutterColor.DisableColor()
	}
}

// AddSource registers in-memory source text for a filename so snippets can
// be rendered without touching the filesystem.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format formats and prints a diagnostic in Rust-style format.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		f.printHelp(d)
		return
	}

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		f.printHelp(d)
		return
	}

	f.printSnippet(src, d)
	f.printHelp(d)
}

// printHeader prints the diagnostic header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}

	c, ok := f.severityColors[severity]
	if !ok {
		c = f.severityColors[SeverityError]
	}

	if d.Code != "" {
		c.Fprintf(f.out, "%s[%s]", severity, d.Code)
	} else {
		c.Fprintf(f.out, "%s", severity)
	}
	fmt.Fprintf(f.out, ": %s\n", d.Message)
}

// printSnippet prints the offending source line with a caret underline.
func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	if d.Span.Line < 1 || d.Span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		return
	}

	lineContent := lines[d.Span.Line-1]
	lineNumStr := fmt.Sprintf("%d", d.Span.Line)
	gutterWidth := len(lineNumStr)

	fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
	f.gutterColor.Fprintf(f.out, " %s |\n", strings.Repeat(" ", gutterWidth))
	f.gutterColor.Fprintf(f.out, " %s |", lineNumStr)
	fmt.Fprintf(f.out, " %s\n", lineContent)

	width := d.Span.End - d.Span.Start
	if width < 1 {
		width = 1
	}
	col := d.Span.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(lineContent) {
		col = len(lineContent)
	}
	if col+width > len(lineContent)+1 {
		width = len(lineContent) + 1 - col
		if width < 1 {
			width = 1
		}
	}

	f.gutterColor.Fprintf(f.out, " %s |", strings.Repeat(" ", gutterWidth))
	underline := strings.Repeat(" ", col) + strings.Repeat("^", width)
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	f.severityColors[severity].Fprintf(f.out, " %s\n", underline)
}

// printHelp prints notes and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}

	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
