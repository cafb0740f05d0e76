package rewrite

import (
	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/parser"
	"github.com/Andlon/numeric-literals/internal/printer"
)

// Mode selects which literal kinds an attribute rewrites.
type Mode int

const (
	// ModeNumeric rewrites both integer and float literals.
	ModeNumeric Mode = iota
	// ModeFloat rewrites float literals only.
	ModeFloat
	// ModeInt rewrites integer literals only.
	ModeInt
)

// The attribute names recognized by the expander.
const (
	AttrNumeric = "replace_numeric_literals"
	AttrFloat   = "replace_float_literals"
	AttrInt     = "replace_int_literals"
)

func attrMode(name string) (Mode, bool) {
	switch name {
	case AttrNumeric:
		return ModeNumeric, true
	case AttrFloat:
		return ModeFloat, true
	case AttrInt:
		return ModeInt, true
	default:
		return 0, false
	}
}

// newModeRewriter binds the parsed attribute arguments to the literal
// kinds the mode covers.
func newModeRewriter(mode Mode, args *Args) *Rewriter {
	var intTemplate, floatTemplate ast.Expr
	switch mode {
	case ModeNumeric:
		intTemplate = args.Template
		floatTemplate = args.Template
	case ModeFloat:
		floatTemplate = args.Template
	case ModeInt:
		intTemplate = args.Template
	}
	return NewRewriter(intTemplate, floatTemplate, args.Flags.VisitMacros)
}

// Expand walks the file, rewriting every item that carries a recognized
// replacement attribute and stripping those attributes afterwards.
// Attributes it does not recognize are preserved untouched. Malformed
// attribute arguments produce diagnostics and leave the item unrewritten.
func Expand(file *ast.File) []diag.Diagnostic {
	var diags []diag.Diagnostic
	for _, item := range file.Items {
		diags = append(diags, expandItem(item)...)
	}
	return diags
}

func expandItem(item ast.Item) []diag.Diagnostic {
	var diags []diag.Diagnostic

	switch n := item.(type) {
	case *ast.FnDecl:
		n.Attrs = applyAttrs(n.Attrs, &diags, func(r *Rewriter) {
			r.RewriteFn(n)
		})

	case *ast.TraitDecl:
		n.Attrs = applyAttrs(n.Attrs, &diags, func(r *Rewriter) {
			for _, method := range n.Methods {
				r.RewriteFn(method)
			}
		})
		for _, method := range n.Methods {
			m := method
			m.Attrs = applyAttrs(m.Attrs, &diags, func(r *Rewriter) {
				r.RewriteFn(m)
			})
		}

	case *ast.ImplDecl:
		n.Attrs = applyAttrs(n.Attrs, &diags, func(r *Rewriter) {
			for _, method := range n.Methods {
				r.RewriteFn(method)
			}
		})
		for _, method := range n.Methods {
			m := method
			m.Attrs = applyAttrs(m.Attrs, &diags, func(r *Rewriter) {
				r.RewriteFn(m)
			})
		}
	}

	return diags
}

// applyAttrs runs every recognized replacement attribute through apply and
// returns the attributes that remain attached to the item.
func applyAttrs(attrs []*ast.Attribute, diags *[]diag.Diagnostic, apply func(*Rewriter)) []*ast.Attribute {
	var kept []*ast.Attribute

	for _, attr := range attrs {
		mode, ok := attrMode(attr.Name.Name)
		if !ok {
			kept = append(kept, attr)
			continue
		}

		args, ds := ParseArgs(attr)
		if len(ds) > 0 {
			*diags = append(*diags, ds...)
			continue
		}

		apply(newModeRewriter(mode, args))
	}

	return kept
}

// ExpandSource parses, expands and reprints a whole source text. On parse
// errors the input is considered unprocessable and an empty string is
// returned alongside the diagnostics.
func ExpandSource(src, filename string) (string, []diag.Diagnostic) {
	p := parser.New(src, parser.WithFilename(filename))
	file := p.ParseFile()

	var diags []diag.Diagnostic
	for _, perr := range p.Errors() {
		diags = append(diags, perr.ToDiagnostic())
	}
	if hasErrors(diags) {
		return "", diags
	}

	diags = append(diags, Expand(file)...)
	return printer.Print(file), diags
}

func hasErrors(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
