package rewrite

import (
	"strings"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/lexer"
	"github.com/Andlon/numeric-literals/internal/parser"
)

// Placeholder is the identifier that marks literal insertion points inside
// replacement templates.
const Placeholder = "literal"

// Flags holds the optional boolean flags that may follow the replacement
// template in the attribute arguments.
type Flags struct {
	// VisitMacros controls whether the rewriter descends into the bodies
	// of macro invocations. Defaults to true.
	VisitMacros bool
}

// Args is the parsed form of an attribute's argument list: a replacement
// template followed by zero or more name = value flags.
type Args struct {
	Template ast.Expr
	Flags    Flags
}

// ParseArgs parses the raw argument text of a replacement attribute. The
// first expression is the replacement template; trailing assignments of the
// form visit_macros = true|false set flags, with later occurrences winning.
// Anything else in flag position is ignored.
func ParseArgs(attr *ast.Attribute) (*Args, []diag.Diagnostic) {
	span := toDiagSpan(attr.Span())

	if strings.TrimSpace(attr.Raw) == "" {
		d := diag.Diagnostic{
			Stage:    diag.StageExpand,
			Severity: diag.SeverityError,
			Code:     diag.CodeExpandEmptyArgs,
			Message:  "attribute '" + attr.Name.Name + "' requires a replacement expression",
			Span:     span,
		}.WithHelp("write a template containing the placeholder, e.g. #[" + attr.Name.Name + "(T::from(literal))]")
		return nil, []diag.Diagnostic{d}
	}

	p := parser.New(attr.Raw)
	exprs := p.ParseExprList()
	if exprs == nil || len(p.Errors()) > 0 {
		d := diag.Diagnostic{
			Stage:    diag.StageExpand,
			Severity: diag.SeverityError,
			Code:     diag.CodeExpandBadArgs,
			Message:  "attribute '" + attr.Name.Name + "' has malformed arguments",
			Span:     span,
		}
		for _, perr := range p.Errors() {
			d = d.WithNote(perr.Message)
		}
		return nil, []diag.Diagnostic{d}
	}

	args := &Args{
		Template: exprs[0],
		Flags:    Flags{VisitMacros: true},
	}

	for _, expr := range exprs[1:] {
		assign, ok := expr.(*ast.AssignExpr)
		if !ok {
			continue
		}
		path, ok := assign.Target.(*ast.PathExpr)
		if !ok || len(path.Segments) != 1 {
			continue
		}
		value, ok := assign.Value.(*ast.BoolLit)
		if !ok {
			continue
		}

		if path.Segments[0].Name.Name == "visit_macros" {
			args.Flags.VisitMacros = value.Value
		}
	}

	return args, nil
}

func toDiagSpan(span lexer.Span) diag.Span {
	return diag.Span{
		Filename: span.Filename,
		Line:     span.Line,
		Column:   span.Column,
		Start:    span.Start,
		End:      span.End,
	}
}
