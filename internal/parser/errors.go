package parser

import (
	"github.com/Andlon/numeric-literals/internal/diag"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// reportError records a recoverable diagnostic without aborting parsing.
// All call sites must supply the best-effort span available at the failure
// site.
func (p *Parser) reportError(msg string, span lexer.Span) {
	p.emitParseDiagnostic(msg, span, diag.SeverityError)
}

func (p *Parser) emitParseDiagnostic(msg string, span lexer.Span, severity diag.Severity) {
	span = p.spanWithFilename(span)
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: severity,
	})
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}
