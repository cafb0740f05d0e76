package parser

import (
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// commaList holds the elements of a comma-separated sequence plus whether
// it ended with a trailing comma. The trailing flag matters for
// parenthesized forms: (T) is a grouping while (T,) is a one-element tuple.
type commaList[T any] struct {
	items    []T
	trailing bool
}

// parseCommaList parses elements separated by commas up to closing. It is
// entered with curTok on the first element and leaves curTok on closing on
// success. Empty sequences never reach it: every bracketed form in the
// grammar peeks for the closing token before committing to a list.
func parseCommaList[T any](p *Parser, closing lexer.TokenType, allowTrailing bool, elemMsg string, parseElem func() (T, bool)) (commaList[T], bool) {
	var list commaList[T]

	for {
		elem, ok := parseElem()
		if !ok {
			return list, false
		}
		list.items = append(list.items, elem)

		switch p.peekTok.Type {
		case lexer.COMMA:
			p.nextToken() // onto the comma
			p.nextToken() // onto the next element, or closing
			if p.curTok.Type != closing {
				continue
			}
			if !allowTrailing {
				p.reportError(elemMsg, p.curTok.Span)
				return list, false
			}
			list.trailing = true
			return list, true
		case closing:
			p.nextToken()
			return list, true
		default:
			p.reportError("expected ',' or '"+string(closing)+"'", p.peekTok.Span)
			return list, false
		}
	}
}
