package lexer

import (
	"strconv"
	"unicode"

	"github.com/Andlon/numeric-literals/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnterminatedString LexerErrorKind = iota
	ErrUnterminatedChar
	ErrUnterminatedRawString
	ErrUnterminatedBlockComment
	ErrIllegalRune
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedChar:
		return diag.CodeLexerUnterminatedChar
	case ErrUnterminatedRawString:
		return diag.CodeLexerUnterminatedRawString
	case ErrUnterminatedBlockComment:
		return diag.CodeLexerUnterminatedBlockComment
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer represents the lexer state
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently emitted spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// read advances the lexer to the next character.
// Line/column tracking: line/column always reflect the position of the
// character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// We've moved past the last rune; normalize position to virtual EOF
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			// Empty input: column should point to the first position
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	if prevPos >= 0 && prevPos < inputLen && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// peekAt returns the character n runes ahead without advancing
func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

// currentSpanStart returns the current position for span tracking
func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw, value string) Token {
	return Token{
		Type:  tokType,
		Raw:   raw,
		Value: value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// skipLineComment skips a line comment whose "//" was already consumed.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.read()
	}
}

// skipBlockComment skips a (possibly nested) block comment whose "/*" was
// already consumed.
func (l *Lexer) skipBlockComment(startLine, startColumn, startPos int) {
	depth := 1
	for depth > 0 {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedBlockComment,
				"unterminated block comment",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return
		}
		if l.ch == '/' && l.peek() == '*' {
			l.read()
			l.read()
			depth++
		} else if l.ch == '*' && l.peek() == '/' {
			l.read()
			l.read()
			depth--
		} else {
			l.read()
		}
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a numeric literal: decimal, hex 0x..., binary 0b...,
// floats with fraction and/or exponent, and an optional type suffix.
// The token kind is decided by lexical shape alone: a fraction, an exponent,
// or an f32/f64 suffix makes the literal a FLOAT, everything else is an INT.
// A literal like 3f64 is therefore a float even without a decimal point.
func (l *Lexer) readNumber() (string, TokenType) {
	start := l.pos
	isFloat := false

	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X' || l.peek() == 'b' || l.peek() == 'B') {
		prefix := l.peek()
		l.read() // consume '0'
		l.read() // consume prefix
		if prefix == 'x' || prefix == 'X' {
			for isHexDigit(l.ch) || l.ch == '_' {
				l.read()
			}
		} else {
			for l.ch == '0' || l.ch == '1' || l.ch == '_' {
				l.read()
			}
		}
		// Integer suffix may follow (0xffu8). Hex digits were already
		// consumed above, so anything left is suffix text.
		for isLetter(l.ch) || isDigit(l.ch) {
			l.read()
		}
		return string(l.input[start:l.pos]), INT
	}

	for isDigit(l.ch) || l.ch == '_' {
		l.read()
	}

	// Fraction: only when the dot is followed by a digit, so that method
	// calls on integers (1.max(2)) and ranges (0..n) keep their dots.
	if l.ch == '.' && isDigit(l.peek()) {
		isFloat = true
		l.read() // consume '.'
		for isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
	}

	// Trailing-dot form (3.): the dot belongs to the literal only when it
	// cannot start a range (3..) or a method or field access (3.max).
	if !isFloat && l.ch == '.' && l.peek() != '.' && !isLetter(l.peek()) {
		l.read() // consume '.'
		return string(l.input[start:l.pos]), FLOAT
	}

	// Exponent
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peek()) || ((l.peek() == '+' || l.peek() == '-') && isDigit(l.peekAt(2)))) {
		isFloat = true
		l.read() // consume 'e' or 'E'
		if l.ch == '+' || l.ch == '-' {
			l.read()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
	}

	// Type suffix: 42u8, 3f64, 2.5f32, ...
	if isLetter(l.ch) {
		suffixStart := l.pos
		for isLetter(l.ch) || isDigit(l.ch) {
			l.read()
		}
		suffix := string(l.input[suffixStart:l.pos])
		if suffix == "f32" || suffix == "f64" {
			isFloat = true
		}
	}

	if isFloat {
		return string(l.input[start:l.pos]), FLOAT
	}
	return string(l.input[start:l.pos]), INT
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		startLine, startColumn, startPos := l.currentSpanStart()

		switch l.ch {
		case 0:
			if startColumn == 0 {
				startColumn = 1
			}
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '=':
			if l.peek() == '=' {
				return l.twoRuneToken(EQ, startLine, startColumn, startPos)
			}
			if l.peek() == '>' {
				return l.twoRuneToken(FATARROW, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(ASSIGN, startLine, startColumn, startPos)

		case '+':
			return l.oneRuneToken(PLUS, startLine, startColumn, startPos)

		case '-':
			if l.peek() == '>' {
				return l.twoRuneToken(ARROW, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(MINUS, startLine, startColumn, startPos)

		case '!':
			if l.peek() == '=' {
				return l.twoRuneToken(NOT_EQ, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(BANG, startLine, startColumn, startPos)

		case '&':
			if l.peek() == '&' {
				return l.twoRuneToken(AND, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(AMPERSAND, startLine, startColumn, startPos)

		case '|':
			if l.peek() == '|' {
				return l.twoRuneToken(OR, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(PIPE, startLine, startColumn, startPos)

		case '*':
			return l.oneRuneToken(ASTERISK, startLine, startColumn, startPos)

		case '%':
			return l.oneRuneToken(PERCENT, startLine, startColumn, startPos)

		case '?':
			return l.oneRuneToken(QUESTION, startLine, startColumn, startPos)

		case '/':
			switch l.peek() {
			case '/':
				l.read()
				l.read()
				l.skipLineComment()
				continue
			case '*':
				l.read()
				l.read()
				l.skipBlockComment(startLine, startColumn, startPos)
				continue
			default:
				return l.oneRuneToken(SLASH, startLine, startColumn, startPos)
			}

		case '<':
			if l.peek() == '=' {
				return l.twoRuneToken(LE, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(LT, startLine, startColumn, startPos)

		case '>':
			if l.peek() == '=' {
				return l.twoRuneToken(GE, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(GT, startLine, startColumn, startPos)

		case ';':
			return l.oneRuneToken(SEMICOLON, startLine, startColumn, startPos)

		case ',':
			return l.oneRuneToken(COMMA, startLine, startColumn, startPos)

		case ':':
			if l.peek() == ':' {
				return l.twoRuneToken(DOUBLE_COLON, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(COLON, startLine, startColumn, startPos)

		case '.':
			if l.peek() == '.' {
				return l.twoRuneToken(DOTDOT, startLine, startColumn, startPos)
			}
			return l.oneRuneToken(DOT, startLine, startColumn, startPos)

		case '#':
			return l.oneRuneToken(POUND, startLine, startColumn, startPos)

		case '"':
			raw, value, terminated := l.readString(startLine, startColumn, startPos)
			if !terminated {
				return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
			}
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, raw, value)

		case '\'':
			raw, value, terminated := l.readChar(startLine, startColumn, startPos)
			if !terminated {
				return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
			}
			return l.makeToken(CHAR, startLine, startColumn, startPos, l.pos, raw, value)

		case '(':
			return l.oneRuneToken(LPAREN, startLine, startColumn, startPos)

		case ')':
			return l.oneRuneToken(RPAREN, startLine, startColumn, startPos)

		case '{':
			return l.oneRuneToken(LBRACE, startLine, startColumn, startPos)

		case '}':
			return l.oneRuneToken(RBRACE, startLine, startColumn, startPos)

		case '[':
			return l.oneRuneToken(LBRACKET, startLine, startColumn, startPos)

		case ']':
			return l.oneRuneToken(RBRACKET, startLine, startColumn, startPos)

		default:
			// Byte and byte-string literals share their first rune with
			// identifiers, so they must be checked before readIdentifier.
			if l.ch == 'b' && l.peek() == '\'' {
				l.read() // consume 'b'
				raw, value, terminated := l.readChar(startLine, startColumn, startPos)
				raw = "b" + raw
				if !terminated {
					return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
				}
				return l.makeToken(BYTE, startLine, startColumn, startPos, l.pos, raw, value)
			}
			if l.ch == 'b' && l.peek() == '"' {
				l.read() // consume 'b'
				raw, value, terminated := l.readString(startLine, startColumn, startPos)
				raw = "b" + raw
				if !terminated {
					return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
				}
				return l.makeToken(BYTESTRING, startLine, startColumn, startPos, l.pos, raw, value)
			}
			if l.ch == 'r' && (l.peek() == '"' || (l.peek() == '#' && l.rawStringAhead())) {
				raw, value, terminated := l.readRawString(startLine, startColumn, startPos)
				if !terminated {
					return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
				}
				return l.makeToken(RAWSTRING, startLine, startColumn, startPos, l.pos, raw, value)
			}

			if isLetter(l.ch) {
				literal := l.readIdentifier()
				tokType := LookupIdent(literal)
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
			} else if isDigit(l.ch) {
				literal, tokType := l.readNumber()
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal, literal)
			} else {
				raw := string(l.ch)
				l.read()
				tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
				l.addError(
					ErrIllegalRune,
					"illegal character "+strconv.Quote(raw),
					tok.Span,
				)
				return tok
			}
		}
	}
}

func (l *Lexer) oneRuneToken(tt TokenType, startLine, startColumn, startPos int) Token {
	raw := string(l.ch)
	l.read()
	return l.makeToken(tt, startLine, startColumn, startPos, l.pos, raw, raw)
}

func (l *Lexer) twoRuneToken(tt TokenType, startLine, startColumn, startPos int) Token {
	raw := string(l.ch)
	l.read()
	raw += string(l.ch)
	l.read()
	return l.makeToken(tt, startLine, startColumn, startPos, l.pos, raw, raw)
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

// isHexDigit checks if a rune is a hexadecimal digit
func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

// rawStringAhead reports whether the runes after the current 'r' form the
// opening of a hashed raw string (r#"..., r##"..., and so on).
func (l *Lexer) rawStringAhead() bool {
	n := 1
	for l.peekAt(n) == '#' {
		n++
	}
	return l.peekAt(n) == '"'
}

// readString reads a string literal, handling escape sequences.
// Returns both raw (with escapes and quotes) and decoded values, along with
// a flag indicating whether the string was properly terminated.
func (l *Lexer) readString(startLine, startColumn, startPos int) (raw string, value string, terminated bool) {
	var rawRunes []rune
	var decodedRunes []rune

	rawRunes = append(rawRunes, '"')
	l.read() // skip opening quote

	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedString,
				"unterminated string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			break
		}
		if l.ch == '"' {
			rawRunes = append(rawRunes, '"')
			l.read() // consume closing quote
			return string(rawRunes), string(decodedRunes), true
		}
		if l.ch == '\n' || l.ch == '\r' {
			l.addError(
				ErrUnterminatedString,
				"newline in string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			break
		}
		if l.ch == '\\' {
			rawRunes = append(rawRunes, '\\')
			l.read() // skip '\'
			if l.ch != 0 {
				rawRunes = append(rawRunes, l.ch)
				decodedRunes = append(decodedRunes, decodeEscape(l.ch)...)
				l.read()
			}
			continue
		}
		rawRunes = append(rawRunes, l.ch)
		decodedRunes = append(decodedRunes, l.ch)
		l.read()
	}

	return string(rawRunes), string(decodedRunes), false
}

func decodeEscape(ch rune) []rune {
	switch ch {
	case 'n':
		return []rune{'\n'}
	case 't':
		return []rune{'\t'}
	case 'r':
		return []rune{'\r'}
	case '0':
		return []rune{0}
	case '\\':
		return []rune{'\\'}
	case '\'':
		return []rune{'\''}
	case '"':
		return []rune{'"'}
	default:
		// Unknown escapes keep the backslash and the character.
		return []rune{'\\', ch}
	}
}

// readChar reads a character literal: 'a', '\n', '\\'. Called with l.ch on
// the opening quote.
func (l *Lexer) readChar(startLine, startColumn, startPos int) (raw string, value string, terminated bool) {
	rawRunes := []rune{'\''}
	var decoded []rune

	l.read() // skip opening quote

	if l.ch == '\\' {
		rawRunes = append(rawRunes, '\\')
		l.read()
		if l.ch != 0 {
			rawRunes = append(rawRunes, l.ch)
			decoded = decodeEscape(l.ch)
			l.read()
		}
	} else if l.ch != 0 && l.ch != '\'' {
		rawRunes = append(rawRunes, l.ch)
		decoded = []rune{l.ch}
		l.read()
	}

	if l.ch != '\'' {
		l.addError(
			ErrUnterminatedChar,
			"unterminated character literal",
			Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
		)
		return string(rawRunes), string(decoded), false
	}

	rawRunes = append(rawRunes, '\'')
	l.read() // consume closing quote
	return string(rawRunes), string(decoded), true
}

// readRawString reads r"..." or r#"..."# with any number of hashes. No
// escape processing happens inside a raw string.
func (l *Lexer) readRawString(startLine, startColumn, startPos int) (raw string, value string, terminated bool) {
	rawRunes := []rune{'r'}
	l.read() // consume 'r'

	hashes := 0
	for l.ch == '#' {
		rawRunes = append(rawRunes, '#')
		hashes++
		l.read()
	}

	rawRunes = append(rawRunes, '"')
	l.read() // consume opening quote

	var body []rune
	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedRawString,
				"unterminated raw string literal",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return string(append(rawRunes, body...)), string(body), false
		}
		if l.ch == '"' && l.hashesFollow(hashes) {
			rawRunes = append(rawRunes, body...)
			rawRunes = append(rawRunes, '"')
			l.read() // consume closing quote
			for i := 0; i < hashes; i++ {
				rawRunes = append(rawRunes, '#')
				l.read()
			}
			return string(rawRunes), string(body), true
		}
		body = append(body, l.ch)
		l.read()
	}
}

// hashesFollow reports whether n '#' runes follow the current position.
func (l *Lexer) hashesFollow(n int) bool {
	for i := 1; i <= n; i++ {
		if l.peekAt(i) != '#' {
			return false
		}
	}
	return true
}
