package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune or original string
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Raw   string // exact bytes/runes from source
	Value string // decoded value (for strings, same as Raw for others)
	Span  Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT      TokenType = "IDENT"      // add, literal, T, ...
	INT        TokenType = "INT"        // 42, 0xff, 1_000, 42u8
	FLOAT      TokenType = "FLOAT"      // 3.14, 1e9, 2.5f32, 3f64
	STRING     TokenType = "STRING"     // "hello"
	RAWSTRING  TokenType = "RAWSTRING"  // r"raw", r#"raw"#
	BYTESTRING TokenType = "BYTESTRING" // b"bytes"
	BYTE       TokenType = "BYTE"       // b'a'
	CHAR       TokenType = "CHAR"       // 'a'

	// Operators
	ASSIGN    TokenType = "="
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	BANG      TokenType = "!"
	AMPERSAND TokenType = "&"
	REF_MUT   TokenType = "&mut" // Synthetic token for mutable reference
	PIPE      TokenType = "|"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	PERCENT   TokenType = "%"
	AND       TokenType = "&&"
	OR        TokenType = "||"
	QUESTION  TokenType = "?"

	LT     TokenType = "<"
	GT     TokenType = ">"
	EQ     TokenType = "=="
	NOT_EQ TokenType = "!="
	LE     TokenType = "<="
	GE     TokenType = ">="

	// Delimiters
	COMMA        TokenType = ","
	SEMICOLON    TokenType = ";"
	COLON        TokenType = ":"
	DOUBLE_COLON TokenType = "::"
	DOT          TokenType = "."
	DOTDOT       TokenType = ".."
	POUND        TokenType = "#"

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	ARROW    TokenType = "->"
	FATARROW TokenType = "=>"

	// Keywords
	FN     TokenType = "FN"
	TRAIT  TokenType = "TRAIT"
	IMPL   TokenType = "IMPL"
	FOR    TokenType = "FOR"
	WHERE  TokenType = "WHERE"
	AS     TokenType = "AS"
	LET    TokenType = "LET"
	MUT    TokenType = "MUT"
	RETURN TokenType = "RETURN"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	WHILE  TokenType = "WHILE"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"fn":     FN,
	"trait":  TRAIT,
	"impl":   IMPL,
	"for":    FOR,
	"where":  WHERE,
	"as":     AS,
	"let":    LET,
	"mut":    MUT,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsLiteral reports whether the token type denotes a literal constant.
func IsLiteral(tt TokenType) bool {
	switch tt {
	case INT, FLOAT, STRING, RAWSTRING, BYTESTRING, BYTE, CHAR, TRUE, FALSE:
		return true
	default:
		return false
	}
}
