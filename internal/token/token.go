package token

import "fmt"

// Token is a single lexical unit: its kind, the exact source slice it came
// from, an optional decoded literal value, and the 1-based line it starts
// on. Line is preserved on every token that an AST node might later carry
// into a diagnostic.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any // float64, string, bool, or nil
	Line    int
}

// New builds a Token with no literal value, for punctuation and keywords.
func New(typ Type, lexeme string, line int) Token {
	return Token{Type: typ, Lexeme: lexeme, Line: line}
}

// String renders the token the way a `tokenize` dump does: type, lexeme,
// and literal ("null" when absent).
func (t Token) String() string {
	lit := "null"
	if t.Literal != nil {
		lit = fmt.Sprintf("%v", t.Literal)
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, lit)
}
