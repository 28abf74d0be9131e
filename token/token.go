package token

import "fmt"

type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%v %q (line %d)", t.Kind, t.Lexeme, t.Line)
	}

	return fmt.Sprintf("%v %q %v (line %d)", t.Kind, t.Lexeme, t.Literal, t.Line)
}
