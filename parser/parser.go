package parser

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	interp "github.com/havrydotdev/classbox/interpreter"
	"github.com/havrydotdev/classbox/token"
)

const maxArgs = 255

var ErrSyntax = errors.New("syntax error")

// SyntaxError is reported for each statement that fails to parse.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Parser is a recursive descent parser that builds programs through an
// interp.Alg, so the same grammar feeds the evaluator and the printer.
type Parser[E any, S any] struct {
	tokens  []token.Token
	current int
	errors  []error

	alg interp.Alg[E, S]
}

func New[E any, S any](tokens []token.Token, alg interp.Alg[E, S]) *Parser[E, S] {
	return &Parser[E, S]{tokens: tokens, alg: alg}
}

// Parse returns the statements that parsed and one error for each that
// did not. After an error the parser skips to the next statement.
func (p *Parser[E, S]) Parse() ([]S, []error) {
	var stmts []S
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, p.errors
}

// synchronize skips past the statement that failed to parse.
func (p *Parser[E, S]) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.For, token.If, token.While,
			token.IntType, token.RealType, token.BoolType, token.StringType:
			return
		}

		p.advance()
	}
}

func (p *Parser[E, S]) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.peek().Line, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser[E, S]) expect(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.errorf("%s", message)
}

func (p *Parser[E, S]) match(kinds ...token.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}

	return false
}

func (p *Parser[E, S]) check(kind token.Kind) bool {
	return !p.isAtEnd() && p.peek().Kind == kind
}

func (p *Parser[E, S]) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser[E, S]) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser[E, S]) peek() token.Token {
	return p.peekAt(0)
}

// peekAt looks n tokens past the current one, stopping at Eof.
func (p *Parser[E, S]) peekAt(n int) token.Token {
	if i := p.current + n; i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *Parser[E, S]) previous() token.Token {
	return p.tokens[p.current-1]
}
