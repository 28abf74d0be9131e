package parser

import (
	interp "github.com/havrydotdev/classbox/interpreter"
	"github.com/havrydotdev/classbox/token"
)

func (p *Parser[E, S]) declaration() (S, error) {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.atVarDeclaration():
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// atVarDeclaration reports whether the next tokens start a typed
// declaration: a type keyword, or a class name followed by a variable name.
func (p *Parser[E, S]) atVarDeclaration() bool {
	kind := p.peek().Kind
	if kind == token.Identifier {
		return p.peekAt(1).Kind == token.Identifier
	}

	return kind.IsType()
}

// classDeclaration parses the rest of
//
//	class Name (extends Parent)? { type a, b; ... }
func (p *Parser[E, S]) classDeclaration() (S, error) {
	name, err := p.expect(token.Identifier, "expected class name.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	var parent *token.Token
	if p.match(token.Extends) {
		super, err := p.expect(token.Identifier, "expected parent class name after 'extends'.")
		if err != nil {
			return p.alg.NilStmt(), err
		}

		parent = &super
	}

	if _, err := p.expect(token.LeftBrace, "expected '{' before class body."); err != nil {
		return p.alg.NilStmt(), err
	}

	var fields []interp.Field
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		group, err := p.fieldGroup()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		fields = append(fields, group...)
	}

	if _, err := p.expect(token.RightBrace, "expected '}' after class body."); err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Class(name, parent, fields), nil
}

// fieldGroup parses "type a, b, c;".
func (p *Parser[E, S]) fieldGroup() ([]interp.Field, error) {
	if !p.peek().Kind.IsType() {
		return nil, p.errorf("expected field type, got '%s'.", p.peek().Lexeme)
	}
	typ := p.advance()

	var fields []interp.Field
	for {
		name, err := p.expect(token.Identifier, "expected field name.")
		if err != nil {
			return nil, err
		}

		fields = append(fields, interp.Field{Type: typ, Name: name})

		if !p.match(token.Comma) {
			break
		}
	}

	_, err := p.expect(token.Semicolon, "expected ';' after field declaration.")
	return fields, err
}

func (p *Parser[E, S]) varDeclaration() (S, error) {
	typ := p.advance()

	name, err := p.expect(token.Identifier, "expected variable name.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	var init *E
	if p.match(token.Equal) {
		expr, err := p.expression()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		init = &expr
	}

	if _, err := p.expect(token.Semicolon, "expected ';' after variable declaration."); err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Var(typ, name, init), nil
}
