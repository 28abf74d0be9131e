package parser

import "github.com/havrydotdev/classbox/token"

// Binary operator levels, loosest first. Every level is left associative.
var levels = []struct {
	ops     []token.Kind
	logical bool
}{
	{ops: []token.Kind{token.Or}, logical: true},
	{ops: []token.Kind{token.And}, logical: true},
	{ops: []token.Kind{token.BangEqual, token.EqualEqual}},
	{ops: []token.Kind{token.Greater, token.GreaterEqual, token.Less, token.LessEqual}},
	{ops: []token.Kind{token.Minus, token.Plus}},
	{ops: []token.Kind{token.Slash, token.Star}},
}

func (p *Parser[E, S]) expression() (E, error) {
	return p.assignment()
}

// assignTarget looks ahead for "name (. name)* =" and returns the names.
func (p *Parser[E, S]) assignTarget() ([]token.Token, bool) {
	var path []token.Token
	for i := 0; ; i += 2 {
		name := p.peekAt(i)
		if name.Kind != token.Identifier {
			return nil, false
		}

		path = append(path, name)

		switch p.peekAt(i + 1).Kind {
		case token.Equal:
			return path, true
		case token.Dot:
			continue
		default:
			return nil, false
		}
	}
}

// assignment is right associative: a = b.c = 1 assigns b.c first.
func (p *Parser[E, S]) assignment() (E, error) {
	path, ok := p.assignTarget()
	if !ok {
		return p.binary(0)
	}

	// skip the names, the dots and the '='
	p.current += 2 * len(path)

	rhs, err := p.assignment()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	last := len(path) - 1
	if last == 0 {
		return p.alg.Assign(path[0], rhs), nil
	}

	object := p.alg.Variable(path[0])
	for _, name := range path[1:last] {
		object = p.alg.Get(name, object)
	}

	return p.alg.Set(object, path[last], rhs), nil
}

func (p *Parser[E, S]) binary(level int) (E, error) {
	if level == len(levels) {
		return p.unary()
	}

	expr, err := p.binary(level + 1)
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for p.match(levels[level].ops...) {
		op := p.previous()
		right, err := p.binary(level + 1)
		if err != nil {
			return p.alg.NilExpr(), err
		}

		if levels[level].logical {
			expr = p.alg.Logical(op, expr, right)
		} else {
			expr = p.alg.Binary(op, expr, right)
		}
	}

	return expr, nil
}

func (p *Parser[E, S]) unary() (E, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.call()
	}

	op := p.previous()
	right, err := p.unary()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	return p.alg.Unary(op, right), nil
}

// call parses a primary followed by any mix of calls and field reads.
func (p *Parser[E, S]) call() (E, error) {
	expr, err := p.primary()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for {
		switch {
		case p.match(token.LeftParen):
			if expr, err = p.arguments(expr); err != nil {
				return p.alg.NilExpr(), err
			}
		case p.match(token.Dot):
			name, err := p.expect(token.Identifier, "expected field name after '.'.")
			if err != nil {
				return p.alg.NilExpr(), err
			}

			expr = p.alg.Get(name, expr)
		default:
			return expr, nil
		}
	}
}

func (p *Parser[E, S]) arguments(callee E) (E, error) {
	var args []E
	for !p.check(token.RightParen) {
		if len(args) >= maxArgs {
			return p.alg.NilExpr(), p.errorf("can't have more than %d arguments.", maxArgs)
		}

		arg, err := p.expression()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		args = append(args, arg)

		if !p.match(token.Comma) {
			break
		}
	}

	paren, err := p.expect(token.RightParen, "expected ')' after arguments.")
	if err != nil {
		return p.alg.NilExpr(), err
	}

	return p.alg.Call(callee, paren, args), nil
}

func (p *Parser[E, S]) primary() (E, error) {
	switch {
	case p.match(token.Identifier):
		return p.alg.Variable(p.previous()), nil
	case p.match(token.False):
		return p.alg.Literal(false), nil
	case p.match(token.True):
		return p.alg.Literal(true), nil
	case p.match(token.Null):
		return p.alg.Literal(nil), nil
	case p.match(token.Int, token.Real, token.String):
		return p.alg.Literal(p.previous().Literal), nil
	case p.match(token.NewKw):
		return p.newExpr()
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		if _, err := p.expect(token.RightParen, "expected ')' after expression."); err != nil {
			return p.alg.NilExpr(), err
		}

		return p.alg.Grouping(expr), nil
	}

	return p.alg.NilExpr(), p.errorf("unexpected token '%s'", p.peek().Lexeme)
}

// newExpr parses "new Name" with optional empty parentheses.
func (p *Parser[E, S]) newExpr() (E, error) {
	class, err := p.expect(token.Identifier, "expected class name after 'new'.")
	if err != nil {
		return p.alg.NilExpr(), err
	}

	if p.match(token.LeftParen) {
		if _, err := p.expect(token.RightParen, "expected ')' after 'new "+class.Lexeme+"('."); err != nil {
			return p.alg.NilExpr(), err
		}
	}

	return p.alg.New(class), nil
}
