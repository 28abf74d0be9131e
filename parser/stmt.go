package parser

import "github.com/havrydotdev/classbox/token"

func (p *Parser[E, S]) statement() (S, error) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

// condition parses "( expr )" after the keyword named by what.
func (p *Parser[E, S]) condition(what string) (E, error) {
	if _, err := p.expect(token.LeftParen, "expected '(' after '"+what+"'."); err != nil {
		return p.alg.NilExpr(), err
	}

	cond, err := p.expression()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	if _, err := p.expect(token.RightParen, "expected ')' after "+what+" condition."); err != nil {
		return p.alg.NilExpr(), err
	}

	return cond, nil
}

// forStatement desugars a for loop into a while loop wrapped in a block.
func (p *Parser[E, S]) forStatement() (S, error) {
	if _, err := p.expect(token.LeftParen, "expected '(' after 'for'."); err != nil {
		return p.alg.NilStmt(), err
	}

	var (
		init S
		err  error
	)
	hasInit := true
	switch {
	case p.match(token.Semicolon):
		hasInit = false
	case p.atVarDeclaration():
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return p.alg.NilStmt(), err
	}

	cond := p.alg.Literal(true)
	if !p.check(token.Semicolon) {
		if cond, err = p.expression(); err != nil {
			return p.alg.NilStmt(), err
		}
	}

	if _, err := p.expect(token.Semicolon, "expected ';' after loop condition."); err != nil {
		return p.alg.NilStmt(), err
	}

	var incr *E
	if !p.check(token.RightParen) {
		expr, err := p.expression()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		incr = &expr
	}

	if _, err := p.expect(token.RightParen, "expected ')' after for clauses."); err != nil {
		return p.alg.NilStmt(), err
	}

	body, err := p.statement()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	if incr != nil {
		body = p.alg.Block([]S{body, p.alg.ExprStatement(*incr)})
	}

	body = p.alg.While(cond, body)
	if hasInit {
		body = p.alg.Block([]S{init, body})
	}

	return body, nil
}

func (p *Parser[E, S]) whileStatement() (S, error) {
	cond, err := p.condition("while")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	body, err := p.statement()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.While(cond, body), nil
}

// ifStatement gives an if without else an empty else block.
func (p *Parser[E, S]) ifStatement() (S, error) {
	cond, err := p.condition("if")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	then, err := p.statement()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	otherwise := p.alg.Block(nil)
	if p.match(token.Else) {
		if otherwise, err = p.statement(); err != nil {
			return p.alg.NilStmt(), err
		}
	}

	return p.alg.If(cond, then, otherwise), nil
}

func (p *Parser[E, S]) block() (S, error) {
	var stmts []S
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.RightBrace, "expected '}' after block."); err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Block(stmts), nil
}

func (p *Parser[E, S]) expressionStatement() (S, error) {
	expr, err := p.expression()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	if _, err := p.expect(token.Semicolon, "expected ';' after expression."); err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.ExprStatement(expr), nil
}
