package interp

import "github.com/havrydotdev/classbox/token"

// Programs are built through object algebras rather than an AST plus
// visitors: the parser calls one constructor per grammar rule and each
// backend decides what a node is.
// https://www.cs.utexas.edu/%7Ewcook/Drafts/2012/ecoop2012.pdf
//
// E is the expression carrier, S the statement carrier.
type Alg[E any, S any] interface {
	ExprAlg[E]
	StmtAlg[E, S]
}

type ExprAlg[E any] interface {
	Literal(value any) E
	Grouping(expr E) E
	Variable(name token.Token) E
	Assign(name token.Token, value E) E
	Unary(op token.Token, right E) E
	Binary(op token.Token, left, right E) E
	Logical(op token.Token, left, right E) E
	Call(callee E, paren token.Token, args []E) E

	// New builds an instance of class with every field at its default.
	New(class token.Token) E
	// Get reads a field of the instance object evaluates to.
	Get(name token.Token, object E) E
	Set(object E, name token.Token, value E) E

	NilExpr() E
}

type StmtAlg[E any, S any] interface {
	ExprStatement(expr E) S
	Block(stmts []S) S
	If(cond E, then S, _else S) S
	While(cond E, body S) S

	// init is nil when the declaration has no initializer.
	Var(typ token.Token, name token.Token, init *E) S
	// parent is nil when the class does not extend another one.
	Class(name token.Token, parent *token.Token, fields []Field) S

	NilStmt() S
}

// Field is one field declaration in a class body.
type Field struct {
	Type token.Token
	Name token.Token
}
