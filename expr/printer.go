package expr

import (
	"fmt"
	"strconv"
	"strings"

	interp "github.com/havrydotdev/classbox/interpreter"
	"github.com/havrydotdev/classbox/token"
)

type Printer interface {
	Print() string
}

// implements Printer
type PrintFunc func() string

func (fn PrintFunc) Print() string {
	return fn()
}

// implements interp.Alg[Printer, Printer]
type PrintExpr struct{}

func NewPrinter() interp.Alg[Printer, Printer] {
	return &PrintExpr{}
}

func (*PrintExpr) Class(name token.Token, parent *token.Token, fields []interp.Field) Printer {
	return PrintFunc(func() string {
		b := strings.Builder{}

		b.WriteString("(class ")
		b.WriteString(name.Lexeme)
		if parent != nil {
			b.WriteString(" extends ")
			b.WriteString(parent.Lexeme)
		}

		for _, f := range fields {
			fmt.Fprintf(&b, " (%s %s)", f.Type.Lexeme, f.Name.Lexeme)
		}

		b.WriteByte(')')
		return b.String()
	})
}

func (*PrintExpr) If(cond Printer, then Printer, _else Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("if", cond, then, _else)
	})
}

func (*PrintExpr) While(cond Printer, body Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("while", cond, body)
	})
}

func (*PrintExpr) Block(stmts []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("block", stmts...)
	})
}

func (*PrintExpr) Variable(name token.Token) Printer {
	return PrintFunc(func() string {
		return name.Lexeme
	})
}

func (*PrintExpr) Assign(name token.Token, value Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("assign %s", name.Lexeme), value)
	})
}

func (*PrintExpr) Get(name token.Token, object Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("get %s", name.Lexeme), object)
	})
}

func (*PrintExpr) Set(object Printer, name token.Token, value Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("set %s", name.Lexeme), object, value)
	})
}

func (*PrintExpr) New(class token.Token) Printer {
	return PrintFunc(func() string {
		return parenthesize("new " + class.Lexeme)
	})
}

func (*PrintExpr) Call(callee Printer, _ token.Token, args []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("call "+callee.Print(), args...)
	})
}

func (*PrintExpr) Var(typ token.Token, name token.Token, init *Printer) Printer {
	return PrintFunc(func() string {
		head := fmt.Sprintf("var %s %s", typ.Lexeme, name.Lexeme)
		if init == nil {
			return parenthesize(head)
		}

		return parenthesize(head, *init)
	})
}

func (*PrintExpr) Literal(value any) Printer {
	return PrintFunc(func() string {
		switch v := value.(type) {
		case nil:
			return "null"
		case string:
			return strconv.Quote(v)
		}

		return fmt.Sprintf("%v", value)
	})
}

func (*PrintExpr) Grouping(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("group", expr)
	})
}

func (*PrintExpr) Unary(op token.Token, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, right)
	})
}

func (*PrintExpr) Binary(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) Logical(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) ExprStatement(expr Printer) Printer {
	return PrintFunc(func() string {
		return expr.Print()
	})
}

func (*PrintExpr) NilExpr() Printer {
	return PrintFunc(func() string {
		return "<nil>"
	})
}

func (*PrintExpr) NilStmt() Printer {
	return PrintFunc(func() string {
		return "<nil>"
	})
}

// parenthesize renders head and its operands as one s-expression.
func parenthesize(head string, operands ...Printer) string {
	b := strings.Builder{}

	b.WriteByte('(')
	b.WriteString(head)
	for _, op := range operands {
		b.WriteByte(' ')
		b.WriteString(op.Print())
	}
	b.WriteByte(')')

	return b.String()
}
