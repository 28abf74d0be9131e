package eval

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	env "github.com/havrydotdev/classbox/environment"
	interp "github.com/havrydotdev/classbox/interpreter"
	"github.com/havrydotdev/classbox/token"
	"github.com/havrydotdev/classbox/types"
	"github.com/havrydotdev/classbox/value"
)

var (
	ErrNilValue     = errors.New("internal error: exp/stmt is nil, cannot invoke")
	ErrNotAnObject  = errors.New("only instances have fields")
	ErrNotCallable  = errors.New("callee is not callable")
	ErrTypeMismatch = errors.New("type mismatch")
)

type ExpEvaluator interface {
	Eval() (value.Value, error)
}

type StmtEvaluator interface {
	Eval() error
}

type expEvalFunc func() (value.Value, error)
type stmtEvalFunc func() error

func (fn expEvalFunc) Eval() (value.Value, error) {
	return fn()
}

func (fn stmtEvalFunc) Eval() error {
	return fn()
}

type Evaluator struct {
	globals     *env.Env
	environment *env.Env
	registry    *types.Registry

	out       io.Writer
	log       *slog.Logger
	cacheSize int
}

var _ interp.Alg[ExpEvaluator, StmtEvaluator] = (*Evaluator)(nil)

type Option func(*Evaluator)

// WithOutput sets where print writes. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) { e.out = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// WithFieldCacheSize bounds the number of classes whose resolved field
// maps are cached.
func WithFieldCacheSize(n int) Option {
	return func(e *Evaluator) { e.cacheSize = n }
}

func New(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		out:       os.Stdout,
		log:       slog.New(slog.DiscardHandler),
		cacheSize: types.DefaultFieldCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	registry, err := types.NewRegistry(e.cacheSize)
	if err != nil {
		return nil, err
	}

	e.registry = registry
	e.globals = newGlobals()
	e.environment = e.globals

	return e, nil
}

func (e *Evaluator) Registry() *types.Registry {
	return e.registry
}

// Lookup returns the value bound to a global or current-scope name.
func (e *Evaluator) Lookup(name string) (value.Value, bool) {
	return e.environment.Get(name)
}

// GlobalNames lists the global bindings, builtins included, sorted.
func (e *Evaluator) GlobalNames() []string {
	return e.globals.Names()
}

func atLine(tok token.Token, err error) error {
	return errors.Wrapf(err, "line %d", tok.Line)
}

func (e *Evaluator) Var(typ token.Token, name token.Token, init *ExpEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		t, err := e.resolveType(typ)
		if err != nil {
			return atLine(typ, err)
		}

		box := t.NewDefault()
		if init != nil {
			v, err := (*init).Eval()
			if err != nil {
				return err
			}

			if err := assign(box, v); err != nil {
				return atLine(name, errors.Wrapf(err, "declare '%s'", name.Lexeme))
			}
		}

		e.environment.Define(name.Lexeme, box)
		return nil
	})
}

func (e *Evaluator) Assign(name token.Token, rhs ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		val, err := rhs.Eval()
		if err != nil {
			return nil, err
		}

		if box, ok := e.environment.Get(name.Lexeme); ok {
			if err := checkAssignable(box.Type(), val); err != nil {
				return nil, atLine(name, err)
			}
		}

		box, err := e.environment.Assign(name.Lexeme, val)
		if err != nil {
			return nil, atLine(name, err)
		}

		return box, nil
	})
}

func (e *Evaluator) Variable(name token.Token) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		val, ok := e.environment.Get(name.Lexeme)
		if !ok {
			return nil, atLine(name, errors.Wrapf(env.ErrUndefined, "'%s'", name.Lexeme))
		}

		return val, nil
	})
}

func (e *Evaluator) Call(callee ExpEvaluator, paren token.Token, args []ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		callee, err := callee.Eval()
		if err != nil {
			return nil, err
		}

		var arguments []value.Value
		for _, arg := range args {
			argValue, err := arg.Eval()
			if err != nil {
				return nil, err
			}

			arguments = append(arguments, argValue)
		}

		fun, ok := callee.(Callable)
		if !ok {
			return nil, atLine(paren, errors.Wrapf(ErrNotCallable, "'%s'", callee.Type()))
		}

		if len(arguments) != fun.Arity() {
			return nil, atLine(paren, errors.Errorf("expected %d arguments, got %d", fun.Arity(), len(arguments)))
		}

		res, err := fun.Call(e, arguments)
		if err != nil {
			return nil, atLine(paren, err)
		}

		return res, nil
	})
}

func (e *Evaluator) While(cond ExpEvaluator, body StmtEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		for {
			ok, err := condition("while", cond)
			if err != nil || !ok {
				return err
			}

			if err := body.Eval(); err != nil {
				return err
			}
		}
	})
}

// condition evaluates a loop or branch condition. Only values with a
// boolean conversion are accepted.
func condition(what string, cond ExpEvaluator) (bool, error) {
	c, err := cond.Eval()
	if err != nil {
		return false, err
	}

	ok, err := c.AsBool()
	if err != nil {
		return false, errors.Wrapf(err, "%s condition", what)
	}

	return ok, nil
}

func (e *Evaluator) Logical(op token.Token, left, right ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		l, err := left.Eval()
		if err != nil {
			return nil, err
		}

		truthy, err := l.AsBool()
		if err != nil {
			return nil, atLine(op, err)
		}

		if op.Kind == token.Or {
			if truthy {
				return l, nil
			}
		} else {
			if !truthy {
				return l, nil
			}
		}

		return right.Eval()
	})
}

func (e *Evaluator) If(cond ExpEvaluator, then StmtEvaluator, _else StmtEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		ok, err := condition("if", cond)
		if err != nil {
			return err
		}

		if ok {
			return then.Eval()
		}

		return _else.Eval()
	})
}

func (e *Evaluator) Block(stmts []StmtEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		return e.executeBlock(stmts, env.NewChild(e.environment))
	})
}

func (e *Evaluator) executeBlock(stmts []StmtEvaluator, environment *env.Env) error {
	prev := e.environment
	e.environment = environment
	defer func() { e.environment = prev }()

	for _, stmt := range stmts {
		if err := stmt.Eval(); err != nil {
			return err
		}
	}

	return nil
}

func (*Evaluator) ExprStatement(expr ExpEvaluator) StmtEvaluator {
	return stmtEvalFunc(func() error {
		_, err := expr.Eval()
		return err
	})
}

func (*Evaluator) Literal(v any) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		switch lit := v.(type) {
		case nil:
			return value.Null, nil
		case bool:
			return value.NewBool(lit), nil
		case int64:
			return value.NewInt(lit), nil
		case float64:
			return value.NewReal(lit), nil
		case string:
			return value.NewString(lit), nil
		}

		return nil, errors.Errorf("unsupported literal %v (%T)", v, v)
	})
}

func (*Evaluator) Grouping(expr ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		return expr.Eval()
	})
}

func (*Evaluator) Unary(op token.Token, right ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		right, err := right.Eval()
		if err != nil {
			return nil, err
		}

		res, err := unary(op, right)
		if err != nil {
			return nil, atLine(op, err)
		}

		return res, nil
	})
}

func (*Evaluator) Binary(op token.Token, left, right ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		l, err := left.Eval()
		if err != nil {
			return nil, err
		}

		r, err := right.Eval()
		if err != nil {
			return nil, err
		}

		res, err := binary(op, l, r)
		if err != nil {
			return nil, atLine(op, err)
		}

		return res, nil
	})
}

func (*Evaluator) NilExpr() ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		return nil, ErrNilValue
	})
}

func (*Evaluator) NilStmt() StmtEvaluator {
	return stmtEvalFunc(func() error {
		return ErrNilValue
	})
}
