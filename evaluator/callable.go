package eval

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/value"
)

type Callable interface {
	Arity() int
	Call(e *Evaluator, args []value.Value) (value.Value, error)
}

type funcType struct{}

func (funcType) Name() string            { return "function" }
func (funcType) String() string          { return "function" }
func (funcType) NewDefault() value.Value { return value.Null }

// FuncType is the type of every builtin function value.
var FuncType value.Type = funcType{}

// NativeFun is a builtin function. It is a composite value so it can be
// bound in the environment like any other value.
type NativeFun struct {
	value.Composite

	name  string
	arity int
	call  func(e *Evaluator, args []value.Value) (value.Value, error)
}

func NewNativeFun(name string, arity int, call func(e *Evaluator, args []value.Value) (value.Value, error)) *NativeFun {
	return &NativeFun{
		Composite: value.NewComposite(FuncType),
		name:      name,
		arity:     arity,
		call:      call,
	}
}

func (f *NativeFun) Arity() int {
	return f.arity
}

func (f *NativeFun) Call(e *Evaluator, args []value.Value) (value.Value, error) {
	res, err := f.call(e, args)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", f.name)
	}

	return res, nil
}

func (f *NativeFun) AsString() string {
	return f.String()
}

func (f *NativeFun) SetValue(value.Value) error {
	return errors.Errorf("cannot assign to builtin '%s'", f.name)
}

func (f *NativeFun) Parse(text string) error {
	return errors.Wrapf(value.ErrUnsupportedParse, "cannot parse %q as function", text)
}

func (f *NativeFun) Clone() value.Value {
	return f
}

func (f *NativeFun) Equals(other value.Value) bool {
	o, ok := other.(*NativeFun)
	return ok && o == f
}

func (f *NativeFun) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.name))
	return h.Sum64()
}

func (f *NativeFun) Render(sb *strings.Builder, _ value.Seen) {
	fmt.Fprintf(sb, "<fn %s>", f.name)
}

func (f *NativeFun) String() string {
	return value.ToString(f)
}
