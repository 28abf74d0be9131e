package env

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/value"
)

var ErrUndefined = errors.New("undefined variable")

// Env is one lexical scope. Bindings hold value boxes; lookups fall back
// to the enclosing scope.
type Env struct {
	outer  *Env
	values map[string]value.Value
}

func New() *Env {
	return NewChild(nil)
}

func NewChild(outer *Env) *Env {
	return &Env{outer: outer, values: make(map[string]value.Value)}
}

// Define binds name in this scope, replacing an earlier binding.
func (e *Env) Define(name string, v value.Value) {
	e.values[name] = v
}

func (e *Env) Get(name string) (value.Value, bool) {
	for s := e; s != nil; s = s.outer {
		if v, ok := s.values[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Assign stores v into the nearest binding of name. The binding keeps its
// box: scalars are coerced into it and objects share v's fields.
func (e *Env) Assign(name string, v value.Value) (value.Value, error) {
	box, ok := e.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrUndefined, "'%s'", name)
	}

	if err := box.SetValue(v); err != nil {
		return nil, errors.Wrapf(err, "assign to '%s'", name)
	}

	return box, nil
}

// Names lists the names bound in this scope, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
