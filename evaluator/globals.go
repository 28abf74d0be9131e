package eval

import (
	"fmt"

	env "github.com/havrydotdev/classbox/environment"
	"github.com/havrydotdev/classbox/value"
)

func newPrint() *NativeFun {
	return NewNativeFun("print", 1, func(e *Evaluator, args []value.Value) (value.Value, error) {
		if _, err := fmt.Fprintln(e.out, args[0].String()); err != nil {
			return nil, err
		}

		return value.Null, nil
	})
}

func newStr() *NativeFun {
	return NewNativeFun("str", 1, func(_ *Evaluator, args []value.Value) (value.Value, error) {
		return value.NewString(args[0].String()), nil
	})
}

func newClone() *NativeFun {
	return NewNativeFun("clone", 1, func(_ *Evaluator, args []value.Value) (value.Value, error) {
		return args[0].Clone(), nil
	})
}

func newHash() *NativeFun {
	return NewNativeFun("hash", 1, func(_ *Evaluator, args []value.Value) (value.Value, error) {
		return value.NewInt(int64(args[0].Hash())), nil
	})
}

// parse(target, text) overwrites target in place from its text form.
func newParse() *NativeFun {
	return NewNativeFun("parse", 2, func(_ *Evaluator, args []value.Value) (value.Value, error) {
		target := args[0]
		if err := target.Parse(args[1].AsString()); err != nil {
			return nil, err
		}

		return target, nil
	})
}

func newGlobals() *env.Env {
	global := env.New()
	for _, fn := range []*NativeFun{newPrint(), newStr(), newClone(), newHash(), newParse()} {
		global.Define(fn.name, fn)
	}

	return global
}
