package eval

import (
	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/token"
	"github.com/havrydotdev/classbox/types"
	"github.com/havrydotdev/classbox/value"
)

func (e *Evaluator) New(class token.Token) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		c, err := e.registry.LookupClass(class.Lexeme)
		if err != nil {
			return nil, atLine(class, err)
		}

		inst := value.NewObject(c)
		inst.InitializeFields()

		e.log.Debug("instance created", "class", c.Name(), "id", inst.Hash())
		return inst, nil
	})
}

func (e *Evaluator) Get(name token.Token, object ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		inst, err := e.instance(name, object)
		if err != nil {
			return nil, err
		}

		val, err := inst.GetFieldValue(name.Lexeme)
		if err != nil {
			return nil, atLine(name, err)
		}

		return val, nil
	})
}

func (e *Evaluator) Set(object ExpEvaluator, name token.Token, rhs ExpEvaluator) ExpEvaluator {
	return expEvalFunc(func() (value.Value, error) {
		inst, err := e.instance(name, object)
		if err != nil {
			return nil, err
		}

		val, err := rhs.Eval()
		if err != nil {
			return nil, err
		}

		stored, err := fieldValue(inst, name.Lexeme, val)
		if err != nil {
			return nil, atLine(name, err)
		}

		if err := inst.SetFieldValue(name.Lexeme, stored); err != nil {
			return nil, atLine(name, err)
		}

		return stored, nil
	})
}

func (e *Evaluator) instance(name token.Token, object ExpEvaluator) (*value.Object, error) {
	obj, err := object.Eval()
	if err != nil {
		return nil, err
	}

	inst, ok := obj.(*value.Object)
	if !ok {
		return nil, atLine(name, errors.Wrapf(ErrNotAnObject, "'%s' has no field '%s'", obj.Type(), name.Lexeme))
	}

	return inst, nil
}

// fieldValue prepares v for storage in a field. Instances are stored by
// reference; scalars are copied into a new box of the field's type so the
// field does not follow later changes of the source variable.
func fieldValue(inst *value.Object, name string, v value.Value) (value.Value, error) {
	ft, ok := inst.FieldType(name)
	if !ok {
		return nil, errors.Wrapf(value.ErrMissingField, "type '%s' has no field '%s'", inst.Type(), name)
	}

	if err := checkAssignable(ft, v); err != nil {
		return nil, err
	}

	switch v.(type) {
	case *value.Object:
		if _, ok := ft.(value.ClassType); !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "cannot store '%s' in %s field '%s'", v.Type(), ft, name)
		}
		return v, nil
	case *value.NullValue:
		if _, ok := ft.(value.ClassType); !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "cannot store null in %s field '%s'", ft, name)
		}
		return ft.NewDefault(), nil
	}

	box := ft.NewDefault()
	if err := box.SetValue(v); err != nil {
		return nil, err
	}

	return box, nil
}

// checkAssignable rejects an instance whose class does not derive from
// the target class.
func checkAssignable(target value.Type, v value.Value) error {
	want, ok := target.(*types.Class)
	if !ok {
		return nil
	}

	inst, ok := v.(*value.Object)
	if !ok {
		return nil
	}

	got, ok := inst.Type().(*types.Class)
	if !ok || !got.IsSubclassOf(want) {
		return errors.Wrapf(ErrTypeMismatch, "cannot assign '%s' to '%s'", inst.Type(), target)
	}

	return nil
}

func assign(box, v value.Value) error {
	if err := checkAssignable(box.Type(), v); err != nil {
		return err
	}

	return box.SetValue(v)
}
