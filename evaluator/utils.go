package eval

import (
	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/token"
	"github.com/havrydotdev/classbox/value"
)

var ErrDivisionByZero = errors.New("division by zero")

func isNumber(v value.Value) bool {
	switch v.(type) {
	case *value.Int, *value.Real:
		return true
	}

	return false
}

func isString(v value.Value) bool {
	_, ok := v.(*value.String)
	return ok
}

func bothInts(left, right value.Value) bool {
	_, okl := left.(*value.Int)
	_, okr := right.(*value.Int)
	return okl && okr
}

func checkNums(op token.Token, left, right value.Value) error {
	if !isNumber(left) {
		return errors.Errorf("operand of '%s' must be a number, got %s", op.Lexeme, left.Type())
	}

	if !isNumber(right) {
		return errors.Errorf("operand of '%s' must be a number, got %s", op.Lexeme, right.Type())
	}

	return nil
}

func unary(op token.Token, right value.Value) (value.Value, error) {
	switch op.Kind {
	case token.Minus:
		switch v := right.(type) {
		case *value.Int:
			return value.NewInt(-v.Get()), nil
		case *value.Real:
			return value.NewReal(-v.Get()), nil
		}

		return nil, errors.Errorf("operand of '-' must be a number, got %s", right.Type())
	case token.Bang:
		ok, err := right.AsBool()
		if err != nil {
			return nil, err
		}

		return value.NewBool(!ok), nil
	}

	return nil, errors.Errorf("unknown unary operator '%s'", op.Lexeme)
}

func binary(op token.Token, left, right value.Value) (value.Value, error) {
	switch op.Kind {
	case token.EqualEqual:
		return value.NewBool(left.Equals(right)), nil
	case token.BangEqual:
		return value.NewBool(!left.Equals(right)), nil
	case token.Plus:
		if isString(left) || isString(right) {
			return value.NewString(left.AsString() + right.AsString()), nil
		}
	}

	if err := checkNums(op, left, right); err != nil {
		return nil, err
	}

	switch op.Kind {
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return compare(op, left, right)
	}

	if bothInts(left, right) {
		return intArith(op, left.(*value.Int).Get(), right.(*value.Int).Get())
	}

	l, _ := left.AsReal()
	r, _ := right.AsReal()

	switch op.Kind {
	case token.Plus:
		return value.NewReal(l + r), nil
	case token.Minus:
		return value.NewReal(l - r), nil
	case token.Star:
		return value.NewReal(l * r), nil
	case token.Slash:
		return value.NewReal(l / r), nil
	}

	return nil, errors.Errorf("unknown binary operator '%s'", op.Lexeme)
}

func intArith(op token.Token, l, r int64) (value.Value, error) {
	switch op.Kind {
	case token.Plus:
		return value.NewInt(l + r), nil
	case token.Minus:
		return value.NewInt(l - r), nil
	case token.Star:
		return value.NewInt(l * r), nil
	case token.Slash:
		if r == 0 {
			return nil, ErrDivisionByZero
		}
		return value.NewInt(l / r), nil
	}

	return nil, errors.Errorf("unknown binary operator '%s'", op.Lexeme)
}

func compare(op token.Token, left, right value.Value) (value.Value, error) {
	l, _ := left.AsReal()
	r, _ := right.AsReal()

	switch op.Kind {
	case token.Greater:
		return value.NewBool(l > r), nil
	case token.GreaterEqual:
		return value.NewBool(l >= r), nil
	case token.Less:
		return value.NewBool(l < r), nil
	case token.LessEqual:
		return value.NewBool(l <= r), nil
	}

	return nil, errors.Errorf("unknown comparison '%s'", op.Lexeme)
}
