package value

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Int struct {
	v int64
}

func NewInt(v int64) *Int { return &Int{v} }

func (i *Int) Type() Type               { return IntType }
func (i *Int) Get() int64               { return i.v }
func (i *Int) AsBool() (bool, error)    { return i.v != 0, nil }
func (i *Int) AsInt() (int64, error)    { return i.v, nil }
func (i *Int) AsReal() (float64, error) { return float64(i.v), nil }
func (i *Int) AsString() string         { return strconv.FormatInt(i.v, 10) }
func (i *Int) Clone() Value             { return NewInt(i.v) }
func (i *Int) Hash() uint64             { return uint64(i.v) }
func (i *Int) String() string           { return i.AsString() }

func (i *Int) SetValue(v Value) error {
	n, err := v.AsInt()
	if err != nil {
		return err
	}

	i.v = n
	return nil
}

func (i *Int) Parse(text string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %q as int", text)
	}

	i.v = n
	return nil
}

func (i *Int) Equals(other Value) bool {
	switch o := other.(type) {
	case *Int:
		return o.v == i.v
	case *Real:
		return o.v == float64(i.v)
	}

	return false
}

func (i *Int) Render(sb *strings.Builder, _ Seen) {
	sb.WriteString(i.AsString())
}

type Real struct {
	v float64
}

func NewReal(v float64) *Real { return &Real{v} }

func (r *Real) Type() Type               { return RealType }
func (r *Real) Get() float64             { return r.v }
func (r *Real) AsBool() (bool, error)    { return r.v != 0, nil }
func (r *Real) AsInt() (int64, error)    { return int64(r.v), nil }
func (r *Real) AsReal() (float64, error) { return r.v, nil }
func (r *Real) AsString() string         { return strconv.FormatFloat(r.v, 'g', -1, 64) }
func (r *Real) Clone() Value             { return NewReal(r.v) }
func (r *Real) String() string           { return r.AsString() }

// Hash agrees with Equals: an integral real hashes like the Int of the
// same value, and -0 hashes like 0.
func (r *Real) Hash() uint64 {
	if r.v == math.Trunc(r.v) && r.v >= math.MinInt64 && r.v < math.MaxInt64 {
		return uint64(int64(r.v))
	}

	return math.Float64bits(r.v)
}

func (r *Real) SetValue(v Value) error {
	f, err := v.AsReal()
	if err != nil {
		return err
	}

	r.v = f
	return nil
}

func (r *Real) Parse(text string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %q as real", text)
	}

	r.v = f
	return nil
}

func (r *Real) Equals(other Value) bool {
	switch o := other.(type) {
	case *Real:
		return o.v == r.v
	case *Int:
		return float64(o.v) == r.v
	}

	return false
}

func (r *Real) Render(sb *strings.Builder, _ Seen) {
	sb.WriteString(r.AsString())
}

type Bool struct {
	v bool
}

func NewBool(v bool) *Bool { return &Bool{v} }

func (b *Bool) Type() Type            { return BoolType }
func (b *Bool) Get() bool             { return b.v }
func (b *Bool) AsBool() (bool, error) { return b.v, nil }
func (b *Bool) AsString() string      { return strconv.FormatBool(b.v) }
func (b *Bool) Clone() Value          { return NewBool(b.v) }
func (b *Bool) String() string        { return b.AsString() }

func (b *Bool) AsInt() (int64, error) {
	if b.v {
		return 1, nil
	}
	return 0, nil
}

func (b *Bool) AsReal() (float64, error) {
	n, _ := b.AsInt()
	return float64(n), nil
}

func (b *Bool) Hash() uint64 {
	n, _ := b.AsInt()
	return uint64(n)
}

func (b *Bool) SetValue(v Value) error {
	t, err := v.AsBool()
	if err != nil {
		return err
	}

	b.v = t
	return nil
}

func (b *Bool) Parse(text string) error {
	t, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return errors.Wrapf(err, "cannot parse %q as bool", text)
	}

	b.v = t
	return nil
}

func (b *Bool) Equals(other Value) bool {
	o, ok := other.(*Bool)
	return ok && o.v == b.v
}

func (b *Bool) Render(sb *strings.Builder, _ Seen) {
	sb.WriteString(b.AsString())
}

type String struct {
	v string
}

func NewString(v string) *String { return &String{v} }

func (s *String) Type() Type       { return StringType }
func (s *String) Get() string      { return s.v }
func (s *String) AsString() string { return s.v }
func (s *String) Clone() Value     { return NewString(s.v) }
func (s *String) String() string   { return s.v }

// AsBool reports whether the string is non-empty.
func (s *String) AsBool() (bool, error) {
	return s.v != "", nil
}

func (s *String) AsInt() (int64, error) {
	n, err := strconv.ParseInt(s.v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedConversion, "cannot convert %q to int", s.v)
	}
	return n, nil
}

func (s *String) AsReal() (float64, error) {
	f, err := strconv.ParseFloat(s.v, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedConversion, "cannot convert %q to real", s.v)
	}
	return f, nil
}

func (s *String) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.v))
	return h.Sum64()
}

func (s *String) SetValue(v Value) error {
	s.v = v.AsString()
	return nil
}

func (s *String) Parse(text string) error {
	s.v = text
	return nil
}

func (s *String) Equals(other Value) bool {
	o, ok := other.(*String)
	return ok && o.v == s.v
}

func (s *String) Render(sb *strings.Builder, _ Seen) {
	sb.WriteString(s.v)
}

// NullValue is the type of the null literal.
type NullValue struct{}

// Null is the only NullValue.
var Null = &NullValue{}

func (*NullValue) Type() Type               { return NullType }
func (*NullValue) AsBool() (bool, error)    { return false, conversionError(NullType, "bool") }
func (*NullValue) AsInt() (int64, error)    { return 0, conversionError(NullType, "int") }
func (*NullValue) AsReal() (float64, error) { return 0, conversionError(NullType, "real") }
func (*NullValue) AsString() string         { return "null" }
func (*NullValue) Clone() Value             { return Null }
func (*NullValue) Hash() uint64             { return 0 }
func (*NullValue) String() string           { return "null" }

func (*NullValue) SetValue(Value) error {
	return errors.Wrap(ErrNullReference, "cannot assign to null")
}

func (*NullValue) Parse(text string) error {
	return errors.Wrapf(ErrUnsupportedParse, "cannot parse %q as null", text)
}

func (*NullValue) Render(sb *strings.Builder, _ Seen) {
	sb.WriteString("null")
}

func (*NullValue) Equals(other Value) bool {
	switch o := other.(type) {
	case *NullValue:
		return true
	case *Object:
		return o.IsNull()
	}

	return false
}
