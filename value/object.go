package value

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

var lastID atomic.Uint64

// fieldTable is the storage of an instance. Whole-instance assignment makes
// two objects share one table, so writes through either are seen by both.
type fieldTable struct {
	values map[string]Value
}

// Object is an instance of a class type. An object without a field table
// is the null value of its type.
type Object struct {
	Composite
	class  ClassType
	id     uint64
	fields *fieldTable
}

// NewObject returns a null instance of t. Call InitializeFields to make it live.
func NewObject(t ClassType) *Object {
	return &Object{Composite: NewComposite(t), class: t, id: lastID.Add(1)}
}

// InitializeFields sets every field, inherited ones included, to the default
// value of its type. Calling it again resets the instance on a new table;
// objects that aliased the old table keep it.
func (o *Object) InitializeFields() {
	ftypes := o.class.FieldTypes()

	table := &fieldTable{values: make(map[string]Value, len(ftypes))}
	for name, ft := range ftypes {
		table.values[name] = ft.NewDefault()
	}

	o.fields = table
}

func (o *Object) IsNull() bool {
	return o.fields == nil
}

func (o *Object) HasField(name string) bool {
	return o.class.HasField(name)
}

func (o *Object) FieldType(name string) (Type, bool) {
	return o.class.FieldType(name)
}

// GetFieldValue returns the current value of a declared field.
func (o *Object) GetFieldValue(name string) (Value, error) {
	if o.IsNull() {
		return nil, nullFieldError(o.typ, name)
	}

	// The table may be shared with an instance of a subclass; only the
	// fields of o's own type are visible through o.
	v, ok := o.fields.values[name]
	if !ok || !o.class.HasField(name) {
		return nil, missingFieldError(o.typ, name)
	}

	return v, nil
}

// SetFieldValue replaces the value of a declared field. v is not checked
// against the field's type.
func (o *Object) SetFieldValue(name string, v Value) error {
	if o.IsNull() {
		return errors.Wrapf(ErrNullReference, "cannot set field '%s.%s'", o.typ, name)
	}

	if _, ok := o.fields.values[name]; !ok || !o.class.HasField(name) {
		return missingFieldError(o.typ, name)
	}

	o.fields.values[name] = v
	return nil
}

// FieldNames returns the names of the fields visible through o's type, in
// lexicographic order.
func (o *Object) FieldNames() []string {
	if o.IsNull() {
		return nil
	}

	names := make([]string, 0, len(o.fields.values))
	for name := range o.fields.values {
		if o.class.HasField(name) {
			names = append(names, name)
		}
	}

	slices.Sort(names)
	return names
}

// SetValue makes o share the field table of v. The null literal turns o
// into the null value of its type.
func (o *Object) SetValue(v Value) error {
	switch src := v.(type) {
	case *Object:
		o.fields = src.fields
	case *NullValue:
		o.fields = nil
	default:
		return conversionError(v.Type(), o.typ.Name())
	}

	return nil
}

func (o *Object) AsString() string {
	return o.String()
}

func (o *Object) Parse(text string) error {
	return errors.Wrapf(ErrUnsupportedParse, "cannot parse %q as type '%s'", text, o.typ)
}

// Clone returns a new instance whose table is a shallow copy of o's.
// Cloning a null instance yields another null instance.
func (o *Object) Clone() Value {
	c := NewObject(o.class)
	if o.IsNull() {
		return c
	}

	table := &fieldTable{values: make(map[string]Value, len(o.fields.values))}
	for name, v := range o.fields.values {
		table.values[name] = v
	}

	c.fields = table
	return c
}

func (o *Object) Equals(other Value) bool {
	switch v := other.(type) {
	case *Object:
		return v == o
	case *NullValue:
		return o.IsNull()
	}

	return false
}

func (o *Object) Hash() uint64 {
	return o.id
}

// Identity is the short token used when an object is met again while
// rendering.
func (o *Object) Identity() string {
	return fmt.Sprintf("%s@%d", o.typ.Name(), o.id)
}

func (o *Object) Render(sb *strings.Builder, seen Seen) {
	if o.IsNull() {
		sb.WriteString("null")
		return
	}

	if seen.has(o.id) {
		sb.WriteString(o.Identity())
		return
	}
	seen.add(o.id)

	sb.WriteByte('{')
	for i, name := range o.FieldNames() {
		if i > 0 {
			sb.WriteString(", ")
		} else {
			sb.WriteByte(' ')
		}

		sb.WriteString(name)
		sb.WriteString(": ")
		o.fields.values[name].Render(sb, seen)
	}
	sb.WriteString(" }")
}

func (o *Object) String() string {
	return ToString(o)
}
