package value

// Type is a nominal type descriptor. Descriptors are shared by every value
// of the type and never mutated by values.
type Type interface {
	Name() string
	String() string
	NewDefault() Value
}

// ClassType is the capability a type exposes when its values carry
// named fields.
type ClassType interface {
	Type

	// FieldTypes returns every field of the type, inherited ones included.
	// A field declared by a subtype shadows the ancestor field of the same name.
	FieldTypes() map[string]Type
	HasField(name string) bool
	FieldType(name string) (Type, bool)
}

type primitive struct {
	name string
	zero func() Value
}

func (p *primitive) Name() string      { return p.name }
func (p *primitive) String() string    { return p.name }
func (p *primitive) NewDefault() Value { return p.zero() }

var (
	IntType    Type = &primitive{"int", func() Value { return NewInt(0) }}
	RealType   Type = &primitive{"real", func() Value { return NewReal(0) }}
	BoolType   Type = &primitive{"bool", func() Value { return NewBool(false) }}
	StringType Type = &primitive{"string", func() Value { return NewString("") }}
	NullType   Type = &primitive{"null", func() Value { return Null }}
)

// Primitives lists the built-in scalar types.
func Primitives() []Type {
	return []Type{IntType, RealType, BoolType, StringType}
}
