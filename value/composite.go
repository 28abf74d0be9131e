package value

// Composite is the shared base of heap values that have no scalar
// coercion. Embedders supply Render and String; String must go through
// ToString so every top-level rendering starts with an empty visited set.
type Composite struct {
	typ Type
}

func NewComposite(t Type) Composite {
	return Composite{typ: t}
}

func (c Composite) Type() Type {
	return c.typ
}

func (c Composite) AsBool() (bool, error) {
	return false, conversionError(c.typ, "bool")
}

func (c Composite) AsInt() (int64, error) {
	return 0, conversionError(c.typ, "int")
}

func (c Composite) AsReal() (float64, error) {
	return 0, conversionError(c.typ, "real")
}
