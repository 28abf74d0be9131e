package types

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/value"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrSealed         = errors.New("class is sealed")
)

// Field is one field declaration of a class.
type Field struct {
	Name string
	Type value.Type
}

// Class describes a declared class. Fields can be added until the class is
// declared in a Registry, after which it is sealed.
type Class struct {
	name   string
	parent *Class
	fields []Field

	registry *Registry
}

var _ value.ClassType = (*Class)(nil)

func NewClass(name string, parent *Class) *Class {
	return &Class{name: name, parent: parent}
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) String() string {
	return c.name
}

func (c *Class) Parent() *Class {
	return c.parent
}

// Fields returns the fields declared by c itself.
func (c *Class) Fields() []Field {
	return c.fields
}

func (c *Class) AddField(name string, t value.Type) error {
	if c.registry != nil {
		return errors.Wrapf(ErrSealed, "cannot add field '%s' to '%s'", name, c.name)
	}

	for _, f := range c.fields {
		if f.Name == name {
			return errors.Wrapf(ErrDuplicateField, "'%s.%s'", c.name, name)
		}
	}

	c.fields = append(c.fields, Field{Name: name, Type: t})
	return nil
}

// IsSubclassOf reports whether c is other or derives from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}

	return false
}

// NewDefault returns the null instance of c.
func (c *Class) NewDefault() value.Value {
	return value.NewObject(c)
}

func (c *Class) FieldTypes() map[string]value.Type {
	resolved := c.resolved()

	out := make(map[string]value.Type, len(resolved))
	for name, t := range resolved {
		out[name] = t
	}

	return out
}

func (c *Class) HasField(name string) bool {
	_, ok := c.resolved()[name]
	return ok
}

func (c *Class) FieldType(name string) (value.Type, bool) {
	t, ok := c.resolved()[name]
	return t, ok
}

// resolved returns the shared field map of c. Callers must not modify it.
func (c *Class) resolved() map[string]value.Type {
	if c.registry != nil {
		return c.registry.fieldTypes(c)
	}

	return resolveFields(c)
}

// resolveFields walks the hierarchy from the root down so that fields of
// a subclass overwrite the ones they shadow.
func resolveFields(c *Class) map[string]value.Type {
	var chain []*Class
	for k := c; k != nil; k = k.parent {
		chain = append(chain, k)
	}

	fields := make(map[string]value.Type)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].fields {
			fields[f.Name] = f.Type
		}
	}

	return fields
}

func (f Field) String() string {
	return fmt.Sprintf("%s %s", f.Type, f.Name)
}
