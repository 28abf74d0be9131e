package types

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/havrydotdev/classbox/value"
)

const DefaultFieldCacheSize = 128

var (
	ErrUnknownType  = errors.New("unknown type")
	ErrRedeclared   = errors.New("type already declared")
	ErrUnknownClass = errors.New("not a class")
)

// Registry holds the named types of a program. Resolved field maps of
// declared classes are kept in an LRU cache.
type Registry struct {
	types  map[string]value.Type
	fields *lru.Cache
}

func NewRegistry(cacheSize int) (*Registry, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultFieldCacheSize
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "field cache")
	}

	r := &Registry{types: make(map[string]value.Type), fields: cache}
	for _, t := range value.Primitives() {
		r.types[t.Name()] = t
	}

	return r, nil
}

// Declare seals c and makes it visible by name.
func (r *Registry) Declare(c *Class) error {
	if _, ok := r.types[c.name]; ok {
		return errors.Wrapf(ErrRedeclared, "'%s'", c.name)
	}

	if c.parent != nil && c.parent.registry != r {
		return errors.Wrapf(ErrUnknownClass, "parent '%s' of '%s' is not declared", c.parent.name, c.name)
	}

	c.registry = r
	r.types[c.name] = c
	return nil
}

func (r *Registry) Lookup(name string) (value.Type, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "'%s'", name)
	}

	return t, nil
}

func (r *Registry) LookupClass(name string) (*Class, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	c, ok := t.(*Class)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "'%s'", name)
	}

	return c, nil
}

func (r *Registry) fieldTypes(c *Class) map[string]value.Type {
	if cached, ok := r.fields.Get(c); ok {
		return cached.(map[string]value.Type)
	}

	resolved := resolveFields(c)
	r.fields.Add(c, resolved)
	return resolved
}

// CachedClasses returns the number of classes with a resolved field map
// in the cache.
func (r *Registry) CachedClasses() int {
	return r.fields.Len()
}
