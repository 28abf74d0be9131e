package value

import "strings"

// Value is implemented by every runtime value. Values are mutable boxes:
// SetValue overwrites the box in place.
type Value interface {
	Type() Type

	AsBool() (bool, error)
	AsInt() (int64, error)
	AsReal() (float64, error)
	AsString() string

	SetValue(v Value) error
	Parse(text string) error
	Clone() Value

	Equals(other Value) bool
	Hash() uint64

	// Render appends the value to sb. seen holds the identities of the
	// composite values already rendered in the current traversal.
	Render(sb *strings.Builder, seen Seen)
	String() string
}

// Seen is the visited set of one rendering traversal.
type Seen map[uint64]struct{}

func (s Seen) has(id uint64) bool {
	_, ok := s[id]
	return ok
}

func (s Seen) add(id uint64) {
	s[id] = struct{}{}
}

// ToString renders v starting a clean traversal.
func ToString(v Value) string {
	sb := strings.Builder{}
	v.Render(&sb, make(Seen))
	return sb.String()
}
