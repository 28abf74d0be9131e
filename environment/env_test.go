package env

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/classbox/value"
)

func TestScopes(t *testing.T) {
	global := New()
	global.Define("n", value.NewInt(1))

	child := NewChild(global)
	child.Define("s", value.NewString("x"))

	v, ok := child.Get("n")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())

	_, ok = global.Get("s")
	assert.False(t, ok)
}

func TestAssignKeepsBox(t *testing.T) {
	global := New()
	n := value.NewInt(1)
	global.Define("n", n)

	child := NewChild(global)
	box, err := child.Assign("n", value.NewReal(4.2))
	require.NoError(t, err)
	assert.Same(t, n, box)
	assert.Equal(t, int64(4), n.Get())

	_, err = child.Assign("missing", n)
	assert.True(t, errors.Is(err, ErrUndefined))

	_, err = child.Assign("n", value.NewString("nope"))
	assert.True(t, errors.Is(err, value.ErrUnsupportedConversion))
}

func TestShadowingAndNames(t *testing.T) {
	global := New()
	global.Define("b", value.NewInt(1))
	global.Define("a", value.NewInt(2))

	child := NewChild(global)
	child.Define("a", value.NewString("inner"))

	v, ok := child.Get("a")
	require.True(t, ok)
	assert.Equal(t, "inner", v.String())

	assert.Equal(t, []string{"a", "b"}, global.Names())
	assert.Equal(t, []string{"a"}, child.Names())
}
