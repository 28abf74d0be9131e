package value_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/classbox/value"
)

func TestCompositeConversionsFail(t *testing.T) {
	p := newLive(pointClass(t))

	_, err := p.AsBool()
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrUnsupportedConversion))
	assert.Contains(t, err.Error(), "cannot convert type 'Point' to bool")

	_, err = p.AsInt()
	assert.True(t, errors.Is(err, value.ErrUnsupportedConversion))
	assert.Contains(t, err.Error(), "to int")

	_, err = p.AsReal()
	assert.True(t, errors.Is(err, value.ErrUnsupportedConversion))
	assert.Contains(t, err.Error(), "to real")
}

func TestCompositeType(t *testing.T) {
	c := pointClass(t)
	comp := value.NewComposite(c)

	assert.Equal(t, c, comp.Type())
	assert.Equal(t, value.Type(c), value.NewObject(c).Type())
}

func TestToStringStartsCleanTraversal(t *testing.T) {
	n := newLive(nodeClass(t))
	require.NoError(t, n.SetFieldValue("next", n))

	seen := value.Seen{}
	n.Render(new(strings.Builder), seen)
	assert.Len(t, seen, 1)

	assert.Equal(t, value.ToString(n), n.String())
	assert.Contains(t, n.String(), "{ name: ")
}
