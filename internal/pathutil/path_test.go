package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPushPop(t *testing.T) {
	p := New('/')
	assert.True(t, p.IsRoot())
	assert.Equal(t, "", p.String())

	p.Push("components")
	p.Push("schemas")
	p.Push("Pet")
	assert.False(t, p.IsRoot())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "components/schemas/Pet", p.String())

	seg, ok := p.Pop()
	require.True(t, ok)
	assert.Equal(t, "Pet", seg)
	assert.Equal(t, "components/schemas", p.String())
}

func TestPathPopEmpty(t *testing.T) {
	p := New('/')
	seg, ok := p.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", seg)
	assert.True(t, p.IsRoot())
}

func TestPathExtendDoesNotMutate(t *testing.T) {
	p := New('.')
	p.Push("properties")

	child := p.Extend("name")
	assert.Equal(t, "properties", p.String())
	assert.Equal(t, "properties.name", child.String())

	// Sibling branches must not see each other's segments.
	other := p.Extend("age")
	child.Push("deep")
	assert.Equal(t, "properties.age", other.String())
	assert.Equal(t, "properties.name.deep", child.String())
}

func TestPathEqualIgnoresSeparator(t *testing.T) {
	a := New('/')
	a.Push("components")
	a.Push("schemas")

	b := New('.')
	b.Push("components")
	b.Push("schemas")

	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.String(), b.String())

	b.Push("Pet")
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestPathSeparatorRendering(t *testing.T) {
	p := New('.')
	p.Push("components")
	p.Push("schemas")
	p.Push("Pet")
	assert.Equal(t, "components.schemas.Pet", p.String())
}

func TestPathZeroValue(t *testing.T) {
	var p Path
	assert.True(t, p.IsRoot())
	p.Push("a")
	p.Push("b")
	assert.Equal(t, "a/b", p.String())
}

func TestPathPool(t *testing.T) {
	p := Get()
	p.Push("components")
	Put(p)

	q := Get()
	assert.True(t, q.IsRoot(), "pooled path must come back reset")
	Put(q)
}
