package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasref/spec"
)

func TestCollectSchemas(t *testing.T) {
	collector, err := CollectSchemas(testDoc())
	require.NoError(t, err)

	assert.Len(t, collector.All, 5) // 4 in schemas + 1 parameter schema
	assert.Len(t, collector.Components, 2)

	pet, ok := collector.ByName["Pet"]
	require.True(t, ok)
	assert.True(t, pet.IsComponent)
	assert.Equal(t, "#/components/schemas/Pet", pet.Location)
	assert.Equal(t, spec.TypeObject, pet.Schema.Type)

	tags, ok := collector.ByLocation["#/components/schemas/Pet/properties/tags"]
	require.True(t, ok)
	assert.False(t, tags.IsComponent)
	assert.Equal(t, "tags", tags.Name)
}

func TestCollectRefs(t *testing.T) {
	refs, err := CollectRefs(testDoc())
	require.NoError(t, err)

	require.Len(t, refs, 2)
	got := make(map[string]string, len(refs))
	for _, r := range refs {
		got[r.SourcePath] = r.Ref
	}
	assert.Equal(t, map[string]string{
		"#/components/schemas/Pet/properties/name":                           "#/components/schemas/NameType",
		"#/components/responses/PetResponse/content/application/json/schema": "#/components/schemas/Pet",
	}, got)
}

func TestCollectRefsNilDocument(t *testing.T) {
	_, err := CollectRefs(nil)
	require.Error(t, err)
}
