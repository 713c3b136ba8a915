package spec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

const petstoreJSON = `{
	"openapi": "3.1.0",
	"info": {"title": "Petstore", "version": "1.0.0", "x-audience": "external"},
	"components": {
		"schemas": {
			"Pet": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"$ref": "#/components/schemas/NameType"}
				}
			},
			"NameType": {"type": "string"}
		},
		"responses": {
			"NotFound": {"description": "not found"}
		}
	},
	"x-vendor": "acme"
}`

const petstoreYAML = `openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          $ref: '#/components/schemas/NameType'
    NameType:
      type: string
`

func TestDocumentDecodeJSON(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(petstoreJSON), &doc))

	assert.Equal(t, "3.1.0", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, map[string]any{"x-audience": "external"}, doc.Info.Extra)
	assert.Equal(t, map[string]any{"x-vendor": "acme"}, doc.Extra)

	require.NotNil(t, doc.Components)
	pet := doc.Components.Schemas["Pet"]
	require.NotNil(t, pet)
	require.False(t, pet.IsRef())
	assert.Equal(t, TypeObject, pet.Value.Type)
	assert.True(t, pet.Value.Properties["name"].IsRef())

	// Decoding stores the slot as written; nothing resolves until asked.
	name, err := pet.Value.Properties["name"].Resolve(&doc)
	require.NoError(t, err)
	assert.Equal(t, TypeString, name.Type)
}

func TestDocumentDecodeYAML(t *testing.T) {
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(petstoreYAML), &doc))

	assert.Equal(t, "3.1.0", doc.OpenAPI)
	require.NotNil(t, doc.Components)
	pet := doc.Components.Schemas["Pet"]
	require.NotNil(t, pet)
	assert.Equal(t, "#/components/schemas/NameType", pet.Value.Properties["name"].Ref)

	got, err := FromRef[Schema](&doc, "#/components/schemas/NameType")
	require.NoError(t, err)
	assert.Equal(t, TypeString, got.Type)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(petstoreJSON), &doc))

	out, err := json.Marshal(&doc)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "acme", m["x-vendor"])
	info, ok := m["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "external", info["x-audience"])

	var back Document
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, doc, back)

	// The ref slot must survive as a $ref, not get inlined.
	comps, ok := m["components"].(map[string]any)
	require.True(t, ok)
	schemas := comps["schemas"].(map[string]any)
	pet := schemas["Pet"].(map[string]any)
	props := pet["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"$ref": "#/components/schemas/NameType"}, props["name"])
}
