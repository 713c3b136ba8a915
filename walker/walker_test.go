package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasref/spec"
)

func inline[T spec.Component](v T) *spec.ObjectOrRef[T] {
	return spec.Inline(v)
}

func testDoc() *spec.Document {
	return &spec.Document{
		OpenAPI: "3.1.0",
		Components: &spec.Components{
			Schemas: map[string]*spec.ObjectOrRef[spec.Schema]{
				"Pet": inline(spec.Schema{
					Type: spec.TypeObject,
					Properties: map[string]*spec.ObjectOrRef[spec.Schema]{
						"name": spec.RefTo[spec.Schema]("#/components/schemas/NameType"),
						"tags": inline(spec.Schema{
							Type:  spec.TypeArray,
							Items: inline(spec.Schema{Type: spec.TypeString}),
						}),
					},
				}),
				"NameType": inline(spec.Schema{Type: spec.TypeString}),
			},
			Parameters: map[string]*spec.ObjectOrRef[spec.Parameter]{
				"limit": inline(spec.Parameter{
					Name:   "limit",
					In:     "query",
					Schema: inline(spec.Schema{Type: spec.TypeInteger}),
				}),
			},
			Responses: map[string]*spec.ObjectOrRef[spec.Response]{
				"PetResponse": inline(spec.Response{
					Description: "a pet",
					Content: map[string]*spec.MediaType{
						"application/json": {
							Schema: spec.RefTo[spec.Schema]("#/components/schemas/Pet"),
						},
					},
				}),
			},
		},
	}
}

func TestWalkVisitsSchemas(t *testing.T) {
	var locations []string
	err := Walk(testDoc(),
		WithSchemaHandler(func(wc *WalkContext, _ *spec.Schema) Action {
			locations = append(locations, wc.Location)
			return Continue
		}),
	)
	require.NoError(t, err)

	// The name property is a ref slot: reported to the ref handler, never
	// visited as a schema.
	assert.Equal(t, []string{
		"#/components/schemas/NameType",
		"#/components/schemas/Pet",
		"#/components/schemas/Pet/properties/tags",
		"#/components/schemas/Pet/properties/tags/items",
	}, locations)
}

func TestWalkReportsRefs(t *testing.T) {
	var refs []*RefInfo
	err := Walk(testDoc(),
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref)
			return Continue
		}),
	)
	require.NoError(t, err)

	require.Len(t, refs, 2)
	assert.Equal(t, "#/components/schemas/NameType", refs[0].Ref)
	assert.Equal(t, "#/components/schemas/Pet/properties/name", refs[0].SourcePath)
	assert.Equal(t, "schema", refs[0].NodeType)
	assert.Equal(t, "#/components/schemas/Pet", refs[1].Ref)
	assert.Equal(t, "#/components/responses/PetResponse/content/application/json/schema", refs[1].SourcePath)
}

func TestWalkSkipChildren(t *testing.T) {
	var visited []string
	err := Walk(testDoc(),
		WithSchemaHandler(func(wc *WalkContext, _ *spec.Schema) Action {
			visited = append(visited, wc.Location)
			if wc.Name == "Pet" {
				return SkipChildren
			}
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#/components/schemas/NameType",
		"#/components/schemas/Pet",
	}, visited)
}

func TestWalkStop(t *testing.T) {
	var visited int
	err := Walk(testDoc(),
		WithSchemaHandler(func(_ *WalkContext, _ *spec.Schema) Action {
			visited++
			return Stop
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}

func TestWalkParameterAndResponseHandlers(t *testing.T) {
	var params, responses, headers []string
	doc := testDoc()
	doc.Components.Headers = map[string]*spec.ObjectOrRef[spec.Header]{
		"X-Rate-Limit": inline(spec.Header{
			Schema: inline(spec.Schema{Type: spec.TypeInteger}),
		}),
	}

	err := Walk(doc,
		WithParameterHandler(func(wc *WalkContext, p *spec.Parameter) Action {
			params = append(params, wc.Name+":"+p.In)
			return Continue
		}),
		WithResponseHandler(func(wc *WalkContext, _ *spec.Response) Action {
			responses = append(responses, wc.Name)
			return Continue
		}),
		WithHeaderHandler(func(wc *WalkContext, _ *spec.Header) Action {
			headers = append(headers, wc.Location)
			return Continue
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"limit:query"}, params)
	assert.Equal(t, []string{"PetResponse"}, responses)
	assert.Equal(t, []string{"#/components/headers/X-Rate-Limit"}, headers)
}

func TestWalkCircularStructureTerminates(t *testing.T) {
	node := &spec.Schema{Type: spec.TypeObject}
	node.Properties = map[string]*spec.ObjectOrRef[spec.Schema]{
		"next": {Value: node},
	}
	doc := &spec.Document{
		OpenAPI: "3.1.0",
		Components: &spec.Components{
			Schemas: map[string]*spec.ObjectOrRef[spec.Schema]{
				"Node": {Value: node},
			},
		},
	}

	var visited int
	var skipped []string
	err := Walk(doc,
		WithSchemaHandler(func(_ *WalkContext, _ *spec.Schema) Action {
			visited++
			return Continue
		}),
		WithSchemaSkippedHandler(func(reason string, _ *spec.Schema, loc string) {
			skipped = append(skipped, reason+" "+loc)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
	assert.Equal(t, []string{"cycle #/components/schemas/Node/properties/next"}, skipped)
}

func TestWalkDepthLimit(t *testing.T) {
	deep := inline(spec.Schema{
		Type: spec.TypeObject,
		Properties: map[string]*spec.ObjectOrRef[spec.Schema]{
			"a": inline(spec.Schema{
				Type: spec.TypeObject,
				Properties: map[string]*spec.ObjectOrRef[spec.Schema]{
					"b": inline(spec.Schema{Type: spec.TypeString}),
				},
			}),
		},
	})
	doc := &spec.Document{
		OpenAPI: "3.1.0",
		Components: &spec.Components{
			Schemas: map[string]*spec.ObjectOrRef[spec.Schema]{"Deep": deep},
		},
	}

	var skipped []string
	err := Walk(doc,
		WithMaxDepth(1),
		WithSchemaSkippedHandler(func(reason string, _ *spec.Schema, loc string) {
			skipped = append(skipped, reason)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"depth"}, skipped)
}

func TestWalkNilDocument(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
}

func TestWalkEmptyDocument(t *testing.T) {
	require.NoError(t, Walk(&spec.Document{OpenAPI: "3.1.0"}))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(9)", Action(9).String())
	assert.True(t, Continue.IsValid())
	assert.False(t, Action(9).IsValid())
}
