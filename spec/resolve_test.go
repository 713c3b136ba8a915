package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasref/oaserrors"
)

// petDoc builds the document used throughout the resolution scenarios:
// components.schemas.Pet = {type: object} and an examples entry sharing the
// same name to exercise kind mismatches.
func petDoc() *Document {
	return &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"Pet": Inline(Schema{Type: TypeObject}),
			},
			Examples: map[string]*ObjectOrRef[Example]{
				"Pet": Inline(Example{Summary: "a pet"}),
			},
		},
	}
}

func TestResolveInlineNeverLooksUp(t *testing.T) {
	entry := Inline(Schema{Type: TypeString})

	// A document deliberately missing the schemas collection: if Resolve
	// performed a lookup the resolution would fail.
	doc := &Document{OpenAPI: "3.1.0"}
	got, err := entry.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, TypeString, got.Type)

	// Inline resolution works without any document at all.
	got, err = entry.Resolve(nil)
	require.NoError(t, err)
	assert.Same(t, entry.Value, got)
}

func TestResolveScenarioA(t *testing.T) {
	doc := petDoc()
	got, err := FromRef[Schema](doc, "#/components/schemas/Pet")
	require.NoError(t, err)
	assert.Equal(t, Schema{Type: TypeObject}, *got)
}

func TestResolveScenarioB(t *testing.T) {
	doc := petDoc()
	_, err := FromRef[Schema](doc, "#/components/schemas/Dog")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvable)
	assert.NotErrorIs(t, err, oaserrors.ErrMismatchedType)

	var unresolvable *oaserrors.UnresolvableError
	require.True(t, errors.As(err, &unresolvable))
	assert.Equal(t, "#/components/schemas/Dog", unresolvable.Ref)
}

func TestResolveScenarioC(t *testing.T) {
	doc := petDoc()
	_, err := FromRef[Schema](doc, "#/components/examples/Pet")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrMismatchedType)
	assert.NotErrorIs(t, err, oaserrors.ErrUnresolvable)

	var mismatched *oaserrors.MismatchedTypeError
	require.True(t, errors.As(err, &mismatched))
	assert.Equal(t, "examples", mismatched.Found)
	assert.Equal(t, "schemas", mismatched.Want)
}

func TestResolveScenarioD(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"NameType": Inline(Schema{Type: TypeString}),
			},
		},
	}
	parent := Schema{
		Type: TypeObject,
		Properties: map[string]*ObjectOrRef[Schema]{
			"name": RefTo[Schema]("#/components/schemas/NameType"),
		},
	}

	got, err := parent.Properties["name"].Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, Schema{Type: TypeString}, *got)
}

func TestResolveReferenceToInlineTarget(t *testing.T) {
	doc := petDoc()
	entry := RefTo[Schema]("#/components/schemas/Pet")
	got, err := entry.Resolve(doc)
	require.NoError(t, err)
	assert.Equal(t, doc.Components.Schemas["Pet"].Value, got)
}

func TestResolveTransitiveChain(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"A": RefTo[Schema]("#/components/schemas/B"),
				"B": RefTo[Schema]("#/components/schemas/C"),
				"C": Inline(Schema{Type: TypeInteger}),
			},
		},
	}

	got, err := FromRef[Schema](doc, "#/components/schemas/A")
	require.NoError(t, err)
	assert.Equal(t, TypeInteger, got.Type)
}

func TestResolveCircularChain(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"A": RefTo[Schema]("#/components/schemas/B"),
				"B": RefTo[Schema]("#/components/schemas/A"),
			},
		},
	}

	_, err := FromRef[Schema](doc, "#/components/schemas/A")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrCircularRef)

	var circular *oaserrors.CircularRefError
	require.True(t, errors.As(err, &circular))
	assert.Equal(t, "#/components/schemas/A", circular.Ref)
	assert.Equal(t,
		[]string{"#/components/schemas/A", "#/components/schemas/B"},
		circular.Chain)
}

func TestResolveSelfReference(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"Node": RefTo[Schema]("#/components/schemas/Node"),
			},
		},
	}

	_, err := FromRef[Schema](doc, "#/components/schemas/Node")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrCircularRef)
}

func TestResolveParseFailurePropagates(t *testing.T) {
	doc := petDoc()
	_, err := FromRef[Schema](doc, "#/components/widgets/Pet")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrRefParse)
}

func TestResolveAgainstEmptyDocument(t *testing.T) {
	_, err := FromRef[Schema](&Document{OpenAPI: "3.1.0"}, "#/components/schemas/Pet")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvable)

	_, err = FromRef[Schema](nil, "#/components/schemas/Pet")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvable)
}

func TestResolveExampleContract(t *testing.T) {
	doc := petDoc()

	got, err := FromRef[Example](doc, "#/components/examples/Pet")
	require.NoError(t, err)
	assert.Equal(t, "a pet", got.Summary)

	// The symmetric mismatch: a schema ref resolved as an example.
	_, err = FromRef[Example](doc, "#/components/schemas/Pet")
	require.Error(t, err)
	var mismatched *oaserrors.MismatchedTypeError
	require.True(t, errors.As(err, &mismatched))
	assert.Equal(t, "schemas", mismatched.Found)
	assert.Equal(t, "examples", mismatched.Want)
}

func TestResolveAdditionalPropertiesRef(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"Extra": Inline(Schema{Type: TypeString}),
			},
		},
	}
	s := Schema{
		Type:                 TypeObject,
		AdditionalProperties: RefTo[SchemaOrBool]("#/components/schemas/Extra"),
	}

	got, err := s.AdditionalProperties.Resolve(doc)
	require.NoError(t, err)
	require.NotNil(t, got.Schema)
	assert.Nil(t, got.Bool)
	assert.Equal(t, TypeString, got.Schema.Type)
}

func TestResolveSiblingKinds(t *testing.T) {
	doc := &Document{
		OpenAPI: "3.1.0",
		Components: &Components{
			Parameters: map[string]*ObjectOrRef[Parameter]{
				"limit": Inline(Parameter{Name: "limit", In: "query"}),
			},
			Responses: map[string]*ObjectOrRef[Response]{
				"NotFound": Inline(Response{Description: "not found"}),
			},
			Headers: map[string]*ObjectOrRef[Header]{
				"X-Rate-Limit": Inline(Header{Description: "rate limit"}),
			},
		},
	}

	p, err := FromRef[Parameter](doc, "#/components/parameters/limit")
	require.NoError(t, err)
	assert.Equal(t, "limit", p.Name)

	r, err := FromRef[Response](doc, "#/components/responses/NotFound")
	require.NoError(t, err)
	assert.Equal(t, "not found", r.Description)

	h, err := FromRef[Header](doc, "#/components/headers/X-Rate-Limit")
	require.NoError(t, err)
	assert.Equal(t, "rate limit", h.Description)
}

func TestLookupIsPureRead(t *testing.T) {
	doc := petDoc()

	entry, ok := doc.Lookup(KindSchema, "Pet")
	require.True(t, ok)
	stored, ok := entry.(*ObjectOrRef[Schema])
	require.True(t, ok)
	assert.Same(t, doc.Components.Schemas["Pet"], stored)

	_, ok = doc.Lookup(KindSchema, "Dog")
	assert.False(t, ok)
	_, ok = doc.Lookup(KindCallback, "Pet")
	assert.False(t, ok)
}

func TestComponentNames(t *testing.T) {
	doc := &Document{
		Components: &Components{
			Schemas: map[string]*ObjectOrRef[Schema]{
				"Zoo": Inline(Schema{}),
				"Pet": Inline(Schema{}),
				"Ant": Inline(Schema{}),
			},
		},
	}
	assert.Equal(t, []string{"Ant", "Pet", "Zoo"}, doc.ComponentNames(KindSchema))
	assert.Nil(t, doc.ComponentNames(KindExample))
	assert.Nil(t, (*Document)(nil).ComponentNames(KindSchema))
}
