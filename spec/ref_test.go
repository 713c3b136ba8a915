package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasref/oaserrors"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ref
	}{
		{
			name: "schema ref",
			raw:  "#/components/schemas/Pet",
			want: Ref{Kind: KindSchema, Name: "Pet"},
		},
		{
			name: "example ref",
			raw:  "#/components/examples/PetExample",
			want: Ref{Kind: KindExample, Name: "PetExample"},
		},
		{
			name: "request body ref",
			raw:  "#/components/requestBodies/NewPet",
			want: Ref{Kind: KindRequestBody, Name: "NewPet"},
		},
		{
			name: "security scheme ref",
			raw:  "#/components/securitySchemes/ApiKey",
			want: Ref{Kind: KindSecurityScheme, Name: "ApiKey"},
		},
		{
			name: "container segment is assumed, not validated",
			raw:  "#/definitions/schemas/Pet",
			want: Ref{Kind: KindSchema, Name: "Pet"},
		},
		{
			name: "no pointer marker",
			raw:  "components/schemas/Pet",
			want: Ref{Kind: KindSchema, Name: "Pet"},
		},
		{
			name: "bare kind and name",
			raw:  "schemas/Pet",
			want: Ref{Kind: KindSchema, Name: "Pet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRef(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRefFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "single segment", raw: "Pet"},
		{name: "pointer to root", raw: "#/"},
		{name: "empty name", raw: "#/components/schemas/"},
		{name: "unknown kind", raw: "#/components/widgets/Pet"},
		{name: "kind is not a collection", raw: "#/components/schema/Pet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRef(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrRefParse)

			var parseErr *oaserrors.RefParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.raw, parseErr.Ref)
		})
	}
}

func TestRefString(t *testing.T) {
	r := Ref{Kind: KindSchema, Name: "Pet"}
	assert.Equal(t, "#/components/schemas/Pet", r.String())

	r = Ref{Kind: KindRequestBody, Name: "NewPet"}
	assert.Equal(t, "#/components/requestBodies/NewPet", r.String())
}

func TestRefKindString(t *testing.T) {
	kinds := map[RefKind]string{
		KindSchema:         "schemas",
		KindResponse:       "responses",
		KindParameter:      "parameters",
		KindExample:        "examples",
		KindRequestBody:    "requestBodies",
		KindHeader:         "headers",
		KindSecurityScheme: "securitySchemes",
		KindLink:           "links",
		KindCallback:       "callbacks",
	}
	for kind, segment := range kinds {
		assert.Equal(t, segment, kind.String())
	}
	assert.Equal(t, "unknown", RefKind(99).String())
}

func TestParseRefRoundTrip(t *testing.T) {
	// Every kind's canonical form must parse back to itself.
	for kind := KindSchema; kind <= KindCallback; kind++ {
		r := Ref{Kind: kind, Name: "Thing"}
		parsed, err := ParseRef(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}
