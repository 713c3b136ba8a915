package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref/oaserrors"
	"github.com/erraggy/oasref/spec"
)

type resolveInput struct {
	Spec specInput `json:"spec" jsonschema:"The spec document to resolve against"`
	Ref  string    `json:"ref"  jsonschema:"The reference to resolve, e.g. #/components/schemas/Pet"`
}

type resolveOutput struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name"`
	Component json.RawMessage `json:"component"`
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	doc := parseResult.Document

	parsed, err := spec.ParseRef(input.Ref)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	component, err := resolveComponent(doc, parsed.Kind, input.Ref)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	raw, err := json.Marshal(component)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	return nil, resolveOutput{
		Kind:      parsed.Kind.String(),
		Name:      parsed.Name,
		Component: raw,
	}, nil
}

// resolveComponent follows the reference with the resolution type matching
// its kind and returns the inline component.
func resolveComponent(doc *spec.Document, kind spec.RefKind, ref string) (any, error) {
	switch kind {
	case spec.KindSchema:
		return spec.FromRef[spec.Schema](doc, ref)
	case spec.KindResponse:
		return spec.FromRef[spec.Response](doc, ref)
	case spec.KindParameter:
		return spec.FromRef[spec.Parameter](doc, ref)
	case spec.KindExample:
		return spec.FromRef[spec.Example](doc, ref)
	case spec.KindRequestBody:
		return spec.FromRef[spec.RequestBody](doc, ref)
	case spec.KindHeader:
		return spec.FromRef[spec.Header](doc, ref)
	case spec.KindSecurityScheme:
		return spec.FromRef[spec.SecurityScheme](doc, ref)
	case spec.KindLink:
		return spec.FromRef[spec.Link](doc, ref)
	case spec.KindCallback:
		return spec.FromRef[spec.Callback](doc, ref)
	}
	return nil, &oaserrors.RefParseError{Ref: ref, Message: "unrecognized component kind"}
}
