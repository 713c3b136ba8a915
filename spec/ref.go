package spec

import (
	"strings"

	"github.com/erraggy/oasref/oaserrors"
)

// RefKind identifies which named component collection a reference points
// into. It is a closed enumeration: one case per supported collection.
type RefKind int

const (
	// KindSchema addresses the components.schemas collection
	KindSchema RefKind = iota
	// KindResponse addresses the components.responses collection
	KindResponse
	// KindParameter addresses the components.parameters collection
	KindParameter
	// KindExample addresses the components.examples collection
	KindExample
	// KindRequestBody addresses the components.requestBodies collection
	KindRequestBody
	// KindHeader addresses the components.headers collection
	KindHeader
	// KindSecurityScheme addresses the components.securitySchemes collection
	KindSecurityScheme
	// KindLink addresses the components.links collection
	KindLink
	// KindCallback addresses the components.callbacks collection
	KindCallback
)

// kindSegments maps the collection segment of a reference path to its kind.
var kindSegments = map[string]RefKind{
	"schemas":         KindSchema,
	"responses":       KindResponse,
	"parameters":      KindParameter,
	"examples":        KindExample,
	"requestBodies":   KindRequestBody,
	"headers":         KindHeader,
	"securitySchemes": KindSecurityScheme,
	"links":           KindLink,
	"callbacks":       KindCallback,
}

// String returns the collection segment this kind addresses, as it appears
// in reference paths (e.g. "schemas").
func (k RefKind) String() string {
	switch k {
	case KindSchema:
		return "schemas"
	case KindResponse:
		return "responses"
	case KindParameter:
		return "parameters"
	case KindExample:
		return "examples"
	case KindRequestBody:
		return "requestBodies"
	case KindHeader:
		return "headers"
	case KindSecurityScheme:
		return "securitySchemes"
	case KindLink:
		return "links"
	case KindCallback:
		return "callbacks"
	}
	return "unknown"
}

// Ref is a structured reference: the collection kind and the lookup key
// within it. A Ref carries no resolved value; it is meaningless outside the
// context of a document.
type Ref struct {
	Kind RefKind
	Name string
}

// String renders the reference in the canonical "#/components/<kind>/<name>"
// form.
func (r Ref) String() string {
	return "#/components/" + r.Kind.String() + "/" + r.Name
}

// ParseRef parses a raw reference string into a structured Ref.
//
// Only the trailing kind/name pair is semantically interpreted: a leading
// "#" pointer marker and any container segments (e.g. "components") are
// stripped, not validated. Missing segments, an empty name, or a collection
// segment outside the closed kind set are parse failures.
func ParseRef(raw string) (Ref, error) {
	trimmed := strings.TrimPrefix(raw, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return Ref{}, &oaserrors.RefParseError{Ref: raw, Message: "missing kind and name segments"}
	}

	segment := parts[len(parts)-2]
	name := parts[len(parts)-1]
	if name == "" {
		return Ref{}, &oaserrors.RefParseError{Ref: raw, Message: "empty component name"}
	}

	kind, ok := kindSegments[segment]
	if !ok {
		return Ref{}, &oaserrors.RefParseError{Ref: raw, Message: "unknown kind: " + segment}
	}

	return Ref{Kind: kind, Name: name}, nil
}
