// Package spec provides a typed in-memory model of OpenAPI 3.1 documents and
// resolution of internal $ref pointers against the document's component
// collections.
//
// # Object-or-reference slots
//
// Every place the specification allows either an inline component or a $ref
// is modeled as an [ObjectOrRef]: a two-variant union holding exactly one of
// an inline value or a reference string. Decoding a document never follows
// references; resolution is lazy and invoked explicitly by a caller holding
// the document:
//
//	entry := doc.Components.Schemas["Pet"]
//	pet, err := entry.Resolve(doc)
//
// Resolution follows reference chains transitively until an inline value is
// reached, tracking visited references and failing with
// [oaserrors.CircularRefError] when a reference repeats.
//
// # The resolution contract
//
// [FromRef] is the per-component-type resolution contract: given the document
// and a raw reference string it locates the concrete component or returns a
// typed failure. The kind a reference names must match the component type
// being resolved; a mismatch is [oaserrors.MismatchedTypeError], which is
// distinct from absence ([oaserrors.UnresolvableError]):
//
//	pet, err := spec.FromRef[spec.Schema](doc, "#/components/schemas/Pet")
//
// # Reference syntax
//
// Reference strings follow the JSON-Pointer-flavored convention
// "#/components/<kind>/<name>". Only the trailing kind/name pair is
// interpreted; the leading container segment is assumed and stripped. The
// kind is a closed enumeration ([RefKind]); unknown kinds are parse failures.
package spec
