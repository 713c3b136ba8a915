// Package oaserrors provides structured error types for oasref.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of resolution failures and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - RefParseError: the raw $ref string does not decompose into a
//     recognized (kind, name) pair
//   - MismatchedTypeError: the parsed kind does not match the component type
//     being resolved
//   - UnresolvableError: the kind matches but no entry exists under the name
//   - CircularRefError: a $ref chain revisited a reference while resolving
//   - UnknownTypeError and the ErrNoType / ErrRequiredOnNonObject sentinels:
//     schema validation failures, emitted by a validation pass layered above
//     resolution, never by resolution itself
//
// # Usage with errors.Is
//
//	_, err := spec.FromRef[spec.Schema](doc, "#/components/schemas/Dog")
//	if errors.Is(err, oaserrors.ErrUnresolvable) {
//	    // The schemas collection has no entry named Dog.
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrRefParse indicates a $ref string could not be parsed.
	ErrRefParse = errors.New("reference parse error")

	// ErrMismatchedType indicates a $ref pointed at a different component
	// kind than the one being resolved.
	ErrMismatchedType = errors.New("mismatched reference type")

	// ErrUnresolvable indicates the referenced name does not exist in the
	// document's collection for that kind.
	ErrUnresolvable = errors.New("unresolvable reference")

	// ErrCircularRef indicates a circular $ref chain was detected.
	ErrCircularRef = errors.New("circular reference")

	// ErrNoType indicates a schema is missing its type property.
	// Emitted only by validation, never by resolution.
	ErrNoType = errors.New("missing type property")

	// ErrUnknownType indicates a schema declared an unrecognized type.
	ErrUnknownType = errors.New("unknown type")

	// ErrRequiredOnNonObject indicates a required list on a schema whose
	// type is not object. Emitted only by validation, never by resolution.
	ErrRequiredOnNonObject = errors.New("required fields specified on a non-object schema")
)

// RefParseError represents a failure to parse a raw $ref string into a
// recognized (kind, name) pair.
type RefParseError struct {
	// Ref is the raw reference string that failed to parse
	Ref string
	// Message describes the parse failure
	Message string
}

// Error returns a human-readable error message.
func (e *RefParseError) Error() string {
	msg := "reference parse error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *RefParseError) Is(target error) bool {
	return target == ErrRefParse
}

// MismatchedTypeError represents a $ref whose kind segment named a different
// component collection than the type being resolved. This is a distinct
// failure from absence: the name was never looked up.
type MismatchedTypeError struct {
	// Ref is the raw reference string
	Ref string
	// Found is the collection segment the reference named (e.g. "examples")
	Found string
	// Want is the collection segment the resolving type owns (e.g. "schemas")
	Want string
}

// Error returns a human-readable error message.
func (e *MismatchedTypeError) Error() string {
	msg := fmt.Sprintf("mismatched reference type: found %s, want %s", e.Found, e.Want)
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MismatchedTypeError) Is(target error) bool {
	return target == ErrMismatchedType
}

// UnresolvableError represents a $ref whose kind matched but whose name has
// no entry in the document's corresponding collection.
type UnresolvableError struct {
	// Ref is the raw reference string that could not be resolved
	Ref string
}

// Error returns a human-readable error message.
func (e *UnresolvableError) Error() string {
	return "unresolvable reference: " + e.Ref
}

// Is reports whether target matches this error type.
func (e *UnresolvableError) Is(target error) bool {
	return target == ErrUnresolvable
}

// CircularRefError represents a $ref chain that revisited a reference
// during transitive resolution.
type CircularRefError struct {
	// Ref is the reference that closed the cycle
	Ref string
	// Chain is the sequence of references followed before the cycle closed
	Chain []string
}

// Error returns a human-readable error message.
func (e *CircularRefError) Error() string {
	msg := "circular reference: " + e.Ref
	if len(e.Chain) > 0 {
		msg += " (via " + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CircularRefError) Is(target error) bool {
	return target == ErrCircularRef
}

// UnknownTypeError represents a schema type token outside the closed set of
// recognized types (boolean, integer, number, string, array, object, null).
type UnknownTypeError struct {
	// Type is the unrecognized type token
	Type string
}

// Error returns a human-readable error message.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type: %q", e.Type)
}

// Is reports whether target matches this error type.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
