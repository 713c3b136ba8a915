package spec

import "encoding/json"

// Component is the constraint satisfied by every entity type addressable by
// $ref. Each type reports the single collection kind it owns; the resolution
// contract compares that kind against the kind a reference names.
type Component interface {
	refKind() RefKind
}

// ObjectOrRef holds exactly one of an inline value of T or a reference to
// one elsewhere in the document. The two variants are mutually exclusive:
// Value is nil when Ref is set and vice versa.
//
// Resolution never mutates the slot; it only reads it and the document to
// produce the concrete value.
type ObjectOrRef[T Component] struct {
	// Ref is the raw $ref string when the slot is indirect
	Ref string
	// Value is the inline component when the slot is direct
	Value *T
}

// Inline wraps an inline value in an object-or-reference slot.
func Inline[T Component](v T) *ObjectOrRef[T] {
	return &ObjectOrRef[T]{Value: &v}
}

// RefTo creates a reference-variant slot pointing at the given raw $ref.
func RefTo[T Component](ref string) *ObjectOrRef[T] {
	return &ObjectOrRef[T]{Ref: ref}
}

// IsRef reports whether the slot holds a reference rather than an inline
// value.
func (o *ObjectOrRef[T]) IsRef() bool {
	return o.Ref != ""
}

// Resolve returns the concrete component this slot denotes.
//
// An inline value is returned directly with no lookup; the document may even
// be nil in that case. A reference is followed transitively until an inline
// value is reached, failing with a typed error on parse failure, kind
// mismatch, absence, or a reference cycle.
func (o *ObjectOrRef[T]) Resolve(doc *Document) (*T, error) {
	if o.Value != nil {
		return o.Value, nil
	}
	return FromRef[T](doc, o.Ref)
}

// refEnvelope is the wire shape of a reference-variant slot.
type refEnvelope struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// MarshalJSON implements the union encoding: a reference renders as a
// {"$ref": ...} object, an inline value renders as the value itself.
func (o *ObjectOrRef[T]) MarshalJSON() ([]byte, error) {
	if o.Ref != "" {
		return json.Marshal(refEnvelope{Ref: o.Ref})
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON chooses the variant by the presence of a "$ref" key.
func (o *ObjectOrRef[T]) UnmarshalJSON(data []byte) error {
	var env refEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Ref != "" {
		o.Ref = env.Ref
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Ref = ""
	o.Value = &v
	return nil
}

// MarshalYAML implements the union encoding for YAML.
func (o *ObjectOrRef[T]) MarshalYAML() (any, error) {
	if o.Ref != "" {
		return refEnvelope{Ref: o.Ref}, nil
	}
	return o.Value, nil
}

// UnmarshalYAML chooses the variant by the presence of a "$ref" key.
func (o *ObjectOrRef[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var env refEnvelope
	if err := unmarshal(&env); err == nil && env.Ref != "" {
		o.Ref = env.Ref
		o.Value = nil
		return nil
	}
	var v T
	if err := unmarshal(&v); err != nil {
		return err
	}
	o.Ref = ""
	o.Value = &v
	return nil
}
