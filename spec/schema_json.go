package spec

import "encoding/json"

// MarshalJSON implements custom JSON marshaling for Schema.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as Go's encoding/json doesn't support
// inline maps like yaml:",inline".
//
//nolint:cyclop // Schema has 30+ fields per the specification, complexity is inherent
func (s *Schema) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(s.Extra) == 0 {
		type Alias Schema
		return json.Marshal((*Alias)(s))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 30+len(s.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Type != "" {
		m["type"] = s.Type
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.Items != nil {
		m["items"] = s.Items
	}
	if len(s.Properties) > 0 {
		m["properties"] = s.Properties
	}
	if s.AdditionalProperties != nil {
		m["additionalProperties"] = s.AdditionalProperties
	}
	if s.ContentEncoding != "" {
		m["contentEncoding"] = s.ContentEncoding
	}
	if s.ContentMediaType != "" {
		m["contentMediaType"] = s.ContentMediaType
	}
	if s.Default != nil {
		m["default"] = s.Default
	}
	if len(s.Examples) > 0 {
		m["examples"] = s.Examples
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.MultipleOf != nil {
		m["multipleOf"] = s.MultipleOf
	}
	if s.Minimum != nil {
		m["minimum"] = s.Minimum
	}
	if s.ExclusiveMaximum != nil {
		m["exclusiveMaximum"] = s.ExclusiveMaximum
	}
	if s.Maximum != nil {
		m["maximum"] = s.Maximum
	}
	if s.ExclusiveMinimum != nil {
		m["exclusiveMinimum"] = s.ExclusiveMinimum
	}
	if s.MinLength != nil {
		m["minLength"] = s.MinLength
	}
	if s.MaxLength != nil {
		m["maxLength"] = s.MaxLength
	}
	if s.MinItems != nil {
		m["minItems"] = s.MinItems
	}
	if s.MaxItems != nil {
		m["maxItems"] = s.MaxItems
	}
	if s.UniqueItems != nil {
		m["uniqueItems"] = s.UniqueItems
	}
	if s.MaxProperties != nil {
		m["maxProperties"] = s.MaxProperties
	}
	if s.MinProperties != nil {
		m["minProperties"] = s.MinProperties
	}
	if s.ReadOnly != nil {
		m["readOnly"] = s.ReadOnly
	}
	if s.WriteOnly != nil {
		m["writeOnly"] = s.WriteOnly
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = s.AllOf
	}
	if len(s.OneOf) > 0 {
		m["oneOf"] = s.OneOf
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = s.AnyOf
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range s.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// UnmarshalJSON implements custom JSON unmarshaling for Schema.
// This captures unknown fields (specification extensions like x-*) in the Extra map.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type Alias Schema
	aux := (*Alias)(s)

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	return captureExtensions(data, &s.Extra)
}
