package spec

import "encoding/json"

// MarshalJSON implements custom JSON marshaling for Document.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as Go's encoding/json doesn't support
// inline maps like yaml:",inline".
func (d *Document) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(d.Extra) == 0 {
		type Alias Document
		return json.Marshal((*Alias)(d))
	}

	m := make(map[string]any, 3+len(d.Extra))
	m["openapi"] = d.OpenAPI
	if d.Info != nil {
		m["info"] = d.Info
	}
	if d.Components != nil {
		m["components"] = d.Components
	}
	for k, v := range d.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements custom JSON unmarshaling for Document.
// This captures unknown fields (specification extensions like x-*) in the Extra map.
func (d *Document) UnmarshalJSON(data []byte) error {
	type Alias Document
	aux := (*Alias)(d)

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	return captureExtensions(data, &d.Extra)
}

// MarshalJSON implements custom JSON marshaling for Info.
func (i *Info) MarshalJSON() ([]byte, error) {
	if len(i.Extra) == 0 {
		type Alias Info
		return json.Marshal((*Alias)(i))
	}

	m := make(map[string]any, 4+len(i.Extra))
	m["title"] = i.Title
	m["version"] = i.Version
	if i.Summary != "" {
		m["summary"] = i.Summary
	}
	if i.Description != "" {
		m["description"] = i.Description
	}
	for k, v := range i.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements custom JSON unmarshaling for Info.
func (i *Info) UnmarshalJSON(data []byte) error {
	type Alias Info
	aux := (*Alias)(i)

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	return captureExtensions(data, &i.Extra)
}

// MarshalJSON implements custom JSON marshaling for Components.
func (c *Components) MarshalJSON() ([]byte, error) {
	if len(c.Extra) == 0 {
		type Alias Components
		return json.Marshal((*Alias)(c))
	}

	m := make(map[string]any, 9+len(c.Extra))
	if len(c.Schemas) > 0 {
		m["schemas"] = c.Schemas
	}
	if len(c.Responses) > 0 {
		m["responses"] = c.Responses
	}
	if len(c.Parameters) > 0 {
		m["parameters"] = c.Parameters
	}
	if len(c.Examples) > 0 {
		m["examples"] = c.Examples
	}
	if len(c.RequestBodies) > 0 {
		m["requestBodies"] = c.RequestBodies
	}
	if len(c.Headers) > 0 {
		m["headers"] = c.Headers
	}
	if len(c.SecuritySchemes) > 0 {
		m["securitySchemes"] = c.SecuritySchemes
	}
	if len(c.Links) > 0 {
		m["links"] = c.Links
	}
	if len(c.Callbacks) > 0 {
		m["callbacks"] = c.Callbacks
	}
	for k, v := range c.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements custom JSON unmarshaling for Components.
func (c *Components) UnmarshalJSON(data []byte) error {
	type Alias Components
	aux := (*Alias)(c)

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	return captureExtensions(data, &c.Extra)
}

// captureExtensions re-reads the raw object and stores any "x-" prefixed
// fields into the target Extra map.
func captureExtensions(data []byte, extra *map[string]any) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	captured := make(map[string]any)
	for k, v := range m {
		if len(k) >= 2 && k[0] == 'x' && k[1] == '-' {
			captured[k] = v
		}
	}

	if len(captured) > 0 {
		*extra = captured
	}
	return nil
}
