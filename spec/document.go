package spec

import "slices"

// Document represents an OpenAPI 3.1 document: the top-level container that
// owns the named component collections referenced by $ref pointers.
//
// A Document is built once at load time and treated as immutable for the
// duration of resolution. Concurrent resolution calls against a fully
// constructed Document are safe; no resolution path mutates it.
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"` // Required: "3.1.x"
	Info       *Info       `yaml:"info,omitempty" json:"info,omitempty"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds the reusable objects addressable by $ref. Each collection
// maps component names to object-or-reference slots; entries are never
// auto-resolved at decode time.
type Components struct {
	Schemas         map[string]*ObjectOrRef[Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*ObjectOrRef[Response]       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*ObjectOrRef[Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*ObjectOrRef[Example]        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*ObjectOrRef[RequestBody]    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*ObjectOrRef[Header]         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*ObjectOrRef[SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*ObjectOrRef[Link]           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*ObjectOrRef[Callback]       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Lookup returns the stored object-or-reference entry for the given kind and
// name. The returned value is one of the *ObjectOrRef[T] instantiations,
// exposed as any; the second return is false when the document has no
// components or the collection has no entry under that name.
//
// Lookup is a pure read; it never resolves the entry it returns.
func (d *Document) Lookup(kind RefKind, name string) (any, bool) {
	if d == nil || d.Components == nil {
		return nil, false
	}
	c := d.Components
	switch kind {
	case KindSchema:
		if o, ok := c.Schemas[name]; ok {
			return o, true
		}
	case KindResponse:
		if o, ok := c.Responses[name]; ok {
			return o, true
		}
	case KindParameter:
		if o, ok := c.Parameters[name]; ok {
			return o, true
		}
	case KindExample:
		if o, ok := c.Examples[name]; ok {
			return o, true
		}
	case KindRequestBody:
		if o, ok := c.RequestBodies[name]; ok {
			return o, true
		}
	case KindHeader:
		if o, ok := c.Headers[name]; ok {
			return o, true
		}
	case KindSecurityScheme:
		if o, ok := c.SecuritySchemes[name]; ok {
			return o, true
		}
	case KindLink:
		if o, ok := c.Links[name]; ok {
			return o, true
		}
	case KindCallback:
		if o, ok := c.Callbacks[name]; ok {
			return o, true
		}
	}
	return nil, false
}

// ComponentNames returns the sorted names registered in the collection for
// the given kind. Returns nil when the document has no components.
func (d *Document) ComponentNames(kind RefKind) []string {
	if d == nil || d.Components == nil {
		return nil
	}
	c := d.Components
	var names []string
	switch kind {
	case KindSchema:
		names = mapKeys(c.Schemas)
	case KindResponse:
		names = mapKeys(c.Responses)
	case KindParameter:
		names = mapKeys(c.Parameters)
	case KindExample:
		names = mapKeys(c.Examples)
	case KindRequestBody:
		names = mapKeys(c.RequestBodies)
	case KindHeader:
		names = mapKeys(c.Headers)
	case KindSecurityScheme:
		names = mapKeys(c.SecuritySchemes)
	case KindLink:
		names = mapKeys(c.Links)
	case KindCallback:
		names = mapKeys(c.Callbacks)
	}
	slices.Sort(names)
	return names
}

func mapKeys[T Component](m map[string]*ObjectOrRef[T]) []string {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
