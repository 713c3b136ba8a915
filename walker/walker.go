package walker

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/erraggy/oasref/internal/pathutil"
	"github.com/erraggy/oasref/spec"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// WalkContext provides contextual information about the current node.
type WalkContext struct {
	// Location is the slash-separated location of the current node,
	// e.g. "#/components/schemas/Pet/properties/name".
	Location string

	// Name is the map key for named items like component schemas, headers,
	// or properties. Empty for array items.
	Name string

	// IsComponent is true when the current node is a direct entry of a
	// components collection rather than nested inside one.
	IsComponent bool
}

// Handler types for each node type. Each handler receives the walk context
// and the node, and returns an Action.

// SchemaHandler is called for each Schema, including nested schemas.
type SchemaHandler func(wc *WalkContext, schema *spec.Schema) Action

// ParameterHandler is called for each Parameter.
type ParameterHandler func(wc *WalkContext, param *spec.Parameter) Action

// ResponseHandler is called for each Response.
type ResponseHandler func(wc *WalkContext, resp *spec.Response) Action

// HeaderHandler is called for each Header.
type HeaderHandler func(wc *WalkContext, header *spec.Header) Action

// RequestBodyHandler is called for each RequestBody.
type RequestBodyHandler func(wc *WalkContext, body *spec.RequestBody) Action

// ExampleHandler is called for each Example.
type ExampleHandler func(wc *WalkContext, example *spec.Example) Action

// SchemaSkippedHandler is called when a schema is skipped during traversal.
// The reason is "cycle" when the schema was already visited, or "depth" when
// nesting exceeds the configured maximum.
type SchemaSkippedHandler func(reason string, schema *spec.Schema, location string)

// Walker traverses OpenAPI documents and calls handlers for each node type.
type Walker struct {
	onSchema        SchemaHandler
	onParameter     ParameterHandler
	onResponse      ResponseHandler
	onHeader        HeaderHandler
	onRequestBody   RequestBodyHandler
	onExample       ExampleHandler
	onRef           RefHandler
	onSchemaSkipped SchemaSkippedHandler

	maxDepth int

	visitedSchemas map[*spec.Schema]bool
	stopped        bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: 100,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithSchemaHandler sets the handler for Schema objects.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithParameterHandler sets the handler for Parameter objects.
func WithParameterHandler(fn ParameterHandler) Option {
	return func(w *Walker) { w.onParameter = fn }
}

// WithResponseHandler sets the handler for Response objects.
func WithResponseHandler(fn ResponseHandler) Option {
	return func(w *Walker) { w.onResponse = fn }
}

// WithHeaderHandler sets the handler for Header objects.
func WithHeaderHandler(fn HeaderHandler) Option {
	return func(w *Walker) { w.onHeader = fn }
}

// WithRequestBodyHandler sets the handler for RequestBody objects.
func WithRequestBodyHandler(fn RequestBodyHandler) Option {
	return func(w *Walker) { w.onRequestBody = fn }
}

// WithExampleHandler sets the handler for Example objects.
func WithExampleHandler(fn ExampleHandler) Option {
	return func(w *Walker) { w.onExample = fn }
}

// WithRefHandler sets the handler called for each $ref slot encountered.
func WithRefHandler(fn RefHandler) Option {
	return func(w *Walker) { w.onRef = fn }
}

// WithSchemaSkippedHandler sets the handler called when schemas are skipped
// due to cycle detection ("cycle") or the depth limit ("depth").
func WithSchemaSkippedHandler(fn SchemaSkippedHandler) Option {
	return func(w *Walker) { w.onSchemaSkipped = fn }
}

/// WithMaxDepth sets the maximum schema nesting depth. Default: 100.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) { w.maxDepth = depth }
}

// Walk traverses the document with a new Walker configured by opts.
func Walk(doc *spec.Document, opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.Walk(doc)
}

// Walk traverses the document's component collections.
// $ref slots are reported, never followed.
func (w *Walker) Walk(doc *spec.Document) error {
	if doc == nil {
		return fmt.Errorf("walker: document is nil")
	}
	w.visitedSchemas = make(map[*spec.Schema]bool)
	w.stopped = false

	if doc.Components == nil {
		return nil
	}
	c := doc.Components

	path := pathutil.Get()
	defer pathutil.Put(path)
	path.Push("components")

	w.walkSchemas(c.Schemas, path)
	w.walkResponses(c.Responses, path)
	w.walkParameters(c.Parameters, path)
	w.walkExamples(c.Examples, path, true)
	w.walkRequestBodies(c.RequestBodies, path)
	w.walkHeaders(c.Headers, path, true)
	emitSlotRefs(w, c.SecuritySchemes, path, "securitySchemes", "securityScheme")
	emitSlotRefs(w, c.Links, path, "links", "link")
	emitSlotRefs(w, c.Callbacks, path, "callbacks", "callback")

	return nil
}

// location renders the breadcrumb as a fragment location.
func location(path *pathutil.Path) string {
	return "#/" + path.String()
}

// sortedKeys returns map keys in sorted order so traversal is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func (w *Walker) emitRef(path *pathutil.Path, ref, nodeType, name string, isComponent bool) {
	if w.stopped || w.onRef == nil {
		return
	}
	wc := &WalkContext{Location: location(path), Name: name, IsComponent: isComponent}
	info := &RefInfo{Ref: ref, SourcePath: wc.Location, NodeType: nodeType}
	if w.onRef(wc, info) == Stop {
		w.stopped = true
	}
}

func (w *Walker) walkSchemas(schemas map[string]*spec.ObjectOrRef[spec.Schema], path *pathutil.Path) {
	if len(schemas) == 0 || w.stopped {
		return
	}
	path.Push("schemas")
	defer path.Pop()
	for _, name := range sortedKeys(schemas) {
		if w.stopped {
			return
		}
		path.Push(name)
		w.walkSchemaSlot(schemas[name], path, name, true, 0)
		path.Pop()
	}
}

func (w *Walker) walkSchemaSlot(slot *spec.ObjectOrRef[spec.Schema], path *pathutil.Path, name string, isComponent bool, depth int) {
	if slot == nil || w.stopped {
		return
	}
	if slot.IsRef() {
		w.emitRef(path, slot.Ref, "schema", name, isComponent)
		return
	}
	w.walkSchema(slot.Value, path, name, isComponent, depth)
}

func (w *Walker) walkSchema(s *spec.Schema, path *pathutil.Path, name string, isComponent bool, depth int) {
	if s == nil || w.stopped {
		return
	}
	if w.visitedSchemas[s] {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped("cycle", s, location(path))
		}
		return
	}
	if depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped("depth", s, location(path))
		}
		return
	}
	w.visitedSchemas[s] = true

	if w.onSchema != nil {
		wc := &WalkContext{Location: location(path), Name: name, IsComponent: isComponent}
		switch w.onSchema(wc, s) {
		case Stop:
			w.stopped = true
			return
		case SkipChildren:
			return
		}
	}

	if len(s.Properties) > 0 {
		path.Push("properties")
		for _, prop := range sortedKeys(s.Properties) {
			if w.stopped {
				break
			}
			path.Push(prop)
			w.walkSchemaSlot(s.Properties[prop], path, prop, false, depth+1)
			path.Pop()
		}
		path.Pop()
	}

	if s.Items != nil {
		path.Push("items")
		w.walkSchemaSlot(s.Items, path, "", false, depth+1)
		path.Pop()
	}

	if ap := s.AdditionalProperties; ap != nil {
		path.Push("additionalProperties")
		if ap.IsRef() {
			w.emitRef(path, ap.Ref, "schema", "", false)
		} else if ap.Value != nil && ap.Value.Schema != nil {
			w.walkSchema(ap.Value.Schema, path, "", false, depth+1)
		}
		path.Pop()
	}

	w.walkComposition(s.AllOf, path, "allOf", depth)
	w.walkComposition(s.OneOf, path, "oneOf", depth)
	w.walkComposition(s.AnyOf, path, "anyOf", depth)
}

func (w *Walker) walkComposition(slots []*spec.ObjectOrRef[spec.Schema], path *pathutil.Path, keyword string, depth int) {
	if len(slots) == 0 || w.stopped {
		return
	}
	path.Push(keyword)
	defer path.Pop()
	for i, slot := range slots {
		if w.stopped {
			return
		}
		path.Push(strconv.Itoa(i))
		w.walkSchemaSlot(slot, path, "", false, depth+1)
		path.Pop()
	}
}

func (w *Walker) walkResponses(responses map[string]*spec.ObjectOrRef[spec.Response], path *pathutil.Path) {
	if len(responses) == 0 || w.stopped {
		return
	}
	path.Push("responses")
	defer path.Pop()
	for _, name := range sortedKeys(responses) {
		if w.stopped {
			return
		}
		path.Push(name)
		slot := responses[name]
		if slot.IsRef() {
			w.emitRef(path, slot.Ref, "response", name, true)
		} else if resp := slot.Value; resp != nil {
			if w.onResponse != nil {
				wc := &WalkContext{Location: location(path), Name: name, IsComponent: true}
				switch w.onResponse(wc, resp) {
				case Stop:
					w.stopped = true
				case SkipChildren:
					path.Pop()
					continue
				}
			}
			w.walkHeaders(resp.Headers, path, false)
			w.walkContent(resp.Content, path)
		}
		path.Pop()
	}
}

func (w *Walker) walkParameters(params map[string]*spec.ObjectOrRef[spec.Parameter], path *pathutil.Path) {
	if len(params) == 0 || w.stopped {
		return
	}
	path.Push("parameters")
	defer path.Pop()
	for _, name := range sortedKeys(params) {
		if w.stopped {
			return
		}
		path.Push(name)
		slot := params[name]
		if slot.IsRef() {
			w.emitRef(path, slot.Ref, "parameter", name, true)
		} else if param := slot.Value; param != nil {
			if w.onParameter != nil {
				wc := &WalkContext{Location: location(path), Name: name, IsComponent: true}
				switch w.onParameter(wc, param) {
				case Stop:
					w.stopped = true
				case SkipChildren:
					path.Pop()
					continue
				}
			}
			if param.Schema != nil {
				path.Push("schema")
				w.walkSchemaSlot(param.Schema, path, "", false, 0)
				path.Pop()
			}
			w.walkExamples(param.Examples, path, false)
			w.walkContent(param.Content, path)
		}
		path.Pop()
	}
}

func (w *Walker) walkExamples(examples map[string]*spec.ObjectOrRef[spec.Example], path *pathutil.Path, isComponent bool) {
	if len(examples) == 0 || w.stopped {
		return
	}
	path.Push("examples")
	defer path.Pop()
	for _, name := range sortedKeys(examples) {
		if w.stopped {
			return
		}
		path.Push(name)
		slot := examples[name]
		if slot.IsRef() {
			w.emitRef(path, slot.Ref, "example", name, isComponent)
		} else if ex := slot.Value; ex != nil && w.onExample != nil {
			wc := &WalkContext{Location: location(path), Name: name, IsComponent: isComponent}
			if w.onExample(wc, ex) == Stop {
				w.stopped = true
			}
		}
		path.Pop()
	}
}

func (w *Walker) walkRequestBodies(bodies map[string]*spec.ObjectOrRef[spec.RequestBody], path *pathutil.Path) {
	if len(bodies) == 0 || w.stopped {
		return
	}
	path.Push("requestBodies")
	defer path.Pop()
	for _, name := range sortedKeys(bodies) {
		if w.stopped {
			return
		}
		path.Push(name)
		slot := bodies[name]
		if slot.IsRef() {
			w.emitRef(path, slot.Ref, "requestBody", name, true)
		} else if body := slot.Value; body != nil {
			if w.onRequestBody != nil {
				wc := &WalkContext{Location: location(path), Name: name, IsComponent: true}
				switch w.onRequestBody(wc, body) {
				case Stop:
					w.stopped = true
				case SkipChildren:
					path.Pop()
					continue
				}
			}
			w.walkContent(body.Content, path)
		}
		path.Pop()
	}
}

func (w *Walker) walkHeaders(headers map[string]*spec.ObjectOrRef[spec.Header], path *pathutil.Path, isComponent bool) {
	if len(headers) == 0 || w.stopped {
		return
	}
	path.Push("headers")
	defer path.Pop()
	for _, name := range sortedKeys(headers) {
		if w.stopped {
			return
		}
		path.Push(name)
		slot := headers[name]
		if slot.IsRef() {
			w.emitRef(path, slot.Ref, "header", name, isComponent)
		} else if hdr := slot.Value; hdr != nil {
			if w.onHeader != nil {
				wc := &WalkContext{Location: location(path), Name: name, IsComponent: isComponent}
				switch w.onHeader(wc, hdr) {
				case Stop:
					w.stopped = true
				case SkipChildren:
					path.Pop()
					continue
				}
			}
			if hdr.Schema != nil {
				path.Push("schema")
				w.walkSchemaSlot(hdr.Schema, path, "", false, 0)
				path.Pop()
			}
			w.walkExamples(hdr.Examples, path, false)
		}
		path.Pop()
	}
}

func (w *Walker) walkContent(content map[string]*spec.MediaType, path *pathutil.Path) {
	if len(content) == 0 || w.stopped {
		return
	}
	path.Push("content")
	defer path.Pop()
	for _, mt := range sortedKeys(content) {
		if w.stopped {
			return
		}
		path.Push(mt)
		media := content[mt]
		if media.Schema != nil {
			path.Push("schema")
			w.walkSchemaSlot(media.Schema, path, "", false, 0)
			path.Pop()
		}
		w.walkExamples(media.Examples, path, false)
		path.Pop()
	}
}

// emitSlotRefs reports slot-level refs for collections whose values the
// walker has no dedicated handler for.
func emitSlotRefs[T spec.Component](w *Walker, slots map[string]*spec.ObjectOrRef[T], path *pathutil.Path, segment, nodeType string) {
	if len(slots) == 0 || w.stopped {
		return
	}
	path.Push(segment)
	defer path.Pop()
	for _, name := range sortedKeys(slots) {
		if w.stopped {
			return
		}
		if slot := slots[name]; slot.IsRef() {
			path.Push(name)
			w.emitRef(path, slot.Ref, nodeType, name, true)
			path.Pop()
		}
	}
}
