package walker

import "github.com/erraggy/oasref/spec"

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *spec.Schema

	// Name is the component name for component schemas and the property name
	// for nested property schemas. Empty for array items.
	Name string

	// Location is the full location of the schema.
	Location string

	// IsComponent is true when the schema is a direct entry of
	// components/schemas.
	IsComponent bool
}

// SchemaCollector holds schemas collected during a walk.
type SchemaCollector struct {
	// All contains all schemas in traversal order.
	All []*SchemaInfo

	// Components contains only component schemas.
	Components []*SchemaInfo

	// Inline contains only inline schemas (not direct component entries).
	Inline []*SchemaInfo

	// ByLocation provides lookup by location.
	ByLocation map[string]*SchemaInfo

	// ByName provides lookup by name. If multiple schemas share a name,
	// only the last one is stored.
	ByName map[string]*SchemaInfo
}

// CollectSchemas walks the document and collects all schemas, including
// nested ones. Reference slots are not followed.
func CollectSchemas(doc *spec.Document) (*SchemaCollector, error) {
	collector := &SchemaCollector{
		All:        make([]*SchemaInfo, 0),
		Components: make([]*SchemaInfo, 0),
		Inline:     make([]*SchemaInfo, 0),
		ByLocation: make(map[string]*SchemaInfo),
		ByName:     make(map[string]*SchemaInfo),
	}

	err := Walk(doc,
		WithSchemaHandler(func(wc *WalkContext, schema *spec.Schema) Action {
			info := &SchemaInfo{
				Schema:      schema,
				Name:        wc.Name,
				Location:    wc.Location,
				IsComponent: wc.IsComponent,
			}

			collector.All = append(collector.All, info)
			collector.ByLocation[wc.Location] = info

			if wc.IsComponent {
				collector.Components = append(collector.Components, info)
			} else {
				collector.Inline = append(collector.Inline, info)
			}
			if wc.Name != "" {
				collector.ByName[wc.Name] = info
			}

			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return collector, nil
}

// CollectRefs walks the document and returns every $ref slot in traversal
// order, wherever it appears.
func CollectRefs(doc *spec.Document) ([]*RefInfo, error) {
	var refs []*RefInfo
	err := Walk(doc,
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref)
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return refs, nil
}
