// Package walker provides typed traversal of OpenAPI documents.
//
// The walker visits the component collections of a spec.Document and calls
// registered handlers for each node type. Nested schemas are traversed
// recursively through properties, items, additionalProperties, and the
// composition keywords; already-visited schemas are skipped so circular
// structures terminate.
//
// Handlers return an Action to control traversal:
//
//	walker.Walk(doc,
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *spec.Schema) walker.Action {
//	        fmt.Println(wc.Location, s.Type)
//	        return walker.Continue
//	    }),
//	)
//
// $ref slots are reported to the RefHandler and never followed: traversal
// covers the document as written, resolution stays with spec.FromRef.
package walker
