// Package parser loads OpenAPI 3.1 documents from files, URLs, readers, or
// byte slices into the typed model in the spec package.
//
// Both YAML and JSON sources are supported; the format is detected from the
// path and content. Parsing never resolves $ref slots: references are stored
// as written and followed lazily via spec.FromRef or ObjectOrRef.Resolve.
//
// The functional-options API is the main entry point:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("api.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Document
package parser
