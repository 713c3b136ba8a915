// Package oasref provides a typed in-memory model of OpenAPI 3.1 documents
// together with $ref resolution against the document's component collections.
//
// The library consists of the following packages:
//
//   - spec: the typed document model (Document, Components, Schema, ...) and
//     the reference resolution contract
//   - parser: load documents from YAML or JSON sources
//   - walker: traverse a document's components and nested schemas
//   - validator: structural validation of schemas and references
//
// # Quick Start
//
// Parse a document and resolve a reference:
//
//	import (
//		"github.com/erraggy/oasref/parser"
//		"github.com/erraggy/oasref/spec"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	pet, err := spec.FromRef[spec.Schema](result.Document, "#/components/schemas/Pet")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(pet.Type)
//
// Resolution is lazy and caller-driven: decoding a document never follows
// references. Every component slot is an [spec.ObjectOrRef] holding either an
// inline value or a $ref string; its Resolve method follows references
// transitively with cycle detection.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasref
package oasref
