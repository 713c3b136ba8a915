// Package pathutil provides the location path used to track position inside
// an OpenAPI document during traversal and reporting.
//
// The primary type is [Path], an ordered breadcrumb of string segments with a
// configurable separator. An empty path denotes the document root. Push/Pop
// support manual scope management during iterative traversal; Extend derives
// a child path without mutating the receiver, so sibling branches never see
// each other's segments:
//
//	p := pathutil.New('/')
//	p.Push("components")
//	p.Push("schemas")
//	for name, entry := range schemas {
//	    walk(entry, p.Extend(name))
//	}
//
// Equality compares segments only; the separator is a formatting concern,
// not identity.
//
// Use [Get] to obtain a pooled Path and [Put] to return it when a traversal
// creates and discards many paths.
package pathutil
