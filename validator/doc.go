// Package validator checks OpenAPI documents for reference and schema
// problems.
//
// Validation covers two areas:
//
//   - References: every $ref slot in the document is parsed and resolved.
//     Malformed syntax, kind mismatches, and missing targets are errors;
//     circular chains are warnings with the full chain in the message. When
//     a target is missing but a component with the same name exists under a
//     different casing, the issue suggests it.
//
//   - Schemas: a schema that declares required properties must be an object
//     schema. With strict types enabled, every schema must declare a type.
//
// The functional-options API mirrors the parser package:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("api.yaml"),
//	    validator.WithStrictTypes(true),
//	)
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
package validator
