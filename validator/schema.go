package validator

import (
	"fmt"

	"github.com/erraggy/oasref/oaserrors"
	"github.com/erraggy/oasref/spec"
	"github.com/erraggy/oasref/walker"
)

// validateSchemas applies the schema-level rules to every schema in the
// document, nested ones included.
func (v *Validator) validateSchemas(doc *spec.Document, result *ValidationResult) error {
	return walker.Walk(doc,
		walker.WithSchemaHandler(func(wc *walker.WalkContext, s *spec.Schema) walker.Action {
			v.checkSchema(wc.Location, s, result)
			return walker.Continue
		}),
	)
}

// checkSchema applies the per-schema rules.
//
// A schema listing required properties only makes sense on an object schema:
// required names keys, and only objects have keys. A missing type is legal in
// JSON Schema, so it is only reported under StrictTypes.
func (v *Validator) checkSchema(location string, s *spec.Schema, result *ValidationResult) {
	if len(s.Required) > 0 && s.Type != spec.TypeObject && s.Type != "" {
		v.addError(result, location,
			fmt.Sprintf("%v: type is %q", oaserrors.ErrRequiredOnNonObject, s.Type),
			"required", s.Required)
	}

	if v.StrictTypes && s.Type == "" && !isCompositionOnly(s) {
		v.addError(result, location, oaserrors.ErrNoType.Error(), "type", nil)
	}
}

// isCompositionOnly reports whether the schema delegates its shape entirely
// to composition keywords, in which case a type declaration on the parent is
// not expected even under StrictTypes.
func isCompositionOnly(s *spec.Schema) bool {
	return len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0
}
