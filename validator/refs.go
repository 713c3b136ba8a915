package validator

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/erraggy/oasref/oaserrors"
	"github.com/erraggy/oasref/spec"
	"github.com/erraggy/oasref/walker"
)

// validateRefs resolves every $ref slot in the document and records the
// failures. Circular chains are warnings: the reference is well formed and
// its target exists, following it is what never terminates.
func (v *Validator) validateRefs(doc *spec.Document, result *ValidationResult) error {
	refs, err := walker.CollectRefs(doc)
	if err != nil {
		return err
	}

	for _, info := range refs {
		resolveErr := resolveByKind(doc, info.Ref)
		if resolveErr == nil {
			continue
		}

		var circular *oaserrors.CircularRefError
		if errors.As(resolveErr, &circular) {
			v.addWarning(result, info.SourcePath, circular.Error())
			continue
		}

		msg := resolveErr.Error()
		if errors.Is(resolveErr, oaserrors.ErrUnresolvable) {
			if suggestion := suggestName(doc, info.Ref); suggestion != "" {
				msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
			}
		}
		v.addError(result, info.SourcePath, msg, "$ref", info.Ref)
	}
	return nil
}

// resolveByKind parses the ref and resolves it against the collection its
// kind names. The type parameter of the resolution must match the kind, so
// each kind gets its own instantiation.
func resolveByKind(doc *spec.Document, ref string) error {
	parsed, err := spec.ParseRef(ref)
	if err != nil {
		return err
	}

	switch parsed.Kind {
	case spec.KindSchema:
		_, err = spec.FromRef[spec.Schema](doc, ref)
	case spec.KindResponse:
		_, err = spec.FromRef[spec.Response](doc, ref)
	case spec.KindParameter:
		_, err = spec.FromRef[spec.Parameter](doc, ref)
	case spec.KindExample:
		_, err = spec.FromRef[spec.Example](doc, ref)
	case spec.KindRequestBody:
		_, err = spec.FromRef[spec.RequestBody](doc, ref)
	case spec.KindHeader:
		_, err = spec.FromRef[spec.Header](doc, ref)
	case spec.KindSecurityScheme:
		_, err = spec.FromRef[spec.SecurityScheme](doc, ref)
	case spec.KindLink:
		_, err = spec.FromRef[spec.Link](doc, ref)
	case spec.KindCallback:
		_, err = spec.FromRef[spec.Callback](doc, ref)
	}
	return err
}

// suggestName looks for a component in the ref's collection whose name
// matches the missing one under case folding. Returns "" when there is no
// candidate.
func suggestName(doc *spec.Document, ref string) string {
	parsed, err := spec.ParseRef(ref)
	if err != nil {
		return ""
	}

	folder := cases.Fold()
	want := folder.String(parsed.Name)
	for _, name := range doc.ComponentNames(parsed.Kind) {
		if name != parsed.Name && folder.String(name) == want {
			return name
		}
	}
	return ""
}
