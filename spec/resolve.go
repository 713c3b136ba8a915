package spec

import "github.com/erraggy/oasref/oaserrors"

// FromRef implements the resolution contract for component type T: parse the
// raw reference, match its kind against the collection T owns, look the name
// up in the document, and resolve the stored entry to a concrete value.
//
// Failure modes are distinct and typed:
//
//   - oaserrors.RefParseError: the string does not decompose into a
//     recognized (kind, name) pair
//   - oaserrors.MismatchedTypeError: the kind names a different collection
//     than T owns (the name is never looked up)
//   - oaserrors.UnresolvableError: the kind matches but the collection has
//     no entry under the name
//   - oaserrors.CircularRefError: the reference chain revisited a reference
//
// FromRef is a pure read against the document and the input string. A failed
// resolution is terminal; nothing is retried.
func FromRef[T Component](doc *Document, ref string) (*T, error) {
	return fromRef[T](doc, ref, make(map[string]bool), nil)
}

// fromRef carries the visited set and chain across hops. Each hop adds a
// distinct reference to the set, so chains are bounded by the number of
// component entries and cycles surface as a repeated reference.
func fromRef[T Component](doc *Document, ref string, seen map[string]bool, chain []string) (*T, error) {
	if seen[ref] {
		return nil, &oaserrors.CircularRefError{Ref: ref, Chain: chain}
	}
	seen[ref] = true
	chain = append(chain, ref)

	parsed, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}

	var zero T
	want := zero.refKind()
	if parsed.Kind != want {
		return nil, &oaserrors.MismatchedTypeError{
			Ref:   ref,
			Found: parsed.Kind.String(),
			Want:  want.String(),
		}
	}

	entry, ok := doc.Lookup(parsed.Kind, parsed.Name)
	if !ok {
		return nil, &oaserrors.UnresolvableError{Ref: ref}
	}

	if o, ok := entry.(*ObjectOrRef[T]); ok {
		return resolveEntry(doc, o, seen, chain)
	}

	// A $ref under additionalProperties addresses the schemas collection;
	// the resolved schema is wrapped back into the schema-or-bool union.
	if o, ok := entry.(*ObjectOrRef[Schema]); ok {
		s, err := resolveEntry(doc, o, seen, chain)
		if err != nil {
			return nil, err
		}
		if v, ok := any(&SchemaOrBool{Schema: s}).(*T); ok {
			return v, nil
		}
	}

	return nil, &oaserrors.UnresolvableError{Ref: ref}
}

// resolveEntry unwraps a stored slot: inline values terminate the chain,
// reference variants take another hop.
func resolveEntry[T Component](doc *Document, o *ObjectOrRef[T], seen map[string]bool, chain []string) (*T, error) {
	if o.Value != nil {
		return o.Value, nil
	}
	return fromRef[T](doc, o.Ref, seen, chain)
}
