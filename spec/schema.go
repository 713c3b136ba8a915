package spec

import (
	"encoding/json"

	"github.com/erraggy/oasref/oaserrors"
)

// SchemaType is the closed set of types a schema may declare.
type SchemaType string

const (
	TypeBoolean SchemaType = "boolean"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeString  SchemaType = "string"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

// ParseSchemaType validates a type token against the closed set.
// Tokens outside the set yield oaserrors.UnknownTypeError.
func ParseSchemaType(s string) (SchemaType, error) {
	switch t := SchemaType(s); t {
	case TypeBoolean, TypeInteger, TypeNumber, TypeString, TypeArray, TypeObject, TypeNull:
		return t, nil
	}
	return "", &oaserrors.UnknownTypeError{Type: s}
}

// UnmarshalJSON validates the type token while decoding.
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSchemaType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML validates the type token while decoding.
func (t *SchemaType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseSchemaType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Encoding is the closed set of content encodings a string schema may
// declare via contentEncoding.
type Encoding string

const (
	EncodingBase16          Encoding = "base16"
	EncodingHex             Encoding = "hex"
	EncodingBase32          Encoding = "base32"
	EncodingBase32Hex       Encoding = "base32hex"
	EncodingBase64          Encoding = "base64"
	EncodingBase64URL       Encoding = "base64url"
	EncodingQuotedPrintable Encoding = "quoted-printable"
)

// ParseEncoding validates an encoding token against the closed set.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case EncodingBase16, EncodingHex, EncodingBase32, EncodingBase32Hex,
		EncodingBase64, EncodingBase64URL, EncodingQuotedPrintable:
		return e, nil
	}
	return "", &oaserrors.UnknownTypeError{Type: s}
}

// UnmarshalJSON validates the encoding token while decoding.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEncoding(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// UnmarshalYAML validates the encoding token while decoding.
func (e *Encoding) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseEncoding(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// SchemaOrBool is a two-variant union: a schema, or a literal boolean
// permitting or forbidding extra properties. The variant is chosen by the
// shape of the underlying value, not a tag; exactly one field is set.
type SchemaOrBool struct {
	Schema *Schema
	Bool   *bool
}

// additionalProperties refs address the schemas collection.
func (SchemaOrBool) refKind() RefKind { return KindSchema }

// MarshalJSON renders the union by shape: a bare boolean or a schema object.
func (sb *SchemaOrBool) MarshalJSON() ([]byte, error) {
	if sb.Bool != nil {
		return json.Marshal(*sb.Bool)
	}
	return json.Marshal(sb.Schema)
}

// UnmarshalJSON chooses the variant by shape.
func (sb *SchemaOrBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		sb.Bool = &b
		sb.Schema = nil
		return nil
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	sb.Schema = &s
	sb.Bool = nil
	return nil
}

// MarshalYAML renders the union by shape.
func (sb *SchemaOrBool) MarshalYAML() (any, error) {
	if sb.Bool != nil {
		return *sb.Bool, nil
	}
	return sb.Schema, nil
}

// UnmarshalYAML chooses the variant by shape.
func (sb *SchemaOrBool) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		sb.Bool = &b
		sb.Schema = nil
		return nil
	}
	var s Schema
	if err := unmarshal(&s); err != nil {
		return err
	}
	sb.Schema = &s
	sb.Bool = nil
	return nil
}

// Schema models the JSON-Schema-like validation and composition node. It is
// a plain record: composition means structural containment, not execution
// order. Nested slots are object-or-reference containers, so resolving a
// schema can require resolving into child schemas; none of them are
// auto-resolved at decode time.
type Schema struct {
	// display metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// type
	Type SchemaType `yaml:"type,omitempty" json:"type,omitempty"`

	// structure
	Required             []string                        `yaml:"required,omitempty" json:"required,omitempty"`
	Items                *ObjectOrRef[Schema]            `yaml:"items,omitempty" json:"items,omitempty"`
	Properties           map[string]*ObjectOrRef[Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *ObjectOrRef[SchemaOrBool]      `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	ContentEncoding      Encoding                        `yaml:"contentEncoding,omitempty" json:"contentEncoding,omitempty"`
	ContentMediaType     string                          `yaml:"contentMediaType,omitempty" json:"contentMediaType,omitempty"`

	// additional metadata
	Default  any   `yaml:"default,omitempty" json:"default,omitempty"`
	Examples []any `yaml:"examples,omitempty" json:"examples,omitempty"`

	// validation requirements
	Format           string   `yaml:"format,omitempty" json:"format,omitempty"`
	Enum             []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	UniqueItems      *bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	MaxProperties    *int     `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties    *int     `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	ReadOnly         *bool    `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly        *bool    `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	// composition; order is preserved for validation semantics but is
	// irrelevant to resolution itself
	AllOf []*ObjectOrRef[Schema] `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	OneOf []*ObjectOrRef[Schema] `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf []*ObjectOrRef[Schema] `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

func (Schema) refKind() RefKind { return KindSchema }
