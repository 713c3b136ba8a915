package spec

// Example holds a reusable example value.
// The value and externalValue fields are mutually exclusive.
type Example struct {
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
}

func (Example) refKind() RefKind { return KindExample }

// Parameter describes a single operation parameter
type Parameter struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style         string                          `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool                           `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool                            `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *ObjectOrRef[Schema]            `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example       any                             `yaml:"example,omitempty" json:"example,omitempty"`
	Examples      map[string]*ObjectOrRef[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content       map[string]*MediaType           `yaml:"content,omitempty" json:"content,omitempty"`
}

func (Parameter) refKind() RefKind { return KindParameter }

// MediaType describes a single content type carried by a request body,
// response, or parameter.
type MediaType struct {
	Schema   *ObjectOrRef[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*ObjectOrRef[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// Response describes a single response from an API operation
type Response struct {
	Description string                          `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*ObjectOrRef[Header] `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType           `yaml:"content,omitempty" json:"content,omitempty"`
	Links       map[string]*ObjectOrRef[Link]   `yaml:"links,omitempty" json:"links,omitempty"`
}

func (Response) refKind() RefKind { return KindResponse }

// Header follows the structure of Parameter with the name and location fixed
// by context.
type Header struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	Style    string                           `yaml:"style,omitempty" json:"style,omitempty"`
	Explode  *bool                            `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema   *ObjectOrRef[Schema]             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                              `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*ObjectOrRef[Example] `yaml:"examples,omitempty" json:"examples,omitempty"`
}

func (Header) refKind() RefKind { return KindHeader }

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
}

func (RequestBody) refKind() RefKind { return KindRequestBody }

// Link represents a design-time link to another operation
type Link struct {
	OperationRef string         `yaml:"operationRef,omitempty" json:"operationRef,omitempty"`
	OperationID  string         `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  any            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
}

func (Link) refKind() RefKind { return KindLink }

// SecurityScheme defines a security mechanism usable by operations
type SecurityScheme struct {
	Type             string      `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description      string      `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string      `yaml:"name,omitempty" json:"name,omitempty"`
	In               string      `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string      `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string      `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string      `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
}

func (SecurityScheme) refKind() RefKind { return KindSecurityScheme }

// OAuthFlows holds the configured OAuth flow objects
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
}

// OAuthFlow holds configuration for a single OAuth flow
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// Callback maps runtime expressions to the request bodies and responses an
// out-of-band callback may carry. Expression payloads are kept untyped.
type Callback map[string]any

func (Callback) refKind() RefKind { return KindCallback }
