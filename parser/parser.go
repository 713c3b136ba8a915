package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasref"
	"github.com/erraggy/oasref/spec"
)

// Parser handles OpenAPI specification parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "oasref" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
		UserAgent:         oasref.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed OpenAPI document and metadata.
//
// Callers should treat ParseResult as read-only after parsing. The document
// is never mutated by resolution; concurrent spec.FromRef calls against it
// are safe.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared OpenAPI version string (e.g. "3.1.0")
	Version string
	// Document is the typed document model; $ref slots are stored unresolved
	Document *spec.Document
	// Errors contains any structural validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues such as malformed reference syntax
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses an OpenAPI specification file or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat

	loadStart := time.Now()
	if isURL(specPath) {
		data, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromPath(specPath)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// parseBytes decodes the data into the typed document and runs structural
// validation when enabled.
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	format := detectFormatFromContent(data)
	result.SourceFormat = format

	var doc spec.Document
	// JSON fast path: skip the YAML machinery when the content is JSON.
	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parser: failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parser: failed to parse YAML: %w", err)
		}
	}

	result.Document = &doc
	result.Version = doc.OpenAPI
	p.log().Debug("parsed document", "format", format, "version", doc.OpenAPI)

	if p.ValidateStructure {
		p.validateStructure(result)
	}
	return result, nil
}

// validateStructure performs basic shape checks on the decoded document and
// records problems on the result. Reference syntax problems are warnings:
// the slots still load, they just will not resolve.
func (p *Parser) validateStructure(result *ParseResult) {
	doc := result.Document

	switch {
	case doc.OpenAPI == "":
		result.Errors = append(result.Errors, fmt.Errorf("parser: missing required 'openapi' field"))
	case !strings.HasPrefix(doc.OpenAPI, "3."):
		result.Errors = append(result.Errors,
			fmt.Errorf("parser: unsupported OpenAPI version %q (expected 3.x)", doc.OpenAPI))
	}

	if doc.Info == nil {
		result.Warnings = append(result.Warnings, "missing 'info' section")
	} else if doc.Info.Title == "" {
		result.Warnings = append(result.Warnings, "missing 'info.title' field")
	}

	for _, ref := range collectionRefs(doc) {
		if _, err := spec.ParseRef(ref); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("malformed reference %q: %v", ref, err))
			p.log().Warn("malformed reference", "ref", ref, "error", err)
		}
	}
}

// collectionRefs gathers the raw $ref strings stored in the top-level
// component collections.
func collectionRefs(doc *spec.Document) []string {
	if doc.Components == nil {
		return nil
	}
	var refs []string
	for _, kind := range []spec.RefKind{
		spec.KindSchema, spec.KindResponse, spec.KindParameter,
		spec.KindExample, spec.KindRequestBody, spec.KindHeader,
		spec.KindSecurityScheme, spec.KindLink, spec.KindCallback,
	} {
		for _, name := range doc.ComponentNames(kind) {
			if ref := entryRef(doc, kind, name); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// entryRef returns the raw $ref of the named entry, or "" when it is inline.
func entryRef(doc *spec.Document, kind spec.RefKind, name string) string {
	entry, ok := doc.Lookup(kind, name)
	if !ok {
		return ""
	}
	switch o := entry.(type) {
	case *spec.ObjectOrRef[spec.Schema]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Response]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Parameter]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Example]:
		return o.Ref
	case *spec.ObjectOrRef[spec.RequestBody]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Header]:
		return o.Ref
	case *spec.ObjectOrRef[spec.SecurityScheme]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Link]:
		return o.Ref
	case *spec.ObjectOrRef[spec.Callback]:
		return o.Ref
	}
	return ""
}
