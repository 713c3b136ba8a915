package validator

import (
	"fmt"
	"io"

	"github.com/erraggy/oasref/internal/options"
	"github.com/erraggy/oasref/parser"
	"github.com/erraggy/oasref/spec"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	document *spec.Document

	// Configuration options
	includeWarnings bool
	strictTypes     bool
	logger          parser.Logger
}

// ValidateWithOptions validates an OpenAPI document using functional options.
// The input may be a file path or URL, a reader, a byte slice, or an
// already-parsed document.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("openapi.yaml"),
//	    validator.WithStrictTypes(true),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg := &validateConfig{
		includeWarnings: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("validator: invalid options: %w", err)
		}
	}

	if err := options.ValidateSingleInputSource(
		"validator: must specify an input source (use WithFilePath, WithReader, WithBytes, or WithDocument)",
		"validator: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	doc := cfg.document
	if doc == nil {
		parseOpts := []parser.Option{parser.WithLogger(cfg.logger)}
		switch {
		case cfg.filePath != nil:
			parseOpts = append(parseOpts, parser.WithFilePath(*cfg.filePath))
		case cfg.reader != nil:
			parseOpts = append(parseOpts, parser.WithReader(cfg.reader))
		case cfg.bytes != nil:
			parseOpts = append(parseOpts, parser.WithBytes(cfg.bytes))
		}
		parseResult, err := parser.ParseWithOptions(parseOpts...)
		if err != nil {
			return nil, err
		}
		doc = parseResult.Document
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		StrictTypes:     cfg.strictTypes,
		Logger:          cfg.logger,
	}
	return v.Validate(doc)
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *validateConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *validateConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithDocument specifies an already-parsed document as the input source
func WithDocument(doc *spec.Document) Option {
	return func(cfg *validateConfig) error {
		if doc == nil {
			return fmt.Errorf("document cannot be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithIncludeWarnings enables or disables warning reporting
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictTypes requires every schema to declare a type
// Default: false
func WithStrictTypes(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictTypes = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output during validation.
// By default, no logging is performed (nil logger).
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
