package validator

import (
	"fmt"

	"github.com/erraggy/oasref/internal/issues"
	"github.com/erraggy/oasref/internal/severity"
	"github.com/erraggy/oasref/parser"
	"github.com/erraggy/oasref/spec"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a recommendation that does not invalidate the document
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating an OpenAPI document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Version is the declared OpenAPI version string
	Version string
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// Document is the validated document
	Document *spec.Document
}

// Validator handles OpenAPI document validation
type Validator struct {
	// IncludeWarnings determines whether to report warnings
	IncludeWarnings bool
	// StrictTypes requires every schema to declare a type
	StrictTypes bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (v *Validator) log() parser.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return parser.NopLogger{}
}

// Validate checks the document and returns the collected issues.
func (v *Validator) Validate(doc *spec.Document) (*ValidationResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("validator: document is nil")
	}

	result := &ValidationResult{
		Version:  doc.OpenAPI,
		Document: doc,
		Errors:   make([]ValidationError, 0),
		Warnings: make([]ValidationError, 0),
	}

	if err := v.validateRefs(doc, result); err != nil {
		return nil, err
	}
	if err := v.validateSchemas(doc, result); err != nil {
		return nil, err
	}

	result.Valid = len(result.Errors) == 0
	if !v.IncludeWarnings {
		result.Warnings = result.Warnings[:0]
	}
	v.log().Debug("validation complete",
		"valid", result.Valid,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))
	return result, nil
}

// addError appends an error issue to the result.
func (v *Validator) addError(result *ValidationResult, path, message string, field string, value any) {
	result.Errors = append(result.Errors, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
		Field:    field,
		Value:    value,
	})
}

// addWarning appends a warning issue to the result.
func (v *Validator) addWarning(result *ValidationResult, path, message string) {
	result.Warnings = append(result.Warnings, ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	})
}
