// Package issues provides a unified issue type for validation problems.
package issues

import (
	"fmt"

	"github.com/erraggy/oasref/internal/severity"
)

// Issue represents a single problem found during validation.
type Issue struct {
	// Path is the location of the problematic field
	// (e.g., "#/components/schemas/Pet")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}
