// Package severity provides severity level constants for issues reported by
// the validator package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error.
package severity

// Severity indicates the severity level of a validation issue.
type Severity int

const (
	// SeverityError indicates a violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a recommendation or a situation that does
	// not prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
