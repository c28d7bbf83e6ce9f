// Package issues provides a unified issue type for extraction and
// generation problems.
package issues

import (
	"fmt"

	"github.com/formshape/formshape/internal/severity"
)

// Issue represents a single problem found during extraction or generation.
type Issue struct {
	// Path is the dotted path to the problematic fragment, when known
	// (e.g., "$.properties['logLevel']")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Category is the category key the issue belongs to; empty for
	// run-level issues
	Category string
	// TypeName is the definition name the issue relates to, when the
	// issue is scoped to a single type
	TypeName string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	locus := i.TypeName
	if i.Category != "" {
		if locus != "" {
			locus = i.Category + "/" + locus
		} else {
			locus = i.Category
		}
	}
	if i.Path != "" {
		if locus != "" {
			locus += " at " + i.Path
		} else {
			locus = i.Path
		}
	}

	if locus == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, locus, i.Message)
}
