// Package severity provides severity level constants and utilities
// for issues reported by the extractor and generator packages.
//
// All severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Skipped types, dropped keywords, or recommendations
//   - SeverityError: Failures that make a run's output incomplete
//   - SeverityCritical: Failures that abort a run
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue during extraction or
// generation.
type Severity int

const (
	// SeverityError indicates a failure that makes a run's output incomplete.
	SeverityError Severity = iota

	// SeverityWarning indicates skipped types, dropped keywords, or
	// recommendations that don't prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates a failure that aborts a run.
	SeverityCritical
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
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
