// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable traversal warning.
	SeverityWarning Severity = "warning"
)

type (
	// Severity represents traversal diagnostic severity.
	Severity string

	// Diagnostic represents a structured traversal diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	// Unreadable directories and unresolvable paths produce diagnostics; they
	// never abort discovery.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "dir_unreadable").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the directory associated with this diagnostic.
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
