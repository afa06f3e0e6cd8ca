// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that carry the failed operation, the
// resource involved, and remediation suggestions, so the CLI layer can render
// something more useful than a bare error string when a repository scan or a
// git invocation goes wrong.
package issue
