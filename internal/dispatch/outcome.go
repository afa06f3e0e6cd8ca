// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"strconv"

	"gits-cli/internal/discovery"
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// ExecutionOutcome is the per-repository result of one dispatch step.
	ExecutionOutcome struct {
		// Repo is the repository the command ran in.
		Repo discovery.Repository
		// Code is the child's exit code. Abnormal termination (signal,
		// launch failure) is recorded as a generic failure code.
		Code ExitCode
		// Attempted is false when no process was spawned (--list, or the
		// traversal was stopped by an interrupt before this repository).
		Attempted bool
		// Err is set when the command could not be started at all.
		Err error
	}
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Failed reports whether this outcome counts against the aggregate verdict.
// Unattempted outcomes never fail.
func (o ExecutionOutcome) Failed() bool {
	return o.Attempted && (!o.Code.IsSuccess() || o.Err != nil)
}

// Aggregate folds the full outcome sequence into the process exit code:
// zero when every attempted command succeeded (including the empty sequence),
// otherwise the last failing repository's exit code. It always observes every
// outcome; it never short-circuits.
func Aggregate(outcomes []ExecutionOutcome) ExitCode {
	var verdict ExitCode
	for _, outcome := range outcomes {
		if outcome.Failed() {
			verdict = outcome.Code
			if verdict.IsSuccess() {
				// Launch failures may carry no meaningful child code.
				verdict = 1
			}
		}
	}
	return verdict
}
