// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitError_MessageFromCode(t *testing.T) {
	err := &ExitError{Code: 2}
	if got := err.Error(); got != "exit status 2" {
		t.Errorf("Error() = %q, want %q", got, "exit status 2")
	}
}

func TestExitError_WrapsCause(t *testing.T) {
	cause := errors.New("underlying")
	err := &ExitError{Code: 1, Err: cause}

	if got := err.Error(); got != "underlying" {
		t.Errorf("Error() = %q, want the cause message", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed to find the wrapped cause")
	}
}
