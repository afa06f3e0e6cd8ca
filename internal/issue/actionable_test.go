// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("launch git").
		WithResource("/srv/repos/api").
		Wrap(cause).
		Build()

	got := err.Error()
	want := "failed to launch git: /srv/repos/api: permission denied"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithOperation(cause, "scan search root")

	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed to find the wrapped cause")
	}
}

func TestWrapWithOperation_NilStaysNil(t *testing.T) {
	if err := WrapWithOperation(nil, "anything"); err != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapWithContext(cause, "resolve search root", "/missing")

	if err.Operation != "resolve search root" || err.Resource != "/missing" {
		t.Errorf("WrapWithContext() = %+v, want operation and resource set", err)
	}
}

func TestFormat_DefaultShowsFirstSuggestion(t *testing.T) {
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file path").
		WithSuggestion("Check the TOML syntax").
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "Check the file path") {
		t.Errorf("Format(false) = %q, want the first suggestion", got)
	}
	if strings.Contains(got, "Check the TOML syntax") {
		t.Errorf("Format(false) = %q, want only the first suggestion", got)
	}
}

func TestFormat_VerboseShowsChainAndAllSuggestions(t *testing.T) {
	inner := errors.New("inner cause")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("first hint").
		WithSuggestion("second hint").
		Wrap(inner).
		Build()

	got := err.Format(true)
	for _, fragment := range []string{"inner cause", "first hint", "second hint"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Format(true) = %q, want it to contain %q", got, fragment)
		}
	}
}
