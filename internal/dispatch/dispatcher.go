// SPDX-License-Identifier: MPL-2.0

// Package dispatch runs the configured git command against each discovered
// repository, strictly one at a time, and records per-repository outcomes.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"gits-cli/internal/discovery"
	"gits-cli/internal/heading"
	"gits-cli/internal/issue"
)

// DefaultGitBinary is the executable the command line is delegated to.
const DefaultGitBinary = "git"

// Dispatcher iterates a RepositorySet in its fixed order and either lists
// each repository or spawns git inside it. The child inherits the invoking
// process's streams directly, so execution is strictly sequential: concurrent
// children would interleave terminal output and fight over interactive input.
type Dispatcher struct {
	// GitBinary overrides the executable; empty means DefaultGitBinary.
	GitBinary string
	// ListOnly emits listing lines instead of spawning processes.
	ListOnly bool
	// Heading renders per-repository headings and listing labels.
	Heading *heading.Formatter

	// Stdout and Stderr receive the tool's own output (headings, listing
	// lines, launch-failure reports). The child's streams are inherited
	// from the process, not from these writers, unless overridden below.
	Stdout io.Writer
	Stderr io.Writer

	// ChildStdin, ChildStdout, ChildStderr override the child's streams.
	// nil means inherit the process streams; tests use these to keep
	// child output out of the test runner's terminal.
	ChildStdin  io.Reader
	ChildStdout io.Writer
	ChildStderr io.Writer
}

// Run processes every repository in order and returns one outcome per
// repository. A failing or unlaunchable command never halts the remaining
// traversal; only context cancellation (the user's interrupt) stops the loop,
// and then only after the current child has terminated.
func (d *Dispatcher) Run(ctx context.Context, repos discovery.RepositorySet, args []string) []ExecutionOutcome {
	outcomes := make([]ExecutionOutcome, 0, len(repos))

	for _, repo := range repos {
		if d.ListOnly {
			fmt.Fprintln(d.Stdout, d.Heading.Label(repo))
			outcomes = append(outcomes, ExecutionOutcome{Repo: repo})
			continue
		}

		if text, ok := d.Heading.Heading(repo); ok {
			fmt.Fprintln(d.Stdout, text)
		}

		outcome := d.dispatch(ctx, repo, args)
		outcomes = append(outcomes, outcome)

		if text, ok := d.Heading.Fence(); ok {
			fmt.Fprintln(d.Stdout, text)
		}

		// A user interrupt during a bulk run signals intent to abort the
		// whole operation, not to skip one repository.
		if ctx.Err() != nil {
			slog.Debug("traversal stopped by interrupt", "completed", len(outcomes), "total", len(repos))
			break
		}
	}

	return outcomes
}

// dispatch spawns one git invocation with repo as the working directory and
// blocks until it terminates.
func (d *Dispatcher) dispatch(ctx context.Context, repo discovery.Repository, args []string) ExecutionOutcome {
	bin := d.GitBinary
	if bin == "" {
		bin = DefaultGitBinary
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = repo.Path
	cmd.Stdin = d.childStdin()
	cmd.Stdout = d.childStdout()
	cmd.Stderr = d.childStderr()
	// On cancellation, forward an interrupt instead of the default kill so
	// the child can terminate on its own terms; Run still waits for it.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}

	slog.Debug("dispatching command", "repo", repo.Path, "args", args)

	err := cmd.Run()
	if err == nil {
		return ExecutionOutcome{Repo: repo, Attempted: true}
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		code := ExitCode(exitErr.ExitCode())
		if code < 0 {
			// Terminated by signal: record a generic failure.
			code = 1
		}
		return ExecutionOutcome{Repo: repo, Code: code, Attempted: true}
	}

	// Launch failure: the command never started. Report it attributed to
	// this repository and keep going.
	launchErr := issue.NewErrorContext().
		WithOperation("launch " + bin).
		WithResource(repo.Path).
		WithSuggestion(fmt.Sprintf("Check that %q is installed and on PATH", bin)).
		Wrap(err).
		Build()
	fmt.Fprintln(d.Stderr, launchErr.Error())

	return ExecutionOutcome{Repo: repo, Code: 1, Attempted: true, Err: launchErr}
}

func (d *Dispatcher) childStdin() io.Reader {
	if d.ChildStdin != nil {
		return d.ChildStdin
	}
	return os.Stdin
}

func (d *Dispatcher) childStdout() io.Writer {
	if d.ChildStdout != nil {
		return d.ChildStdout
	}
	return os.Stdout
}

func (d *Dispatcher) childStderr() io.Writer {
	if d.ChildStderr != nil {
		return d.ChildStderr
	}
	return os.Stderr
}
