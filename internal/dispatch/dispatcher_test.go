// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gits-cli/internal/config"
	"gits-cli/internal/discovery"
	"gits-cli/internal/heading"
	"gits-cli/internal/testutil"
)

func skipWithoutPOSIXTools(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on the POSIX true/false binaries")
	}
}

func makeSet(t *testing.T, names ...string) discovery.RepositorySet {
	t.Helper()
	root := t.TempDir()
	var repos []discovery.Repository
	for _, name := range names {
		dir := filepath.Join(root, name)
		testutil.MakeRepo(t, dir)
		repos = append(repos, discovery.Repository{Path: dir})
	}
	return discovery.BuildSet(repos, nil)
}

func quietFormatter(root string) *heading.Formatter {
	return heading.New(heading.Options{
		Style: config.HeadingStylePlain,
		Root:  root,
		Width: 40,
	})
}

func TestRun_ListOnlySpawnsNothing(t *testing.T) {
	set := makeSet(t, "one", "two", "three")

	var out, errOut bytes.Buffer
	d := &Dispatcher{
		// A binary that cannot exist: if list mode ever spawned a process,
		// the outcome would record a launch failure.
		GitBinary: "gits-test-binary-that-does-not-exist",
		ListOnly:  true,
		Heading:   quietFormatter(filepath.Dir(set[0].Path)),
		Stdout:    &out,
		Stderr:    &errOut,
	}

	outcomes := d.Run(context.Background(), set, []string{"status"})

	if len(outcomes) != len(set) {
		t.Fatalf("Run() produced %d outcomes, want %d", len(outcomes), len(set))
	}
	for _, o := range outcomes {
		if o.Attempted {
			t.Errorf("list mode attempted a command in %q", o.Repo.Path)
		}
		if o.Err != nil {
			t.Errorf("list mode recorded an error for %q: %v", o.Repo.Path, o.Err)
		}
	}

	lines := strings.Count(out.String(), "\n")
	if lines != len(set) {
		t.Errorf("list output has %d lines, want %d (one per repository)", lines, len(set))
	}
}

func TestRun_SuccessfulCommands(t *testing.T) {
	skipWithoutPOSIXTools(t)
	set := makeSet(t, "a", "b")

	var out, errOut bytes.Buffer
	d := &Dispatcher{
		GitBinary:   "true",
		Heading:     quietFormatter(filepath.Dir(set[0].Path)),
		Stdout:      &out,
		Stderr:      &errOut,
		ChildStdout: &bytes.Buffer{},
		ChildStderr: &bytes.Buffer{},
	}

	outcomes := d.Run(context.Background(), set, nil)

	if len(outcomes) != 2 {
		t.Fatalf("Run() produced %d outcomes, want 2", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.Attempted {
			t.Errorf("outcome for %q not attempted", o.Repo.Path)
		}
		if !o.Code.IsSuccess() {
			t.Errorf("outcome for %q = exit %s, want success", o.Repo.Path, o.Code)
		}
	}
}

func TestRun_FailureDoesNotHaltTraversal(t *testing.T) {
	skipWithoutPOSIXTools(t)
	set := makeSet(t, "a", "b", "c")

	var out, errOut bytes.Buffer
	d := &Dispatcher{
		GitBinary:   "false",
		Heading:     quietFormatter(filepath.Dir(set[0].Path)),
		Stdout:      &out,
		Stderr:      &errOut,
		ChildStdout: &bytes.Buffer{},
		ChildStderr: &bytes.Buffer{},
	}

	outcomes := d.Run(context.Background(), set, nil)

	if len(outcomes) != len(set) {
		t.Fatalf("Run() produced %d outcomes, want %d (all repositories, not just up to the first failure)", len(outcomes), len(set))
	}
	for _, o := range outcomes {
		if !o.Failed() {
			t.Errorf("outcome for %q not marked failed", o.Repo.Path)
		}
	}
	if Aggregate(outcomes).IsSuccess() {
		t.Error("Aggregate() = success, want failure when every command failed")
	}
}

func TestRun_LaunchFailureIsReportedAndTraversalContinues(t *testing.T) {
	set := makeSet(t, "a", "b")

	var out, errOut bytes.Buffer
	d := &Dispatcher{
		GitBinary:   "gits-test-binary-that-does-not-exist",
		Heading:     quietFormatter(filepath.Dir(set[0].Path)),
		Stdout:      &out,
		Stderr:      &errOut,
		ChildStdout: &bytes.Buffer{},
		ChildStderr: &bytes.Buffer{},
	}

	outcomes := d.Run(context.Background(), set, []string{"status"})

	if len(outcomes) != 2 {
		t.Fatalf("Run() produced %d outcomes, want 2", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Err == nil {
			t.Errorf("outcome for %q has no launch error", o.Repo.Path)
		}
		if !o.Failed() {
			t.Errorf("outcome for %q not marked failed", o.Repo.Path)
		}
	}
	if !strings.Contains(errOut.String(), "failed to launch") {
		t.Errorf("stderr = %q, want a launch failure report", errOut.String())
	}
}

func TestRun_CanceledContextStopsRemainingTraversal(t *testing.T) {
	skipWithoutPOSIXTools(t)
	set := makeSet(t, "a", "b", "c")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	d := &Dispatcher{
		GitBinary:   "true",
		Heading:     quietFormatter(filepath.Dir(set[0].Path)),
		Stdout:      &out,
		Stderr:      &errOut,
		ChildStdout: &bytes.Buffer{},
		ChildStderr: &bytes.Buffer{},
	}

	outcomes := d.Run(ctx, set, nil)

	if len(outcomes) != 1 {
		t.Errorf("Run() with a canceled context produced %d outcomes, want 1 (stop after the current repository)", len(outcomes))
	}
}
