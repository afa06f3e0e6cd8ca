// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// UnboundedDepth disables the downward depth bound.
const UnboundedDepth = -1

// ErrNegativeDepth is returned when a depth bound below UnboundedDepth is configured.
var ErrNegativeDepth = errors.New("max depth must be zero or positive")

type (
	// ScanConfig is the immutable configuration consumed by a scan.
	ScanConfig struct {
		// Root is the search root for the downward scan.
		Root string
		// MaxDepth bounds the downward scan; the root itself is depth 0.
		// UnboundedDepth means no bound; 0 examines only the root.
		MaxDepth int
		// IncludeAncestors also walks upward from the working directory.
		IncludeAncestors bool
	}

	// scanner carries the walk state: the depth bound and the visited set
	// that guards against symlink cycles.
	scanner struct {
		maxDepth    int
		visited     map[string]struct{}
		repos       []Repository
		diagnostics []Diagnostic
	}
)

// Validate rejects impossible scan bounds before any traversal begins.
func (c ScanConfig) Validate() error {
	if c.MaxDepth < UnboundedDepth {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, c.MaxDepth)
	}
	return nil
}

// Scan walks root downward and returns every repository found, depth-first,
// together with non-fatal diagnostics for directories that could not be read.
// A matched repository is emitted and never descended into, so a repository's
// internal structure (its .git bookkeeping, checked-out submodule trees)
// cannot surface as sibling repositories. Directory entries are visited in
// sorted order, and a visited set keyed by canonical path guarantees
// termination in the presence of symlink cycles.
func Scan(cfg ScanConfig) ([]Repository, []Diagnostic) {
	s := &scanner{
		maxDepth: cfg.MaxDepth,
		visited:  make(map[string]struct{}),
	}
	s.walk(cfg.Root, 0)
	return s.repos, s.diagnostics
}

func (s *scanner) walk(dir string, depth int) {
	canonical := canonicalPath(dir)
	if _, seen := s.visited[canonical]; seen {
		return
	}
	s.visited[canonical] = struct{}{}

	if IsRepoRoot(dir) {
		s.repos = append(s.repos, Repository{Path: canonical})
		return
	}

	if s.maxDepth != UnboundedDepth && depth >= s.maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// One unreadable directory must not abort a bulk scan.
		s.diagnostics = append(s.diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     "dir_unreadable",
			Message:  fmt.Sprintf("skipping unreadable directory %q: %v", dir, err),
			Path:     dir,
			Cause:    err,
		})
		return
	}

	// os.ReadDir returns entries sorted by name, so discovery order is
	// stable before the final sort in BuildSet. Symlinked directories are
	// never descended into: IsDir reports false for symlink entries. The
	// visited set guards the remaining aliasing case, a walk entered twice
	// through paths that canonicalize to the same directory.
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == GitMarkerName {
			continue
		}
		s.walk(filepath.Join(dir, entry.Name()), depth+1)
	}
}
