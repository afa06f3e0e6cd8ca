// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"sort"
)

type (
	// Repository is a discovered repository root, identified by its canonical
	// filesystem path (symlinks and relative segments resolved).
	Repository struct {
		// Path is the canonical path to the repository root.
		Path string
		// Ancestor marks repositories found by the upward walk rather than
		// the tree scan. Purely informational; it carries no ordering weight.
		Ancestor bool
	}

	// RepositorySet is an ordered sequence of unique repositories. It is built
	// once per invocation by BuildSet and read-only afterwards.
	RepositorySet []Repository
)

// canonicalPath resolves symlinks and relative segments so that the same
// physical directory always maps to the same key. When resolution fails
// (e.g. a permission failure partway up the path) it falls back to the
// cleaned absolute path.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// BuildSet merges tree-scan and ancestor-walk output into the final ordered
// set: duplicates (by canonical path) collapse to their first occurrence, and
// the result is sorted lexicographically by canonical path. It is a pure
// function over its inputs; an empty result is a valid outcome.
func BuildSet(tree, ancestors []Repository) RepositorySet {
	merged := make(RepositorySet, 0, len(tree)+len(ancestors))
	seen := make(map[string]struct{}, len(tree)+len(ancestors))

	for _, repo := range append(append([]Repository{}, tree...), ancestors...) {
		if _, dup := seen[repo.Path]; dup {
			continue
		}
		seen[repo.Path] = struct{}{}
		merged = append(merged, repo)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Path < merged[j].Path })
	return merged
}
