// SPDX-License-Identifier: MPL-2.0

package discovery

import "path/filepath"

// WalkUp examines start and each of its filesystem ancestors up to the root,
// returning every directory along the way that is a repository. The result is
// bounded by path depth, not by any configured scan depth. Nearest directory
// first; BuildSet normalizes the final order anyway.
func WalkUp(start string) []Repository {
	var repos []Repository

	dir := canonicalPath(start)
	for {
		if IsRepoRoot(dir) {
			repos = append(repos, Repository{Path: dir, Ancestor: true})
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return repos
		}
		dir = parent
	}
}

// Discover runs the downward scan plus, when configured, the upward walk from
// cwd, and folds both into the final ordered set.
func Discover(cfg ScanConfig, cwd string) (RepositorySet, []Diagnostic) {
	tree, diagnostics := Scan(cfg)

	var ancestors []Repository
	if cfg.IncludeAncestors {
		ancestors = WalkUp(cwd)
	}

	return BuildSet(tree, ancestors), diagnostics
}
