// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
)

// GitMarkerName is the directory entry whose presence marks a repository root.
const GitMarkerName = ".git"

// IsRepoRoot reports whether dir is a git repository root, i.e. whether it
// directly contains a .git entry. The entry may be a directory (a normal
// repository) or a regular file (a linked worktree pointer); both qualify and
// the pointer is never followed. Errors reading the candidate — including
// permission failures — make it a non-repository rather than aborting the
// surrounding traversal.
func IsRepoRoot(dir string) bool {
	info, err := os.Lstat(filepath.Join(dir, GitMarkerName))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}
