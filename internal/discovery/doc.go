// SPDX-License-Identifier: MPL-2.0

// Package discovery locates git repositories on the filesystem.
//
// This package intentionally combines three related concerns:
//   - Detection: deciding whether a single directory is a repository root
//   - Traversal: the depth-bounded downward scan and the upward ancestor walk
//   - Set building: merging, deduplicating, and ordering the discovered paths
//
// These concerns are tightly coupled because set building depends directly on
// traversal results and canonicalization. Splitting them would create
// unnecessary indirection without meaningful abstraction benefit.
//
// File organization:
//   - detector.go: repository marker detection (IsRepoRoot)
//   - scanner.go: downward tree scan (Scan, ScanConfig)
//   - ancestors.go: upward walk from the working directory (WalkUp)
//   - set.go: Repository, RepositorySet, and the merge/dedupe/sort step
//   - diagnostic.go: non-fatal traversal diagnostics
package discovery
