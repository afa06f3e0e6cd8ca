// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI surface for gits.
//
// This package implements the single Cobra root command: flag parsing,
// configuration layering, and the discovery-and-dispatch pipeline that runs
// one git command across every repository under the search root.
package cmd
