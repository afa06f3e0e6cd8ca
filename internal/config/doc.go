// SPDX-License-Identifier: MPL-2.0

// Package config handles gits configuration loading and validation.
//
// Configuration comes from three layers, lowest precedence first: built-in
// defaults, an optional config.toml in the platform config directory, and
// command-line flags (applied by the CLI layer). Option values are typed
// strings with sentinel-error validation so invalid values are rejected
// before any filesystem traversal begins.
package config
