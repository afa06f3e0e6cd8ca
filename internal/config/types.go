// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// HeadingStylePlain prints only the repository path before its output.
	HeadingStylePlain HeadingStyle = "plain"
	// HeadingStyleRule prints the repository path followed by a horizontal rule.
	HeadingStyleRule HeadingStyle = "rule"

	// ColorModeAuto applies heading color only when stdout is a terminal
	// and NO_COLOR is unset.
	ColorModeAuto ColorMode = "auto"
	// ColorModeAlways forces heading color regardless of the output destination.
	ColorModeAlways ColorMode = "always"
	// ColorModeNever disables heading color unconditionally.
	ColorModeNever ColorMode = "never"
)

var (
	// ErrInvalidHeadingStyle is the sentinel error wrapped by InvalidHeadingStyleError.
	ErrInvalidHeadingStyle = errors.New("invalid heading style")
	// ErrInvalidColorMode is the sentinel error wrapped by InvalidColorModeError.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

type (
	// HeadingStyle selects how the per-repository heading is rendered.
	HeadingStyle string

	// InvalidHeadingStyleError is returned when a HeadingStyle value is not
	// recognized. It wraps ErrInvalidHeadingStyle for errors.Is() compatibility.
	InvalidHeadingStyleError struct {
		Value HeadingStyle
	}

	// ColorMode selects the heading color policy.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not
	// recognized. It wraps ErrInvalidColorMode for errors.Is() compatibility.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// UIConfig holds the output-related settings.
	UIConfig struct {
		// HeadingStyle is the default heading rendering style.
		HeadingStyle HeadingStyle `mapstructure:"heading_style"`
		// Color is the default heading color policy.
		Color ColorMode `mapstructure:"color"`
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root configuration for gits.
	Config struct {
		// UI holds output-related settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidHeadingStyleError) Error() string {
	return fmt.Sprintf("invalid heading style %q (must be %q or %q)",
		string(e.Value), HeadingStylePlain, HeadingStyleRule)
}

// Unwrap returns ErrInvalidHeadingStyle so callers can use errors.Is.
func (e *InvalidHeadingStyleError) Unwrap() error { return ErrInvalidHeadingStyle }

// Error implements the error interface.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (must be %q, %q, or %q)",
		string(e.Value), ColorModeAuto, ColorModeAlways, ColorModeNever)
}

// Unwrap returns ErrInvalidColorMode so callers can use errors.Is.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// IsValid reports whether the HeadingStyle is a recognized value.
func (s HeadingStyle) IsValid() bool {
	return s == HeadingStylePlain || s == HeadingStyleRule
}

// Validate returns an InvalidHeadingStyleError when the value is not recognized.
func (s HeadingStyle) Validate() error {
	if !s.IsValid() {
		return &InvalidHeadingStyleError{Value: s}
	}
	return nil
}

// IsValid reports whether the ColorMode is a recognized value.
func (m ColorMode) IsValid() bool {
	return m == ColorModeAuto || m == ColorModeAlways || m == ColorModeNever
}

// Validate returns an InvalidColorModeError when the value is not recognized.
func (m ColorMode) Validate() error {
	if !m.IsValid() {
		return &InvalidColorModeError{Value: m}
	}
	return nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			HeadingStyle: HeadingStyleRule,
			Color:        ColorModeAuto,
			Verbose:      false,
		},
	}
}

// Validate checks all option values and returns the first invalid one.
func (c *Config) Validate() error {
	if err := c.UI.HeadingStyle.Validate(); err != nil {
		return err
	}
	if err := c.UI.Color.Validate(); err != nil {
		return err
	}
	return nil
}
