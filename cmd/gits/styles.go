// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared colors for consistent theming across all CLI output.
// ANSI-range colors keep headings legible on both dark and light terminals.
const (
	// ColorHeading is cyan - used for repository headings and rule fences.
	ColorHeading = lipgloss.Color("6")

	// ColorError is red - used for errors, failures, and negative outcomes.
	ColorError = lipgloss.Color("1")

	// ColorWarning is yellow - used for warnings and attention-needed items.
	ColorWarning = lipgloss.Color("3")

	// ColorMuted is gray - used for secondary and de-emphasized text.
	ColorMuted = lipgloss.Color("8")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// HeadingTextStyle is for repository headings and fences.
	HeadingTextStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeading)

	// TitleStyle is for the tool name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeading)

	// SubtitleStyle is for short descriptions in help output.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
