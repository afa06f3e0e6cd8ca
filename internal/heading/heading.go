// SPDX-License-Identifier: MPL-2.0

// Package heading renders the per-repository heading printed before each
// repository's command output: the path label, the optional rule fence, and
// the process-wide color decision.
package heading

import (
	"os"
	"path/filepath"
	"strings"

	"gits-cli/internal/config"
	"gits-cli/internal/discovery"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// fallbackWidth is used when the terminal width cannot be determined.
	fallbackWidth = 80
	// minFenceWidth and maxFenceWidth clamp the rule fence length.
	minFenceWidth = 20
	maxFenceWidth = 200
)

type (
	// Options configures a Formatter. All fields are fixed at construction;
	// the formatter itself is read-only across repositories.
	Options struct {
		// Style selects plain or rule heading rendering.
		Style config.HeadingStyle
		// Absolute prints canonical paths instead of root-relative ones.
		Absolute bool
		// Root is the search root that relative labels are computed against.
		Root string
		// Enabled gates heading output entirely (--no-heading, single-repo runs).
		// Labels for --list output are rendered regardless.
		Enabled bool
		// Text is the lipgloss style applied to headings and fences.
		Text lipgloss.Style
		// Width overrides the detected terminal width (tests). 0 = detect.
		Width int
	}

	// Formatter renders headings, listing labels, and rule fences.
	Formatter struct {
		style    config.HeadingStyle
		absolute bool
		root     string
		enabled  bool
		text     lipgloss.Style
		width    int
	}
)

// ConfigureColor resolves the color policy once per process and applies it to
// the lipgloss default renderer. In auto mode styling is used only when
// stdout is a terminal and NO_COLOR is unset; always forces ANSI styling and
// never strips it.
func ConfigureColor(mode config.ColorMode) {
	renderer := lipgloss.DefaultRenderer()
	switch mode {
	case config.ColorModeAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case config.ColorModeNever:
		renderer.SetColorProfile(termenv.Ascii)
	default:
		if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

// New constructs a Formatter. The fence width is detected once here, not per
// repository, since terminal attachment does not change between repositories.
func New(opts Options) *Formatter {
	width := opts.Width
	if width == 0 {
		width = fallbackWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	width = min(max(width, minFenceWidth), maxFenceWidth)

	return &Formatter{
		style:    opts.Style,
		absolute: opts.Absolute,
		root:     canonical(opts.Root),
		enabled:  opts.Enabled,
		text:     opts.Text,
		width:    width,
	}
}

// Label returns the unstyled path label for a repository, rendered with a
// trailing separator: "a/", "./" for the search root itself, or the full
// canonical path in absolute mode.
func (f *Formatter) Label(repo discovery.Repository) string {
	if f.absolute {
		return repo.Path + string(filepath.Separator)
	}
	rel, err := filepath.Rel(f.root, repo.Path)
	if err != nil {
		return repo.Path + string(filepath.Separator)
	}
	if rel == "." {
		return "." + string(filepath.Separator)
	}
	return rel + string(filepath.Separator)
}

// Heading returns the styled heading line for a repository. The second
// return value is false when headings are suppressed.
func (f *Formatter) Heading(repo discovery.Repository) (string, bool) {
	if !f.enabled {
		return "", false
	}
	return f.text.Render(f.Label(repo)), true
}

// Fence returns the styled separator line printed after a repository's
// output in rule style. The second return value is false when headings are
// suppressed or the style is plain.
func (f *Formatter) Fence() (string, bool) {
	if !f.enabled || f.style != config.HeadingStyleRule {
		return "", false
	}
	return f.text.Render(strings.Repeat("-", f.width)), true
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
