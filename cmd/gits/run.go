// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"log/slog"
	"os"

	"gits-cli/internal/config"
	"gits-cli/internal/discovery"
	"gits-cli/internal/dispatch"
	"gits-cli/internal/heading"
	"gits-cli/internal/issue"

	"github.com/spf13/cobra"
)

// defaultGitArgs is dispatched when no trailing tokens are given.
var defaultGitArgs = []string{"status"}

// runBulk is the whole pipeline: resolve options, discover repositories,
// dispatch the git command across them, and fold the outcomes into the
// process exit status.
func runBulk(cmd *cobra.Command, args []string) error {
	style, color, err := resolveOutputOptions(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return issue.WrapWithOperation(err, "determine working directory")
	}

	root := searchRoot
	if root == "" {
		root = cwd
	}
	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		return issue.NewErrorContext().
			WithOperation("resolve search root").
			WithResource(root).
			WithSuggestion("Pass an existing directory to --root").
			Wrap(statErr).
			BuildError()
	}

	scanCfg := discovery.ScanConfig{
		Root:             root,
		MaxDepth:         maxDepth,
		IncludeAncestors: withParents,
	}
	if err := scanCfg.Validate(); err != nil {
		return err
	}

	heading.ConfigureColor(color)

	repos, diagnostics := discovery.Discover(scanCfg, cwd)
	for _, diag := range diagnostics {
		slog.Debug(diag.Message, "path", diag.Path, "code", diag.Code)
	}
	slog.Debug("discovery complete", "repositories", len(repos))

	gitArgs := resolveGitArgs(args)

	formatter := heading.New(heading.Options{
		Style:    style,
		Absolute: absolutePath,
		Root:     root,
		Enabled:  headingsEnabled(len(repos), withParents, absolutePath, searchRoot != "", noHeading),
		Text:     HeadingTextStyle,
	})

	dispatcher := &dispatch.Dispatcher{
		ListOnly: listOnly,
		Heading:  formatter,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}
	outcomes := dispatcher.Run(cmd.Context(), repos, gitArgs)

	if code := dispatch.Aggregate(outcomes); !code.IsSuccess() {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: code}
	}
	return nil
}

// resolveGitArgs substitutes the default subcommand when the user gave no
// trailing tokens.
func resolveGitArgs(args []string) []string {
	if len(args) == 0 {
		return defaultGitArgs
	}
	return args
}

// resolveOutputOptions layers heading/color flags over the config file and
// validates them. Invalid values are rejected here, before any traversal.
func resolveOutputOptions(cmd *cobra.Command) (config.HeadingStyle, config.ColorMode, error) {
	style := cfg.UI.HeadingStyle
	if cmd.Flags().Changed("heading-style") {
		style = config.HeadingStyle(headingStyle)
	}
	if err := style.Validate(); err != nil {
		return "", "", err
	}

	color := cfg.UI.Color
	if cmd.Flags().Changed("color") {
		color = config.ColorMode(colorMode)
	}
	if err := color.Validate(); err != nil {
		return "", "", err
	}

	return style, color, nil
}

// headingsEnabled decides whether headings are printed at all. Bare
// single-repo runs stay heading-free so that 'gits status' inside one
// repository behaves like plain 'git status'; any flag that changes which
// paths are shown turns headings back on. --no-heading always wins.
func headingsEnabled(repoCount int, parentSet, absoluteSet, rootSet, noHeadingSet bool) bool {
	if noHeadingSet {
		return false
	}
	return repoCount > 1 || parentSet || absoluteSet || rootSet
}
