// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gits-cli/internal/config"
	"gits-cli/internal/issue"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// flags of the bulk run itself
	searchRoot   string
	absolutePath bool
	withParents  bool
	maxDepth     int
	listOnly     bool
	headingStyle string
	colorMode    string
	noHeading    bool

	// cfg is the layered configuration, loaded in initRootConfig.
	cfg *config.Config

	// rootCmd is the whole CLI: gits is a single-command tool whose trailing
	// tokens are the git subcommand and its arguments.
	rootCmd = &cobra.Command{
		Use:   "gits [flags] [git-args...]",
		Short: "Bulk git wrapper for multi-repo workspaces",
		Long: TitleStyle.Render("gits") + SubtitleStyle.Render(" - Bulk git wrapper for multi-repo workspaces") + `

gits discovers every git repository beneath a search root (and optionally
among the ancestors of the current directory), then runs one git command in
each of them, in a stable order, with a heading before each repository's
output. Without git arguments it runs 'git status'.

` + SubtitleStyle.Render("Examples:") + `
  gits status -sb                 Short status across all repositories
  gits --list                     Print discovered repositories, run nothing
  gits --root ~/src fetch --all   Fetch everywhere under ~/src
  gits --parent log -1            Include ancestor repositories of cwd
  gits --max-depth 1 pull         Only the root and its direct children`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, args)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/gits/config.toml)")

	rootCmd.Flags().StringVar(&searchRoot, "root", "", "search root for the downward scan (default is the current directory)")
	rootCmd.Flags().BoolVar(&absolutePath, "absolute-path", false, "print absolute paths in headings and listings")
	rootCmd.Flags().BoolVar(&withParents, "parent", false, "also include ancestor repositories from cwd up to the filesystem root")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", -1, "bound the downward scan depth (0 = root only, omit for unbounded)")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "print discovered repository paths only; do not run git")
	rootCmd.Flags().StringVar(&headingStyle, "heading-style", "", "heading rendering style: plain or rule (default rule)")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "heading color policy: auto, always, or never (default auto)")
	rootCmd.Flags().BoolVar(&noHeading, "no-heading", false, "suppress headings unconditionally")

	// Everything after the first positional token belongs to git, so flags
	// like 'gits log --oneline' must not be parsed by gits itself.
	rootCmd.Flags().SetInterspersed(false)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. This is called by main.main() exactly once.
func Execute() {
	// fang.Execute provides styled help/errors; the notify signal turns an
	// interrupt into context cancellation so the dispatcher can stop after
	// the currently running child terminates.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads the layered configuration and installs the process
// logger. Flags win over the config file, which wins over defaults.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
