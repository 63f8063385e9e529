// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for venvrun.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"venvrun-cli/internal/config"
	"venvrun-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// app is the production composition root shared by all subcommands.
	app = NewApp(Dependencies{})

	// rootCmd represents the base command when called without any subcommands.
	// A bare invocation launches the project entry script, so double-clicking
	// or symlinking the binary behaves like `venvrun run`.
	rootCmd = &cobra.Command{
		Use:   "venvrun",
		Short: "A virtualenv-aware Python launcher",
		Long: TitleStyle.Render("venvrun") + SubtitleStyle.Render(" - A virtualenv-aware Python launcher") + `

venvrun finds a usable Python interpreter for the project it is installed
in and hands the process over to it. Interpreters are tried in order:

  1. The project virtualenv (` + CmdStyle.Render(".venv/bin/python") + `)
  2. ` + CmdStyle.Render("python") + ` on your PATH
  3. ` + CmdStyle.Render("python3") + ` on your PATH

Per-project overrides live in 'venvrun.toml' at the project root; global
defaults in a CUE config file.

` + SubtitleStyle.Render("Examples:") + `
  venvrun                   Launch the project entry script
  venvrun run -- --help     Launch it with extra arguments
  venvrun check             Show which interpreters venvrun sees
  venvrun config show       Show current configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchProject(cmd, app, nil)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/venvrun/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(newRunCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(exitErrorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// exitErrorHandler keeps fang from re-rendering ExitError: every path that
// returns one has already written its own diagnostic to stderr, and the
// launcher must not add output on top of the script's.
func exitErrorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// initRootConfig reads in the config file if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration early so flag-independent settings apply to all commands
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	// Debug logging follows the effective verbose setting
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
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

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
