// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"venvrun-cli/internal/app/launch"
	"venvrun-cli/internal/config"
	"venvrun-cli/internal/interpreter"
	"venvrun-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newRunCommand creates the `venvrun run` command. Everything after `--`
// is passed through to the entry script untouched.
func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- args...]",
		Short: "Launch the project entry script",
		Long: `Launch the project entry script with the first usable Python interpreter.

Interpreters are tried in order: the project virtualenv, then 'python'
and 'python3' on PATH. On success the venvrun process is replaced by the
interpreter, so signals, streams, and the exit code are the script's own.

Arguments after '--' are forwarded to the script:

  venvrun run -- --port 8080`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchProject(cmd, app, args)
		},
	}
}

// launchProject is the shared launch path for `venvrun` and `venvrun run`:
// locate the project root, merge config with the manifest, resolve an
// interpreter, and hand the process over.
func launchProject(cmd *cobra.Command, app *App, args []string) error {
	ctx := cmd.Context()

	root, err := app.Locator.Root()
	if err != nil {
		return err
	}

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// An explicitly requested config file must load; the default
		// location falls back to defaults (initRootConfig already warned).
		if cfgFile != "" {
			return err
		}
		slog.Debug("config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	m, err := app.Manifest(root)
	if err != nil {
		if verbose {
			renderIssue(app.stderr, issue.ManifestParseErrorId)
		}
		return err
	}

	plan, err := launch.BuildPlan(launch.Options{
		Root:     root,
		Config:   cfg,
		Manifest: m,
		Args:     args,
		Resolver: app.Resolver,
	})
	if err != nil {
		var nfErr *interpreter.NotFoundError
		if errors.As(err, &nfErr) {
			// Exactly one diagnostic line naming every attempted location.
			fmt.Fprintln(app.stderr, nfErr.Error())
			if verbose {
				renderIssue(app.stderr, issue.InterpreterNotFoundId)
			}
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return &ExitError{Code: 1}
		}
		return err
	}

	if verbose {
		fmt.Fprintf(app.stderr, "%s %s (%s)\n",
			VerboseStyle.Render("Launching with"),
			CmdStyle.Render(plan.Interpreter.Path),
			plan.Interpreter.Candidate.Source)
	}

	code, err := app.Dispatch(ctx, plan.Request())
	if err != nil {
		fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		if verbose {
			renderIssue(app.stderr, issue.DispatchFailedId)
		}
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}

	if code != 0 {
		if verbose {
			fmt.Fprintf(os.Stdout, "%s Script exited with code %d\n", WarningStyle.Render("!"), code)
		}
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: code}
	}

	return nil
}
