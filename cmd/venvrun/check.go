// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"venvrun-cli/internal/app/launch"
	"venvrun-cli/internal/config"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `venvrun check` command. It probes every
// interpreter candidate without launching anything, so users can see
// exactly what a launch would do.
func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Show which interpreters venvrun sees",
		Long: `Probe every interpreter candidate in resolution order without launching.

The first usable candidate is the one a launch would pick. Exits with
status 1 when no candidate is usable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkProject(cmd, app)
		},
	}
}

func checkProject(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()

	root, err := app.Locator.Root()
	if err != nil {
		return err
	}

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		if cfgFile != "" {
			return err
		}
		slog.Debug("config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	m, err := app.Manifest(root)
	if err != nil {
		return err
	}

	settings := launch.MergeSettings(cfg, m)

	fmt.Fprintln(app.stdout, TitleStyle.Render("Interpreter candidates"))
	fmt.Fprintf(app.stdout, "%s: %s\n\n", CmdStyle.Render("Project root"), root)

	anyUsable := false
	for i, st := range app.Resolver.Status(settings.Candidates(root)) {
		marker := ErrorStyle.Render("✗")
		detail := SubtitleStyle.Render("(not found)")
		if st.Usable {
			marker = SuccessStyle.Render("✓")
			detail = st.Path
			if !anyUsable {
				detail += " " + SuccessStyle.Render("← would be used")
			}
			anyUsable = true
		} else if st.Err != nil {
			detail = SubtitleStyle.Render("(" + st.Err.Error() + ")")
		}
		fmt.Fprintf(app.stdout, "  %d. %s %s %s\n", i+1, marker, st.Candidate.Location(), detail)
	}

	fmt.Fprintln(app.stdout)
	scriptPath := filepath.Join(root, settings.Script)
	if _, statErr := os.Stat(scriptPath); statErr == nil {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Entry script"), scriptPath)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s %s\n", CmdStyle.Render("Entry script"), scriptPath, WarningStyle.Render("(missing)"))
	}

	if !anyUsable {
		fmt.Fprintln(app.stderr, ErrorStyle.Render("No usable Python interpreter found"))
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}

	return nil
}
