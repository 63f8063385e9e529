// SPDX-License-Identifier: MPL-2.0

// venvrun is a virtualenv-aware Python launcher: it resolves a usable
// interpreter for the project it is installed in and replaces itself
// with it.
package main

import (
	"log/slog"
	"os"

	cmd "venvrun-cli/cmd/venvrun"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "venvrun",
		ReportTimestamp: false,
	})
	log.SetDefault(logger)
	slog.SetDefault(slog.New(logger))

	cmd.Execute()
}
