// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator computes the project root from the launcher executable's location.
// The launcher is installed in a directory directly under the project root
// (conventionally bin/), so the root is the parent of the executable's
// directory after symlinks are resolved. The zero value uses the real
// process executable; tests inject fakes.
type Locator struct {
	// Executable returns the path of the running binary.
	// Defaults to os.Executable.
	Executable func() (string, error)
	// EvalSymlinks resolves symlinks in the executable path, so a symlinked
	// launcher still anchors to the real install location.
	// Defaults to filepath.EvalSymlinks.
	EvalSymlinks func(path string) (string, error)
}

// Root returns the absolute project root directory.
func (l *Locator) Root() (string, error) {
	executable := l.Executable
	if executable == nil {
		executable = os.Executable
	}
	evalSymlinks := l.EvalSymlinks
	if evalSymlinks == nil {
		evalSymlinks = filepath.EvalSymlinks
	}

	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}

	resolved, err := evalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve launcher symlinks: %w", err)
	}

	// <root>/bin/venvrun -> <root>
	return filepath.Dir(filepath.Dir(resolved)), nil
}
