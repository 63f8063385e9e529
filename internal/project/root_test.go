// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"venvrun-cli/pkg/platform"
)

func TestLocatorRoot(t *testing.T) {
	t.Parallel()

	l := &Locator{
		Executable:   func() (string, error) { return "/opt/proj/bin/venvrun", nil },
		EvalSymlinks: func(path string) (string, error) { return path, nil },
	}

	root, err := l.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root != "/opt/proj" {
		t.Errorf("Root() = %q, want %q", root, "/opt/proj")
	}
}

func TestLocatorRoot_ResolvesSymlinks(t *testing.T) {
	t.Parallel()

	// A launcher symlinked from ~/bin must anchor to its real location.
	l := &Locator{
		Executable: func() (string, error) { return "/home/user/bin/venvrun", nil },
		EvalSymlinks: func(path string) (string, error) {
			if path == "/home/user/bin/venvrun" {
				return "/opt/proj/bin/venvrun", nil
			}
			return path, nil
		},
	}

	root, err := l.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}
	if root != "/opt/proj" {
		t.Errorf("Root() = %q, want %q", root, "/opt/proj")
	}
}

func TestLocatorRoot_ExecutableError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no executable")
	l := &Locator{
		Executable: func() (string, error) { return "", wantErr },
	}

	if _, err := l.Root(); !errors.Is(err, wantErr) {
		t.Errorf("Root() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestLocatorRoot_RealSymlink(t *testing.T) {
	if runtime.GOOS == platform.Windows {
		t.Skip("symlink creation requires privileges on windows")
	}

	tmp := t.TempDir()
	binDir := filepath.Join(tmp, "proj", "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	real := filepath.Join(binDir, "venvrun")
	if err := os.WriteFile(real, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write launcher stub: %v", err)
	}
	link := filepath.Join(tmp, "venvrun-link")
	if err := os.Symlink(real, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	l := &Locator{
		Executable: func() (string, error) { return link, nil },
	}

	root, err := l.Root()
	if err != nil {
		t.Fatalf("Root() error = %v", err)
	}

	// TempDir itself can live behind symlinks (e.g., /tmp on macOS); compare resolved paths.
	wantRoot, err := filepath.EvalSymlinks(filepath.Join(tmp, "proj"))
	if err != nil {
		t.Fatalf("failed to resolve expected root: %v", err)
	}
	if root != wantRoot {
		t.Errorf("Root() = %q, want %q", root, wantRoot)
	}
}
