// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package interpreter

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// probeExecutable reports whether path is a regular file executable by the
// current process. unix.Access checks against the effective uid/gid, which
// matches what execve will later enforce.
func probeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return fmt.Errorf("%s is not executable: %w", path, err)
	}
	return nil
}
