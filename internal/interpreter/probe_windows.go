// SPDX-License-Identifier: MPL-2.0

//go:build windows

package interpreter

import (
	"fmt"
	"os"
)

// probeExecutable reports whether path exists as a regular file. Windows has
// no execute permission bit; existence of the .exe is the usable signal.
func probeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
