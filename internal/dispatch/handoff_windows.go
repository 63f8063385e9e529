// SPDX-License-Identifier: MPL-2.0

//go:build windows

package dispatch

import (
	"context"

	"venvrun-cli/pkg/types"
)

// Handoff approximates process replacement on Windows: spawn the interpreter
// with inherited streams, wait, and propagate its exit code.
func Handoff(ctx context.Context, req Request) (types.ExitCode, error) {
	return Spawn(ctx, req)
}
