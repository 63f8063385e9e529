// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package dispatch

import (
	"context"
	"syscall"

	"venvrun-cli/pkg/types"
)

// execProcess is swapped in tests; replacing the test process would end the run.
var execProcess = syscall.Exec

// Handoff replaces the current process image with the interpreter. On success
// it does not return. If the exec syscall fails (e.g., the interpreter was
// removed between resolution and dispatch), it falls back to spawning the
// interpreter as a child and propagating its exit code.
func Handoff(ctx context.Context, req Request) (types.ExitCode, error) {
	if err := execProcess(req.Interpreter, req.argv(), req.environ()); err != nil {
		return Spawn(ctx, req)
	}
	// Unreachable: exec does not return on success.
	return 0, nil
}
