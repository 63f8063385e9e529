// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"venvrun-cli/pkg/types"
)

// Request describes one interpreter handoff.
type Request struct {
	// Interpreter is the absolute path to the interpreter executable.
	Interpreter string
	// Args are the arguments after argv[0]; the target script path comes first.
	Args []string
	// Env is the environment for the interpreter. Nil means inherit the
	// caller's environment unchanged.
	Env []string

	// Standard streams, used by the spawn path. Nil values inherit the
	// launcher's own streams. The exec path always inherits by construction
	// (open descriptors survive process replacement).
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// argv returns the full argument vector, interpreter path first.
func (r Request) argv() []string {
	return append([]string{r.Interpreter}, r.Args...)
}

// environ returns the effective environment for the interpreter.
func (r Request) environ() []string {
	if r.Env != nil {
		return r.Env
	}
	return os.Environ()
}

// Spawn runs the interpreter as a child process with inherited standard
// streams, waits for it, and returns its exit code. A non-zero interpreter
// exit is not an error; only failure to start the interpreter is.
func Spawn(ctx context.Context, req Request) (types.ExitCode, error) {
	cmd := exec.CommandContext(ctx, req.Interpreter, req.Args...)
	cmd.Env = req.environ()

	cmd.Stdin = req.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = req.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = req.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return types.ExitCode(exitErr.ExitCode()), nil
		}
		return 1, fmt.Errorf("failed to run interpreter %s: %w", req.Interpreter, err)
	}

	return 0, nil
}
