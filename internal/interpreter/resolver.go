// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrInterpreterNotFound is the sentinel error wrapped by NotFoundError.
var ErrInterpreterNotFound = errors.New("no python interpreter found")

type (
	// NotFoundError is returned when no candidate interpreter resolves.
	// Attempted holds the location of every candidate that was tried,
	// in the order they were checked.
	NotFoundError struct {
		Attempted []string
	}

	// Resolved is a successfully resolved interpreter: the winning candidate
	// plus its absolute executable path.
	Resolved struct {
		Candidate Candidate
		// Path is the absolute path to the interpreter executable.
		Path string
	}

	// Resolver finds the first usable candidate. The zero value uses the
	// real PATH lookup and filesystem probe; tests inject fakes.
	Resolver struct {
		// LookPath searches the system search path for a named executable.
		// Defaults to exec.LookPath.
		LookPath func(name string) (string, error)
		// Probe reports whether path exists and is executable.
		// Defaults to the platform probe.
		Probe func(path string) error
	}
)

// Error implements the error interface. The message is a single line naming
// every attempted location.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no python interpreter found (tried: %s)", strings.Join(e.Attempted, ", "))
}

// Unwrap returns ErrInterpreterNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrInterpreterNotFound }

// Resolve returns the first candidate that exists and is executable.
// On total failure it returns a NotFoundError naming every attempted location.
func (r *Resolver) Resolve(candidates []Candidate) (*Resolved, error) {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	probe := r.Probe
	if probe == nil {
		probe = probeExecutable
	}

	attempted := make([]string, 0, len(candidates))
	for _, c := range candidates {
		attempted = append(attempted, c.Location())

		switch c.Source {
		case SourceVenv:
			if err := probe(c.Path); err == nil {
				return &Resolved{Candidate: c, Path: c.Path}, nil
			}
		case SourcePath:
			if path, err := lookPath(c.Name); err == nil {
				return &Resolved{Candidate: c, Path: path}, nil
			}
		}
	}

	return nil, &NotFoundError{Attempted: attempted}
}

// Status reports the resolution state of every candidate without dispatching.
// Used by `venvrun check` to show the user what the launcher sees.
func (r *Resolver) Status(candidates []Candidate) []CandidateStatus {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	probe := r.Probe
	if probe == nil {
		probe = probeExecutable
	}

	statuses := make([]CandidateStatus, 0, len(candidates))
	for _, c := range candidates {
		st := CandidateStatus{Candidate: c}
		switch c.Source {
		case SourceVenv:
			if err := probe(c.Path); err == nil {
				st.Path = c.Path
				st.Usable = true
			} else {
				st.Err = err
			}
		case SourcePath:
			if path, err := lookPath(c.Name); err == nil {
				st.Path = path
				st.Usable = true
			} else {
				st.Err = err
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// CandidateStatus is the per-candidate outcome of a Status probe.
type CandidateStatus struct {
	Candidate Candidate
	// Path is the resolved absolute path when Usable is true.
	Path   string
	Usable bool
	Err    error
}
