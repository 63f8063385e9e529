// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"path/filepath"
	"runtime"

	"venvrun-cli/pkg/platform"
)

const (
	// SourceVenv marks a candidate at a fixed path inside the project virtualenv.
	SourceVenv Source = "venv"
	// SourcePath marks a candidate found by name on the search path.
	SourcePath Source = "path"

	// DefaultVenvDir is the virtualenv directory name checked under the project root.
	DefaultVenvDir = ".venv"
)

// DefaultInterpreters are the PATH candidate names, in priority order.
var DefaultInterpreters = []string{"python", "python3"}

type (
	// Source identifies how a candidate interpreter location is resolved.
	Source string

	// Candidate is one possible interpreter location, considered in fixed
	// priority order. Venv candidates carry an absolute path; PATH candidates
	// carry a bare executable name.
	Candidate struct {
		Source Source
		// Name is the executable name for PATH candidates (e.g., "python3").
		Name string
		// Path is the absolute interpreter path for venv candidates.
		Path string
	}
)

// Location returns the human-readable location used in diagnostics:
// the absolute path for venv candidates, the bare name for PATH candidates.
func (c Candidate) Location() string {
	if c.Source == SourceVenv {
		return c.Path
	}
	return c.Name
}

// VenvInterpreterPath returns the interpreter path inside a virtualenv rooted
// at venvDir. Unix layouts use bin/python; Windows uses Scripts\python.exe.
func VenvInterpreterPath(venvDir string) string {
	if runtime.GOOS == platform.Windows {
		return filepath.Join(venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(venvDir, "bin", "python")
}

// Candidates builds the ordered candidate list for a project root:
// the venv-local interpreter first, then each named interpreter via PATH.
func Candidates(root, venvDir string, names []string) []Candidate {
	if venvDir == "" {
		venvDir = DefaultVenvDir
	}
	if len(names) == 0 {
		names = DefaultInterpreters
	}

	list := make([]Candidate, 0, len(names)+1)
	list = append(list, Candidate{
		Source: SourceVenv,
		Path:   VenvInterpreterPath(filepath.Join(root, venvDir)),
	})
	for _, name := range names {
		list = append(list, Candidate{Source: SourcePath, Name: name})
	}
	return list
}
