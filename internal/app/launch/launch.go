// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"path/filepath"

	"venvrun-cli/internal/config"
	"venvrun-cli/internal/dispatch"
	"venvrun-cli/internal/interpreter"
	"venvrun-cli/internal/manifest"
)

type (
	// Settings are the effective launcher inputs after merging the global
	// config with the per-project manifest. Manifest fields win when set.
	Settings struct {
		// VenvDir is the virtualenv directory name under the project root.
		VenvDir string
		// Interpreters are PATH candidate names in priority order.
		Interpreters []string
		// Script is the entry script path, relative to the project root.
		Script string
	}

	// Plan is a fully resolved launch: the winning interpreter plus the
	// script it will run.
	Plan struct {
		// Root is the absolute project root.
		Root string
		// Interpreter is the resolved interpreter.
		Interpreter *interpreter.Resolved
		// Script is the entry script path relative to Root.
		Script string
		// Args are extra arguments passed through to the script.
		Args []string
	}

	// Options configures plan construction.
	Options struct {
		// Root is the absolute project root (required).
		Root string
		// Config is the loaded global configuration (required).
		Config *config.Config
		// Manifest is the per-project manifest; nil when the project has none.
		Manifest *manifest.Manifest
		// Args are extra arguments passed through to the script.
		Args []string
		// Resolver resolves interpreter candidates. Nil uses the real
		// PATH lookup and filesystem probe.
		Resolver *interpreter.Resolver
	}
)

// MergeSettings combines the global config with the project manifest.
// Manifest fields override config fields when set.
func MergeSettings(cfg *config.Config, m *manifest.Manifest) Settings {
	s := Settings{
		VenvDir:      cfg.VenvDir,
		Interpreters: cfg.Interpreters,
		Script:       cfg.Script,
	}
	if m == nil {
		return s
	}
	if m.VenvDir != "" {
		s.VenvDir = m.VenvDir
	}
	if len(m.Interpreters) > 0 {
		s.Interpreters = m.Interpreters
	}
	if m.Script != "" {
		s.Script = m.Script
	}
	return s
}

// Candidates builds the ordered interpreter candidate list for the merged settings.
func (s Settings) Candidates(root string) []interpreter.Candidate {
	return interpreter.Candidates(root, s.VenvDir, s.Interpreters)
}

// BuildPlan resolves the interpreter for the project and returns the launch
// plan. Resolution failure surfaces the interpreter.NotFoundError unchanged
// so the CLI layer can report the attempted locations verbatim.
//
// The entry script itself is not checked here: it is consumed by the
// interpreter, and a missing script becomes the interpreter's own error and
// exit status.
func BuildPlan(opts Options) (*Plan, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("launch: project root must not be empty")
	}
	if opts.Config == nil {
		return nil, fmt.Errorf("launch: config must not be nil")
	}

	settings := MergeSettings(opts.Config, opts.Manifest)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = &interpreter.Resolver{}
	}

	resolved, err := resolver.Resolve(settings.Candidates(opts.Root))
	if err != nil {
		return nil, err
	}

	return &Plan{
		Root:        opts.Root,
		Interpreter: resolved,
		Script:      settings.Script,
		Args:        opts.Args,
	}, nil
}

// ScriptPath returns the absolute path of the entry script.
func (p *Plan) ScriptPath() string {
	return filepath.Join(p.Root, p.Script)
}

// Request converts the plan into a dispatch request. The script path is the
// interpreter's first argument, followed by any passthrough arguments.
// The script path is passed absolute so the handoff works from any caller
// working directory.
func (p *Plan) Request() dispatch.Request {
	return dispatch.Request{
		Interpreter: p.Interpreter.Path,
		Args:        append([]string{p.ScriptPath()}, p.Args...),
	}
}
