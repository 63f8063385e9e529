// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"venvrun-cli/pkg/types"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file looked up at the project root.
const FileName = "venvrun.toml"

// ErrInvalidManifest is the sentinel error wrapped by manifest validation errors.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest holds per-project launcher overrides. All fields are optional;
// zero values defer to the global configuration.
type Manifest struct {
	// Script is the entry script path, relative to the project root.
	Script string `toml:"script"`
	// VenvDir is the virtualenv directory name, relative to the project root.
	VenvDir string `toml:"venv_dir"`
	// Interpreters are PATH candidate names in priority order.
	Interpreters []string `toml:"interpreters"`
}

// Path returns the manifest location for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the manifest at the project root. A missing manifest is not an
// error: it returns (nil, nil) and the caller falls back to global config.
// A malformed manifest is an error; silently ignoring it would launch the
// wrong script.
func Load(root string) (*Manifest, error) {
	path := Path(root)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse manifest %s: unknown fields:\n%s", path, strict.String())
		}
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate manifest %s: %w", path, err)
	}

	return &m, nil
}

// Validate checks field-level constraints CUE-style: set fields must not be
// whitespace-only, and paths must stay inside the project.
func (m *Manifest) Validate() error {
	if m.Script != "" {
		if ok, errs := types.FilesystemPath(m.Script).IsValid(); !ok {
			return fmt.Errorf("%w: script: %w", ErrInvalidManifest, errors.Join(errs...))
		}
		if filepath.IsAbs(m.Script) {
			return fmt.Errorf("%w: script %q must be relative to the project root", ErrInvalidManifest, m.Script)
		}
	}
	if m.VenvDir != "" {
		if ok, errs := types.FilesystemPath(m.VenvDir).IsValid(); !ok {
			return fmt.Errorf("%w: venv_dir: %w", ErrInvalidManifest, errors.Join(errs...))
		}
	}
	for i, name := range m.Interpreters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: interpreters[%d] must not be empty", ErrInvalidManifest, i)
		}
		if strings.ContainsRune(name, os.PathSeparator) {
			return fmt.Errorf("%w: interpreters[%d] %q must be a bare executable name", ErrInvalidManifest, i, name)
		}
	}
	return nil
}
