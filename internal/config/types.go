// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrInvalidVenvDir is returned when the venv_dir value is empty or whitespace-only.
	ErrInvalidVenvDir = errors.New("invalid venv dir")
	// ErrInvalidInterpreterName is returned when an interpreters entry is not a bare executable name.
	ErrInvalidInterpreterName = errors.New("invalid interpreter name")
	// ErrInvalidScriptPath is returned when the script value is empty or whitespace-only.
	ErrInvalidScriptPath = errors.New("invalid script path")
)

type (
	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose enables verbose diagnostic output.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root venvrun configuration.
	Config struct {
		// VenvDir is the virtualenv directory name under the project root.
		VenvDir string `mapstructure:"venv_dir"`
		// Interpreters are the PATH candidate names tried after the venv candidate.
		Interpreters []string `mapstructure:"interpreters"`
		// Script is the default entry script path, relative to the project root.
		Script string `mapstructure:"script"`
		// UI holds terminal output preferences.
		UI UIConfig `mapstructure:"ui"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		VenvDir:      ".venv",
		Interpreters: []string{"python", "python3"},
		Script:       "main.py",
		UI: UIConfig{
			Verbose: false,
		},
	}
}

// Validate checks constraints the CUE schema cannot express on decoded values
// (the schema only sees fields that were present in the file).
func (c *Config) Validate() error {
	if strings.TrimSpace(c.VenvDir) == "" {
		return fmt.Errorf("%w: venv_dir must not be empty", ErrInvalidVenvDir)
	}
	if len(c.Interpreters) == 0 {
		return fmt.Errorf("%w: interpreters must not be empty", ErrInvalidInterpreterName)
	}
	for i, name := range c.Interpreters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: interpreters[%d] must not be empty", ErrInvalidInterpreterName, i)
		}
		if strings.ContainsRune(name, os.PathSeparator) {
			return fmt.Errorf("%w: interpreters[%d] %q must be a bare executable name", ErrInvalidInterpreterName, i, name)
		}
	}
	if strings.TrimSpace(c.Script) == "" {
		return fmt.Errorf("%w: script must not be empty", ErrInvalidScriptPath)
	}
	return nil
}
