// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the venvrun configuration.
//
// Configuration lives in a CUE file in the platform config directory,
// is validated against an embedded #Config schema, and is merged into
// Viper over built-in defaults. A per-project venvrun.toml manifest
// (package manifest) can override these values for one project.
package config
