// SPDX-License-Identifier: MPL-2.0

// Package manifest loads the optional per-project venvrun.toml file, which
// overrides global configuration for a single project.
package manifest
