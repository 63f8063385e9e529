// SPDX-License-Identifier: MPL-2.0

// Package launch builds a launch plan for a project: it merges global
// configuration with the per-project manifest, constructs the interpreter
// candidate list, resolves the winning interpreter, and produces the
// dispatch request. It decouples CLI-layer orchestration from interpreter
// resolution and process handoff.
package launch
