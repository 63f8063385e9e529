// SPDX-License-Identifier: MPL-2.0

// Package dispatch hands the process over to a resolved interpreter.
//
// On Unix the current process image is replaced, so exit status and signal
// behavior become those of the interpreter. Platforms without exec-style
// replacement (Windows) spawn the interpreter as a child with inherited
// standard streams, wait, and propagate its exit code.
package dispatch
