// SPDX-License-Identifier: MPL-2.0

// Package project derives the project root from the launcher binary's own
// location, independent of the caller's working directory.
package project
