// SPDX-License-Identifier: MPL-2.0

// Package interpreter locates the Python interpreter that should run a
// project's entry script.
//
// Resolution walks a fixed, ordered candidate list: the project-local
// virtualenv interpreter first, then named interpreters looked up on PATH.
// The first candidate that exists and is executable wins. Resolution is a
// pure function over the candidate list and two injectable predicates
// (PATH lookup and executability probe), so tests never need a real
// interpreter installed.
package interpreter
