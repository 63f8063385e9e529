// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"venvrun-cli/internal/config"
	"venvrun-cli/internal/dispatch"
	"venvrun-cli/internal/interpreter"
	"venvrun-cli/internal/manifest"
	"venvrun-cli/internal/project"
	"venvrun-cli/pkg/types"
)

type (
	// RootLocator finds the project root for the current invocation.
	RootLocator interface {
		Root() (string, error)
	}

	// ManifestLoader loads the per-project manifest. A missing manifest
	// returns (nil, nil).
	ManifestLoader func(root string) (*manifest.Manifest, error)

	// DispatchFunc hands the process over to the resolved interpreter and
	// returns its exit code.
	DispatchFunc func(ctx context.Context, req dispatch.Request) (types.ExitCode, error)

	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer - all Cobra command handlers receive an App
	// reference and delegate through its fields.
	App struct {
		Config   config.Provider
		Locator  RootLocator
		Resolver *interpreter.Resolver
		Manifest ManifestLoader
		Dispatch DispatchFunc

		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp. Tests supply
	// fakes to isolate command behavior.
	Dependencies struct {
		Config   config.Provider
		Locator  RootLocator
		Resolver *interpreter.Resolver
		Manifest ManifestLoader
		Dispatch DispatchFunc
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Locator == nil {
		deps.Locator = &project.Locator{}
	}
	if deps.Resolver == nil {
		deps.Resolver = &interpreter.Resolver{}
	}
	if deps.Manifest == nil {
		deps.Manifest = manifest.Load
	}
	if deps.Dispatch == nil {
		deps.Dispatch = dispatch.Handoff
	}

	return &App{
		Config:   deps.Config,
		Locator:  deps.Locator,
		Resolver: deps.Resolver,
		Manifest: deps.Manifest,
		Dispatch: deps.Dispatch,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}
