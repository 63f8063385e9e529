// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "resolve interpreter",
			},
			expected: "failed to resolve interpreter",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load manifest",
				Resource:  "./venvrun.toml",
			},
			expected: "failed to load manifest: ./venvrun.toml",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to parse config: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load manifest",
				Resource:  "./venvrun.toml",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load manifest: ./venvrun.toml: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := NewErrorContext().
		WithOperation("resolve interpreter").
		WithResource(".venv/bin/python").
		WithSuggestion("Create a virtualenv with 'python -m venv .venv'").
		WithSuggestion("Run 'venvrun check' to inspect candidates").
		Wrap(errors.New("no such file or directory")).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "failed to resolve interpreter") {
		t.Error("Format(false) should contain the error message")
	}
	if !strings.Contains(plain, "• Create a virtualenv") {
		t.Error("Format(false) should contain suggestions")
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not contain the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Error("Format(true) should contain the error chain")
	}
	if !strings.Contains(verbose, "1. no such file or directory") {
		t.Error("Format(true) should enumerate the cause chain")
	}
}

func TestErrorContext_Build(t *testing.T) {
	if built := NewErrorContext().Build(); built != nil {
		t.Error("Build() without operation should return nil")
	}

	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}

	built := NewErrorContext().WithOperation("dispatch script").Build()
	if built == nil || built.Operation != "dispatch script" {
		t.Errorf("Build() = %+v, want operation %q", built, "dispatch script")
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	if WrapWithContext(nil, "anything", "resource") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}

	cause := errors.New("boom")
	wrapped := WrapWithContext(cause, "load manifest", "venvrun.toml")
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
}
