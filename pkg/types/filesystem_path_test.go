// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPathIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     FilesystemPath
		wantValid bool
	}{
		{name: "absolute path is valid", value: "/usr/bin/python", wantValid: true},
		{name: "relative path is valid", value: "scripts/main.py", wantValid: true},
		{name: "empty is invalid", value: "", wantValid: false},
		{name: "whitespace-only is invalid", value: "   ", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.value.IsValid()
			if ok != tt.wantValid {
				t.Errorf("FilesystemPath(%q).IsValid() = %v, want %v", tt.value, ok, tt.wantValid)
			}
			if !tt.wantValid {
				if len(errs) == 0 {
					t.Fatal("expected validation errors for invalid value")
				}
				if !errors.Is(errs[0], ErrInvalidFilesystemPath) {
					t.Errorf("error does not wrap ErrInvalidFilesystemPath: %v", errs[0])
				}
			}
		})
	}
}
