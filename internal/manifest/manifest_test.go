// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(Path(root), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m != nil {
		t.Errorf("Load() = %+v, want nil for missing manifest", m)
	}
}

func TestLoad_Valid(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, `
script = "scripts/main.py"
venv_dir = ".venv"
interpreters = ["python3.12", "python3"]
`)

	m, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Script != "scripts/main.py" {
		t.Errorf("Script = %q, want %q", m.Script, "scripts/main.py")
	}
	if m.VenvDir != ".venv" {
		t.Errorf("VenvDir = %q, want %q", m.VenvDir, ".venv")
	}
	if len(m.Interpreters) != 2 || m.Interpreters[0] != "python3.12" {
		t.Errorf("Interpreters = %v, want [python3.12 python3]", m.Interpreters)
	}
}

func TestLoad_PartialManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, `script = "app.py"`)

	m, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Script != "app.py" || m.VenvDir != "" || m.Interpreters != nil {
		t.Errorf("Load() = %+v, want only Script set", m)
	}
}

func TestLoad_UnknownField(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, `
script = "main.py"
no_such_field = true
`)

	if _, err := Load(root); err == nil {
		t.Error("Load() expected error for unknown field")
	}
}

func TestLoad_InvalidSyntax(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root, `script = `)

	if _, err := Load(root); err == nil {
		t.Error("Load() expected error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       Manifest
		wantErr bool
	}{
		{name: "empty manifest is valid", m: Manifest{}},
		{name: "relative script is valid", m: Manifest{Script: "scripts/main.py"}},
		{name: "absolute script is invalid", m: Manifest{Script: string(filepath.Separator) + "etc/main.py"}, wantErr: true},
		{name: "whitespace venv_dir is invalid", m: Manifest{VenvDir: "  "}, wantErr: true},
		{name: "empty interpreter name is invalid", m: Manifest{Interpreters: []string{""}}, wantErr: true},
		{name: "interpreter with path separator is invalid", m: Manifest{Interpreters: []string{"bin/python"}}, wantErr: true},
		{name: "bare interpreter names are valid", m: Manifest{Interpreters: []string{"python", "python3"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidManifest) {
				t.Errorf("error does not wrap ErrInvalidManifest: %v", err)
			}
		})
	}
}
