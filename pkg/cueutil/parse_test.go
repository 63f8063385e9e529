// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Launcher: {
	script?: string & !=""
	interpreters?: [...string & !=""]
}
`

type testLauncher struct {
	Script       string   `json:"script"`
	Interpreters []string `json:"interpreters"`
}

func TestParseAndDecode_Valid(t *testing.T) {
	t.Parallel()

	data := []byte(`
script: "main.py"
interpreters: ["python", "python3"]
`)

	result, err := ParseAndDecodeString[testLauncher](testSchema, data, "#Launcher", WithFilename("test.cue"))
	if err != nil {
		t.Fatalf("ParseAndDecodeString() error = %v", err)
	}
	if result.Value.Script != "main.py" {
		t.Errorf("Script = %q, want %q", result.Value.Script, "main.py")
	}
	if len(result.Value.Interpreters) != 2 {
		t.Errorf("Interpreters = %v, want 2 entries", result.Value.Interpreters)
	}
}

func TestParseAndDecode_SchemaViolation(t *testing.T) {
	t.Parallel()

	data := []byte(`script: 42`)

	_, err := ParseAndDecodeString[testLauncher](testSchema, data, "#Launcher", WithFilename("test.cue"))
	if err == nil {
		t.Fatal("expected error for schema violation")
	}
	if !strings.Contains(err.Error(), "test.cue") {
		t.Errorf("error %q should name the input file", err)
	}
}

func TestParseAndDecode_SyntaxError(t *testing.T) {
	t.Parallel()

	data := []byte(`script: "unclosed`)

	if _, err := ParseAndDecodeString[testLauncher](testSchema, data, "#Launcher"); err == nil {
		t.Fatal("expected error for CUE syntax error")
	}
}

func TestParseAndDecode_FileSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(`script: "main.py"`)

	_, err := ParseAndDecodeString[testLauncher](testSchema, data, "#Launcher", WithMaxFileSize(4))
	if err == nil {
		t.Fatal("expected error for oversized input")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error %q should mention the size limit", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "test.cue"); err != nil {
		t.Errorf("CheckFileSize() at exact limit error = %v, want nil", err)
	}
	if err := CheckFileSize(make([]byte, 101), 100, "test.cue"); err == nil {
		t.Error("CheckFileSize() over limit should error")
	}
	if err := CheckFileSize([]byte{}, 100, "test.cue"); err != nil {
		t.Errorf("CheckFileSize() empty input error = %v, want nil", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"script"}, "script"},
		{[]string{"interpreters", "0"}, "interpreters[0]"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
