package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"whitespace/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[parser]
signed-literals = true

[interpreter]
max-steps = 1000
max-memory = 64
trace = true

[output]
no-color = true
listing = true
`)

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !c.Parser.SignedLiterals {
		t.Errorf("SignedLiterals not set")
	}
	if c.Interpreter.MaxSteps != 1000 || c.Interpreter.MaxMemory != 64 || !c.Interpreter.Trace {
		t.Errorf("Interpreter = %+v", c.Interpreter)
	}
	if !c.Output.NoColor || !c.Output.Listing {
		t.Errorf("Output = %+v", c.Output)
	}

	abs, _ := filepath.Abs(dir)
	if c.Dir != abs {
		t.Errorf("Dir = %s, expected %s", c.Dir, abs)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		content     string
		description string
	}{
		{"[parser\n", "syntax error"},
		{"[interpreter]\nmax-steps = \"many\"\n", "wrong type"},
		{"[interpreter]\nmax-steps = -1\n", "negative step budget"},
		{"[interpreter]\nmax-memory = -5\n", "negative memory cap"},
	}

	for _, test := range tests {
		path := writeConfig(t, t.TempDir(), test.content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected an error", test.description)
		}
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("missing file: expected an error")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[interpreter]\nmax-steps = 7\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	c, err := config.FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if c == nil {
		t.Fatalf("expected a configuration")
	}
	if c.Interpreter.MaxSteps != 7 {
		t.Errorf("MaxSteps = %d, expected 7", c.Interpreter.MaxSteps)
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	if c.Parser.SignedLiterals || c.Interpreter.MaxSteps != 0 || c.Output.Listing {
		t.Errorf("Default() = %+v", c)
	}
}
