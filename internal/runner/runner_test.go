package runner_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"whitespace/internal/logger"
	"whitespace/internal/runner"
	"whitespace/pkg/instruction"
	"whitespace/pkg/interpreter"
	"whitespace/pkg/parser"
)

var countToTen = []instruction.Instruction{
	instruction.Push(1),
	instruction.SetLabel("C"),
	instruction.Duplicate(),
	instruction.PrintInt(),
	instruction.Push(10),
	instruction.PrintChar(),
	instruction.Push(1),
	instruction.Add(),
	instruction.Duplicate(),
	instruction.Push(11),
	instruction.Sub(),
	instruction.JZero("E"),
	instruction.Jump("C"),
	instruction.SetLabel("E"),
	instruction.Discard(),
	instruction.EndOfProgram(),
}

func writeSource(t *testing.T, dir string, program []instruction.Instruction) string {
	t.Helper()

	var src strings.Builder
	for _, in := range program {
		text, err := parser.EncodeInstruction(in, false)
		if err != nil {
			t.Fatalf("EncodeInstruction(%s) failed: %v", in, err)
		}
		src.WriteString(text)
	}

	path := filepath.Join(dir, "program.ws")
	if err := os.WriteFile(path, []byte(src.String()), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	r := runner.Runner{
		SourceFile: writeSource(t, t.TempDir(), countToTen),
		NoColor:    true,
		Stdout:     &out,
		Stdin:      strings.NewReader(""),
	}

	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got, want := out.String(), "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"; got != want {
		t.Errorf("output = %q, expected %q", got, want)
	}
}

func TestRunReadsInput(t *testing.T) {
	program := []instruction.Instruction{
		instruction.Push(0),
		instruction.ReadInt(),
		instruction.Push(0),
		instruction.Retrieve(),
		instruction.Push(2),
		instruction.Mul(),
		instruction.PrintInt(),
		instruction.EndOfProgram(),
	}

	var out bytes.Buffer
	r := runner.Runner{
		SourceFile: writeSource(t, t.TempDir(), program),
		NoColor:    true,
		Stdout:     &out,
		Stdin:      strings.NewReader("21\n"),
	}

	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.String() != "42" {
		t.Errorf("output = %q, expected 42", out.String())
	}
}

func TestRunUsesConfig(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, []instruction.Instruction{instruction.SetLabel("l"), instruction.Jump("l")})

	conf := "[interpreter]\nmax-steps = 5\n"
	if err := os.WriteFile(filepath.Join(dir, "whitespace.toml"), []byte(conf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r := runner.Runner{SourceFile: source, NoColor: true, Stdout: &bytes.Buffer{}}
	err := r.Execute()
	if !errors.Is(err, interpreter.ErrMaxStepsExceeded) {
		t.Fatalf("expected ErrMaxStepsExceeded, got %v", err)
	}
	if r.MaxSteps != 5 {
		t.Errorf("MaxSteps = %d, expected 5", r.MaxSteps)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, countToTen)

	conf := "[interpreter]\nmax-steps = 5\n"
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r := runner.Runner{SourceFile: source, ConfigFile: path, MaxSteps: 1000, NoColor: true, Stdout: &bytes.Buffer{}}
	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
}

func TestParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ws")
	if err := os.WriteFile(path, []byte("  \t\n\t \n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var out bytes.Buffer
	r := runner.Runner{SourceFile: path, NoColor: true, Stdout: &out}

	err := r.Execute()
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("parse failure written to program output: %q", out.String())
	}
}

func TestListing(t *testing.T) {
	var out bytes.Buffer
	r := runner.Runner{
		SourceFile: writeSource(t, t.TempDir(), countToTen),
		List:       true,
		NoColor:    true,
		Stdout:     &out,
	}

	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{"=== Instructions ===", "0: Push 1 (stack)", `11: JZero "E" (flow)`, "=== Program Output ===", "10\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output is missing %q:\n%s", want, out.String())
		}
	}
}

func TestGenerateWhitespace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "copy.ws")

	var out bytes.Buffer
	r := runner.Runner{
		SourceFile: writeSource(t, dir, countToTen),
		Backend:    "ws",
		Annotate:   true,
		OutputFile: target,
		NoColor:    true,
		Stdout:     &out,
	}

	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("program ran while generating: %q", out.String())
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	decoded, err := parser.ParseProgram(string(data))
	if err != nil {
		t.Fatalf("ParseProgram failed: %v", err)
	}
	if !slices.Equal(decoded, countToTen) {
		t.Errorf("regenerated program differs: %v", decoded)
	}
}

func TestGenerateGoToStdout(t *testing.T) {
	var out bytes.Buffer
	r := runner.Runner{
		SourceFile: writeSource(t, t.TempDir(), countToTen),
		Backend:    "go",
		NoColor:    true,
		Stdout:     &out,
	}

	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "package main") {
		t.Errorf("expected Go source, got %q", out.String())
	}
}

func TestUnknownBackend(t *testing.T) {
	r := runner.Runner{
		SourceFile: writeSource(t, t.TempDir(), countToTen),
		Backend:    "c",
		NoColor:    true,
		Stdout:     &bytes.Buffer{},
	}

	if err := r.Execute(); err == nil {
		t.Errorf("expected an error for an unknown backend")
	}
}

func TestMissingFile(t *testing.T) {
	r := runner.Runner{SourceFile: filepath.Join(t.TempDir(), "nope.ws")}
	if err := r.Execute(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestConfigNoColorReachesLogger(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, []instruction.Instruction{
		instruction.SetLabel("l"),
		instruction.SetLabel("l"),
		instruction.EndOfProgram(),
	})

	conf := "[output]\nno-color = true\n"
	if err := os.WriteFile(filepath.Join(dir, "whitespace.toml"), []byte(conf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	logger.Init(false, false)
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	r := runner.Runner{SourceFile: source, Stdout: &bytes.Buffer{}}
	if err := r.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !r.NoColor {
		t.Errorf("no-color from the configuration was not applied")
	}
	if !strings.Contains(logs.String(), "Label redefined") {
		t.Fatalf("expected a redefinition warning, got %q", logs.String())
	}
	if strings.Contains(logs.String(), "\x1b[") {
		t.Errorf("log output is still colored: %q", logs.String())
	}
}
