package gen

import (
	"fmt"
	"os"
)

// Backend turns a decoded program into source text and writes it out.
type Backend interface {
	Generate() error
	GetCode() string
	Write() error
}

// writeOutput writes code to path, or to stdout when path is empty or "-"
func writeOutput(path, code string) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.WriteString(code); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
