// Package config handles whitespace.toml run configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// FileName is the configuration file searched for next to programs.
const FileName = "whitespace.toml"

// Config represents a whitespace.toml file.
type Config struct {
	Parser      Parser      `toml:"parser"`
	Interpreter Interpreter `toml:"interpreter"`
	Output      Output      `toml:"output"`

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
}

// Parser configures decoding.
type Parser struct {
	SignedLiterals bool `toml:"signed-literals"`
}

// Interpreter configures execution limits.
type Interpreter struct {
	MaxSteps  int  `toml:"max-steps"`
	MaxMemory int  `toml:"max-memory"`
	Trace     bool `toml:"trace"`
}

// Output configures what gets printed.
type Output struct {
	NoColor bool `toml:"no-color"`
	Listing bool `toml:"listing"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// Load parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		log.Warn("Unknown configuration key", "file", path, "key", key.String())
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	return c, nil
}

// FindAndLoad walks up from startDir to find a whitespace.toml file,
// then loads it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	if c.Interpreter.MaxSteps < 0 {
		return fmt.Errorf("max-steps must not be negative, got %d", c.Interpreter.MaxSteps)
	}
	if c.Interpreter.MaxMemory < 0 {
		return fmt.Errorf("max-memory must not be negative, got %d", c.Interpreter.MaxMemory)
	}

	return nil
}
