package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"whitespace/internal/logger"
	"whitespace/internal/runner"
	"whitespace/pkg/color"
	"whitespace/pkg/gen"
)

// Main entry point for the whitespace interpreter.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.ShouldRun, "r", false, "Run with interpreter (default unless -g is given)")
	flag.BoolVar(&options.List, "l", false, "List decoded instructions")
	flag.StringVar(&options.Backend, "g", "", "Regenerate the program with a backend (go, ws)")
	flag.BoolVar(&options.Annotate, "a", false, "Annotate regenerated token text with mnemonics")
	flag.StringVar(&options.Module, "module", gen.DefaultModule, "Import path of this module in generated Go code")
	flag.StringVar(&options.OutputFile, "o", "", "Output file for regenerated code (default stdout)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Trace, "t", false, "Trace every executed step")
	flag.BoolVar(&options.SignedLiterals, "s", false, "Numbers start with a sign token")
	flag.IntVar(&options.MaxSteps, "m", 0, "Maximum number of steps (0 = unlimited)")
	flag.StringVar(&options.ConfigFile, "c", "", "Configuration file (default: whitespace.toml next to the source)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose || options.Trace, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	if err := options.Execute(); err != nil {
		log.Fatal("Execution failed", "error", err)
	}
}
