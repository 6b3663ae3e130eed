package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"whitespace/internal/config"
	"whitespace/pkg/color"
	"whitespace/pkg/gen"
	"whitespace/pkg/instruction"
	"whitespace/pkg/interpreter"
	"whitespace/pkg/lexer"
	"whitespace/pkg/parser"
)

type Runner struct {
	Help           bool   // Show help message
	Verbose        bool   // Enable verbose output
	ShouldRun      bool   // Whether to run the program
	List           bool   // Print the decoded instructions
	Backend        string // Regeneration backend ("go" or "ws")
	Annotate       bool   // Annotate regenerated token text with mnemonics
	Module         string // Import path used by generated Go programs
	NoColor        bool   // Disable colored output
	Trace          bool   // Log every executed step
	SignedLiterals bool   // Decode numbers with a leading sign token
	MaxSteps       int    // Step budget, 0 for unlimited
	MaxMemory      int    // Memory cap in cells, 0 for the interpreter default
	ConfigFile     string // Path to a whitespace.toml, searched for when empty
	SourceFile     string // Path to the source file
	OutputFile     string // Path to the output file, stdout when empty

	Stdin  io.Reader // program input, os.Stdin when nil
	Stdout io.Writer // program output, os.Stdout when nil
}

// Execute decodes the source file, then lists, regenerates and/or runs it
// depending on the options set.
func (opts *Runner) Execute() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.SourceFile, err)
	}

	if err := opts.loadConfig(); err != nil {
		return err
	}

	if opts.NoColor {
		color.EnableColor(false)
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	p := parser.NewParser(lexer.NewLexer(string(input)), parser.WithSignedLiterals(opts.SignedLiterals))
	program, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	log.Debug("Decoded program", "instructions", len(program))

	listed := opts.List || opts.Verbose
	if listed {
		printListing(out, program)
	}

	if opts.Backend != "" {
		if err := opts.generate(out, program); err != nil {
			return err
		}
	}

	if opts.ShouldRun || opts.Backend == "" {
		if listed {
			fmt.Fprintln(out, color.GreenText("\n=== Program Output ==="))
		}
		if err := opts.run(out, program); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig merges the configuration file into the options. Options set on
// the command line win over the file.
func (opts *Runner) loadConfig() error {
	var (
		c   *config.Config
		err error
	)

	if opts.ConfigFile != "" {
		c, err = config.Load(opts.ConfigFile)
	} else {
		c, err = config.FindAndLoad(filepath.Dir(opts.SourceFile))
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if c == nil {
		return nil
	}

	log.Debug("Loaded configuration", "dir", c.Dir)

	opts.SignedLiterals = opts.SignedLiterals || c.Parser.SignedLiterals
	opts.Trace = opts.Trace || c.Interpreter.Trace
	opts.NoColor = opts.NoColor || c.Output.NoColor
	opts.List = opts.List || c.Output.Listing
	if opts.MaxSteps == 0 {
		opts.MaxSteps = c.Interpreter.MaxSteps
	}
	if opts.MaxMemory == 0 {
		opts.MaxMemory = c.Interpreter.MaxMemory
	}
	if opts.Trace {
		log.SetLevel(log.DebugLevel)
	}
	if opts.NoColor {
		log.SetColorProfile(termenv.Ascii)
	}

	return nil
}

func printListing(out io.Writer, program []instruction.Instruction) {
	fmt.Fprintln(out, color.GreenText("=== Instructions ==="))
	if len(program) == 0 {
		fmt.Fprintln(out, color.GrayText("No instructions decoded."))
		return
	}

	for i, in := range program {
		line := color.CyanText(fmt.Sprintf("%d", i)) + ": " + color.YellowText(in.Op.Name())
		if operand := in.Operand(); operand != "" {
			line += " " + color.BlueText(operand)
		}
		fmt.Fprintln(out, line, color.GrayText("("+in.Op.Family().String()+")"))
	}
}

func (opts *Runner) generate(out io.Writer, program []instruction.Instruction) error {
	var backend gen.Backend
	switch opts.Backend {
	case "go":
		backend = gen.NewGoSource(program, opts.Module, opts.OutputFile)
	case "ws":
		backend = gen.NewWhitespace(program, opts.SignedLiterals, opts.Annotate, opts.OutputFile)
	default:
		return fmt.Errorf("unknown backend %q (expected go or ws)", opts.Backend)
	}

	if err := backend.Generate(); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if opts.OutputFile == "" {
		_, err := io.WriteString(out, backend.GetCode())
		return err
	}

	if opts.Verbose {
		fmt.Fprintln(out, color.GreenText("\n=== Generated code ==="))
		fmt.Fprintln(out, backend.GetCode())
	}

	if err := backend.Write(); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	log.Info("Wrote generated code", "backend", opts.Backend, "file", opts.OutputFile)
	return nil
}

func (opts *Runner) run(out io.Writer, program []instruction.Instruction) error {
	in := opts.Stdin
	if in == nil {
		in = os.Stdin
	}

	w := bufio.NewWriter(out)
	it := interpreter.NewInterpreter(program,
		interpreter.WithWriter(w),
		interpreter.WithReader(in),
		interpreter.WithMaxSteps(opts.MaxSteps),
		interpreter.WithMaxMemory(opts.MaxMemory),
		interpreter.WithTrace(opts.Trace),
	)

	if err := it.Run(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	log.Debug("Program halted", "steps", it.Steps(), "memory", it.Memory().Len())
	return nil
}
