package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"whitespace/pkg/instruction"
)

// DefaultModule is the import path the generated program uses to reach the
// instruction and interpreter packages
const DefaultModule = "whitespace"

type goSource struct {
	pb     []instruction.Instruction
	module string // import path prefix of this module
	output string // output file name, stdout when empty

	code bytes.Buffer
}

// NewGoSource creates a backend emitting a standalone Go program that embeds
// pb and runs it with the interpreter
func NewGoSource(pb []instruction.Instruction, module, output string) Backend {
	if module == "" {
		module = DefaultModule
	}

	return &goSource{pb: pb, module: module, output: output}
}

// Generate renders the program
func (g *goSource) Generate() error {
	instrPkg := g.module + "/pkg/instruction"
	interpPkg := g.module + "/pkg/interpreter"

	f := jen.NewFile("main")
	f.HeaderComment("Code generated by whitespace. DO NOT EDIT.")

	f.Var().Id("program").Op("=").Index().Qual(instrPkg, "Instruction").ValuesFunc(func(v *jen.Group) {
		for _, in := range g.pb {
			v.Line().Add(constructorCall(instrPkg, in))
		}
		if len(g.pb) > 0 {
			v.Line()
		}
	})

	f.Func().Id("main").Params().Block(
		jen.If(
			jen.Err().Op(":=").Qual(interpPkg, "Exec").Call(jen.Id("program")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Qual("fmt", "Fprintln").Call(jen.Qual("os", "Stderr"), jen.Err()),
			jen.Qual("os", "Exit").Call(jen.Lit(1)),
		),
	)

	g.code.Reset()
	if err := f.Render(&g.code); err != nil {
		return fmt.Errorf("go source generation failed: %w", err)
	}

	return nil
}

// constructorCall renders in as a call to its constructor, e.g. instruction.Push(42)
func constructorCall(pkg string, in instruction.Instruction) jen.Code {
	call := jen.Qual(pkg, in.Op.Name())

	switch {
	case in.Op.HasNumber():
		return call.Call(jen.Lit(in.Arg))
	case in.Op.HasLabel():
		return call.Call(jen.Lit(in.Label))
	default:
		return call.Call()
	}
}

// GetCode returns the generated Go source
func (g *goSource) GetCode() string {
	return g.code.String()
}

// Write writes the generated source to the output file
func (g *goSource) Write() error {
	return writeOutput(g.output, g.GetCode())
}
