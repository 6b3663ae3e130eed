package gen

import (
	"fmt"
	"strings"

	"whitespace/pkg/instruction"
	"whitespace/pkg/parser"
)

type whitespace struct {
	pb       []instruction.Instruction
	signed   bool   // encode literals with a sign token
	annotate bool   // prefix each instruction with its mnemonic
	output   string // output file name, stdout when empty

	code strings.Builder
}

// NewWhitespace creates a backend re-encoding pb as token text. With annotate
// set, every instruction is preceded by its mnemonic, which decoders skip.
func NewWhitespace(pb []instruction.Instruction, signed, annotate bool, output string) Backend {
	return &whitespace{pb: pb, signed: signed, annotate: annotate, output: output}
}

// Generate encodes every instruction in order
func (w *whitespace) Generate() error {
	w.code.Reset()

	for idx, in := range w.pb {
		text, err := parser.EncodeInstruction(in, w.signed)
		if err != nil {
			return fmt.Errorf("failed to encode instruction %d (%s): %w", idx, in, err)
		}

		if w.annotate {
			w.code.WriteString(mnemonic(in))
		}
		w.code.WriteString(text)
	}

	return nil
}

// mnemonic renders in without any token characters. Quoting already escapes
// tabs and line feeds, so only spaces are left to replace.
func mnemonic(in instruction.Instruction) string {
	return strings.ReplaceAll(in.String(), " ", "_")
}

// GetCode returns the encoded program
func (w *whitespace) GetCode() string {
	return w.code.String()
}

// Write writes the encoded program to the output file
func (w *whitespace) Write() error {
	return writeOutput(w.output, w.GetCode())
}
