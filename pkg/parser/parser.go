package parser

import (
	"fmt"

	"whitespace/pkg/instruction"
	"whitespace/pkg/lexer"
)

type Parser struct {
	lexer          *lexer.Lexer              // lexer instance
	signedLiterals bool                      // numbers carry a leading sign token
	program        []instruction.Instruction // decoded instructions
}

type Option func(*Parser)

// WithSignedLiterals makes push, copy and slide operands start with a sign token
func WithSignedLiterals(signed bool) Option {
	return func(p *Parser) { p.signedLiterals = signed }
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		lexer:   l,
		program: []instruction.Instruction{},
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// ParseProgram filters src and decodes every instruction in it
func ParseProgram(src string, opts ...Option) ([]instruction.Instruction, error) {
	return NewParser(lexer.NewLexer(src), opts...).Parse()
}

// Parse decodes instructions until the input is exhausted. The first failure
// aborts the whole parse.
func (p *Parser) Parse() ([]instruction.Instruction, error) {
	for p.lexer.HasMore() {
		remaining := p.lexer.Remaining()

		in, rest, err := p.parseInstruction(remaining)
		if err != nil {
			return nil, &ParseError{Index: len(p.program), Err: err}
		}

		p.lexer.Advance(len(remaining) - len(rest))
		p.program = append(p.program, in)
	}

	return p.program, nil
}

// Program returns the instructions decoded so far
func (p *Parser) Program() []instruction.Instruction {
	return p.program
}

func (p *Parser) parseInstruction(input string) (instruction.Instruction, string, error) {
	matchNumber := MatchInt
	if p.signedLiterals {
		matchNumber = MatchSignedInt
	}

	return parseInstruction(input, matchNumber)
}

// ParseInstruction decodes the instruction at the start of input and returns
// it with the remaining input.
func ParseInstruction(input string) (instruction.Instruction, string, error) {
	return parseInstruction(input, MatchInt)
}

func parseInstruction(input string, matchNumber func(string) (int64, string, error)) (instruction.Instruction, string, error) {
	n := root
	pos := 0

	for n.opcode == nil {
		if pos >= len(input) {
			return instruction.Instruction{}, input, ErrUnexpectedEnd
		}

		c := input[pos]
		t, ok := lexer.Lookup(c)
		if !ok || n.children[int(t)-1] == nil {
			return instruction.Instruction{}, input, fmt.Errorf("%w: %s", ErrUnexpectedChar, describe(c))
		}

		n = n.children[int(t)-1]
		pos++
	}

	in := instruction.Instruction{Op: n.opcode.op}
	rest := input[pos:]

	switch n.opcode.operand {
	case operandNumber:
		v, r, err := matchNumber(rest)
		if err != nil {
			return instruction.Instruction{}, input, fmt.Errorf("%s: %w", in.Op.Name(), err)
		}
		in.Arg, rest = v, r

	case operandLabel:
		s, r, err := MatchString(rest)
		if err != nil {
			return instruction.Instruction{}, input, fmt.Errorf("%s: %w", in.Op.Name(), err)
		}
		in.Label, rest = s, r
	}

	return in, rest, nil
}
