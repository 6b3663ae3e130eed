package interpreter

import (
	"errors"
	"fmt"

	"whitespace/pkg/instruction"
)

var (
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrCallStackUnderflow = errors.New("call stack underflow")
	ErrMissingLabel       = errors.New("missing label")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInputParse         = errors.New("cannot parse input")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidAddress     = errors.New("invalid memory address")
	ErrMemoryLimit        = errors.New("memory limit exceeded")
	ErrProgramOverrun     = errors.New("ran past the end of the program")
	ErrMaxStepsExceeded   = errors.New("maximum steps exceeded")
)

// RuntimeError is the failure that stopped an interpreter. Step is the
// 1-based number of the failing step, PC the index of the instruction.
type RuntimeError struct {
	Step  int
	PC    int
	Instr instruction.Instruction
	Err   error
}

func (e *RuntimeError) Error() string {
	if e.Instr.Op == "" {
		return fmt.Sprintf("step %d at %d: %v", e.Step, e.PC, e.Err)
	}

	return fmt.Sprintf("step %d at %d (%s): %v", e.Step, e.PC, e.Instr, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// underflow builds a stack underflow error for op
func underflow(op instruction.Operation, need int64, have int) error {
	return fmt.Errorf("%w: %s needs %d element(s), have %d", ErrStackUnderflow, op.Name(), need, have)
}
