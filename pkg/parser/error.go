package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnexpectedEnd      = errors.New("unexpected end of input inside an instruction")
	ErrInvalidChar        = errors.New("invalid character in operand")
	ErrEmptyNumber        = errors.New("number terminates with no data")
	ErrUnterminatedNumber = errors.New("number should terminate with a line break")
	ErrNumberOverflow     = errors.New("number does not fit in 64 bits")
	ErrNegativeLiteral    = errors.New("negative literal needs signed encoding")
	ErrEmptyString        = errors.New("label terminates with no data")
	ErrUnterminatedString = errors.New("label should terminate with a line break")
)

// ParseError reports the instruction that could not be decoded.
// Index is the ordinal of that instruction in the program (0-based).
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse instruction %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// describe renders an offending source character for error messages
func describe(c byte) string {
	switch c {
	case ' ':
		return "[space]"
	case '\t':
		return "[tab]"
	case '\n':
		return "[lf]"
	default:
		return fmt.Sprintf("%q", c)
	}
}
