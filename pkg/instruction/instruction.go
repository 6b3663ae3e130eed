package instruction

import (
	"fmt"
	"strconv"
)

type Operation string

// List of operations
const (
	// stack
	OpPush      Operation = "push"
	OpDuplicate Operation = "dup"
	OpCopy      Operation = "copy"
	OpSwap      Operation = "swap"
	OpDiscard   Operation = "discard"
	OpSlide     Operation = "slide"

	// arithmetic
	OpAdd Operation = "add"
	OpSub Operation = "sub"
	OpMul Operation = "mul"
	OpDiv Operation = "div"
	OpMod Operation = "mod"

	// memory
	OpStore    Operation = "store"
	OpRetrieve Operation = "retrieve"

	// flow control
	OpLabel        Operation = "label"
	OpCall         Operation = "call"
	OpJump         Operation = "jump"
	OpJumpZero     Operation = "jz"
	OpJumpNegative Operation = "jn"
	OpReturn       Operation = "ret"
	OpEnd          Operation = "end"

	// I/O
	OpPrintChar Operation = "printc"
	OpPrintInt  Operation = "printi"
	OpReadChar  Operation = "readc"
	OpReadInt   Operation = "readi"
)

type Family int

const (
	FamilyStack Family = iota
	FamilyArithmetic
	FamilyMemory
	FamilyFlow
	FamilyIO
)

func (f Family) String() string {
	switch f {
	case FamilyStack:
		return "stack"
	case FamilyArithmetic:
		return "arithmetic"
	case FamilyMemory:
		return "heap"
	case FamilyFlow:
		return "flow"
	case FamilyIO:
		return "io"
	default:
		return "unknown"
	}
}

type operationInfo struct {
	name   string // constructor name, also used by the textual rendering
	family Family
	number bool // carries Arg
	label  bool // carries Label
}

var operations = map[Operation]operationInfo{
	OpPush:      {"Push", FamilyStack, true, false},
	OpDuplicate: {"Duplicate", FamilyStack, false, false},
	OpCopy:      {"CopyNth", FamilyStack, true, false},
	OpSwap:      {"Swap", FamilyStack, false, false},
	OpDiscard:   {"Discard", FamilyStack, false, false},
	OpSlide:     {"Slide", FamilyStack, true, false},

	OpAdd: {"Add", FamilyArithmetic, false, false},
	OpSub: {"Sub", FamilyArithmetic, false, false},
	OpMul: {"Mul", FamilyArithmetic, false, false},
	OpDiv: {"Div", FamilyArithmetic, false, false},
	OpMod: {"Mod", FamilyArithmetic, false, false},

	OpStore:    {"Store", FamilyMemory, false, false},
	OpRetrieve: {"Retrieve", FamilyMemory, false, false},

	OpLabel:        {"SetLabel", FamilyFlow, false, true},
	OpCall:         {"CallSubroutine", FamilyFlow, false, true},
	OpJump:         {"Jump", FamilyFlow, false, true},
	OpJumpZero:     {"JZero", FamilyFlow, false, true},
	OpJumpNegative: {"JNeg", FamilyFlow, false, true},
	OpReturn:       {"EndOfSubroutine", FamilyFlow, false, false},
	OpEnd:          {"EndOfProgram", FamilyFlow, false, false},

	OpPrintChar: {"PrintChar", FamilyIO, false, false},
	OpPrintInt:  {"PrintInt", FamilyIO, false, false},
	OpReadChar:  {"ReadChar", FamilyIO, false, false},
	OpReadInt:   {"ReadInt", FamilyIO, false, false},
}

// Operations lists every operation in encoding order
var Operations = []Operation{
	OpPush, OpDuplicate, OpCopy, OpSwap, OpDiscard, OpSlide,
	OpAdd, OpSub, OpMul, OpDiv, OpMod,
	OpStore, OpRetrieve,
	OpLabel, OpCall, OpJump, OpJumpZero, OpJumpNegative, OpReturn, OpEnd,
	OpPrintChar, OpPrintInt, OpReadChar, OpReadInt,
}

type Instruction struct {
	Op Operation

	Arg   int64  // integer operand (push, copy, slide)
	Label string // label operand (label, call, jumps)
}

// Name returns the constructor name of the operation (e.g. "Push")
func (op Operation) Name() string {
	if info, ok := operations[op]; ok {
		return info.name
	}

	return fmt.Sprintf("UNKNOWN(%s)", string(op))
}

// Family returns the instruction family the operation belongs to
func (op Operation) Family() Family {
	return operations[op].family
}

// HasNumber reports whether the operation carries an integer operand
func (op Operation) HasNumber() bool {
	return operations[op].number
}

// HasLabel reports whether the operation carries a label operand
func (op Operation) HasLabel() bool {
	return operations[op].label
}

// Valid reports whether op is a known operation
func (op Operation) Valid() bool {
	_, ok := operations[op]
	return ok
}

// String returns the stable textual rendering of the instruction, e.g.
// Push(42), SetLabel("loop") or EndOfProgram.
func (i Instruction) String() string {
	switch {
	case i.Op.HasNumber():
		return i.Op.Name() + "(" + strconv.FormatInt(i.Arg, 10) + ")"
	case i.Op.HasLabel():
		return i.Op.Name() + "(" + strconv.Quote(i.Label) + ")"
	default:
		return i.Op.Name()
	}
}

// Operand returns the operand rendered as text, or "" when there is none
func (i Instruction) Operand() string {
	switch {
	case i.Op.HasNumber():
		return strconv.FormatInt(i.Arg, 10)
	case i.Op.HasLabel():
		return strconv.Quote(i.Label)
	default:
		return ""
	}
}
