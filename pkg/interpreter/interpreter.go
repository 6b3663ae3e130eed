package interpreter

import (
	"bufio"
	"io"
	"maps"
	"os"

	"github.com/charmbracelet/log"

	"whitespace/pkg/instruction"
	"whitespace/pkg/stack"
)

type State int

const (
	Running State = iota // initial state, instructions may execute
	Halted               // end of program reached
	Failed               // stopped on an error
)

// String returns a readable state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Interpreter executes a decoded program. One instance owns all of its state
// and must not be shared between goroutines.
type Interpreter struct {
	pb []instruction.Instruction // program block (list of instructions)
	ip int                       // instruction pointer

	data  *stack.Stack[int64] // data stack
	calls *stack.Stack[int]   // return-address stack
	mem   *Memory             // addressable memory region

	labels map[string]int // label -> PB index of its definition

	in  *bufio.Reader // input for read instructions
	out io.Writer     // output writer for print instructions

	state State // running, halted or failed
	err   error // error that moved the interpreter to Failed

	maxSteps  int  // maximum steps (0 = unlimited)
	maxMemory int  // maximum memory cells (0 = MaxCells)
	steps     int  // steps executed
	trace     bool // log every step at debug level
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print instructions
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithReader sets the input reader for read instructions
func WithReader(r io.Reader) Option {
	return func(i *Interpreter) { i.in = bufio.NewReader(r) }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithMaxMemory caps the memory region at n cells
func WithMaxMemory(n int) Option {
	return func(i *Interpreter) { i.maxMemory = n }
}

// WithTrace logs every executed instruction at debug level
func WithTrace(trace bool) Option {
	return func(i *Interpreter) { i.trace = trace }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(pb []instruction.Instruction, opts ...Option) *Interpreter {
	it := &Interpreter{
		pb:       append([]instruction.Instruction(nil), pb...),
		ip:       0,
		data:     stack.NewStack[int64](),
		calls:    stack.NewStack[int](),
		labels:   make(map[string]int),
		out:      nil, // caller should set, or use WithWriter
		maxSteps: 0,   // 0 => unlimited
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.in == nil {
		it.in = bufio.NewReader(os.Stdin)
	}

	it.mem = NewMemory(it.maxMemory)
	it.indexProgram()

	return it
}

// Reset clears runtime state (stacks, memory, IP, counters)
func (i *Interpreter) Reset() {
	i.ip = 0
	i.data.Clear()
	i.calls.Clear()
	i.mem.Reset()
	i.state = Running
	i.err = nil
	i.steps = 0
}

// indexProgram builds the label table; a later definition of the same label wins
func (i *Interpreter) indexProgram() {
	for idx, ins := range i.pb {
		if ins.Op != instruction.OpLabel {
			continue
		}

		if prev, ok := i.labels[ins.Label]; ok {
			log.Warn("Label redefined", "label", ins.Label, "first", prev, "now", idx)
		}
		i.labels[ins.Label] = idx
	}
}

// Step executes a single instruction, returning (halted, error). Once the
// interpreter is halted or failed, Step executes nothing and reports the
// same outcome again.
func (i *Interpreter) Step() (bool, error) {
	switch i.state {
	case Halted:
		return true, nil
	case Failed:
		return true, i.err
	}

	i.steps++

	if i.maxSteps > 0 && i.steps > i.maxSteps {
		return true, i.fail(ErrMaxStepsExceeded, instruction.Instruction{})
	}

	if i.ip < 0 || i.ip >= len(i.pb) {
		return true, i.fail(ErrProgramOverrun, instruction.Instruction{})
	}

	in := i.pb[i.ip]
	if i.trace {
		log.Debug("Step", "step", i.steps, "pc", i.ip, "instr", in, "stack", i.data.Array())
	}

	halted, err := coreStep(i, in)
	if err != nil {
		return true, i.fail(err, in)
	}

	if halted {
		i.state = Halted
		i.flush()
	}

	return halted, nil
}

// RunN executes at most n instructions. It returns the number of
// instructions executed successfully and the first error met, if any.
// It stops early when the program halts.
func (i *Interpreter) RunN(n int) (int, error) {
	executed := 0
	for executed < n && i.state != Halted {
		halted, err := i.Step()
		if err != nil {
			return executed, err
		}

		executed++
		if halted {
			break
		}
	}

	return executed, nil
}

// Run executes until halt or error
func (i *Interpreter) Run() error {
	defer i.flush()

	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// fail moves the interpreter to the Failed state
func (i *Interpreter) fail(err error, in instruction.Instruction) error {
	i.state = Failed
	i.err = &RuntimeError{Step: i.steps, PC: i.ip, Instr: in, Err: err}
	i.flush()

	return i.err
}

// flush pushes buffered output through when the writer supports it
func (i *Interpreter) flush() {
	if f, ok := i.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			log.Error("Failed to flush output", "error", err)
		}
	}
}

// PC returns the current instruction pointer
func (i *Interpreter) PC() int {
	return i.ip
}

// Stack returns a copy of the data stack, bottom first
func (i *Interpreter) Stack() []int64 {
	return i.data.Array()
}

// CallStack returns a copy of the return-address stack, bottom first
func (i *Interpreter) CallStack() []int {
	return i.calls.Array()
}

// Memory returns the memory region
func (i *Interpreter) Memory() *Memory {
	return i.mem
}

// Labels returns a copy of the label table
func (i *Interpreter) Labels() map[string]int {
	return maps.Clone(i.labels)
}

// State returns the run state
func (i *Interpreter) State() State {
	return i.state
}

// Err returns the error that stopped the interpreter, if any
func (i *Interpreter) Err() error {
	return i.err
}

// Steps returns the number of steps attempted so far
func (i *Interpreter) Steps() int {
	return i.steps
}

// Program returns the active PB
func (i *Interpreter) Program() []instruction.Instruction {
	return i.pb
}
