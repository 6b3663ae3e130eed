package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"whitespace/pkg/instruction"
)

// Exec runs a program with stdin and a buffered stdout
func Exec(pb []instruction.Instruction, opts ...Option) error {
	opts = append([]Option{WithWriter(bufio.NewWriter(os.Stdout)), WithReader(os.Stdin)}, opts...)
	return NewInterpreter(pb, opts...).Run()
}

// coreStep is the main single-step execution function
// it returns (halted, error). On error the instruction pointer is left
// where it was.
func coreStep(i *Interpreter, in instruction.Instruction) (bool, error) {
	switch in.Op {
	case instruction.OpEnd:
		return true, nil

	case instruction.OpLabel:
		// already recorded by indexProgram
		i.next()
		return false, nil

	case instruction.OpPush:
		i.data.Push(in.Arg)
		i.next()
		return false, nil

	case instruction.OpDuplicate:
		top, ok := i.data.Peek()
		if !ok {
			return false, underflow(in.Op, 1, i.data.Size())
		}
		i.data.Push(top)
		i.next()
		return false, nil

	case instruction.OpCopy:
		if in.Arg < 0 {
			return false, fmt.Errorf("%w: %s(%d)", ErrInvalidArgument, in.Op.Name(), in.Arg)
		}
		if in.Arg >= int64(i.data.Size()) {
			return false, underflow(in.Op, depth(in.Arg), i.data.Size())
		}
		v, _ := i.data.PeekAt(int(in.Arg))
		i.data.Push(v)
		i.next()
		return false, nil

	case instruction.OpSwap:
		if !i.data.Swap() {
			return false, underflow(in.Op, 2, i.data.Size())
		}
		i.next()
		return false, nil

	case instruction.OpDiscard:
		if _, ok := i.data.Pop(); !ok {
			return false, underflow(in.Op, 1, i.data.Size())
		}
		i.next()
		return false, nil

	case instruction.OpSlide:
		if in.Arg < 0 {
			return false, fmt.Errorf("%w: %s(%d)", ErrInvalidArgument, in.Op.Name(), in.Arg)
		}
		if in.Arg >= int64(i.data.Size()) {
			return false, underflow(in.Op, depth(in.Arg), i.data.Size())
		}
		i.data.Slide(int(in.Arg))
		i.next()
		return false, nil

	case instruction.OpAdd, instruction.OpSub, instruction.OpMul, instruction.OpDiv, instruction.OpMod:
		if i.data.Size() < 2 {
			return false, underflow(in.Op, 2, i.data.Size())
		}
		// right operand is on top
		right, _ := i.data.PeekAt(0)
		left, _ := i.data.PeekAt(1)
		res, err := evalBinary(in.Op, left, right)
		if err != nil {
			return false, err
		}
		i.data.Pop()
		i.data.Pop()
		i.data.Push(res)
		i.next()
		return false, nil

	case instruction.OpStore:
		if i.data.Size() < 2 {
			return false, underflow(in.Op, 2, i.data.Size())
		}
		value, _ := i.data.Pop()
		addr, _ := i.data.Pop()
		if err := i.mem.Store(addr, value); err != nil {
			return false, err
		}
		i.next()
		return false, nil

	case instruction.OpRetrieve:
		addr, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		i.data.Push(i.mem.Load(addr))
		i.next()
		return false, nil

	case instruction.OpJump:
		return false, i.jump(in.Label)

	case instruction.OpJumpZero, instruction.OpJumpNegative:
		v, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		// the popped value is consumed whether or not the branch is taken
		if (in.Op == instruction.OpJumpZero && v == 0) || (in.Op == instruction.OpJumpNegative && v < 0) {
			return false, i.jump(in.Label)
		}
		i.next()
		return false, nil

	case instruction.OpCall:
		// resolve before touching the call stack so a failed call leaves it intact
		target, ok := i.labels[in.Label]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrMissingLabel, in.Label)
		}
		i.calls.Push(i.ip)
		i.ip = target
		return false, nil

	case instruction.OpReturn:
		ret, ok := i.calls.Pop()
		if !ok {
			return false, ErrCallStackUnderflow
		}
		i.ip = ret + 1
		return false, nil

	case instruction.OpPrintChar:
		v, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		if _, err := i.out.Write([]byte{byte(v)}); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}
		i.next()
		return false, nil

	case instruction.OpPrintInt:
		v, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		if _, err := io.WriteString(i.out, strconv.FormatInt(v, 10)); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}
		i.next()
		return false, nil

	case instruction.OpReadChar:
		addr, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		i.flush()
		r, size, err := i.in.ReadRune()
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrInputParse, err)
		}
		if r == utf8.RuneError && size == 1 {
			return false, fmt.Errorf("%w: invalid UTF-8 character", ErrInputParse)
		}
		if err := i.mem.Store(addr, int64(r)); err != nil {
			return false, err
		}
		i.next()
		return false, nil

	case instruction.OpReadInt:
		addr, ok := i.data.Pop()
		if !ok {
			return false, underflow(in.Op, 1, 0)
		}
		i.flush()
		line, err := i.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return false, fmt.Errorf("%w: %w", ErrInputParse, err)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return false, fmt.Errorf("%w: %q is not an integer", ErrInputParse, strings.TrimSpace(line))
		}
		if err := i.mem.Store(addr, n); err != nil {
			return false, err
		}
		i.next()
		return false, nil

	default:
		return false, fmt.Errorf("unhandled operation %q", in.Op)
	}
}

// next advances to the following instruction
func (i *Interpreter) next() {
	i.ip++
}

// depth is the stack depth an operand of n needs
func depth(n int64) int64 {
	if n == math.MaxInt64 {
		return n
	}
	return n + 1
}

// jump moves to the definition of label, leaving the pointer unchanged if
// the label does not exist
func (i *Interpreter) jump(label string) error {
	target, ok := i.labels[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingLabel, label)
	}

	i.ip = target
	return nil
}

// evalBinary computes left op right. Division truncates toward zero and the
// remainder takes the sign of the dividend.
func evalBinary(op instruction.Operation, left, right int64) (int64, error) {
	switch op {
	case instruction.OpAdd:
		return left + right, nil
	case instruction.OpSub:
		return left - right, nil
	case instruction.OpMul:
		return left * right, nil
	case instruction.OpDiv:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case instruction.OpMod:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left % right, nil
	default:
		return 0, fmt.Errorf("unsupported binary op: %s", op)
	}
}
