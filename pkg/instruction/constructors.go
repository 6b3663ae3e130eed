package instruction

// Constructors named after the textual rendering so that a rendered program
// is also valid Go against this package.

func Push(n int64) Instruction    { return Instruction{Op: OpPush, Arg: n} }
func Duplicate() Instruction      { return Instruction{Op: OpDuplicate} }
func CopyNth(n int64) Instruction { return Instruction{Op: OpCopy, Arg: n} }
func Swap() Instruction           { return Instruction{Op: OpSwap} }
func Discard() Instruction        { return Instruction{Op: OpDiscard} }
func Slide(n int64) Instruction   { return Instruction{Op: OpSlide, Arg: n} }

func Add() Instruction { return Instruction{Op: OpAdd} }
func Sub() Instruction { return Instruction{Op: OpSub} }
func Mul() Instruction { return Instruction{Op: OpMul} }
func Div() Instruction { return Instruction{Op: OpDiv} }
func Mod() Instruction { return Instruction{Op: OpMod} }

func Store() Instruction    { return Instruction{Op: OpStore} }
func Retrieve() Instruction { return Instruction{Op: OpRetrieve} }

func SetLabel(l string) Instruction       { return Instruction{Op: OpLabel, Label: l} }
func CallSubroutine(l string) Instruction { return Instruction{Op: OpCall, Label: l} }
func Jump(l string) Instruction           { return Instruction{Op: OpJump, Label: l} }
func JZero(l string) Instruction          { return Instruction{Op: OpJumpZero, Label: l} }
func JNeg(l string) Instruction           { return Instruction{Op: OpJumpNegative, Label: l} }
func EndOfSubroutine() Instruction        { return Instruction{Op: OpReturn} }
func EndOfProgram() Instruction           { return Instruction{Op: OpEnd} }

func PrintChar() Instruction { return Instruction{Op: OpPrintChar} }
func PrintInt() Instruction  { return Instruction{Op: OpPrintInt} }
func ReadChar() Instruction  { return Instruction{Op: OpReadChar} }
func ReadInt() Instruction   { return Instruction{Op: OpReadInt} }
