package parser

import (
	"whitespace/pkg/instruction"
	"whitespace/pkg/lexer"
)

type operandKind int

const (
	operandNone operandKind = iota
	operandNumber
	operandLabel
)

type opcode struct {
	prefix  string                // token prefix selecting the operation
	op      instruction.Operation // decoded operation
	operand operandKind
}

// The leading token selects the family: space for stack manipulation, tab
// for arithmetic, memory and I/O, line break for flow control.
var opcodes = []opcode{
	{"  ", instruction.OpPush, operandNumber},
	{" \n ", instruction.OpDuplicate, operandNone},
	{" \t ", instruction.OpCopy, operandNumber},
	{" \n\t", instruction.OpSwap, operandNone},
	{" \n\n", instruction.OpDiscard, operandNone},
	{" \t\n", instruction.OpSlide, operandNumber},

	{"\t   ", instruction.OpAdd, operandNone},
	{"\t  \t", instruction.OpSub, operandNone},
	{"\t  \n", instruction.OpMul, operandNone},
	{"\t \t ", instruction.OpDiv, operandNone},
	{"\t \t\t", instruction.OpMod, operandNone},

	{"\t\t ", instruction.OpStore, operandNone},
	{"\t\t\t", instruction.OpRetrieve, operandNone},

	{"\n  ", instruction.OpLabel, operandLabel},
	{"\n \t", instruction.OpCall, operandLabel},
	{"\n \n", instruction.OpJump, operandLabel},
	{"\n\t ", instruction.OpJumpZero, operandLabel},
	{"\n\t\t", instruction.OpJumpNegative, operandLabel},
	{"\n\t\n", instruction.OpReturn, operandNone},
	{"\n\n\n", instruction.OpEnd, operandNone},

	{"\t\n  ", instruction.OpPrintChar, operandNone},
	{"\t\n \t", instruction.OpPrintInt, operandNone},
	{"\t\n\t ", instruction.OpReadChar, operandNone},
	{"\t\n\t\t", instruction.OpReadInt, operandNone},
}

// node is one state of the decoding trie, children indexed by token
type node struct {
	children [3]*node
	opcode   *opcode
}

var root = buildTrie(opcodes)

// buildTrie turns the flat opcode table into a prefix trie
func buildTrie(table []opcode) *node {
	r := &node{}
	for i := range table {
		n := r
		for j := 0; j < len(table[i].prefix); j++ {
			t, _ := lexer.Lookup(table[i].prefix[j])
			k := int(t) - 1
			if n.children[k] == nil {
				n.children[k] = &node{}
			}
			n = n.children[k]
		}
		n.opcode = &table[i]
	}

	return r
}

var prefixes = func() map[instruction.Operation]string {
	m := make(map[instruction.Operation]string, len(opcodes))
	for _, o := range opcodes {
		m[o.op] = o.prefix
	}
	return m
}()

// Prefix returns the token prefix that encodes op
func Prefix(op instruction.Operation) (string, bool) {
	p, ok := prefixes[op]
	return p, ok
}
