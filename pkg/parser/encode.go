package parser

import (
	"fmt"
	"math"
	"strings"

	"whitespace/pkg/instruction"
)

// EncodeInt renders n as the binary operand MatchInt reads back; n must not
// be negative.
func EncodeInt(n int64) string {
	var sb strings.Builder
	writeBits(&sb, uint64(n))
	sb.WriteByte('\n')

	return sb.String()
}

// EncodeSignedInt renders n as the operand MatchSignedInt reads back
func EncodeSignedInt(n int64) string {
	var sb strings.Builder

	magnitude := uint64(n)
	if n < 0 {
		sb.WriteByte('\t')
		magnitude = uint64(-n)
	} else {
		sb.WriteByte(' ')
	}

	if magnitude != 0 {
		writeBits(&sb, magnitude)
	}
	sb.WriteByte('\n')

	return sb.String()
}

// EncodeString renders s as a label operand, 8 tokens per byte
func EncodeString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		for bit := 7; bit >= 0; bit-- {
			if s[i]>>bit&1 == 1 {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

// EncodeInstruction renders one instruction as token text
func EncodeInstruction(in instruction.Instruction, signed bool) (string, error) {
	prefix, ok := Prefix(in.Op)
	if !ok {
		return "", fmt.Errorf("cannot encode unknown operation %q", in.Op)
	}

	switch {
	case in.Op.HasNumber() && signed && in.Arg == math.MinInt64:
		return "", fmt.Errorf("%s(%d): %w", in.Op.Name(), in.Arg, ErrNumberOverflow)
	case in.Op.HasNumber() && !signed && in.Arg < 0:
		return "", fmt.Errorf("%s(%d): %w", in.Op.Name(), in.Arg, ErrNegativeLiteral)
	case in.Op.HasNumber() && signed:
		return prefix + EncodeSignedInt(in.Arg), nil
	case in.Op.HasNumber():
		return prefix + EncodeInt(in.Arg), nil
	case in.Op.HasLabel():
		if in.Label == "" {
			return "", fmt.Errorf("%s: %w", in.Op.Name(), ErrEmptyString)
		}
		return prefix + EncodeString(in.Label), nil
	default:
		return prefix, nil
	}
}

// writeBits writes the significant bits of v, most significant first; zero
// is written as a single space.
func writeBits(sb *strings.Builder, v uint64) {
	if v == 0 {
		sb.WriteByte(' ')
		return
	}

	started := false
	for bit := 63; bit >= 0; bit-- {
		set := v>>bit&1 == 1
		if !set && !started {
			continue
		}
		started = true
		if set {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
}
