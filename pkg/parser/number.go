package parser

import (
	"fmt"
	"math"
	"strings"
)

// MatchInt decodes an unsigned binary number (tab = 1, space = 0) terminated by
// a line break. It returns the value and the input that follows the terminator.
// Values past math.MaxInt64 fail with ErrNumberOverflow.
func MatchInt(input string) (int64, string, error) {
	var value int64

	for offset := 0; offset < len(input); offset++ {
		c := input[offset]
		if (c == '\t' || c == ' ') && value > math.MaxInt64>>1 {
			return 0, input, fmt.Errorf("%w: more than 63 significant bits", ErrNumberOverflow)
		}

		switch c {
		case '\t':
			value = value<<1 | 1
		case ' ':
			value <<= 1
		case '\n':
			if offset == 0 {
				return 0, input, ErrEmptyNumber
			}
			return value, input[offset+1:], nil
		default:
			return 0, input, fmt.Errorf("%w: %s while matching a number", ErrInvalidChar, describe(c))
		}
	}

	return 0, input, ErrUnterminatedNumber
}

// MatchSignedInt decodes a number whose first token is a sign
// (space = positive, tab = negative) followed by the magnitude bits.
func MatchSignedInt(input string) (int64, string, error) {
	if input == "" {
		return 0, input, ErrUnterminatedNumber
	}

	var negative bool
	switch c := input[0]; c {
	case ' ':
	case '\t':
		negative = true
	case '\n':
		return 0, input, ErrEmptyNumber
	default:
		return 0, input, fmt.Errorf("%w: %s while matching a number", ErrInvalidChar, describe(c))
	}

	rest := input[1:]
	if strings.HasPrefix(rest, "\n") {
		// sign only
		return 0, rest[1:], nil
	}

	value, rest, err := MatchInt(rest)
	if err != nil {
		return 0, input, err
	}

	if negative {
		value = -value
	}

	return value, rest, nil
}

// MatchString decodes a label: every 8 tokens form one byte, a trailing
// partial byte is kept when at least one of its bits was read.
func MatchString(input string) (string, string, error) {
	var (
		matched []byte
		current byte
	)

	for offset := 0; offset < len(input); offset++ {
		switch c := input[offset]; c {
		case '\t':
			current = current<<1 | 1
		case ' ':
			current <<= 1
		case '\n':
			if offset%8 != 0 {
				matched = append(matched, current)
			}
			if len(matched) == 0 {
				return "", input, ErrEmptyString
			}
			return string(matched), input[offset+1:], nil
		default:
			return "", input, fmt.Errorf("%w: %s while matching a label", ErrInvalidChar, describe(c))
		}

		if (offset+1)%8 == 0 {
			matched = append(matched, current)
			current = 0
		}
	}

	return "", input, ErrUnterminatedString
}
