package lexer

import (
	"fmt"
)

type TokenType int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme byte      // Character from the source
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme byte) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
	}
}

const (
	EOF TokenType = iota // End of input

	SPACE // ' '
	TAB   // '\t'
	LF    // '\n'
)

// Characters carrying meaning; everything else is a comment
const (
	Space = ' '
	Tab   = '\t'
	Lf    = '\n'
)

var tokenChars = map[byte]TokenType{
	Space: SPACE,
	Tab:   TAB,
	Lf:    LF,
}

// Char returns the source character of a token type
func (t TokenType) Char() byte {
	switch t {
	case SPACE:
		return Space
	case TAB:
		return Tab
	case LF:
		return Lf
	default:
		return 0
	}
}

// String returns a readable representation of the TokenType
func (t TokenType) String() string {
	switch t {
	case SPACE:
		return "[space]"
	case TAB:
		return "[tab]"
	case LF:
		return "[lf]"
	case EOF:
		return "$"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q}", t.Type, t.Lexeme)
}

// Lookup returns the token type of c, or false if c is a comment character
func Lookup(c byte) (TokenType, bool) {
	t, ok := tokenChars[c]
	return t, ok
}
