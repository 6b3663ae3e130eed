package lexer

import "strings"

type Lexer struct {
	input    string // filtered input, only token characters
	length   int    // length of the filtered input
	position int    // current position in the filtered input
}

// Create a new lexer instance; comment characters are dropped up front
func NewLexer(s string) *Lexer {
	input := Filter(s)
	return &Lexer{
		input:    input,
		length:   len(input),
		position: 0,
	}
}

// Filter keeps blanks, tabs and line breaks and drops everything else
func Filter(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case Space, Tab, Lf:
			return r
		default:
			return -1
		}
	}, s)
}

// Tokenize returns the token types of s in order
func Tokenize(s string) []TokenType {
	l := NewLexer(s)
	tokens := make([]TokenType, 0, l.length)
	for l.HasMore() {
		tokens = append(tokens, l.NextToken().Type)
	}

	return tokens
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	if l.position >= l.length {
		return NewToken(EOF, 0)
	}

	c := l.input[l.position]
	l.position++

	t, _ := Lookup(c)
	return NewToken(t, c)
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	cpos := l.position
	token := l.NextToken()
	l.position = cpos

	return token
}

// Check if there are more tokens to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Remaining returns the unconsumed part of the filtered input
func (l *Lexer) Remaining() string {
	return l.input[l.position:]
}

// Advance skips n tokens
func (l *Lexer) Advance(n int) {
	l.position = min(l.position+n, l.length)
}
