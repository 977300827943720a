// Package lexer converts Calc source text into a stream of tokens.
//
// The lexer is a pull-based collaborator for the parser: each call to Next
// returns one token, and once the input is exhausted Next returns the EOF
// token indefinitely. Malformed input produces an error along with an
// ILLEGAL token that carries the offending lexeme and its position.
package lexer

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/calc/token"
)

// Lexer converts Calc source code into tokens.
type Lexer struct {
	input     string
	pos       int    // byte offset of the next unread character
	line      int    // 0-indexed line number of the next unread character
	column    int    // 0-indexed column number of the next unread character
	lineStart int    // byte offset of the start of the current line
	filename  string // optional filename used in token positions
}

// New returns a Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename associated with the input, which is then
// carried on every token position.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the filename associated with the input.
func (l *Lexer) Filename() string {
	return l.filename
}

// Next returns the next token in the input. Once the input is exhausted,
// Next returns the EOF token indefinitely. On malformed input the returned
// token has type ILLEGAL and the error describes the problem.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		pos := l.currentPosition()
		return token.Token{Type: token.EOF, Literal: "", StartPosition: pos, EndPosition: pos}, nil
	}
	c := l.input[l.pos]
	switch {
	case isDigit(c) || c == '.':
		return l.readNumber()
	case isLetter(c):
		return l.readIdentifier(), nil
	}
	switch c {
	case '(':
		return l.charToken(token.LPAREN), nil
	case ')':
		return l.charToken(token.RPAREN), nil
	case '+':
		return l.charToken(token.PLUS), nil
	case '-':
		return l.charToken(token.MINUS), nil
	case '*':
		return l.charToken(token.ASTERISK), nil
	case '/':
		return l.charToken(token.SLASH), nil
	case '%':
		return l.charToken(token.MOD), nil
	case '&':
		return l.charToken(token.AND), nil
	case '^':
		return l.charToken(token.XOR), nil
	case '|':
		return l.charToken(token.OR), nil
	case '=':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.EQ), nil
		}
		return l.charToken(token.ASSIGN), nil
	case '<':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.LT_EQUALS), nil
		}
		return l.charToken(token.LT), nil
	case '>':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.GT_EQUALS), nil
		}
		return l.charToken(token.GT), nil
	case '!':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.NOT_EQ), nil
		}
	}
	tok := l.charToken(token.ILLEGAL)
	return tok, fmt.Errorf("unexpected character: %q", rune(c))
}

// GetLineText returns the full line of source text containing the given token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	if end := strings.IndexByte(l.input[start:], '\n'); end != -1 {
		return l.input[start : start+end]
	}
	return l.input[start:]
}

// readNumber scans a numeric literal: digits with at most one interior
// decimal point. A literal that starts or ends with a decimal point, or that
// contains more than one, is malformed.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.currentPosition()
	begin := l.pos
	dots := 0
	for l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
		if l.input[l.pos] == '.' {
			dots++
		}
		l.advance()
	}
	lit := l.input[begin:l.pos]
	tok := token.Token{
		Type:          token.NUMBER,
		Literal:       lit,
		StartPosition: start,
		EndPosition:   start.Advance(len(lit) - 1),
	}
	if dots > 1 || lit[0] == '.' || lit[len(lit)-1] == '.' {
		tok.Type = token.ILLEGAL
		return tok, fmt.Errorf("invalid decimal literal: %s", lit)
	}
	return tok, nil
}

// readIdentifier scans an identifier or keyword: a letter or underscore
// followed by letters, digits, or underscores.
func (l *Lexer) readIdentifier() token.Token {
	start := l.currentPosition()
	begin := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.advance()
	}
	lit := l.input[begin:l.pos]
	return token.Token{
		Type:          token.LookupIdentifier(lit),
		Literal:       lit,
		StartPosition: start,
		EndPosition:   start.Advance(len(lit) - 1),
	}
}

// charToken consumes one character and returns a token of the given type.
func (l *Lexer) charToken(typ token.Type) token.Token {
	pos := l.currentPosition()
	c := l.advance()
	return token.Token{
		Type:          typ,
		Literal:       string(c),
		StartPosition: pos,
		EndPosition:   pos,
	}
}

// twoCharToken consumes two characters and returns a token of the given type.
func (l *Lexer) twoCharToken(typ token.Type) token.Token {
	pos := l.currentPosition()
	first := l.advance()
	second := l.advance()
	return token.Token{
		Type:          typ,
		Literal:       string(first) + string(second),
		StartPosition: pos,
		EndPosition:   pos.Advance(1),
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// advance consumes one character, tracking line and column numbers.
func (l *Lexer) advance() byte {
	c := l.input[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 0
		l.lineStart = l.pos
	} else {
		l.column++
	}
	return c
}

// peekChar returns the character after the current one without consuming
// anything, or 0 at the end of the input.
func (l *Lexer) peekChar() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// currentPosition returns the position of the next unread character.
func (l *Lexer) currentPosition() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.filename,
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
