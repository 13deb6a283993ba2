package parser

import "strings"

// Token is one whitespace-delimited piece of a field.
type Token struct {
	Literal string
	Pos     int // byte offset in the field
}

// Lexer splits an evaluator field into tokens. Spaces and tabs separate
// tokens; when the extrapolation marker is enabled, '#' also separates
// tokens and marks the field as extrapolated.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination

	marker       bool
	extrapolated bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithExtrapolationMarker treats '#' as the "extrapolated value" marker.
func WithExtrapolationMarker() Option {
	return func(l *Lexer) { l.marker = true }
}

// NewLexer creates a new Lexer for the given field.
func NewLexer(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) isSeparator() bool {
	switch l.ch {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	case '#':
		if l.marker {
			l.extrapolated = true
			return true
		}
	}
	return false
}

// NextToken returns the next token, or false at the end of the field.
func (l *Lexer) NextToken() (Token, bool) {
	for !l.atEOF() && l.isSeparator() {
		l.readChar()
	}
	if l.atEOF() {
		return Token{}, false
	}

	start := l.pos
	for !l.atEOF() && !l.isSeparator() {
		l.readChar()
	}
	return Token{Literal: l.input[start:l.pos], Pos: start}, true
}

// Extrapolated reports whether a marker was seen so far.
func (l *Lexer) Extrapolated() bool {
	return l.extrapolated
}

// Field is a fully tokenized field.
type Field struct {
	Raw          string
	Tokens       []Token
	Extrapolated bool
}

// Lex tokenizes a whole field.
func Lex(input string, opts ...Option) Field {
	l := NewLexer(input, opts...)
	f := Field{Raw: input}
	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		f.Tokens = append(f.Tokens, tok)
	}
	f.Extrapolated = l.Extrapolated()
	return f
}

// Len returns the number of tokens.
func (f Field) Len() int {
	return len(f.Tokens)
}

// Literal returns the text of token i.
func (f Field) Literal(i int) string {
	return f.Tokens[i].Literal
}

// Literals returns the text of every token.
func (f Field) Literals() []string {
	out := make([]string, len(f.Tokens))
	for i, t := range f.Tokens {
		out[i] = t.Literal
	}
	return out
}

// Text returns the field with markers removed and whitespace collapsed.
func (f Field) Text() string {
	return strings.Join(f.Literals(), " ")
}
