package svgpath

import "unicode"

// lexState is the state of the path data tokenizer.
type lexState int

const (
	// stateIdle: between tokens.
	stateIdle lexState = iota
	// stateCommand: inside a token opened by a command letter. The digits
	// following the letter belong to it, so "M10" is a single token.
	stateCommand
	// stateNumber: inside a bare numeric token.
	stateNumber
)

// token is a raw slice of path data. command is set when the token was
// opened by a letter.
type token struct {
	text    string
	pos     int
	command bool
}

type tokenizer struct {
	input  string
	state  lexState
	start  int
	tokens []token
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// tokenize splits path data in a single left to right scan. Separators end
// the current token, letters end it and open a command token, anything
// else (digits, signs, decimal points) extends the current token or opens
// a numeric one.
func tokenize(input string) []token {
	t := tokenizer{input: input}
	for i, r := range input {
		switch {
		case isSeparator(r):
			t.emit(i)
		case unicode.IsLetter(r):
			t.emit(i)
			t.open(i, stateCommand)
		case t.state == stateIdle:
			t.open(i, stateNumber)
		}
	}
	t.emit(len(input))
	return t.tokens
}

func (t *tokenizer) open(pos int, s lexState) {
	t.start = pos
	t.state = s
}

// emit flushes the accumulated token ending at end, if any, and goes idle.
func (t *tokenizer) emit(end int) {
	if t.state != stateIdle && end > t.start {
		t.tokens = append(t.tokens, token{
			text:    t.input[t.start:end],
			pos:     t.start,
			command: t.state == stateCommand,
		})
	}
	t.state = stateIdle
}
