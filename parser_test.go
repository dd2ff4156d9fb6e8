package svgpath

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestParseErrors(t *testing.T) {
	var tts = []struct {
		d        string
		err      error
		pos      int
		command  rune
		token    string
		expected int
		actual   int
	}{
		{d: "M10", err: ErrArityMismatch, command: 'M', expected: 2, actual: 1},
		{d: "M1 2 3", err: ErrArityMismatch, command: 'M', expected: 4, actual: 3},
		{d: "M L10 10", err: ErrArityMismatch, command: 'M', expected: 2},
		{d: "M0 0 C1 2 3 4", err: ErrArityMismatch, pos: 5, command: 'C', expected: 6, actual: 4},
		{d: "M0 0 Z5", err: ErrArityMismatch, pos: 5, command: 'Z', actual: 1},
		{d: "M0 0 L", err: ErrUnexpectedEnd, pos: 5, command: 'L'},
		{d: "A 5 5 0 0 1 10 10", err: ErrUnsupportedCommand, command: 'A'},
		{d: "M0 0 Q1 1 2 2", err: ErrUnsupportedCommand, pos: 5, command: 'Q'},
		{d: "M0 0 L10 1e5", err: ErrUnsupportedCommand, pos: 10, command: 'e'},
		{d: "10 10", err: ErrUnsupportedCommand, command: '1'},
		{d: "M0 0 #", err: ErrUnsupportedCommand, pos: 5, command: '#'},
		{d: "M0 0 é5", err: ErrUnsupportedCommand, pos: 5, command: 'é'},
		{d: "M1.2.3 4", err: ErrMalformedNumber, pos: 1, token: "1.2.3"},
		{d: "M10-5", err: ErrMalformedNumber, pos: 1, token: "10-5"},
		{d: "M0 0 L1 -", err: ErrMalformedNumber, pos: 8, token: "-"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			is := is.New(t)

			cmds, err := ParseCommands(tt.d)
			is.Equal(len(cmds), 0)
			is.NotNil(err)
			is.Equal(errors.Is(err, tt.err), true)

			var pe *ParseError
			is.Equal(errors.As(err, &pe), true)
			is.Equal(pe.Pos, tt.pos)
			is.Equal(pe.Command, tt.command)
			is.Equal(pe.Token, tt.token)
			is.Equal(pe.Expected, tt.expected)
			is.Equal(pe.Actual, tt.actual)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	is := is.New(t)

	_, err := ParsePath("M10")
	is.Equal(err.Error(), "svgpath: argument count mismatch: command 'M' expects 2 numbers, got 1 at position 0")

	_, err = ParsePath("A 5 5")
	is.Equal(err.Error(), "svgpath: unsupported command 'A' at position 0")

	_, err = ParsePath("M1.2.3 4")
	is.Equal(err.Error(), `svgpath: malformed number "1.2.3" at position 1`)

	_, err = ParsePath("M0 0 L")
	is.Equal(err.Error(), "svgpath: unexpected end of input after command 'L' at position 5")
}

func TestParseEmpty(t *testing.T) {
	is := is.New(t)

	for _, d := range []string{"", " ", ",,", "\t\n"} {
		p, err := ParsePath(d)
		is.NoErr(err)
		is.Equal(p.Len(), 0)
		is.Equal(p.String(), "")
	}
}

func TestTokenize(t *testing.T) {
	is := is.New(t)

	is.Equal(tokenize("M105 57.0273V453.751"), []token{
		{text: "M105", pos: 0, command: true},
		{text: "57.0273", pos: 5},
		{text: "V453.751", pos: 12, command: true},
	})
	is.Equal(tokenize("M10-5"), []token{{text: "M10-5", command: true}})
	is.Equal(tokenize("Z z"), []token{
		{text: "Z", command: true},
		{text: "z", pos: 2, command: true},
	})
	is.Equal(len(tokenize(" ,\t,\n")), 0)
}
