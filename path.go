// Package svgpath turns SVG path data (the "d" attribute of a path
// element) into absolute drawing operations issued on a PathBuilder, and
// approximates circles with cubic Bezier curves through the same contract.
//
// Supported commands are M, L, H, V, C, S (drawn as a quadratic curve) and
// Z, in absolute (upper case) and relative (lower case) form.
package svgpath

import (
	"strconv"
)

// ParsePath parses path data into a Path.
func ParsePath(d string, opts ...Option) (Path, error) {
	return Build[Path](d, NewRecorder(), opts...)
}

// Build parses path data, issues the drawing operations on b and returns
// the result of b.Finish. On error b receives no call at all.
func Build[P any](d string, b Finisher[P], opts ...Option) (P, error) {
	if err := Draw(d, b, opts...); err != nil {
		var zero P
		return zero, err
	}
	return b.Finish(), nil
}

// Draw parses path data and issues the drawing operations on b, which is
// left unfinished. On error b receives no call at all.
func Draw(d string, b PathBuilder, opts ...Option) error {
	cmds, err := ParseCommands(d, opts...)
	if err != nil {
		return err
	}
	DrawCommands(cmds, b)
	return nil
}

// DrawCommands issues cmds on b, starting with the current point at the
// origin.
func DrawCommands(cmds []Command, b PathBuilder) {
	var cur cursor
	for _, c := range cmds {
		c.apply(&cur, b)
	}
}

// ParseCommands tokenizes and validates path data. Empty or separator-only
// input gives no command and no error.
func ParseCommands(d string, opts ...Option) ([]Command, error) {
	o := newOptions(opts)
	tokens := tokenize(d)
	cmds, err := groupTokens(tokens, o)
	if err != nil {
		Logger().Debug("svgpath: rejected path data", "err", err)
		return nil, err
	}
	Logger().Debug("svgpath: parsed path data", "tokens", len(tokens), "commands", len(cmds))
	return cmds, nil
}

// groupTokens collects the arguments of each command letter and checks
// their count. A token opened by a letter starts a group; the tokens that
// follow it belong to the group while they start with a continuation
// marker (see WithDigitContinuation).
func groupTokens(tokens []token, o parseOptions) ([]Command, error) {
	var cmds []Command
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		i++

		letter, first := firstRune(tok.text)
		if !tok.command {
			// numbers with no command to continue
			return nil, &ParseError{Err: ErrUnsupportedCommand, Pos: tok.pos, Command: letter}
		}
		spec, ok := commandSpecs[letter]
		if !ok {
			return nil, &ParseError{Err: ErrUnsupportedCommand, Pos: tok.pos, Command: letter}
		}

		var args []float64
		if first != "" {
			v, err := parseNumber(first, tok.pos+len(tok.text)-len(first))
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		for i < len(tokens) && !tokens[i].command && o.continues(tokens[i].text[0]) {
			v, err := parseNumber(tokens[i].text, tokens[i].pos)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			i++
		}

		if err := checkArity(letter, tok.pos, spec.arity, len(args), i == len(tokens)); err != nil {
			return nil, err
		}
		cmds = append(cmds, spec.expand(args)...)
	}
	return cmds, nil
}

// checkArity accepts n arguments for a command of the given arity: none
// for Z, otherwise a positive multiple of the arity.
func checkArity(letter rune, pos, arity, n int, atEnd bool) error {
	switch {
	case arity == 0 && n == 0:
		return nil
	case arity == 0:
		return &ParseError{Err: ErrArityMismatch, Pos: pos, Command: letter, Expected: 0, Actual: n}
	case n == 0 && atEnd:
		return &ParseError{Err: ErrUnexpectedEnd, Pos: pos, Command: letter}
	case n == 0:
		return &ParseError{Err: ErrArityMismatch, Pos: pos, Command: letter, Expected: arity, Actual: 0}
	case n%arity != 0:
		return &ParseError{Err: ErrArityMismatch, Pos: pos, Command: letter, Expected: (n/arity + 1) * arity, Actual: n}
	}
	return nil
}

func parseNumber(s string, pos int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Err: ErrMalformedNumber, Pos: pos, Token: s}
	}
	return v, nil
}
