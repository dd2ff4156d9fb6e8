package svgpath

import (
	"errors"
	"fmt"
)

// Errors reported by the parsers. A *ParseError wraps one of them, so test
// with errors.Is.
var (
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrArityMismatch      = errors.New("argument count mismatch")
	ErrMalformedNumber    = errors.New("malformed number")
	ErrUnexpectedEnd      = errors.New("unexpected end of input")
	ErrInvalidRadius      = errors.New("invalid radius")
)

// ParseError describes why a path data or points string was rejected.
// Pos is the byte offset of the offending token in the input.
type ParseError struct {
	Err     error
	Pos     int
	Command rune   // command letter, 0 when not applicable
	Token   string // offending token for ErrMalformedNumber
	// Expected and Actual are argument counts for ErrArityMismatch.
	Expected, Actual int
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsupportedCommand):
		return fmt.Sprintf("svgpath: %s %q at position %d", e.Err, e.Command, e.Pos)
	case errors.Is(e.Err, ErrArityMismatch):
		if e.Command == 0 {
			return fmt.Sprintf("svgpath: %s: expected %d numbers, got %d at position %d",
				e.Err, e.Expected, e.Actual, e.Pos)
		}
		return fmt.Sprintf("svgpath: %s: command %q expects %d numbers, got %d at position %d",
			e.Err, e.Command, e.Expected, e.Actual, e.Pos)
	case errors.Is(e.Err, ErrMalformedNumber):
		return fmt.Sprintf("svgpath: %s %q at position %d", e.Err, e.Token, e.Pos)
	case errors.Is(e.Err, ErrUnexpectedEnd):
		return fmt.Sprintf("svgpath: %s after command %q at position %d", e.Err, e.Command, e.Pos)
	}
	return fmt.Sprintf("svgpath: %s at position %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }
