package svgpath

import (
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// DrawPoints draws a list of coordinates, as found in the points attribute
// of polyline and polygon elements, on b: a move to the first pair and a
// line to every following one. closed adds a Close, as a polygon does.
//
// The list needs an even number of values, at least two. On error b
// receives no call.
func DrawPoints(points string, b PathBuilder, closed bool) error {
	values, err := lexPoints(points)
	if err != nil {
		Logger().Debug("svgpath: rejected points", "err", err)
		return err
	}
	if len(values) < 2 || len(values)%2 != 0 {
		expected := len(values) + 1
		if len(values) == 0 {
			expected = 2
		}
		return &ParseError{Err: ErrArityMismatch, Pos: len(points), Expected: expected, Actual: len(values)}
	}

	b.MoveTo(values[0], values[1])
	for i := 2; i < len(values); i += 2 {
		b.LineTo(values[i], values[i+1])
	}
	if closed {
		b.Close()
	}
	return nil
}

// lexPoints reads every number of points. Whitespace and commas between
// them are skipped; a lone sign item is glued to the number after it.
//
// The lexer ends the stream early at a character it does not know, so
// whatever is left after the last item must be separators only.
func lexPoints(points string) ([]float64, error) {
	l, _ := gl.Lex("points", points)
	var (
		values []float64
		sign   string
		pos    int
	)
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			if sign != "" {
				return nil, &ParseError{Err: ErrMalformedNumber, Pos: pos, Token: sign}
			}
			if rest := strings.TrimLeft(points[pos:], pointSeparators); rest != "" {
				return nil, &ParseError{
					Err:   ErrMalformedNumber,
					Pos:   len(points) - len(rest),
					Token: strings.TrimRight(rest, pointSeparators),
				}
			}
			return values, nil
		case gl.ItemError:
			return nil, &ParseError{Err: ErrMalformedNumber, Pos: pos, Token: i.Value}
		}

		var start int
		pos, start = advance(points, pos, i.Value)
		if i.Type == gl.ItemNumber {
			v, err := strconv.ParseFloat(sign+i.Value, 64)
			if err != nil {
				drain(l)
				return nil, &ParseError{Err: ErrMalformedNumber, Pos: start, Token: sign + i.Value}
			}
			values = append(values, v)
			sign = ""
			continue
		}
		switch strings.TrimSpace(i.Value) {
		case "", ",":
		case "-", "+":
			if sign != "" {
				drain(l)
				return nil, &ParseError{Err: ErrMalformedNumber, Pos: start, Token: sign + i.Value}
			}
			sign = i.Value
		default:
			drain(l)
			return nil, &ParseError{Err: ErrMalformedNumber, Pos: start, Token: i.Value}
		}
	}
}

const pointSeparators = " ,\t\n\r\f"

// advance finds item value v at or after pos and returns the offsets just
// past it and of its start. The lexer may drop separators without an item,
// so the offset is searched rather than summed.
func advance(points string, pos int, v string) (next, start int) {
	if v == "" {
		return pos, pos
	}
	k := strings.Index(points[pos:], v)
	if k < 0 {
		return pos, pos
	}
	return pos + k + len(v), pos + k
}

// drain reads the remaining items so the lexer goroutine can finish.
func drain(l *gl.Lexer) {
	for {
		switch l.NextItem().Type {
		case gl.ItemEOS, gl.ItemError:
			return
		}
	}
}
