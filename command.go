package svgpath

import "unicode/utf8"

// Command is one validated path data command. Values are built by
// ParseCommands with the right number of arguments, so drawing them
// cannot fail.
type Command interface {
	// String returns the command as path data.
	String() string
	apply(c *cursor, b PathBuilder)
}

// cursor is the current point while commands are drawn.
type cursor struct {
	x, y float64
}

type (
	// MoveAbs is "M x y".
	MoveAbs struct{ X, Y float64 }
	// MoveRel is "m dx dy".
	MoveRel struct{ DX, DY float64 }
	// LineAbs is "L x y".
	LineAbs struct{ X, Y float64 }
	// LineRel is "l dx dy".
	LineRel struct{ DX, DY float64 }
	// HorizontalAbs is "H x".
	HorizontalAbs struct{ X float64 }
	// HorizontalRel is "h dx".
	HorizontalRel struct{ DX float64 }
	// VerticalAbs is "V y".
	VerticalAbs struct{ Y float64 }
	// VerticalRel is "v dy".
	VerticalRel struct{ DY float64 }
	// CubicAbs is "C x1 y1 x2 y2 x y".
	CubicAbs struct{ X1, Y1, X2, Y2, X, Y float64 }
	// CubicRel is "c dx1 dy1 dx2 dy2 dx dy". Every point is relative to
	// the current point before the command.
	CubicRel struct{ DX1, DY1, DX2, DY2, DX, DY float64 }
	// SmoothAbs is "S x1 y1 x y". It draws a quadratic curve with
	// control point (x1, y1), not the SVG smooth cubic.
	SmoothAbs struct{ X1, Y1, X, Y float64 }
	// SmoothRel is "s dx1 dy1 dx dy", the relative form of SmoothAbs.
	SmoothRel struct{ DX1, DY1, DX, DY float64 }
	// Close is "Z" or "z".
	Close struct{}
)

func (c MoveAbs) apply(cur *cursor, b PathBuilder) {
	cur.x, cur.y = c.X, c.Y
	b.MoveTo(cur.x, cur.y)
}

func (c MoveRel) apply(cur *cursor, b PathBuilder) {
	cur.x += c.DX
	cur.y += c.DY
	b.MoveTo(cur.x, cur.y)
}

func (c LineAbs) apply(cur *cursor, b PathBuilder) {
	cur.x, cur.y = c.X, c.Y
	b.LineTo(cur.x, cur.y)
}

func (c LineRel) apply(cur *cursor, b PathBuilder) {
	cur.x += c.DX
	cur.y += c.DY
	b.LineTo(cur.x, cur.y)
}

func (c HorizontalAbs) apply(cur *cursor, b PathBuilder) {
	cur.x = c.X
	b.LineTo(cur.x, cur.y)
}

func (c HorizontalRel) apply(cur *cursor, b PathBuilder) {
	cur.x += c.DX
	b.LineTo(cur.x, cur.y)
}

func (c VerticalAbs) apply(cur *cursor, b PathBuilder) {
	cur.y = c.Y
	b.LineTo(cur.x, cur.y)
}

func (c VerticalRel) apply(cur *cursor, b PathBuilder) {
	cur.y += c.DY
	b.LineTo(cur.x, cur.y)
}

func (c CubicAbs) apply(cur *cursor, b PathBuilder) {
	cur.x, cur.y = c.X, c.Y
	b.CubicTo(c.X1, c.Y1, c.X2, c.Y2, cur.x, cur.y)
}

func (c CubicRel) apply(cur *cursor, b PathBuilder) {
	x1, y1 := cur.x+c.DX1, cur.y+c.DY1
	x2, y2 := cur.x+c.DX2, cur.y+c.DY2
	cur.x += c.DX
	cur.y += c.DY
	b.CubicTo(x1, y1, x2, y2, cur.x, cur.y)
}

func (c SmoothAbs) apply(cur *cursor, b PathBuilder) {
	cur.x, cur.y = c.X, c.Y
	b.QuadTo(c.X1, c.Y1, cur.x, cur.y)
}

func (c SmoothRel) apply(cur *cursor, b PathBuilder) {
	x1, y1 := cur.x+c.DX1, cur.y+c.DY1
	cur.x += c.DX
	cur.y += c.DY
	b.QuadTo(x1, y1, cur.x, cur.y)
}

// Close leaves the cursor where it is.
func (Close) apply(_ *cursor, b PathBuilder) { b.Close() }

func (c MoveAbs) String() string       { return "M" + formatNumbers(c.X, c.Y) }
func (c MoveRel) String() string       { return "m" + formatNumbers(c.DX, c.DY) }
func (c LineAbs) String() string       { return "L" + formatNumbers(c.X, c.Y) }
func (c LineRel) String() string       { return "l" + formatNumbers(c.DX, c.DY) }
func (c HorizontalAbs) String() string { return "H" + formatNumbers(c.X) }
func (c HorizontalRel) String() string { return "h" + formatNumbers(c.DX) }
func (c VerticalAbs) String() string   { return "V" + formatNumbers(c.Y) }
func (c VerticalRel) String() string   { return "v" + formatNumbers(c.DY) }
func (c CubicAbs) String() string {
	return "C" + formatNumbers(c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y)
}
func (c CubicRel) String() string {
	return "c" + formatNumbers(c.DX1, c.DY1, c.DX2, c.DY2, c.DX, c.DY)
}
func (c SmoothAbs) String() string { return "S" + formatNumbers(c.X1, c.Y1, c.X, c.Y) }
func (c SmoothRel) String() string { return "s" + formatNumbers(c.DX1, c.DY1, c.DX, c.DY) }
func (Close) String() string       { return "Z" }

// commandSpec gives the argument count of a command letter and builds the
// command from exactly that many arguments.
type commandSpec struct {
	arity int
	build func(a []float64) Command
}

var commandSpecs = map[rune]commandSpec{
	'M': {2, func(a []float64) Command { return MoveAbs{a[0], a[1]} }},
	'm': {2, func(a []float64) Command { return MoveRel{a[0], a[1]} }},
	'L': {2, func(a []float64) Command { return LineAbs{a[0], a[1]} }},
	'l': {2, func(a []float64) Command { return LineRel{a[0], a[1]} }},
	'H': {1, func(a []float64) Command { return HorizontalAbs{a[0]} }},
	'h': {1, func(a []float64) Command { return HorizontalRel{a[0]} }},
	'V': {1, func(a []float64) Command { return VerticalAbs{a[0]} }},
	'v': {1, func(a []float64) Command { return VerticalRel{a[0]} }},
	'C': {6, func(a []float64) Command { return CubicAbs{a[0], a[1], a[2], a[3], a[4], a[5]} }},
	'c': {6, func(a []float64) Command { return CubicRel{a[0], a[1], a[2], a[3], a[4], a[5]} }},
	'S': {4, func(a []float64) Command { return SmoothAbs{a[0], a[1], a[2], a[3]} }},
	's': {4, func(a []float64) Command { return SmoothRel{a[0], a[1], a[2], a[3]} }},
	'Z': {0, func([]float64) Command { return Close{} }},
	'z': {0, func([]float64) Command { return Close{} }},
}

// expand turns a validated argument list into one command per argument
// group: "L1 2 3 4" is "L1 2" then "L3 4".
func (s commandSpec) expand(args []float64) []Command {
	if s.arity == 0 {
		return []Command{s.build(nil)}
	}
	out := make([]Command, 0, len(args)/s.arity)
	for i := 0; i+s.arity <= len(args); i += s.arity {
		out = append(out, s.build(args[i:i+s.arity]))
	}
	return out
}

// firstRune splits a command token into its letter and the first argument
// glued to it.
func firstRune(s string) (rune, string) {
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:]
}
