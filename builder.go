package svgpath

import (
	"strconv"
	"strings"
)

// PathBuilder accumulates primitive drawing operations, in absolute
// coordinates. A builder is mutated in call order and does not need to be
// safe for concurrent use.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Close()
}

// Finisher is a PathBuilder producing a final value once every operation
// has been issued.
type Finisher[P any] interface {
	PathBuilder
	Finish() P
}

var _ Finisher[Path] = (*Recorder)(nil) // assert interface conformance

// Recorder records operations as DrawingInstructions.
// The zero value is ready to use.
type Recorder struct {
	instructions []DrawingInstruction
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{instructions: make([]DrawingInstruction, 0, 16)}
}

func (r *Recorder) MoveTo(x, y float64) {
	r.instructions = append(r.instructions, DrawingInstruction{Kind: MoveInstruction, M: Tuple{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.instructions = append(r.instructions, DrawingInstruction{Kind: LineInstruction, M: Tuple{x, y}})
}

func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.instructions = append(r.instructions, DrawingInstruction{
		Kind: QuadInstruction,
		C1:   Tuple{cx, cy},
		T:    Tuple{x, y},
	})
}

func (r *Recorder) CubicTo(x1, y1, x2, y2, x, y float64) {
	r.instructions = append(r.instructions, DrawingInstruction{
		Kind: CurveInstruction,
		C1:   Tuple{x1, y1},
		C2:   Tuple{x2, y2},
		T:    Tuple{x, y},
	})
}

func (r *Recorder) Close() {
	r.instructions = append(r.instructions, DrawingInstruction{Kind: CloseInstruction})
}

// Finish hands the recorded instructions over to the returned Path and
// leaves the recorder empty.
func (r *Recorder) Finish() Path {
	p := Path{instructions: r.instructions}
	r.instructions = nil
	return p
}

// Path is an immutable sequence of drawing instructions.
type Path struct {
	instructions []DrawingInstruction
}

// Len returns the number of instructions.
func (p Path) Len() int { return len(p.instructions) }

// Instructions returns a copy of the instructions.
func (p Path) Instructions() []DrawingInstruction {
	out := make([]DrawingInstruction, len(p.instructions))
	copy(out, p.instructions)
	return out
}

// End returns the end point of the last instruction that moves the pen.
// ok is false when there is none.
func (p Path) End() (pt Tuple, ok bool) {
	for i := len(p.instructions) - 1; i >= 0; i-- {
		if pt, ok = p.instructions[i].endPoint(); ok {
			return pt, true
		}
	}
	return Tuple{}, false
}

// Replay issues every instruction of p on b, in order.
func (p Path) Replay(b PathBuilder) {
	for _, di := range p.instructions {
		di.drawTo(b)
	}
}

// String returns the path as absolute path data, using the M, L, Q, C and
// Z commands.
func (p Path) String() string {
	chunks := make([]string, len(p.instructions))
	for i, di := range p.instructions {
		switch di.Kind {
		case MoveInstruction:
			chunks[i] = "M" + formatNumbers(di.M[0], di.M[1])
		case LineInstruction:
			chunks[i] = "L" + formatNumbers(di.M[0], di.M[1])
		case QuadInstruction:
			chunks[i] = "Q" + formatNumbers(di.C1[0], di.C1[1], di.T[0], di.T[1])
		case CurveInstruction:
			chunks[i] = "C" + formatNumbers(di.C1[0], di.C1[1], di.C2[0], di.C2[1], di.T[0], di.T[1])
		case CloseInstruction:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

func formatNumbers(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
