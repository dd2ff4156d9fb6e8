package svgpath

import "fmt"

// InstructionType tells a path drawing library which function it has
// to call
type InstructionType int

// These are the instruction types recorded by a Recorder
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	QuadInstruction
	CurveInstruction
	CloseInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case QuadInstruction:
		return "quad"
	case CurveInstruction:
		return "curve"
	case CloseInstruction:
		return "close"
	}
	return fmt.Sprintf("InstructionType(%d)", int(k))
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// DrawingInstruction contains enough information that a simple drawing
// library can draw the recorded shape.
//
// Move and line instructions carry their point in M. Quadratic curves use
// C1 as control point and T as end point; cubic curves use C1, C2 and T.
type DrawingInstruction struct {
	Kind InstructionType
	M    Tuple
	C1   Tuple
	C2   Tuple
	T    Tuple
}

// drawTo issues the instruction on b.
func (di DrawingInstruction) drawTo(b PathBuilder) {
	switch di.Kind {
	case MoveInstruction:
		b.MoveTo(di.M[0], di.M[1])
	case LineInstruction:
		b.LineTo(di.M[0], di.M[1])
	case QuadInstruction:
		b.QuadTo(di.C1[0], di.C1[1], di.T[0], di.T[1])
	case CurveInstruction:
		b.CubicTo(di.C1[0], di.C1[1], di.C2[0], di.C2[1], di.T[0], di.T[1])
	case CloseInstruction:
		b.Close()
	}
}

// endPoint returns the pen position after the instruction. Close has none.
func (di DrawingInstruction) endPoint() (Tuple, bool) {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		return di.M, true
	case QuadInstruction, CurveInstruction:
		return di.T, true
	}
	return Tuple{}, false
}
