package svgpath

import (
	"fmt"
	"math"
)

// kappa is the control point distance, as a fraction of the radius, of a
// quarter circle drawn as a cubic Bezier curve. The radial error stays
// below 0.027% of the radius.
const kappa = 0.5522847498

// ApproximateCircle returns a circle of the given radius around (cx, cy)
// made of four cubic curves. See AddCircle.
func ApproximateCircle(radius, cx, cy float64) (Path, error) {
	return BuildCircle[Path](NewRecorder(), radius, cx, cy)
}

// BuildCircle draws a circle on b and returns the result of b.Finish.
// See AddCircle.
func BuildCircle[P any](b Finisher[P], radius, cx, cy float64) (P, error) {
	if err := AddCircle(b, radius, cx, cy); err != nil {
		var zero P
		return zero, err
	}
	return b.Finish(), nil
}

// AddCircle draws a circle of the given radius around (cx, cy) on b.
//
// The circle starts at its rightmost point (cx+radius, cy) and runs
// through (cx, cy-radius), (cx-radius, cy) and (cx, cy+radius) back to the
// start. The last curve ends on the start point, so Close is not called.
// A radius that is not a positive finite number gives ErrInvalidRadius
// and no call on b.
func AddCircle(b PathBuilder, radius, cx, cy float64) error {
	return AddEllipse(b, radius, radius, cx, cy)
}

// AddEllipse draws an axis aligned ellipse with radii rx and ry around
// (cx, cy) on b, the same way AddCircle draws a circle.
func AddEllipse(b PathBuilder, rx, ry, cx, cy float64) error {
	if !validRadius(rx) || !validRadius(ry) {
		return fmt.Errorf("svgpath: radii %v, %v: %w", rx, ry, ErrInvalidRadius)
	}
	ox, oy := rx*kappa, ry*kappa

	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy-oy, cx+ox, cy-ry, cx, cy-ry)
	b.CubicTo(cx-ox, cy-ry, cx-rx, cy-oy, cx-rx, cy)
	b.CubicTo(cx-rx, cy+oy, cx-ox, cy+ry, cx, cy+ry)
	b.CubicTo(cx+ox, cy+ry, cx+rx, cy+oy, cx+rx, cy)
	return nil
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 1)
}
