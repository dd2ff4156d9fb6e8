package svgpath

import (
	mt "github.com/rustyoz/Mtransform"
)

// TransformBuilder applies an affine transform to every point before
// passing it on to the wrapped builder.
type TransformBuilder struct {
	b         PathBuilder
	transform mt.Transform
}

// NewTransformBuilder wraps b so that every point goes through m.
func NewTransformBuilder(b PathBuilder, m mt.Transform) *TransformBuilder {
	return &TransformBuilder{b: b, transform: m}
}

func (t *TransformBuilder) MoveTo(x, y float64) {
	x, y = t.transform.Apply(x, y)
	t.b.MoveTo(x, y)
}

func (t *TransformBuilder) LineTo(x, y float64) {
	x, y = t.transform.Apply(x, y)
	t.b.LineTo(x, y)
}

func (t *TransformBuilder) QuadTo(cx, cy, x, y float64) {
	cx, cy = t.transform.Apply(cx, cy)
	x, y = t.transform.Apply(x, y)
	t.b.QuadTo(cx, cy, x, y)
}

func (t *TransformBuilder) CubicTo(x1, y1, x2, y2, x, y float64) {
	x1, y1 = t.transform.Apply(x1, y1)
	x2, y2 = t.transform.Apply(x2, y2)
	x, y = t.transform.Apply(x, y)
	t.b.CubicTo(x1, y1, x2, y2, x, y)
}

func (t *TransformBuilder) Close() { t.b.Close() }

type transformFinisher[P any] struct {
	*TransformBuilder
	f Finisher[P]
}

func (t transformFinisher[P]) Finish() P { return t.f.Finish() }

// Transformed wraps f like NewTransformBuilder and forwards Finish to f.
func Transformed[P any](f Finisher[P], m mt.Transform) Finisher[P] {
	return transformFinisher[P]{TransformBuilder: NewTransformBuilder(f, m), f: f}
}

// Scale returns a transform scaling by sx and sy around the origin.
func Scale(sx, sy float64) mt.Transform {
	t := mt.NewTransform()
	t.Scale(sx, sy)
	return *t
}

// Compose returns the transform applying b then a, in the order
// Mtransform multiplies matrices.
func Compose(a, b mt.Transform) mt.Transform {
	return mt.MultiplyTransforms(a, b)
}
