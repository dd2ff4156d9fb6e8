// Package raster implements svgpath builders that paint pixels, by
// wrapping rasterx and golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"github.com/vasalvit/svgpath"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	_ svgpath.PathBuilder            = (*Filler)(nil) // assert interface conformance
	_ svgpath.Finisher[*image.Alpha] = (*Mask)(nil)
)

// toFixed converts two floats to a fixed point.
func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}

// Filler fills paths into an RGBA image with a rasterx filler.
type Filler struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

// NewFiller returns a filler painting into a new, transparent
// width x height image.
func NewFiller(width, height int) *Filler {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Filler{img: img, filler: rasterx.NewFiller(width, height, scanner)}
}

// Image returns the image painted so far.
func (f *Filler) Image() *image.RGBA { return f.img }

// SetWinding selects the non-zero winding rule (true, the default) or the
// even-odd rule for the next Fill.
func (f *Filler) SetWinding(useNonZeroWinding bool) {
	f.filler.SetWinding(useNonZeroWinding)
}

// MoveTo ends the current subpath, if any, and starts a new one.
func (f *Filler) MoveTo(x, y float64) {
	f.filler.Stop(false)
	f.filler.Start(toFixed(x, y))
}

func (f *Filler) LineTo(x, y float64) {
	f.filler.Line(toFixed(x, y))
}

func (f *Filler) QuadTo(cx, cy, x, y float64) {
	f.filler.QuadBezier(toFixed(cx, cy), toFixed(x, y))
}

func (f *Filler) CubicTo(x1, y1, x2, y2, x, y float64) {
	f.filler.CubeBezier(toFixed(x1, y1), toFixed(x2, y2), toFixed(x, y))
}

func (f *Filler) Close() {
	f.filler.Stop(true)
}

// Fill paints the accumulated subpaths with c and starts over with an
// empty path.
func (f *Filler) Fill(c color.Color) {
	b := f.img.Bounds()
	svgpath.Logger().Debug("raster: fill", "width", b.Dx(), "height", b.Dy())
	f.filler.Stop(false)
	f.filler.SetColor(c)
	f.filler.Draw()
	f.filler.Clear()
}

// Mask rasterizes paths into an alpha coverage mask.
type Mask struct {
	r *vector.Rasterizer
}

// NewMask returns a width x height mask builder.
func NewMask(width, height int) *Mask {
	return &Mask{r: vector.NewRasterizer(width, height)}
}

func (m *Mask) MoveTo(x, y float64) {
	m.r.MoveTo(float32(x), float32(y))
}

func (m *Mask) LineTo(x, y float64) {
	m.r.LineTo(float32(x), float32(y))
}

func (m *Mask) QuadTo(cx, cy, x, y float64) {
	m.r.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

func (m *Mask) CubicTo(x1, y1, x2, y2, x, y float64) {
	m.r.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

func (m *Mask) Close() {
	m.r.ClosePath()
}

// Finish returns the coverage of the accumulated paths and resets the
// rasterizer.
func (m *Mask) Finish() *image.Alpha {
	size := m.r.Size()
	svgpath.Logger().Debug("raster: mask", "width", size.X, "height", size.Y)
	dst := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	m.r.ClosePath()
	m.r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	m.r.Reset(size.X, size.Y)
	return dst
}
