package raster

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasalvit/svgpath"
)

const square = "M2 2H8V8H2Z"

func TestMask(t *testing.T) {
	m := NewMask(10, 10)
	require.NoError(t, svgpath.Draw(square, m))

	a := m.Finish()
	require.Equal(t, 10, a.Bounds().Dx())
	require.Equal(t, uint8(0xff), a.AlphaAt(5, 5).A)
	require.Equal(t, uint8(0), a.AlphaAt(0, 0).A)
	require.Equal(t, uint8(0), a.AlphaAt(9, 9).A)

	// finishing resets the rasterizer
	require.Equal(t, uint8(0), m.Finish().AlphaAt(5, 5).A)
}

func TestMaskBuild(t *testing.T) {
	a, err := svgpath.BuildCircle[*image.Alpha](NewMask(20, 20), 8, 10, 10)
	require.NoError(t, err)
	require.Equal(t, uint8(0xff), a.AlphaAt(10, 10).A)
	require.Equal(t, uint8(0), a.AlphaAt(0, 0).A)
}

func TestFiller(t *testing.T) {
	f := NewFiller(10, 10)
	require.NoError(t, svgpath.Draw(square, f))
	f.Fill(color.NRGBA{R: 0xff, A: 0xff})

	px := f.Image().RGBAAt(5, 5)
	require.True(t, px.R >= 0xfe, "red at the center, got %v", px)
	require.True(t, px.A >= 0xfe, "opaque at the center, got %v", px)
	require.Equal(t, uint8(0), f.Image().RGBAAt(0, 0).A)
}

func TestFillerLayers(t *testing.T) {
	f := NewFiller(20, 20)
	require.NoError(t, svgpath.AddCircle(f, 8, 10, 10))
	f.Fill(color.Black)
	require.NoError(t, svgpath.Draw("M0 0h4v4h-4z", f))
	f.Fill(color.White)

	center := f.Image().RGBAAt(10, 10)
	require.True(t, center.R <= 1 && center.A >= 0xfe, "black at the center, got %v", center)
	corner := f.Image().RGBAAt(2, 2)
	require.True(t, corner.R >= 0xfe && corner.A >= 0xfe, "white in the corner, got %v", corner)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	svgpath.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer svgpath.SetLogger(nil)

	f := NewFiller(12, 7)
	require.NoError(t, svgpath.Draw(square, f))
	f.Fill(color.Black)
	require.Contains(t, buf.String(), "raster: fill")
	require.Contains(t, buf.String(), "width=12 height=7")

	NewMask(3, 4).Finish()
	require.Contains(t, buf.String(), "raster: mask")
	require.Contains(t, buf.String(), "width=3 height=4")
}
