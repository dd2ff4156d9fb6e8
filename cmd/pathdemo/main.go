// Command pathdemo renders a circle and an SVG path data string to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/vasalvit/svgpath"
	"github.com/vasalvit/svgpath/raster"
)

const logoPath = "M105 57.0273V453.751H252.659C448.259 461.723 428.124 276.022 352.856 253.513V243.197C424.768 204.274 423.809 54.6826 252.659 57.0273H105Z"

func main() {
	var (
		width      = flag.Int("width", 512, "image width")
		height     = flag.Int("height", 512, "image height")
		output     = flag.String("output", "pathdemo.png", "output file")
		d          = flag.String("d", logoPath, "path data to fill")
		radius     = flag.Float64("radius", 100, "circle radius")
		cx         = flag.Float64("cx", 256, "circle center x")
		cy         = flag.Float64("cy", 256, "circle center y")
		fill       = flag.String("fill", "#810e68", "path fill color, a name, #rrggbb or rgb(r, g, b)")
		circleFill = flag.String("circle-fill", "black", "circle fill color, a name, #rrggbb or rgb(r, g, b)")
		verbose    = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		svgpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pathColor, err := parseColor(*fill)
	if err != nil {
		log.Fatalf("Invalid -fill: %v", err)
	}
	circleColor, err := parseColor(*circleFill)
	if err != nil {
		log.Fatalf("Invalid -circle-fill: %v", err)
	}

	f := raster.NewFiller(*width, *height)

	if err := svgpath.AddCircle(f, *radius, *cx, *cy); err != nil {
		log.Fatalf("Failed to draw circle: %v", err)
	}
	f.Fill(circleColor)

	if err := svgpath.Draw(*d, f); err != nil {
		log.Fatalf("Failed to draw path: %v", err)
	}
	f.Fill(pathColor)

	if err := savePNG(*output, f); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func savePNG(name string, f *raster.Filler) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// parseColor reads a color flag in any form oksvg accepts in a fill
// attribute: a name, #rgb, #rrggbb or rgb(r, g, b).
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, fmt.Errorf("empty color")
	}
	if hex := strings.TrimPrefix(s, "#"); hex != s && len(hex) != 3 && len(hex) != 6 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	c, err := oksvg.ParseSVGColor(s)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	if c == nil {
		// "none"
		return nil, fmt.Errorf("no fill color %q", s)
	}
	return c, nil
}
