package ebitenview

import (
	"image/color"
	"testing"

	"github.com/smasonuk/slicecube"
)

// recordingSink is a PolygonSink that keeps what it was given.
type recordingSink struct {
	fills   []color.RGBA
	strokes []float32
	xs      [][]float32
}

func (b *recordingSink) AddPolygon(xp, yp []float32, clr color.RGBA) {
	b.fills = append(b.fills, clr)
	b.xs = append(b.xs, append([]float32(nil), xp...))
}

func (b *recordingSink) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	b.strokes = append(b.strokes, strokeWidth)
}

func TestPaintPolygonsKeepsOrder(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	polys := []slicecube.Polygon{
		{Points: [4]slicecube.Vector2{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}, Color: red},
		{Points: [4]slicecube.Vector2{{X: 2}, {X: 3}, {X: 3, Y: 1}, {X: 2, Y: 1}}, Color: blue, Selected: true},
	}
	sink := &recordingSink{}
	paintPolygons(sink, polys)

	if len(sink.fills) != 2 || sink.fills[0] != red || sink.fills[1] != blue {
		t.Fatalf("fills = %v", sink.fills)
	}
	if sink.xs[1][0] != 2 || sink.xs[1][2] != 3 {
		t.Errorf("second polygon xs = %v", sink.xs[1])
	}
	if sink.strokes[1] <= sink.strokes[0] {
		t.Errorf("selected outline %v not wider than %v", sink.strokes[1], sink.strokes[0])
	}
}

func TestPaintPuzzle(t *testing.T) {
	p := slicecube.NewPuzzle(slicecube.DefaultConfig(), slicecube.Hooks{})
	p.Update(&slicecube.Frame{Elapsed: 1.0 / 60, Screen: slicecube.Screen{Width: screenWidth, Height: screenHeight}})

	sink := &recordingSink{}
	paintPolygons(sink, p.Render())
	// three sides of the lattice show at the default orientation
	if len(sink.fills) < 27 {
		t.Errorf("painted %d polygons", len(sink.fills))
	}
}
