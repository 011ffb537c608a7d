package slicecube

import "image/color"

// Screen describes the caller's pixel space. Ratio is pixels per logical unit
// and keeps gesture thresholds independent of display density.
type Screen struct {
	Width  float64
	Height float64
	Ratio  float64
}

func (s Screen) ratio() float64 {
	if s.Ratio <= 0 {
		return 1
	}
	return s.Ratio
}

// Frame is everything one tick needs from the outside world.
type Frame struct {
	Elapsed float64
	Pointer PointerSnapshot
	Screen  Screen

	viewer      *Viewer
	orientation *Orientation
}

// Polygon is a projected flat-shaded quad ready for rasterizing.
type Polygon struct {
	Points   [4]Vector2
	Color    color.RGBA
	Selected bool
	Depth    float64
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd rule.
func (p Polygon) Contains(x, y float64) bool {
	return pointInPolygon(p.Points[:], x, y)
}

// Drawable is implemented by everything that takes part in a tick.
type Drawable interface {
	Update(f *Frame)
	Render() []Polygon
}

var (
	_ Drawable = (*Face)(nil)
	_ Drawable = (*SubCube)(nil)
	_ Drawable = (*Puzzle)(nil)
)
