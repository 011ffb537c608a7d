package slicecube

import "math"

// minDepth is the smallest viewer-space depth that still projects.
const minDepth = 1e-6

// Viewer is a fixed perspective anchor on the +Z axis looking at the origin.
type Viewer struct {
	Anchor Vector3
	Centre Vector2
	Focal  float64
}

func NewViewer(screen Screen, cfg Config) *Viewer {
	return &Viewer{
		Anchor: NewVector3(0, 0, cfg.ViewerDistance),
		Centre: Vector2{X: screen.Width / 2, Y: screen.Height / 2},
		Focal:  cfg.FocalScale * math.Min(screen.Width, screen.Height),
	}
}

func (v *Viewer) depth(p Vector3) float64 {
	return v.Anchor.Z - p.Z
}

// Project maps a world point to screen space. Points at or behind the anchor
// plane fall back to the screen centre and report false.
func (v *Viewer) Project(p Vector3) (Vector2, bool) {
	d := v.depth(p)
	if d <= minDepth || math.IsNaN(d) {
		return v.Centre, false
	}
	return Vector2{
		X: v.Centre.X + v.Focal*p.X/d,
		Y: v.Centre.Y - v.Focal*p.Y/d,
	}, true
}

// ProjectSegment projects the segment from origin to tip and returns its 2D extent.
func (v *Viewer) ProjectSegment(origin, tip Vector3) Vector2 {
	a, _ := v.Project(origin)
	b, _ := v.Project(tip)
	return b.Sub(a)
}

// ToViewer is the unit vector from p toward the anchor.
func (v *Viewer) ToViewer(p Vector3) Vector3 {
	d := v.Anchor.Sub(p)
	d.Normalize()
	return d
}

func (v *Viewer) DistanceTo(p Vector3) float64 {
	return v.Anchor.DistanceTo(p)
}
