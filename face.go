package slicecube

import "image/color"

// visibilityThreshold admits faces that are nearly edge-on.
const visibilityThreshold = -0.05

type Face struct {
	arena   *VertexArena
	Indices [4]int
	Col     color.RGBA
	Owner   int

	normal   Vector3
	centroid Vector3
	distance float64
	visible  bool
	selected bool
	shade    color.RGBA
}

func NewFace(arena *VertexArena, indices [4]int, col color.RGBA, owner int) *Face {
	return &Face{
		arena:   arena,
		Indices: indices,
		Col:     col,
		Owner:   owner,
	}
}

func (f *Face) vertex(i int) *Vertex {
	return f.arena.At(f.Indices[i])
}

func faceNormal(p0, p1, p2 Vector3) Vector3 {
	u := p1.Sub(p0)
	v := p2.Sub(p1)
	n := u.Cross(v)
	n.Normalize()
	return n
}

// GetNormal is the outward world-space normal as of the last Update.
func (f *Face) GetNormal() Vector3 {
	return f.normal
}

// LatticeNormal is the outward normal in lattice space, before global orientation.
func (f *Face) LatticeNormal() Vector3 {
	return faceNormal(f.vertex(0).Pos, f.vertex(1).Pos, f.vertex(2).Pos)
}

// get midpoint of the face
func (f *Face) GetMidPoint() Vector3 {
	var sum Vector3
	for i := range f.Indices {
		sum = sum.Add(f.vertex(i).World)
	}
	return sum.Scale(1.0 / float64(len(f.Indices)))
}

func (f *Face) Distance() float64 { return f.distance }
func (f *Face) Visible() bool     { return f.visible }
func (f *Face) Selected() bool    { return f.selected }

func (f *Face) SetSelected(selected bool) {
	f.selected = selected
}

// Update recomputes normal, centroid, distance and visibility from the current vertices.
// Vertices must already be projected for this tick.
func (f *Face) Update(fr *Frame) {
	f.normal = faceNormal(f.vertex(0).World, f.vertex(1).World, f.vertex(2).World)
	f.centroid = f.GetMidPoint()

	viewer := fr.viewer
	if viewer == nil {
		f.visible = false
		return
	}
	f.distance = viewer.DistanceTo(f.centroid)
	f.visible = f.normal.Dot(viewer.ToViewer(f.centroid)) > visibilityThreshold
	for i := range f.Indices {
		if !f.vertex(i).Projected {
			f.visible = false
			break
		}
	}
	if f.visible {
		f.shade = shadeColor(f.Col, f.normal, viewer.ToViewer(f.centroid))
	}
}

func (f *Face) screenPoints() [4]Vector2 {
	var pts [4]Vector2
	for i := range f.Indices {
		pts[i] = f.vertex(i).Screen
	}
	return pts
}

// Contains tests a screen point against the projected quad.
func (f *Face) Contains(x, y float64) bool {
	pts := f.screenPoints()
	return pointInPolygon(pts[:], x, y)
}

// Render emits the face if it faces the viewer and clears the selection flag.
func (f *Face) Render() []Polygon {
	if !f.visible {
		f.selected = false
		return nil
	}
	col := f.shade
	if f.selected {
		col = highlight(col)
	}
	p := Polygon{
		Points:   f.screenPoints(),
		Color:    col,
		Selected: f.selected,
		Depth:    f.distance,
	}
	f.selected = false
	return []Polygon{p}
}

// pointInPolygon is the even-odd crossing number test.
func pointInPolygon(pts []Vector2, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := pi.X + (y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
