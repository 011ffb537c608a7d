package slicecube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// faceCorners lists, per direction, the corner indices of the quad in
// counter-clockwise order seen from outside. Corner i has x = bit 0, y = bit 1, z = bit 2.
var faceCorners = map[Direction][4]int{
	Right:    {1, 3, 7, 5},
	Left:     {0, 4, 6, 2},
	Up:       {2, 6, 7, 3},
	Down:     {0, 1, 5, 4},
	Forward:  {4, 5, 7, 6},
	Backward: {0, 2, 3, 1},
}

func cornerOffset(i int, half float64) Vector3 {
	sign := func(bit int) float64 {
		if i&bit != 0 {
			return half
		}
		return -half
	}
	return NewVector3(sign(1), sign(2), sign(4))
}

// SubCube is one cubelet: eight vertices in the shared arena and the six faces over them.
type SubCube struct {
	ID   int
	Home [3]int

	arena   *VertexArena
	base    int
	spacing float64
	half    float64

	center      Vector3
	drawnCenter Vector3
	Faces       [6]*Face
}

func NewSubCube(id int, home [3]int, arena *VertexArena, spacing, half float64) *SubCube {
	sc := &SubCube{
		ID:      id,
		Home:    home,
		arena:   arena,
		spacing: spacing,
		half:    half,
	}
	sc.center = sc.HomeCenter()
	sc.base = arena.Len()
	for i := 0; i < 8; i++ {
		arena.AddPoint(sc.center.Add(cornerOffset(i, half)))
	}
	for _, d := range Directions {
		var idx [4]int
		for k, c := range faceCorners[d] {
			idx[k] = sc.base + c
		}
		sc.Faces[d] = NewFace(arena, idx, FaceColor(home, d), id)
	}
	return sc
}

// HomeCenter is the fixed grid position the cubelet was built at.
func (sc *SubCube) HomeCenter() Vector3 {
	return NewVector3(float64(sc.Home[0]), float64(sc.Home[1]), float64(sc.Home[2])).Scale(sc.spacing)
}

// Center is the current lattice-space centre, moved by turns.
func (sc *SubCube) Center() Vector3 {
	return sc.center
}

// Cell is the current centre in grid units, each component -1, 0 or 1.
func (sc *SubCube) Cell() Vector3 {
	return snapTo(sc.center.Scale(1/sc.spacing), 1)
}

// DrawnCenter is the centre after the global orientation, as of the last Update.
func (sc *SubCube) DrawnCenter() Vector3 {
	return sc.drawnCenter
}

func (sc *SubCube) Vertex(i int) *Vertex {
	return sc.arena.At(sc.base + i)
}

// Rotate turns the cubelet's vertices and centre by m about pivot.
func (sc *SubCube) Rotate(m mgl64.Mat3, pivot Vector3) {
	for i := 0; i < 8; i++ {
		v := sc.Vertex(i)
		v.Pos = RotateAboutPivot(v.Pos, m, pivot)
	}
	sc.center = RotateAboutPivot(sc.center, m, pivot)
}

// Snap pulls the centre back onto the grid and every vertex back onto its corner offset.
func (sc *SubCube) Snap() {
	sc.center = snapTo(sc.center, sc.spacing)
	for i := 0; i < 8; i++ {
		v := sc.Vertex(i)
		v.Pos = sc.center.Add(snapTo(v.Pos.Sub(sc.center), sc.half))
	}
}

func snapTo(v Vector3, step float64) Vector3 {
	// adding zero turns -0 into 0 so settled centres serialize cleanly
	round := func(x float64) float64 { return math.Round(x/step)*step + 0 }
	return NewVector3(round(v.X), round(v.Y), round(v.Z))
}

// InSlice reports whether the centre lies within tol of coord along axis.
func (sc *SubCube) InSlice(axis Axis, coord, tol float64) bool {
	return math.Abs(sc.center.Component(axis)-coord) < tol
}

// AtHome reports whether every vertex is back where it was built.
func (sc *SubCube) AtHome(eps float64) bool {
	home := sc.HomeCenter()
	if !sc.center.ApproxEqual(home, eps) {
		return false
	}
	for i := 0; i < 8; i++ {
		if !sc.Vertex(i).Pos.ApproxEqual(home.Add(cornerOffset(i, sc.half)), eps) {
			return false
		}
	}
	return true
}

func (sc *SubCube) Update(f *Frame) {
	if f.orientation != nil {
		sc.drawnCenter = f.orientation.Rotate(sc.center)
	}
	for _, face := range sc.Faces {
		face.Update(f)
	}
}

func (sc *SubCube) Render() []Polygon {
	var out []Polygon
	for _, face := range sc.Faces {
		out = append(out, face.Render()...)
	}
	return out
}
