package slicecube

// Vertex is a lattice-space point plus its per-tick world position and screen projection.
type Vertex struct {
	Pos       Vector3
	World     Vector3
	Screen    Vector2
	Projected bool
}

// VertexArena owns every vertex of the puzzle. Faces refer to vertices by index.
type VertexArena struct {
	vertices []Vertex
}

func NewVertexArena(capacity int) *VertexArena {
	return &VertexArena{vertices: make([]Vertex, 0, capacity)}
}

// AddPoint appends a vertex and returns its handle.
func (a *VertexArena) AddPoint(p Vector3) int {
	a.vertices = append(a.vertices, Vertex{Pos: p, World: p})
	return len(a.vertices) - 1
}

func (a *VertexArena) At(i int) *Vertex {
	return &a.vertices[i]
}

func (a *VertexArena) Len() int {
	return len(a.vertices)
}

// Project refreshes the world position and screen point of every vertex.
func (a *VertexArena) Project(o *Orientation, v *Viewer) {
	for i := range a.vertices {
		vx := &a.vertices[i]
		vx.World = o.Rotate(vx.Pos)
		vx.Screen, vx.Projected = v.Project(vx.World)
	}
}
