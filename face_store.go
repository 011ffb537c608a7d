package slicecube

import "sort"

// FaceStore is the flattened face list in painter's order.
type FaceStore struct {
	faces []*Face
}

func NewFaceStore(capacity int) *FaceStore {
	return &FaceStore{faces: make([]*Face, 0, capacity)}
}

func (fs *FaceStore) AddFace(f *Face) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) GetFace(i int) *Face {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// SortFacesByDistance puts faces farther from the viewer at the start of the slice,
// so drawing in order paints near faces last.
func (fs *FaceStore) SortFacesByDistance() {
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].Distance() > fs.faces[j].Distance()
	})
}

// Pick walks the list from nearest to farthest and returns the first visible face under (x, y).
func (fs *FaceStore) Pick(x, y float64) (*Face, bool) {
	for i := len(fs.faces) - 1; i >= 0; i-- {
		f := fs.faces[i]
		if f.Visible() && f.Contains(x, y) {
			return f, true
		}
	}
	return nil, false
}

func (fs *FaceStore) Render() []Polygon {
	out := make([]Polygon, 0, len(fs.faces)/2)
	for _, f := range fs.faces {
		out = append(out, f.Render()...)
	}
	return out
}
