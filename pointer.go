package slicecube

import "sync/atomic"

type PointerKind int

const (
	PointerUp PointerKind = iota
	PointerDown
	PointerMove
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	default:
		return "up"
	}
}

// PointerSnapshot is one reading of the pointer in the caller's pixel space.
type PointerSnapshot struct {
	X    float64
	Y    float64
	Kind PointerKind
}

func (p PointerSnapshot) Pos() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// Input is the hand-off point between an input producer and the tick.
// The producer replaces the whole snapshot; readers always get a copy.
type Input struct {
	snap atomic.Pointer[PointerSnapshot]
}

func NewInput() *Input {
	in := &Input{}
	in.snap.Store(&PointerSnapshot{Kind: PointerUp})
	return in
}

func (in *Input) Store(p PointerSnapshot) {
	in.snap.Store(&p)
}

func (in *Input) Snapshot() PointerSnapshot {
	return *in.snap.Load()
}

const sampleRingSize = 5

// SampleRing keeps the last few pointer positions of a gesture.
type SampleRing struct {
	points [sampleRingSize]Vector2
	count  int
	end    int
}

func (c *SampleRing) Reset() {
	c.count = 0
	c.end = 0
}

func (c *SampleRing) AddPoint(p Vector2) {
	c.points[c.end] = p
	c.end = (c.end + 1) % sampleRingSize
	if c.count < sampleRingSize {
		c.count++
	}
}

func (c *SampleRing) Len() int {
	return c.count
}

// Newest returns the most recently added sample.
func (c *SampleRing) Newest() Vector2 {
	return c.points[(c.end-1+sampleRingSize)%sampleRingSize]
}

// Oldest returns the earliest sample still buffered.
func (c *SampleRing) Oldest() Vector2 {
	if c.count < sampleRingSize {
		return c.points[0]
	}
	return c.points[c.end]
}

// Swipe is the vector from the oldest to the newest buffered sample.
func (c *SampleRing) Swipe() Vector2 {
	if c.count == 0 {
		return Vector2{}
	}
	return c.Newest().Sub(c.Oldest())
}
