package slicecube

import "math"

type turnEntry struct {
	turn Turn
	ok   bool
}

// turnTable maps (face normal, swipe direction) to the quarter turn that drags
// the face along the swipe. Parallel pairs have no entry.
var turnTable [6][6]turnEntry

func init() {
	for _, n := range Directions {
		for _, d := range Directions {
			if n.Axis() == d.Axis() {
				continue
			}
			// a point on face n moves along d when spun about n x d
			spin := n.Unit().Cross(d.Unit())
			axis := NearestDirection(spin)
			turnTable[n][d] = turnEntry{
				turn: Turn{Axis: axis.Axis(), Angle: axis.Sign() * QuarterTurn},
				ok:   true,
			}
		}
	}
}

// TurnFor returns the quarter turn for swiping a face with outward normal n toward d.
func TurnFor(n, d Direction) (Turn, bool) {
	e := turnTable[n][d]
	return e.turn, e.ok
}

// ScreenDirections projects the six lattice directions, as currently oriented,
// into screen space as segments of the given reach from the origin.
func ScreenDirections(o *Orientation, v *Viewer, reach float64) [6]Vector2 {
	var out [6]Vector2
	origin := NewVector3(0, 0, 0)
	for _, d := range Directions {
		tip := o.Rotate(d.Unit().Scale(reach))
		out[d] = v.ProjectSegment(origin, tip)
	}
	return out
}

// InterpretSwipe picks the lattice direction best matching a screen swipe on a
// face with outward lattice normal n, and returns the quarter turn it implies.
func InterpretSwipe(o *Orientation, v *Viewer, reach float64, n Direction, swipe Vector2) (Turn, Direction, bool) {
	if swipe.Length() == 0 {
		return Turn{}, 0, false
	}
	dirs := ScreenDirections(o, v, reach)

	best := Direction(-1)
	bestSim := math.Inf(-1)
	for _, d := range Directions {
		if d.Axis() == n.Axis() {
			continue
		}
		sim := CosineSimilarity(dirs[d], swipe)
		if sim > bestSim {
			best = d
			bestSim = sim
		}
	}
	if best < 0 {
		return Turn{}, 0, false
	}
	t, ok := TurnFor(n, best)
	return t, best, ok
}
