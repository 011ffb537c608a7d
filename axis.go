package slicecube

import (
	"fmt"
	"math"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"X", "Y", "Z"}

func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

func (a Axis) Unit() Vector3 {
	switch a {
	case AxisX:
		return Vector3{X: 1}
	case AxisY:
		return Vector3{Y: 1}
	default:
		return Vector3{Z: 1}
	}
}

func ParseAxis(s string) (Axis, error) {
	for i, name := range axisNames {
		if s == name {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Direction is one of the six outward face directions of the lattice.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
	Forward
	Backward
)

// Directions lists every direction in lookup-table order.
var Directions = [...]Direction{Right, Left, Up, Down, Forward, Backward}

var directionNames = [...]string{"right", "left", "up", "down", "forward", "backward"}

func (d Direction) String() string {
	if d < Right || d > Backward {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) Axis() Axis {
	return Axis(int(d) / 2)
}

// Sign is +1 for Right, Up and Forward, -1 otherwise.
func (d Direction) Sign() float64 {
	if int(d)%2 == 0 {
		return 1
	}
	return -1
}

func (d Direction) Unit() Vector3 {
	return d.Axis().Unit().Scale(d.Sign())
}

// NearestDirection snaps v to the direction with the largest matching component.
func NearestDirection(v Vector3) Direction {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		if v.X >= 0 {
			return Right
		}
		return Left
	case ay >= az:
		if v.Y >= 0 {
			return Up
		}
		return Down
	default:
		if v.Z >= 0 {
			return Forward
		}
		return Backward
	}
}

// Turn is a signed rotation of one slice about one axis.
type Turn struct {
	Axis  Axis
	Angle float64
}

const QuarterTurn = math.Pi / 2
