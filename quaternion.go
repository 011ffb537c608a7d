package slicecube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AxisAngle builds the unit quaternion for a rotation of angle radians about axis.
func AxisAngle(axis Vector3, angle float64) mgl64.Quat {
	axis.Normalize()
	half := angle / 2
	s := math.Sin(half)
	return mgl64.Quat{W: math.Cos(half), V: mgl64.Vec3{axis.X * s, axis.Y * s, axis.Z * s}}
}

// RotationMatrix derives the 3x3 rotation matrix of a unit quaternion.
func RotationMatrix(q mgl64.Quat) mgl64.Mat3 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	// column major
	return mgl64.Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y),
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x),
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y),
	}
}

// RotateAboutPivot moves p by rotation m about pivot.
func RotateAboutPivot(p Vector3, m mgl64.Mat3, pivot Vector3) Vector3 {
	rel := p.Sub(pivot).Vec3()
	return FromVec3(m.Mul3x1(rel)).Add(pivot)
}

// Orientation is an accumulated rotation that keeps itself close to unit norm.
type Orientation struct {
	q                mgl64.Quat
	sinceNormalize   int
	renormalizeEvery int
}

func NewOrientation(renormalizeEvery int) *Orientation {
	return &Orientation{q: mgl64.QuatIdent(), renormalizeEvery: renormalizeEvery}
}

func (o *Orientation) Quat() mgl64.Quat {
	return o.q
}

func (o *Orientation) Set(q mgl64.Quat) {
	o.q = q.Normalize()
	o.sinceNormalize = 0
}

// Apply composes delta onto the orientation as delta * current.
func (o *Orientation) Apply(delta mgl64.Quat) {
	o.q = delta.Mul(o.q)
	o.sinceNormalize++
	if o.renormalizeEvery > 0 && o.sinceNormalize >= o.renormalizeEvery {
		o.q = o.q.Normalize()
		o.sinceNormalize = 0
	}
}

func (o *Orientation) Rotate(v Vector3) Vector3 {
	return FromVec3(o.q.Rotate(v.Vec3()))
}

func (o *Orientation) Inverse() mgl64.Quat {
	return o.q.Conjugate()
}
