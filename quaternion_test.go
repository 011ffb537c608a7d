package slicecube

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAxisAngleMatchesMathgl(t *testing.T) {
	axes := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
		NewVector3(1, 2, -3),
	}
	for _, axis := range axes {
		for _, angle := range []float64{0, 0.3, -math.Pi / 2, math.Pi} {
			got := AxisAngle(axis, angle)
			n := axis
			n.Normalize()
			want := mgl64.QuatRotate(angle, n.Vec3())
			if !got.ApproxEqualThreshold(want, 1e-12) {
				t.Errorf("AxisAngle(%v, %v) = %v, want %v", axis, angle, got, want)
			}
		}
	}
}

func TestRotationMatrixMatchesQuaternion(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 100; i++ {
		axis := NewVector3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
		q := AxisAngle(axis, (rng.Float64()-0.5)*4*math.Pi)
		got := RotationMatrix(q)
		want := q.Mat4().Mat3()
		if !got.ApproxEqualThreshold(want, 1e-12) {
			t.Fatalf("RotationMatrix(%v) = %v, want %v", q, got, want)
		}
		v := NewVector3(1, -2, 0.5)
		if r := FromVec3(got.Mul3x1(v.Vec3())); !vectorsAlmostEqual(r, FromVec3(q.Rotate(v.Vec3()))) {
			t.Fatalf("matrix and quaternion disagree on %v: %v", v, r)
		}
	}
}

func TestRotateAboutPivot(t *testing.T) {
	m := RotationMatrix(AxisAngle(AxisZ.Unit(), math.Pi/2))
	pivot := NewVector3(1, 1, 0)
	got := RotateAboutPivot(NewVector3(2, 1, 3), m, pivot)
	want := NewVector3(1, 2, 3)
	if !vectorsAlmostEqual(got, want) {
		t.Errorf("RotateAboutPivot = %v, want %v", got, want)
	}
	if p := RotateAboutPivot(pivot, m, pivot); !vectorsAlmostEqual(p, pivot) {
		t.Errorf("pivot moved to %v", p)
	}
}

func TestOrientationStaysUnit(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	o := NewOrientation(16)
	for i := 0; i < 10000; i++ {
		axis := NewVector3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
		o.Apply(AxisAngle(axis, (rng.Float64()-0.5)*0.2))
	}
	if n := o.Quat().Len(); math.Abs(n-1) > 1e-9 {
		t.Errorf("orientation norm drifted to %.15f", n)
	}
}

func TestOrientationRenormalizes(t *testing.T) {
	o := NewOrientation(4)
	// a deliberately non-unit delta
	scaled := mgl64.Quat{W: 1.01}
	for i := 0; i < 3; i++ {
		o.Apply(scaled)
	}
	if n := o.Quat().Len(); almostEqual(n, 1) {
		t.Fatalf("norm %.6f normalized too early", n)
	}
	o.Apply(scaled)
	if n := o.Quat().Len(); !almostEqual(n, 1) {
		t.Errorf("norm %.6f after renormalization", n)
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	o := NewOrientation(16)
	for i := 0; i < 4; i++ {
		o.Apply(AxisAngle(AxisY.Unit(), QuarterTurn))
	}
	v := NewVector3(0.3, -1, 2)
	if got := o.Rotate(v); !vectorsAlmostEqual(got, v) {
		t.Errorf("four quarter turns moved %v to %v", v, got)
	}
}
