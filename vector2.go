package slicecube

import "math"

// Vector2 is a point or offset in screen space.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) Normalize() Vector2 {
	magnitude := v.Length()

	if magnitude == 0 {
		return Vector2{X: 0, Y: 0}
	}

	return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
}

// mult by scalar
func (v Vector2) Mult(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// CosineSimilarity returns cos of the angle between a and b, or 0 when either is zero length.
func CosineSimilarity(a, b Vector2) float64 {
	dot := a.X*b.X + a.Y*b.Y
	magA := a.Length()
	magB := b.Length()

	if magA == 0 || magB == 0 {
		return 0
	}

	cosTheta := dot / (magA * magB)
	// Clamp cosTheta to [-1, 1] to avoid drift past the valid range
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return cosTheta
}
