package main

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerate reports geometry that cannot be normalized, which means the
// triangle's shape parameters were misconfigured.
var ErrDegenerate = errors.New("degenerate geometry")

// Scale multiplies every component of v by s.
func Scale(v mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Negate flips the direction of v.
func Negate(v mgl32.Vec3) mgl32.Vec3 {
	return Scale(v, -1)
}

// Add returns the component-wise sum of a and b.
func Add(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Subtract returns a minus b, component-wise.
func Subtract(a, b mgl32.Vec3) mgl32.Vec3 {
	return Add(a, Negate(b))
}

// Length returns the euclidean length of v.
func Length(v mgl32.Vec3) float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. It fails with ErrDegenerate
// instead of returning NaN, Inf or zero components when the length of v is
// zero, non-finite or too large to invert.
func Normalize(v mgl32.Vec3) (mgl32.Vec3, error) {
	inv := 1 / Length(v)
	if inv == 0 || math32.IsInf(inv, 0) || math32.IsNaN(inv) {
		return mgl32.Vec3{}, ErrDegenerate
	}
	return Scale(v, inv), nil
}

// MixByAngle returns the point angle radians around the origin-centered
// ellipse whose axis at zero radians is i and whose axis at π/2 is j.
func MixByAngle(i, j mgl32.Vec3, angle float32) mgl32.Vec3 {
	return Add(Scale(i, math32.Cos(angle)), Scale(j, math32.Sin(angle)))
}
