package main

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Triangle is an isosceles triangle spinning about its axis of symmetry in
// 3-space, with a distinguished front face.
//
// BaseUnitI and BaseUnitJ must be unit length and mutually orthogonal. The
// methods do not check this; a skewed basis yields a non-isosceles triangle.
type Triangle struct {
	// Tip is the corner that lies on the axis of rotation.
	Tip mgl32.Vec3
	// BaseMidpt is the midpoint of the side opposite the tip.
	BaseMidpt mgl32.Vec3
	// BaseRadius is half the length of the base.
	BaseRadius float32
	// BaseUnitI points from BaseMidpt to the corner clockwise from the tip,
	// in the unrotated state.
	BaseUnitI mgl32.Vec3
	// BaseUnitJ is the front face normal in the unrotated state.
	BaseUnitJ mgl32.Vec3
	// Spin is the rotation about the tip-to-BaseMidpt axis, in radians.
	Spin float32
}

// perpendicularTolerance bounds the cosine between a base offset and the
// tip-to-base axis.
const perpendicularTolerance = 1e-3

// TriangleFromOffset builds a Triangle from a raw offset vector pointing from
// baseMidpt to the clockwise base corner. The radius is the offset's length
// and the front normal is derived so that Corners stays clockwise. The offset
// must be perpendicular to the axis from baseMidpt to tip.
func TriangleFromOffset(tip, baseMidpt, offset mgl32.Vec3) (Triangle, error) {
	axis, err := Normalize(Subtract(tip, baseMidpt))
	if err != nil {
		return Triangle{}, fmt.Errorf("tip %v at base midpoint: %w", tip, err)
	}
	i, err := Normalize(offset)
	if err != nil {
		return Triangle{}, fmt.Errorf("base offset %v: %w", offset, err)
	}
	if cos := i.Dot(axis); !(math32.Abs(cos) <= perpendicularTolerance) {
		return Triangle{}, fmt.Errorf("base offset %v not perpendicular to axis %v: %w", offset, axis, ErrDegenerate)
	}
	j, err := Normalize(i.Cross(axis))
	if err != nil {
		return Triangle{}, fmt.Errorf("base offset %v parallel to axis: %w", offset, err)
	}
	return Triangle{
		Tip:        tip,
		BaseMidpt:  baseMidpt,
		BaseRadius: Length(offset),
		BaseUnitI:  i,
		BaseUnitJ:  j,
	}, nil
}

// Corners returns the positions of the three corners, rotated by Spin.
// Viewed from the front, they are in clockwise order.
func (t Triangle) Corners() [3]mgl32.Vec3 {
	toCorner := Scale(MixByAngle(t.BaseUnitI, t.BaseUnitJ, t.Spin), t.BaseRadius)
	c1 := Add(t.BaseMidpt, toCorner)
	c2 := Subtract(t.BaseMidpt, toCorner)
	return [3]mgl32.Vec3{t.Tip, c1, c2}
}

// BackfaceCorners returns Corners with the base corners swapped, which is
// clockwise when viewed from behind.
func (t Triangle) BackfaceCorners() [3]mgl32.Vec3 {
	c := t.Corners()
	return [3]mgl32.Vec3{c[0], c[2], c[1]}
}

// Normal returns the unit normal of the front face. It runs a quarter turn
// ahead of the corner direction in the same rotating basis.
func (t Triangle) Normal() mgl32.Vec3 {
	return MixByAngle(t.BaseUnitI, t.BaseUnitJ, t.Spin+math32.Pi/2)
}
