// Package core provides the math, geometry, input and collaborator contracts
// shared by the sector simulation and the platform layer. It has no external
// dependencies so game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D world-space vector. The world is y-up.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged instead of producing NaNs.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Heading returns the angle of dir relative to +X in [0, 2π).
// acos only covers [0, π], so headings with a negative Y component are
// reflected across 2π.
func Heading(dir Vec2) float64 {
	a := math.Acos(ClampF(V2(1, 0).Dot(dir), -1, 1))
	if dir.Y < 0 {
		a = 2*math.Pi - a
	}
	return a
}

// FromHeading returns the unit vector pointing along angle.
func FromHeading(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Vec3 is a 3D position used for camera-aligned planet layout.
type Vec3 struct {
	X, Y, Z float64
}
