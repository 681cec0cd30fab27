// Package math provides the small vector toolkit shared by colliders and hosts.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	s, c := math32.Sincos(angle)
	return Vec2{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

// MaxComponent returns the larger of X and Y.
func (v Vec2) MaxComponent() float32 {
	return math32.Max(v.X, v.Y)
}

// Float64 returns the components widened to float64.
func (v Vec2) Float64() (x, y float64) {
	return float64(v.X), float64(v.Y)
}
