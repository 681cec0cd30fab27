package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

// BoxCollider is an oriented rectangle. A zero size means the box takes the
// size of its host when resolved; it does not work if that is zero as well.
//
// Changes made after a RigidBody attached the collider only apply the next
// time it is attached.
type BoxCollider struct {
	Base
	size   math.Vec2
	center math.Vec2
	angle  float32
}

// NewBoxCollider creates a box with the given width and height.
func NewBoxCollider(width, height float32) *BoxCollider {
	return &BoxCollider{Base: newBase(), size: math.V2(width, height)}
}

// NewAutoBoxCollider creates a box with no size of its own.
func NewAutoBoxCollider() *BoxCollider {
	return NewBoxCollider(0, 0)
}

// SetMaterial sets the surface material and returns the collider.
func (c *BoxCollider) SetMaterial(m Material) *BoxCollider {
	c.Base.SetMaterial(m)
	return c
}

// SetSize sets the width and height of the box. Values are not validated.
func (c *BoxCollider) SetSize(width, height float32) {
	c.size = math.V2(width, height)
}

// SetSizeVec sets the size of the box.
func (c *BoxCollider) SetSizeVec(size math.Vec2) {
	c.size = size
}

// Size returns the configured size, which may be zero.
func (c *BoxCollider) Size() math.Vec2 { return c.size }

// SetCenter sets the center of the box in local coordinates.
func (c *BoxCollider) SetCenter(cx, cy float32) {
	c.center = math.V2(cx, cy)
}

// SetCenterVec sets the center of the box in local coordinates.
func (c *BoxCollider) SetCenterVec(center math.Vec2) {
	c.center = center
}

// Center returns the center of the box in local coordinates.
func (c *BoxCollider) Center() math.Vec2 { return c.center }

// SetAngle sets the local rotation of the box in radians.
func (c *BoxCollider) SetAngle(angle float32) {
	c.angle = angle
}

// Angle returns the local rotation of the box in radians.
func (c *BoxCollider) Angle() float32 { return c.angle }

// Resolved returns a copy of the collider with the fallback size applied when
// its own size is zero. The receiver is left untouched. ok is false when the
// copy still has no size.
func (c *BoxCollider) Resolved(fallback math.Vec2) (resolved BoxCollider, ok bool) {
	resolved = *c
	if resolved.size.IsZero() {
		resolved.size = fallback
	}
	return resolved, !resolved.size.IsZero()
}

// HalfExtents returns half the width and height.
func (c *BoxCollider) HalfExtents() (hx, hy float64) {
	w, h := c.size.Float64()
	return w * 0.5, h * 0.5
}

// ResolveFixture implements Collider.
func (c *BoxCollider) ResolveFixture(fallback math.Vec2) (*box2d.B2FixtureDef, bool) {
	r, ok := c.Resolved(fallback)
	if !ok {
		return nil, false
	}

	hx, hy := r.HalfExtents()
	shape := box2d.NewB2PolygonShape()
	shape.SetAsBoxFromCenterAndAngle(hx, hy, b2Vec(r.center), float64(r.angle))

	return r.fixtureDef(shape), true
}
