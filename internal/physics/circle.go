package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

// CircleCollider is a disc. A zero radius takes half of the larger host
// dimension, so the circle encloses the host's narrow side.
type CircleCollider struct {
	Base
	radius float32
	center math.Vec2
}

// NewCircleCollider creates a circle with the given radius.
func NewCircleCollider(radius float32) *CircleCollider {
	return &CircleCollider{Base: newBase(), radius: radius}
}

// SetMaterial sets the surface material and returns the collider.
func (c *CircleCollider) SetMaterial(m Material) *CircleCollider {
	c.Base.SetMaterial(m)
	return c
}

// SetRadius sets the radius. Values are not validated.
func (c *CircleCollider) SetRadius(r float32) { c.radius = r }

// Radius returns the configured radius, which may be zero.
func (c *CircleCollider) Radius() float32 { return c.radius }

// SetCenter sets the center of the circle in local coordinates.
func (c *CircleCollider) SetCenter(cx, cy float32) { c.center = math.V2(cx, cy) }

// Center returns the center of the circle in local coordinates.
func (c *CircleCollider) Center() math.Vec2 { return c.center }

// ResolveFixture implements Collider.
func (c *CircleCollider) ResolveFixture(fallback math.Vec2) (*box2d.B2FixtureDef, bool) {
	r := c.radius
	if r == 0 {
		r = fallback.MaxComponent() * 0.5
	}
	if r == 0 {
		return nil, false
	}

	shape := box2d.NewB2CircleShape()
	shape.M_radius = float64(r)
	shape.M_p = b2Vec(c.center)

	return c.fixtureDef(shape), true
}
