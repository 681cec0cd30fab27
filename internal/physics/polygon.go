package physics

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/ByteArena/box2d"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

var (
	ErrTooFewVertices    = errors.New("polygon needs at least 3 vertices")
	ErrTooManyVertices   = fmt.Errorf("polygon supports at most %d vertices", box2d.B2_maxPolygonVertices)
	ErrDegeneratePolygon = errors.New("polygon has no area")
)

// PolygonCollider is a convex polygon given in local coordinates. Box2D takes
// the convex hull of the vertices. Without vertices the collider covers the
// host rectangle, like an auto-sized box.
type PolygonCollider struct {
	Base
	vertices []math.Vec2
}

// NewPolygonCollider creates a polygon from vertices.
func NewPolygonCollider(vertices ...math.Vec2) (*PolygonCollider, error) {
	c := &PolygonCollider{Base: newBase()}
	if len(vertices) == 0 {
		return c, nil
	}
	if err := c.SetVertices(vertices); err != nil {
		return nil, err
	}
	return c, nil
}

// SetMaterial sets the surface material and returns the collider.
func (c *PolygonCollider) SetMaterial(m Material) *PolygonCollider {
	c.Base.SetMaterial(m)
	return c
}

// SetVertices replaces the outline. The slice is copied. A nil slice clears
// the outline so the host rectangle is used.
func (c *PolygonCollider) SetVertices(vertices []math.Vec2) error {
	if vertices == nil {
		c.vertices = nil
		return nil
	}
	if err := validateOutline(vertices); err != nil {
		return err
	}
	c.vertices = append([]math.Vec2(nil), vertices...)
	return nil
}

// Vertices returns a copy of the outline.
func (c *PolygonCollider) Vertices() []math.Vec2 {
	return append([]math.Vec2(nil), c.vertices...)
}

// ResolveFixture implements Collider.
func (c *PolygonCollider) ResolveFixture(fallback math.Vec2) (*box2d.B2FixtureDef, bool) {
	shape := box2d.NewB2PolygonShape()

	if len(c.vertices) == 0 {
		if fallback.IsZero() {
			return nil, false
		}
		w, h := fallback.Float64()
		shape.SetAsBox(w*0.5, h*0.5)
		return c.fixtureDef(shape), true
	}

	pts := make([]box2d.B2Vec2, len(c.vertices))
	for i, v := range c.vertices {
		pts[i] = b2Vec(v)
	}
	shape.Set(pts, len(pts))
	return c.fixtureDef(shape), true
}

// validateOutline rejects input that makes Box2D's hull builder assert.
func validateOutline(vertices []math.Vec2) error {
	if len(vertices) < 3 {
		return ErrTooFewVertices
	}
	if len(vertices) > box2d.B2_maxPolygonVertices {
		return ErrTooManyVertices
	}

	weld := 0.5 * box2d.B2_linearSlop
	var unique []box2d.B2Vec2
	for _, v := range vertices {
		p := b2Vec(v)
		dup := false
		for _, q := range unique {
			if box2d.B2Vec2DistanceSquared(p, q) < weld*weld {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, p)
		}
	}
	if len(unique) < 3 {
		return ErrDegeneratePolygon
	}

	// Every point collinear with the first edge means the hull has no area.
	edge := box2d.B2Vec2Sub(unique[1], unique[0])
	for _, p := range unique[2:] {
		if stdmath.Abs(box2d.B2Vec2Cross(edge, box2d.B2Vec2Sub(p, unique[0]))) > weld*weld {
			return nil
		}
	}
	return ErrDegeneratePolygon
}
