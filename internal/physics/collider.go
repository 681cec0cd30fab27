// Package physics turns collider descriptors attached to game objects into
// Box2D fixtures and manages the bodies that own them.
//
// A collider never talks to the world directly. It is resolved against the
// size of its host and yields a fixture definition, or nothing when no usable
// shape can be derived. A RigidBody feeds those definitions to the engine.
package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

// Collider is implemented by every shape descriptor.
type Collider interface {
	// ResolveFixture builds a fixture definition for the collider. fallback is
	// the host size, used only when the collider has no size of its own. The
	// second result is false when no shape can be produced; callers skip the
	// fixture in that case.
	ResolveFixture(fallback math.Vec2) (*box2d.B2FixtureDef, bool)
}

// Material holds the surface properties copied into each fixture.
type Material struct {
	Friction    float64
	Restitution float64
	Density     float64
}

// DefaultMaterial matches the Box2D fixture defaults.
func DefaultMaterial() Material {
	def := box2d.MakeB2FixtureDef()
	return Material{
		Friction:    def.Friction,
		Restitution: def.Restitution,
		Density:     def.Density,
	}
}

// Filter controls which fixtures collide with each other.
type Filter struct {
	Category uint16
	Mask     uint16
	Group    int16
}

// DefaultFilter collides with everything.
func DefaultFilter() Filter {
	f := box2d.MakeB2Filter()
	return Filter{Category: f.CategoryBits, Mask: f.MaskBits, Group: f.GroupIndex}
}

func (f Filter) b2() box2d.B2Filter {
	return box2d.B2Filter{CategoryBits: f.Category, MaskBits: f.Mask, GroupIndex: f.Group}
}

// Base carries the fixture properties shared by all collider kinds.
type Base struct {
	material Material
	sensor   bool
	filter   Filter
	userData interface{}
}

func newBase() Base {
	return Base{material: DefaultMaterial(), filter: DefaultFilter()}
}

// Material returns the surface material.
func (b *Base) Material() Material { return b.material }

// SetMaterial replaces the surface material.
func (b *Base) SetMaterial(m Material) { b.material = m }

// IsSensor reports whether fixtures built from this collider are sensors.
func (b *Base) IsSensor() bool { return b.sensor }

// SetSensor marks fixtures as sensors that report contacts without response.
func (b *Base) SetSensor(sensor bool) { b.sensor = sensor }

// Filter returns the contact filter.
func (b *Base) Filter() Filter { return b.filter }

// SetFilter replaces the contact filter.
func (b *Base) SetFilter(f Filter) { b.filter = f }

// UserData returns the value attached to created fixtures.
func (b *Base) UserData() interface{} { return b.userData }

// SetUserData sets the value attached to created fixtures.
func (b *Base) SetUserData(v interface{}) { b.userData = v }

// fixtureDef wraps shape in a definition carrying the shared properties.
func (b *Base) fixtureDef(shape box2d.B2ShapeInterface) *box2d.B2FixtureDef {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Friction = b.material.Friction
	fd.Restitution = b.material.Restitution
	fd.Density = b.material.Density
	fd.IsSensor = b.sensor
	fd.Filter = b.filter.b2()
	fd.UserData = b.userData
	return &fd
}

func b2Vec(v math.Vec2) box2d.B2Vec2 {
	x, y := v.Float64()
	return box2d.MakeB2Vec2(x, y)
}
