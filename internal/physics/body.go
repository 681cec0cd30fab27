package physics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

var (
	ErrAlreadyAttached = errors.New("rigid body is already attached")
	ErrNilWorld        = errors.New("world is nil")
	ErrUnknownBodyType = errors.New("unknown body type")
)

// BodyType selects how the engine moves a body.
type BodyType uint8

const (
	StaticBody BodyType = iota
	KinematicBody
	DynamicBody
)

func (t BodyType) String() string {
	switch t {
	case StaticBody:
		return "static"
	case KinematicBody:
		return "kinematic"
	case DynamicBody:
		return "dynamic"
	}
	return fmt.Sprintf("BodyType(%d)", uint8(t))
}

// ParseBodyType converts a name such as "dynamic" to a BodyType. An empty
// name means static.
func ParseBodyType(s string) (BodyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "static":
		return StaticBody, nil
	case "kinematic":
		return KinematicBody, nil
	case "dynamic":
		return DynamicBody, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBodyType, s)
}

func (t BodyType) b2() uint8 {
	switch t {
	case KinematicBody:
		return box2d.B2BodyType.B2_kinematicBody
	case DynamicBody:
		return box2d.B2BodyType.B2_dynamicBody
	}
	return box2d.B2BodyType.B2_staticBody
}

// Host is the game object a RigidBody belongs to. Its size is the fallback
// for colliders that have none of their own.
type Host interface {
	Position() math.Vec2
	Size() math.Vec2
	Rotation() float32
}

// RigidBody groups colliders into one Box2D body.
type RigidBody struct {
	bodyType      BodyType
	fixedRotation bool
	colliders     []Collider

	world    *World
	body     *box2d.B2Body
	fixtures []*box2d.B2Fixture
}

// NewRigidBody creates a detached body with the given colliders.
func NewRigidBody(t BodyType, colliders ...Collider) *RigidBody {
	return &RigidBody{bodyType: t, colliders: colliders}
}

// Type returns the body type.
func (rb *RigidBody) Type() BodyType { return rb.bodyType }

// SetFixedRotation prevents the body from rotating. Applies on next Attach.
func (rb *RigidBody) SetFixedRotation(fixed bool) { rb.fixedRotation = fixed }

// AddCollider appends a collider. Applies on next Attach.
func (rb *RigidBody) AddCollider(c Collider) {
	rb.colliders = append(rb.colliders, c)
}

// Colliders returns the configured colliders.
func (rb *RigidBody) Colliders() []Collider {
	return append([]Collider(nil), rb.colliders...)
}

// Attach creates the Box2D body at the host's pose and one fixture per
// collider that resolves against the host size. Colliders that resolve to
// nothing are skipped.
func (rb *RigidBody) Attach(w *World, host Host) error {
	if w == nil {
		return ErrNilWorld
	}
	if rb.body != nil {
		return ErrAlreadyAttached
	}

	def := box2d.MakeB2BodyDef()
	def.Type = rb.bodyType.b2()
	def.Position = b2Vec(host.Position())
	def.Angle = float64(host.Rotation())
	def.FixedRotation = rb.fixedRotation
	def.UserData = host

	body := w.b2.CreateBody(&def)
	fallback := host.Size()

	fixtures := make([]*box2d.B2Fixture, 0, len(rb.colliders))
	for i, c := range rb.colliders {
		fd, ok := c.ResolveFixture(fallback)
		if !ok {
			w.log.Debug("collider has no shape, skipping",
				zap.Int("collider", i),
				zap.String("kind", fmt.Sprintf("%T", c)))
			continue
		}
		fixtures = append(fixtures, body.CreateFixtureFromDef(fd))
	}

	rb.world = w
	rb.body = body
	rb.fixtures = fixtures

	w.log.Debug("body attached",
		zap.Stringer("type", rb.bodyType),
		zap.Int("colliders", len(rb.colliders)),
		zap.Int("fixtures", len(fixtures)))
	return nil
}

// Detach removes the body from its world. It is a no-op when not attached.
func (rb *RigidBody) Detach() {
	if rb.body == nil {
		return
	}
	rb.world.b2.DestroyBody(rb.body)
	rb.world = nil
	rb.body = nil
	rb.fixtures = nil
}

// Attached reports whether the body lives in a world.
func (rb *RigidBody) Attached() bool { return rb.body != nil }

// Body returns the Box2D body, or nil when detached.
func (rb *RigidBody) Body() *box2d.B2Body { return rb.body }

// Fixtures returns the fixtures created by the last Attach.
func (rb *RigidBody) Fixtures() []*box2d.B2Fixture {
	return append([]*box2d.B2Fixture(nil), rb.fixtures...)
}

// Position returns the simulated position, or zero when detached.
func (rb *RigidBody) Position() math.Vec2 {
	if rb.body == nil {
		return math.Vec2{}
	}
	p := rb.body.GetPosition()
	return math.V2(float32(p.X), float32(p.Y))
}

// Angle returns the simulated rotation in radians, or zero when detached.
func (rb *RigidBody) Angle() float32 {
	if rb.body == nil {
		return 0
	}
	return float32(rb.body.GetAngle())
}
