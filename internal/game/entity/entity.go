// Package entity implements game objects that own physics bodies.
package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/midgard-physics/internal/physics"
	"github.com/Faultbox/midgard-physics/pkg/math"
)

// Transform is the pose and extent of an entity in world units.
type Transform struct {
	Position math.Vec2
	Size     math.Vec2
	Rotation float32 // radians
}

// Entity represents a game object.
type Entity struct {
	ID        string
	Name      string
	Transform Transform

	// Body is nil for entities without physics.
	Body *physics.RigidBody
}

var _ physics.Host = (*Entity)(nil)

// New creates an entity with a random ID.
func New(name string) *Entity {
	return NewWithID(uuid.NewString(), name)
}

// NewWithID creates an entity with a caller-chosen ID.
func NewWithID(id, name string) *Entity {
	return &Entity{ID: id, Name: name}
}

// Position returns the entity position.
func (e *Entity) Position() math.Vec2 { return e.Transform.Position }

// Size returns the entity size. Colliders without a size of their own use it.
func (e *Entity) Size() math.Vec2 { return e.Transform.Size }

// Rotation returns the entity rotation in radians.
func (e *Entity) Rotation() float32 { return e.Transform.Rotation }

// SetPosition sets the entity position.
func (e *Entity) SetPosition(x, y float32) {
	e.Transform.Position = math.V2(x, y)
}

// SetSize sets the entity size.
func (e *Entity) SetSize(w, h float32) {
	e.Transform.Size = math.V2(w, h)
}

// SetRotation sets the entity rotation in radians.
func (e *Entity) SetRotation(r float32) {
	e.Transform.Rotation = r
}

// AttachBody sets rb as the entity's body and adds it to w at the entity's
// current pose.
func (e *Entity) AttachBody(w *physics.World, rb *physics.RigidBody) error {
	if err := rb.Attach(w, e); err != nil {
		return fmt.Errorf("entity %s: %w", e.Name, err)
	}
	e.Body = rb
	return nil
}

// SyncFromBody copies the simulated pose into the transform.
func (e *Entity) SyncFromBody() {
	if e.Body == nil || !e.Body.Attached() {
		return
	}
	e.Transform.Position = e.Body.Position()
	e.Transform.Rotation = e.Body.Angle()
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s(%s) at %v", e.Name, e.ID, e.Transform.Position)
}
