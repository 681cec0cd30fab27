// Package scene loads YAML scene descriptions into entities with physics
// bodies.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	mapset "github.com/deckarep/golang-set"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-physics/internal/game/entity"
	"github.com/Faultbox/midgard-physics/internal/logger"
	"github.com/Faultbox/midgard-physics/internal/physics"
	"github.com/Faultbox/midgard-physics/pkg/math"
)

var (
	ErrEmptyScene      = errors.New("scene has no content")
	ErrMissingName     = errors.New("object has no name")
	ErrDuplicateName   = errors.New("duplicate object name")
	ErrUnknownCollider = errors.New("unknown collider type")
)

// Scene is a set of entities built from one scene file.
type Scene struct {
	Name     string
	Entities []*entity.Entity
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes YAML scene data and builds the entities. Unknown keys are
// rejected so typos in collider settings do not pass silently.
func Parse(data []byte) (*Scene, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScene
		}
		return nil, err
	}
	return Build(f)
}

// Build turns a decoded scene file into entities.
func Build(f File) (*Scene, error) {
	s := &Scene{Name: f.Name}
	names := mapset.NewSet()

	for i, obj := range f.Objects {
		if obj.Name == "" {
			return nil, fmt.Errorf("object #%d: %w", i, ErrMissingName)
		}
		if !names.Add(obj.Name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, obj.Name)
		}

		e, err := buildEntity(obj)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", obj.Name, err)
		}
		s.Entities = append(s.Entities, e)
	}

	logger.Debug("scene built",
		zap.String("scene", s.Name),
		zap.Int("entities", len(s.Entities)))
	return s, nil
}

func buildEntity(obj ObjectSpec) (*entity.Entity, error) {
	var e *entity.Entity
	if obj.ID != "" {
		e = entity.NewWithID(obj.ID, obj.Name)
	} else {
		e = entity.New(obj.Name)
	}
	e.Transform = entity.Transform{
		Position: vec(obj.Position),
		Size:     vec(obj.Size),
		Rotation: obj.Rotation,
	}

	if obj.Body == "" && len(obj.Colliders) == 0 {
		return e, nil
	}

	bodyType, err := physics.ParseBodyType(obj.Body)
	if err != nil {
		return nil, err
	}
	rb := physics.NewRigidBody(bodyType)
	rb.SetFixedRotation(obj.FixedRotation)

	for i, cs := range obj.Colliders {
		c, err := buildCollider(cs)
		if err != nil {
			return nil, fmt.Errorf("collider #%d: %w", i, err)
		}
		rb.AddCollider(c)
	}
	e.Body = rb
	return e, nil
}

func buildCollider(cs ColliderSpec) (physics.Collider, error) {
	var (
		c    physics.Collider
		base *physics.Base
	)

	switch cs.Type {
	case "box", "":
		box := physics.NewBoxCollider(cs.Size[0], cs.Size[1])
		box.SetCenterVec(vec(cs.Center))
		box.SetAngle(cs.Angle)
		c, base = box, &box.Base
	case "circle":
		circle := physics.NewCircleCollider(cs.Radius)
		circle.SetCenter(cs.Center[0], cs.Center[1])
		c, base = circle, &circle.Base
	case "polygon":
		verts := make([]math.Vec2, len(cs.Vertices))
		for i, v := range cs.Vertices {
			verts[i] = vec(v)
		}
		poly, err := physics.NewPolygonCollider(verts...)
		if err != nil {
			return nil, err
		}
		c, base = poly, &poly.Base
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollider, cs.Type)
	}

	base.SetMaterial(cs.Material.apply(physics.DefaultMaterial()))
	base.SetFilter(cs.Filter.apply(physics.DefaultFilter()))
	base.SetSensor(cs.Sensor)
	return c, nil
}

// Attach adds the body of every entity that has one to w.
func (s *Scene) Attach(w *physics.World) error {
	for _, e := range s.Entities {
		if e.Body == nil {
			continue
		}
		if err := e.AttachBody(w, e.Body); err != nil {
			return err
		}
	}
	return nil
}

// Sync copies simulated poses back into entity transforms.
func (s *Scene) Sync() {
	for _, e := range s.Entities {
		e.SyncFromBody()
	}
}

// Find returns the entity with the given name, or nil.
func (s *Scene) Find(name string) *entity.Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func vec(v [2]float32) math.Vec2 {
	return math.V2(v[0], v[1])
}
