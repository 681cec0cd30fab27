package scene

import "github.com/Faultbox/midgard-physics/internal/physics"

// File is the YAML layout of a scene.
type File struct {
	Name    string       `yaml:"name"`
	Objects []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes one game object.
type ObjectSpec struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Position      [2]float32     `yaml:"position"`
	Size          [2]float32     `yaml:"size"`
	Rotation      float32        `yaml:"rotation"`
	Body          string         `yaml:"body"` // static, kinematic or dynamic
	FixedRotation bool           `yaml:"fixed_rotation"`
	Colliders     []ColliderSpec `yaml:"colliders"`
}

// ColliderSpec describes one collider. Which fields apply depends on Type.
type ColliderSpec struct {
	Type     string        `yaml:"type"` // box (default), circle or polygon
	Size     [2]float32    `yaml:"size"`
	Center   [2]float32    `yaml:"center"`
	Angle    float32       `yaml:"angle"`
	Radius   float32       `yaml:"radius"`
	Vertices [][2]float32  `yaml:"vertices"`
	Sensor   bool          `yaml:"sensor"`
	Material *MaterialSpec `yaml:"material"`
	Filter   *FilterSpec   `yaml:"filter"`
}

// MaterialSpec overrides individual material properties.
type MaterialSpec struct {
	Friction    *float64 `yaml:"friction"`
	Restitution *float64 `yaml:"restitution"`
	Density     *float64 `yaml:"density"`
}

func (m *MaterialSpec) apply(base physics.Material) physics.Material {
	if m == nil {
		return base
	}
	if m.Friction != nil {
		base.Friction = *m.Friction
	}
	if m.Restitution != nil {
		base.Restitution = *m.Restitution
	}
	if m.Density != nil {
		base.Density = *m.Density
	}
	return base
}

// FilterSpec overrides individual contact filter fields.
type FilterSpec struct {
	Category *uint16 `yaml:"category"`
	Mask     *uint16 `yaml:"mask"`
	Group    int16   `yaml:"group"`
}

func (f *FilterSpec) apply(base physics.Filter) physics.Filter {
	if f == nil {
		return base
	}
	if f.Category != nil {
		base.Category = *f.Category
	}
	if f.Mask != nil {
		base.Mask = *f.Mask
	}
	base.Group = f.Group
	return base
}
