package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/Tarliton/collision2d"
)

// Outline is the world-space geometry of a fixture.
type Outline struct {
	Fixture *box2d.B2Fixture
	// Points holds the polygon corners in counter-clockwise order. Empty for
	// circles.
	Points []box2d.B2Vec2
	Center box2d.B2Vec2
	Radius float64
}

// IsCircle reports whether the outline is a circle.
func (o Outline) IsCircle() bool { return len(o.Points) == 0 }

// FixtureOutline places a fixture's shape at its body's current transform.
// ok is false for shapes other than polygons and circles.
func FixtureOutline(f *box2d.B2Fixture) (o Outline, ok bool) {
	xf := f.GetBody().GetTransform()
	o.Fixture = f

	switch s := f.GetShape().(type) {
	case *box2d.B2PolygonShape:
		o.Points = make([]box2d.B2Vec2, s.M_count)
		for i := 0; i < s.M_count; i++ {
			o.Points[i] = box2d.B2TransformVec2Mul(xf, s.M_vertices[i])
		}
		o.Center = box2d.B2TransformVec2Mul(xf, s.M_centroid)
		return o, true
	case *box2d.B2CircleShape:
		o.Center = box2d.B2TransformVec2Mul(xf, s.M_p)
		o.Radius = s.M_radius
		return o, true
	}
	return o, false
}

func (o Outline) polygon() collision2d.Polygon {
	flat := make([]float64, 0, 2*len(o.Points))
	for _, p := range o.Points {
		flat = append(flat, p.X, p.Y)
	}
	origin := collision2d.NewVector(0, 0)
	return collision2d.NewPolygon(origin, origin, 0, flat)
}

func (o Outline) circle() collision2d.Circle {
	return collision2d.Circle{Pos: collision2d.NewVector(o.Center.X, o.Center.Y), R: o.Radius}
}

// Overlaps reports whether two outlines intersect. Touching counts.
func Overlaps(a, b Outline) bool {
	var hit bool
	switch {
	case a.IsCircle() && b.IsCircle():
		hit, _ = collision2d.TestCircleCircle(a.circle(), b.circle())
	case a.IsCircle():
		hit, _ = collision2d.TestPolygonCircle(b.polygon(), a.circle())
	case b.IsCircle():
		hit, _ = collision2d.TestPolygonCircle(a.polygon(), b.circle())
	default:
		hit, _ = collision2d.TestPolygonPolygon(a.polygon(), b.polygon())
	}
	return hit
}

// OverlapPair names two fixtures of different bodies that intersect.
type OverlapPair struct {
	A, B *box2d.B2Fixture
}

// OverlappingPairs lists intersecting fixtures of different bodies whose
// filters allow them to collide. Sensors are included. The check is a brute
// force pass over the current body poses, meant for validating spawn
// layouts rather than per-frame use.
func OverlappingPairs(w *World) []OverlapPair {
	var outlines []Outline
	for _, body := range w.Bodies() {
		for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
			if o, ok := FixtureOutline(f); ok {
				outlines = append(outlines, o)
			}
		}
	}

	var pairs []OverlapPair
	for i := 0; i < len(outlines); i++ {
		for j := i + 1; j < len(outlines); j++ {
			a, b := outlines[i], outlines[j]
			if a.Fixture.GetBody() == b.Fixture.GetBody() {
				continue
			}
			if !shouldCollide(a.Fixture.GetFilterData(), b.Fixture.GetFilterData()) {
				continue
			}
			if Overlaps(a, b) {
				pairs = append(pairs, OverlapPair{A: a.Fixture, B: b.Fixture})
			}
		}
	}
	return pairs
}

// shouldCollide applies the Box2D group, category and mask rules.
func shouldCollide(a, b box2d.B2Filter) bool {
	if a.GroupIndex == b.GroupIndex && a.GroupIndex != 0 {
		return a.GroupIndex > 0
	}
	return a.MaskBits&b.CategoryBits != 0 && a.CategoryBits&b.MaskBits != 0
}
