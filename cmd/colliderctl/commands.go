package main

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/midgard-physics/internal/game/entity"
	"github.com/Faultbox/midgard-physics/internal/logger"
	"github.com/Faultbox/midgard-physics/internal/physics"
	"github.com/Faultbox/midgard-physics/internal/scene"
)

// loadScenes loads every path concurrently. Results keep argument order.
func loadScenes(paths []string) ([]*scene.Scene, error) {
	scenes := make([]*scene.Scene, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			s, err := scene.Load(path)
			if err != nil {
				return err
			}
			scenes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenes, nil
}

func (a *app) cmdResolve(args []string) error {
	paths, err := a.scenePaths(args)
	if err != nil {
		return err
	}
	scenes, err := loadScenes(paths)
	if err != nil {
		return err
	}

	for _, s := range scenes {
		fmt.Println(a.au.Bold(fmt.Sprintf("Scene: %s", s.Name)))
		for _, e := range s.Entities {
			if e.Body == nil {
				continue
			}
			fmt.Printf("  %s %s size=%v\n", a.au.Cyan(e.Name), e.Body.Type(), e.Size())
			for i, c := range e.Body.Colliders() {
				def, ok := c.ResolveFixture(e.Size())
				if !ok {
					fmt.Printf("    #%d %-8s %s\n", i, colliderKind(c), a.au.Red("no shape"))
					continue
				}
				fmt.Printf("    #%d %-8s %s fp=%016x\n", i, colliderKind(c), describeShape(def.Shape), physics.Fingerprint(def))
			}
		}
	}
	return nil
}

func (a *app) cmdSimulate(args []string) error {
	paths, err := a.scenePaths(args)
	if err != nil {
		return err
	}
	if len(paths) != 1 {
		return fmt.Errorf("simulate takes exactly one scene, got %d", len(paths))
	}

	scenes, err := loadScenes(paths)
	if err != nil {
		return err
	}
	s := scenes[0]

	w := physics.NewWorld(a.cfg.Physics.World())
	if err := s.Attach(w); err != nil {
		return err
	}

	steps := a.cfg.Scene.Steps
	logger.Info("simulating",
		zap.String("scene", s.Name),
		zap.Int("bodies", w.BodyCount()),
		zap.Int("steps", steps))

	w.StepN(steps)
	s.Sync()

	fmt.Println(a.au.Bold(fmt.Sprintf("Scene: %s after %v (%d steps)", s.Name, w.Elapsed(), w.Steps())))
	for _, e := range s.Entities {
		if e.Body == nil {
			continue
		}
		p := e.Position()
		fmt.Printf("  %-16s %-9s pos=(%8.3f, %8.3f) rot=%6.3f\n",
			e.Name, e.Body.Type(), p.X, p.Y, e.Rotation())
	}
	return nil
}

func (a *app) cmdOverlaps(args []string) error {
	paths, err := a.scenePaths(args)
	if err != nil {
		return err
	}
	scenes, err := loadScenes(paths)
	if err != nil {
		return err
	}

	for _, s := range scenes {
		w := physics.NewWorld(a.cfg.Physics.World())
		if err := s.Attach(w); err != nil {
			return err
		}

		pairs := physics.OverlappingPairs(w)
		if len(pairs) == 0 {
			fmt.Printf("%s: %s\n", s.Name, a.au.Green("no overlaps"))
			continue
		}
		fmt.Printf("%s: %s\n", s.Name, a.au.Red(fmt.Sprintf("%d overlapping pair(s)", len(pairs))))
		for _, p := range pairs {
			fmt.Printf("  %s <-> %s\n", fixtureOwner(p.A), fixtureOwner(p.B))
		}
	}
	return nil
}

func colliderKind(c physics.Collider) string {
	switch c.(type) {
	case *physics.BoxCollider:
		return "box"
	case *physics.CircleCollider:
		return "circle"
	case *physics.PolygonCollider:
		return "polygon"
	}
	return fmt.Sprintf("%T", c)
}

func describeShape(shape box2d.B2ShapeInterface) string {
	switch s := shape.(type) {
	case *box2d.B2PolygonShape:
		out := fmt.Sprintf("polygon[%d]", s.M_count)
		for i := 0; i < s.M_count; i++ {
			out += fmt.Sprintf(" (%.3f, %.3f)", s.M_vertices[i].X, s.M_vertices[i].Y)
		}
		return out
	case *box2d.B2CircleShape:
		return fmt.Sprintf("circle r=%.3f at (%.3f, %.3f)", s.M_radius, s.M_p.X, s.M_p.Y)
	}
	return fmt.Sprintf("%T", shape)
}

func fixtureOwner(f *box2d.B2Fixture) string {
	if e, ok := f.GetBody().GetUserData().(*entity.Entity); ok {
		return e.Name
	}
	return "?"
}
