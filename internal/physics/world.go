package physics

import (
	"time"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-physics/internal/logger"
	"github.com/Faultbox/midgard-physics/pkg/math"
)

// WorldConfig holds solver settings for a World.
type WorldConfig struct {
	Gravity            math.Vec2
	TimeStep           time.Duration
	VelocityIterations int
	PositionIterations int
	AllowSleep         bool
}

// DefaultWorldConfig returns earth-like gravity stepped at 60 Hz.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:            math.V2(0, -10),
		TimeStep:           time.Second / 60,
		VelocityIterations: 8,
		PositionIterations: 3,
		AllowSleep:         true,
	}
}

// World owns a Box2D world and steps it at a fixed rate.
type World struct {
	b2    box2d.B2World
	cfg   WorldConfig
	steps int
	log   *zap.Logger
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		b2:  box2d.MakeB2World(b2Vec(cfg.Gravity)),
		cfg: cfg,
		log: logger.Named("physics"),
	}
	w.b2.SetAllowSleeping(cfg.AllowSleep)
	return w
}

// Config returns the settings the world was created with.
func (w *World) Config() WorldConfig { return w.cfg }

// Step advances the simulation by one time step.
func (w *World) Step() {
	w.b2.Step(w.cfg.TimeStep.Seconds(), w.cfg.VelocityIterations, w.cfg.PositionIterations)
	w.steps++
}

// StepN advances the simulation n times.
func (w *World) StepN(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
	w.log.Debug("world stepped",
		zap.Int("steps", n),
		zap.Int("total", w.steps),
		zap.Int("bodies", w.BodyCount()))
}

// Steps returns how many steps have run.
func (w *World) Steps() int { return w.steps }

// Elapsed returns the simulated time.
func (w *World) Elapsed() time.Duration {
	return time.Duration(w.steps) * w.cfg.TimeStep
}

// BodyCount returns the number of bodies in the world.
func (w *World) BodyCount() int { return w.b2.GetBodyCount() }

// Bodies returns the Box2D bodies, most recently created first.
func (w *World) Bodies() []*box2d.B2Body {
	var out []*box2d.B2Body
	for b := w.b2.GetBodyList(); b != nil; b = b.GetNext() {
		out = append(out, b)
	}
	return out
}

// B2 exposes the underlying Box2D world for callers that need engine features
// not wrapped here, such as joints or contact listeners.
func (w *World) B2() *box2d.B2World { return &w.b2 }
