// Package config handles simulation configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-physics/internal/physics"
	"github.com/Faultbox/midgard-physics/pkg/math"
)

// Config holds all settings for a physics run.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// PhysicsConfig holds world and solver settings.
type PhysicsConfig struct {
	Gravity            [2]float32    `yaml:"gravity"`
	TimeStep           time.Duration `yaml:"time_step"`
	VelocityIterations int           `yaml:"velocity_iterations"`
	PositionIterations int           `yaml:"position_iterations"`
	AllowSleep         bool          `yaml:"allow_sleep"`
}

// SceneConfig holds which scene to load and how long to run it.
type SceneConfig struct {
	Path  string `yaml:"path"`
	Steps int    `yaml:"steps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:            [2]float32{0, -10},
			TimeStep:           time.Second / 60,
			VelocityIterations: 8,
			PositionIterations: 3,
			AllowSleep:         true,
		},
		Scene: SceneConfig{
			Path:  "",
			Steps: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// World converts the physics section into world settings.
func (p PhysicsConfig) World() physics.WorldConfig {
	return physics.WorldConfig{
		Gravity:            math.V2(p.Gravity[0], p.Gravity[1]),
		TimeStep:           p.TimeStep,
		VelocityIterations: p.VelocityIterations,
		PositionIterations: p.PositionIterations,
		AllowSleep:         p.AllowSleep,
	}
}
