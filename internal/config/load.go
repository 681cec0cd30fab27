package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidTimeStep is returned when the configured step is not positive.
	ErrInvalidTimeStep = errors.New("physics time step must be positive")
	// ErrInvalidIterations is returned when a solver iteration count is below one.
	ErrInvalidIterations = errors.New("solver iterations must be at least 1")
)

// fileName is the config file looked up in the working and config directories.
const fileName = "physics.yaml"

// Load builds the config from defaults, then the config file, then flags.
// The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings the solver cannot run without.
func (c *Config) Validate() error {
	p := c.Physics
	if p.TimeStep <= 0 {
		return ErrInvalidTimeStep
	}
	if p.VelocityIterations < 1 || p.PositionIterations < 1 {
		return fmt.Errorf("%w: velocity=%d position=%d",
			ErrInvalidIterations, p.VelocityIterations, p.PositionIterations)
	}
	return nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	for _, dir := range []string{".", ConfigDir()} {
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardPhysics")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardPhysics")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-physics")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-physics")
	}
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so
// typos in solver settings do not pass silently. An empty file is a no-op.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
