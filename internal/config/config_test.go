package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity != [2]float32{0, -10} {
		t.Errorf("expected gravity {0,-10}, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.TimeStep != time.Second/60 {
		t.Errorf("expected time step 1/60s, got %v", cfg.Physics.TimeStep)
	}
	if cfg.Physics.VelocityIterations != 8 {
		t.Errorf("expected 8 velocity iterations, got %d", cfg.Physics.VelocityIterations)
	}
	if cfg.Physics.PositionIterations != 3 {
		t.Errorf("expected 3 position iterations, got %d", cfg.Physics.PositionIterations)
	}
	if !cfg.Physics.AllowSleep {
		t.Error("expected allow_sleep to be true by default")
	}

	if cfg.Scene.Steps != 60 {
		t.Errorf("expected 60 steps, got %d", cfg.Scene.Steps)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestPhysicsWorld(t *testing.T) {
	p := Default().Physics
	p.Gravity = [2]float32{1, -4}
	p.AllowSleep = false

	w := p.World()
	if w.Gravity.X != 1 || w.Gravity.Y != -4 {
		t.Errorf("expected gravity (1,-4), got %v", w.Gravity)
	}
	if w.TimeStep != p.TimeStep {
		t.Errorf("expected time step %v, got %v", p.TimeStep, w.TimeStep)
	}
	if w.VelocityIterations != 8 || w.PositionIterations != 3 {
		t.Errorf("unexpected iterations %d/%d", w.VelocityIterations, w.PositionIterations)
	}
	if w.AllowSleep {
		t.Error("expected sleep disabled")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
physics:
  gravity: [0, -9.8]
  time_step: 10ms
  velocity_iterations: 6
  position_iterations: 2
  allow_sleep: false

scene:
  path: "scenes/crates.yaml"
  steps: 240

logging:
  level: "debug"
  log_file: "physics.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Physics.Gravity != [2]float32{0, -9.8} {
		t.Errorf("expected gravity {0,-9.8}, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.TimeStep != 10*time.Millisecond {
		t.Errorf("expected time step 10ms, got %v", cfg.Physics.TimeStep)
	}
	if cfg.Physics.VelocityIterations != 6 {
		t.Errorf("expected 6 velocity iterations, got %d", cfg.Physics.VelocityIterations)
	}
	if cfg.Physics.AllowSleep {
		t.Error("expected allow_sleep to be false")
	}
	if cfg.Scene.Path != "scenes/crates.yaml" {
		t.Errorf("expected scene path scenes/crates.yaml, got %s", cfg.Scene.Path)
	}
	if cfg.Scene.Steps != 240 {
		t.Errorf("expected 240 steps, got %d", cfg.Scene.Steps)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "physics.log" {
		t.Errorf("expected log file 'physics.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
physics:
  velocity_iterations: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Physics.TimeStep = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeStep) {
		t.Errorf("expected ErrInvalidTimeStep, got %v", err)
	}

	cfg = Default()
	cfg.Physics.PositionIterations = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidIterations) {
		t.Errorf("expected ErrInvalidIterations, got %v", err)
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, []byte("physics:\n  gravty: [0, -1]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file should load, got %v", err)
	}
	if cfg.Scene.Steps != 60 {
		t.Errorf("expected defaults to survive, got %d steps", cfg.Scene.Steps)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A directory with the right name is not a config file.
	if err := os.Mkdir(filepath.Join(tmpDir, fileName), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if path := findConfigFile(); path != "" {
		t.Errorf("expected directory to be ignored, got %s", path)
	}

	xdgDir := filepath.Join(tmpDir, "xdg", "midgard-physics")
	if err := os.MkdirAll(xdgDir, 0755); err != nil {
		t.Fatalf("failed to create xdg dir: %v", err)
	}
	configPath := filepath.Join(xdgDir, fileName)
	if err := os.WriteFile(configPath, []byte("scene:\n  steps: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if runtime.GOOS != "linux" {
		return
	}
	if path := findConfigFile(); path != configPath {
		t.Errorf("expected %s, got %q", configPath, path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "level1.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "level1.yaml" {
					t.Errorf("expected scene level1.yaml, got %s", cfg.Scene.Path)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "steps flag",
			setup: func() { *flagSteps = 500 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Steps != 500 {
					t.Errorf("expected 500 steps, got %d", cfg.Scene.Steps)
				}
			},
			teardown: func() { *flagSteps = 0 },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "run.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file run.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  path: from-file.yaml
  steps: 90
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagSteps = 30
	defer func() {
		*flagConfig = ""
		*flagSteps = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Steps come from the flag, path from the file.
	if cfg.Scene.Steps != 30 {
		t.Errorf("expected 30 steps from flag, got %d", cfg.Scene.Steps)
	}
	if cfg.Scene.Path != "from-file.yaml" {
		t.Errorf("expected scene path from file, got %s", cfg.Scene.Path)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Physics.TimeStep = 20 * time.Millisecond
	cfg.Scene.Path = "arena.yaml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Physics.TimeStep != 20*time.Millisecond {
		t.Errorf("expected time step 20ms, got %v", loaded.Physics.TimeStep)
	}
	if loaded.Scene.Path != "arena.yaml" {
		t.Errorf("expected scene path arena.yaml, got %s", loaded.Scene.Path)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}
