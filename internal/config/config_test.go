package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }, false},
		{"negative time scale", func(c *Config) { c.TimeScale = -1 }, false},
		{"negative stiffness", func(c *Config) { c.Stiffness = -5 }, false},
		{"negative friction", func(c *Config) { c.Friction = -1 }, false},
		{"zero duration", func(c *Config) { c.MaxDuration = 0 }, false},
		{"dimension mismatch", func(c *Config) { c.Velocity = []float64{1} }, false},
		{"no spring", func(c *Config) { c.Stiffness = 0; c.Friction = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Stiffness = 120
	cfg.CriticallyDamped = false
	cfg.Damping = 14
	cfg.Friction = 2
	cfg.Position = []float64{50, -50}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Stiffness != 120 || loaded.Damping != 14 || loaded.Friction != 2 {
		t.Errorf("round trip changed force parameters: %+v", loaded)
	}
	if loaded.Position[0] != 50 || loaded.Position[1] != -50 {
		t.Errorf("round trip changed position: %v", loaded.Position)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected IsNotExist, got %v", err)
	}
}

func TestPresets_AllValid(t *testing.T) {
	for name, cfg := range Presets {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q invalid: %v", name, err)
			}
			if len(cfg.BuildForces()) == 0 {
				t.Errorf("preset %q builds no forces", name)
			}
		})
	}
}

func TestBuildForces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Friction = 3
	cfg.Gravity = []float64{0, -9.81}

	forces := cfg.BuildForces()
	if len(forces) != 3 {
		t.Fatalf("expected spring+friction+gravity, got %d forces", len(forces))
	}
}
