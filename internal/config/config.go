// Package config describes runnable simulation scenarios for the kinetic
// CLI: which forces act on the object, where it starts, and how the frame
// loop is driven.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinetic/internal/force"
	"github.com/san-kum/kinetic/internal/vector"
)

const (
	DefaultFrameRate   = 60
	DefaultTimeScale   = 1.0
	DefaultMaxDuration = 10.0
)

// Config is a YAML-encodable scenario description.
type Config struct {
	// Spring parameters. Stiffness 0 disables the spring entirely;
	// CriticallyDamped overrides Damping.
	Stiffness        float64 `yaml:"stiffness"`
	Damping          float64 `yaml:"damping"`
	CriticallyDamped bool    `yaml:"critically_damped"`

	// Friction adds a velocity-opposing drag force when positive.
	Friction float64 `yaml:"friction"`

	// Gravity adds a constant acceleration field when non-empty.
	Gravity []float64 `yaml:"gravity,omitempty"`

	Anchor   []float64 `yaml:"anchor,flow"`
	Position []float64 `yaml:"position,flow"`
	Velocity []float64 `yaml:"velocity,flow"`

	FrameRate   int     `yaml:"frame_rate"`
	TimeScale   float64 `yaml:"time_scale"`
	MaxDuration float64 `yaml:"max_duration"`
}

// DefaultConfig is a critically damped spring snapping a 2D point home from
// (100, 0).
func DefaultConfig() *Config {
	return &Config{
		Stiffness:        force.DefaultStiffness,
		CriticallyDamped: true,
		Anchor:           []float64{0, 0},
		Position:         []float64{100, 0},
		Velocity:         []float64{0, 0},
		FrameRate:        DefaultFrameRate,
		TimeScale:        DefaultTimeScale,
		MaxDuration:      DefaultMaxDuration,
	}
}

// Load reads a scenario from a YAML file, applied on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the scenario to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scenario for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("config: time_scale must be positive, got %f", c.TimeScale)
	}
	if c.Stiffness < 0 {
		return fmt.Errorf("config: stiffness must be non-negative, got %f", c.Stiffness)
	}
	if c.Friction < 0 {
		return fmt.Errorf("config: friction must be non-negative, got %f", c.Friction)
	}
	if c.MaxDuration <= 0 {
		return fmt.Errorf("config: max_duration must be positive, got %f", c.MaxDuration)
	}
	if len(c.Velocity) > 0 && len(c.Position) != len(c.Velocity) {
		return fmt.Errorf("config: position and velocity dimensions differ (%d vs %d)",
			len(c.Position), len(c.Velocity))
	}
	return nil
}

// BuildForces constructs the scenario's forces.
func (c *Config) BuildForces() []force.Force {
	var forces []force.Force

	if c.Stiffness > 0 {
		var spring *force.Spring
		if c.CriticallyDamped {
			spring = force.NewCriticallyDampedSpring(c.Stiffness)
		} else {
			spring = force.NewSpring(c.Stiffness, c.Damping)
		}
		spring.SetAnchorPoint(vector.New(c.Anchor...))
		forces = append(forces, spring)
	}

	if c.Friction > 0 {
		forces = append(forces, force.NewFriction(c.Friction))
	}

	if len(c.Gravity) > 0 {
		forces = append(forces, force.NewGravity(vector.New(c.Gravity...)))
	}

	return forces
}

// InitialState returns the scenario's starting position and velocity.
func (c *Config) InitialState() (x, v *vector.Vector) {
	return vector.New(c.Position...), vector.New(c.Velocity...)
}
