package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/navigator/engine/core"
)

const (
	ProjectionPerspective  = "perspective"
	ProjectionOrthographic = "orthographic"
)

// Config is the root of the navigator TOML configuration.
type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Navigation NavigationConfig `toml:"navigation"`
	Viewpoint  ViewpointConfig  `toml:"viewpoint"`
	Collision  CollisionConfig  `toml:"collision"`
	Commands   CommandsConfig   `toml:"commands"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// NavigationConfig holds the Pan-Zoom tuning constants.
type NavigationConfig struct {
	// OrthoZoomScalar multiplies the orthographic clip planes per zoom step.
	OrthoZoomScalar float64 `toml:"ortho_zoom_scalar"`
	// PanStep converts perspective pan device deltas to world units.
	PanStep float32 `toml:"pan_step"`
	// ZoomStep converts perspective zoom deltas to world units.
	ZoomStep float32 `toml:"zoom_step"`
	// WheelStep is the zoom delta of a single wheel click.
	WheelStep float32 `toml:"wheel_step"`
	// FloorHeight is the lowest eye Y a perspective move may reach (exclusive).
	FloorHeight float32 `toml:"floor_height"`
}

type ViewpointConfig struct {
	Name       string     `toml:"name"`
	Projection string     `toml:"projection"`
	Position   [3]float32 `toml:"position"`
	LookAt     [3]float32 `toml:"look_at"`
	Up         [3]float32 `toml:"up"`
	// Frustum is left, right, bottom, top, near, far.
	Frustum          [6]float64 `toml:"frustum"`
	CenterOfRotation [3]float32 `toml:"center_of_rotation"`
}

type Obstacle struct {
	Min [3]float32 `toml:"min"`
	Max [3]float32 `toml:"max"`
}

type CollisionConfig struct {
	Enabled      bool       `toml:"enabled"`
	AvatarRadius float32    `toml:"avatar_radius"`
	Obstacles    []Obstacle `toml:"obstacles"`
}

type CommandsConfig struct {
	HistorySize int `toml:"history_size"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Navigation: NavigationConfig{
			OrthoZoomScalar: 1.1,
			PanStep:         16,
			ZoomStep:        16,
			WheelStep:       0.1,
			FloorHeight:     0,
		},
		Viewpoint: ViewpointConfig{
			Name:       "default",
			Projection: ProjectionPerspective,
			Position:   [3]float32{0, 1.6, 10},
			LookAt:     [3]float32{0, 1.6, 0},
			Up:         [3]float32{0, 1, 0},
			Frustum:    [6]float64{-1, 1, -1, 1, 0.1, 1000},
		},
		Collision: CollisionConfig{
			Enabled:      true,
			AvatarRadius: 0.25,
		},
		Commands: CommandsConfig{
			HistorySize: 64,
		},
	}
}

// Load reads a TOML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the navigation modes cannot work with.
func (c *Config) Validate() error {
	n := c.Navigation
	if n.OrthoZoomScalar <= 1 {
		return fmt.Errorf("%w: navigation.ortho_zoom_scalar must be > 1, got %v", core.ErrInvalidConfig, n.OrthoZoomScalar)
	}
	if n.PanStep <= 0 || n.ZoomStep <= 0 || n.WheelStep <= 0 {
		return fmt.Errorf("%w: navigation steps must be positive", core.ErrInvalidConfig)
	}
	switch c.Viewpoint.Projection {
	case ProjectionPerspective, ProjectionOrthographic:
	default:
		return fmt.Errorf("%w: viewpoint.projection %q", core.ErrInvalidConfig, c.Viewpoint.Projection)
	}
	if c.Viewpoint.Name == "" {
		return fmt.Errorf("%w: viewpoint.name is empty", core.ErrInvalidConfig)
	}
	f := c.Viewpoint.Frustum
	if f[1] <= f[0] || f[3] <= f[2] {
		return fmt.Errorf("%w: viewpoint.frustum has no area", core.ErrInvalidConfig)
	}
	if c.Collision.AvatarRadius < 0 {
		return fmt.Errorf("%w: collision.avatar_radius must be >= 0", core.ErrInvalidConfig)
	}
	if c.Commands.HistorySize <= 0 {
		return fmt.Errorf("%w: commands.history_size must be > 0", core.ErrInvalidConfig)
	}
	return nil
}

// LogOptions adapts the logging section for core.LogConfigure.
func (l LoggingConfig) LogOptions() core.LogOptions {
	return core.LogOptions{
		Level:      l.Level,
		File:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
	}
}

// Marshal encodes the configuration back to TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
