// Package config provides YAML-based configuration loading and density
// presets for the collision engine.
package config

import (
	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/space"
)

// CollisionConfig contains all configuration for the collision engine.
type CollisionConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Collision CollisionMethod `yaml:"collision"`
	TickRate  int             `yaml:"tick_rate"`
	Debug     bool            `yaml:"debug"`
}

// ScreenConfig defines the screen size and the margins around the play area.
type ScreenConfig struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Insets core.Insets `yaml:"insets"`
}

// GridConfig defines the spatial grid resolution.
type GridConfig struct {
	ChunksX    int  `yaml:"chunks_x"`
	ChunksY    int  `yaml:"chunks_y"`
	Auto       bool `yaml:"auto"`        // Derive chunk counts from the play area
	BaseLength int  `yaml:"base_length"` // Preferred cell edge when auto is set
}

// CollisionMethod selects the narrow-phase algorithm.
type CollisionMethod struct {
	Method string `yaml:"method"` // "sat", "gjk" or "pretest"
}

// Runtime converts the screen section into a RuntimeConfig.
func (c CollisionConfig) Runtime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = c.Screen.Width
	rt.ScreenH = c.Screen.Height
	rt.Insets = c.Screen.Insets
	if c.TickRate > 0 {
		rt.TickRate = c.TickRate
	}
	return rt
}

// Method parses the configured narrow-phase method.
func (c CollisionConfig) Method() (collide.Method, error) {
	return collide.ParseMethod(c.Collision.Method)
}

// Chunks returns the grid resolution, computing it from the play area when
// auto is set.
func (c CollisionConfig) Chunks() (x, y int, err error) {
	if !c.Grid.Auto {
		return c.Grid.ChunksX, c.Grid.ChunksY, nil
	}
	area := c.Runtime().PlayArea()
	base := c.Grid.BaseLength
	if base <= 0 {
		base = space.DefaultBaseLength
	}
	return space.AutoChunks(int(area.W), int(area.H), base)
}
