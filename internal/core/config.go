package core

import "github.com/vovakirdan/danmaku/internal/geom"

// Insets shrink the screen to the play area, in world units.
type Insets struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// RuntimeConfig describes the screen the engine runs on.
type RuntimeConfig struct {
	ScreenW  float64 // Screen width in world units
	ScreenH  float64 // Screen height in world units
	Insets   Insets  // Margins around the play area
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic scenes
}

// DefaultConfig returns an 800x600 screen without insets at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// PlayArea returns the screen minus its insets.
func (c RuntimeConfig) PlayArea() geom.Rect {
	return geom.Rect{
		X: c.Insets.Left,
		Y: c.Insets.Top,
		W: c.ScreenW - c.Insets.Left - c.Insets.Right,
		H: c.ScreenH - c.Insets.Top - c.Insets.Bottom,
	}
}

// IsOffScreen reports whether p lies outside the play area. Points on the
// boundary are on screen.
func (c RuntimeConfig) IsOffScreen(p geom.Vec) bool {
	return !c.PlayArea().Contains(p)
}
