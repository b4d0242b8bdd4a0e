package config

import (
	_ "embed"

	"github.com/vovakirdan/danmaku/internal/core"
)

//go:embed defaults/collision.yaml
var defaultCollisionYAML []byte

// DefaultCollisionConfig returns the default collision configuration: an
// 800x600 screen split into 12x14 chunks, tested with SAT.
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Insets: core.Insets{},
		},
		Grid: GridConfig{
			ChunksX:    12,
			ChunksY:    14,
			Auto:       false,
			BaseLength: 32,
		},
		Collision: CollisionMethod{
			Method: "sat",
		},
		TickRate: 60,
		Debug:    false,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCollisionYAML
}
