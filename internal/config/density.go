package config

import "fmt"

// DensityPreset names a bullet density the grid is tuned for.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// ParseDensity converts a preset name, accepting "" as normal.
func ParseDensity(s string) (DensityPreset, error) {
	switch DensityPreset(s) {
	case "", DensityNormal:
		return DensityNormal, nil
	case DensitySparse, DensityDense:
		return DensityPreset(s), nil
	}
	return DensityNormal, fmt.Errorf("config: unknown density %q", s)
}

// ApplyDensityPreset modifies the grid for the expected bullet density.
// Dense screens also drop to bounding-box tests only.
func ApplyDensityPreset(cfg *CollisionConfig, preset DensityPreset) {
	cfg.Grid.Auto = false
	switch preset {
	case DensitySparse:
		cfg.Grid.ChunksX, cfg.Grid.ChunksY = 6, 7
	case DensityDense:
		cfg.Grid.ChunksX, cfg.Grid.ChunksY = 24, 28
		cfg.Collision.Method = "pretest"
	default:
		cfg.Grid.ChunksX, cfg.Grid.ChunksY = 12, 14
	}
}
