package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/config"
	"github.com/vovakirdan/danmaku/internal/core"
)

// tuning holds the engine flags shared by bench and view.
type tuning struct {
	method  string
	chunks  string
	density string
}

func (t *tuning) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&t.method, "method", "", "Narrow-phase method: sat, gjk, pretest (overrides config)")
	cmd.Flags().StringVar(&t.chunks, "chunks", "", "Grid resolution as COLSxROWS, e.g. 12x14 (overrides config)")
	cmd.Flags().StringVar(&t.density, "density", "", "Density preset: sparse, normal, dense")
}

// settings is the resolved engine configuration of one command.
type settings struct {
	cfg     config.CollisionConfig
	runtime core.RuntimeConfig
	method  collide.Method
	chunksX int
	chunksY int
}

// resolve loads the config file and applies the density preset, then the
// explicit flags on top.
func (t tuning) resolve() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}

	if t.density != "" {
		preset, err := config.ParseDensity(t.density)
		if err != nil {
			return settings{}, err
		}
		config.ApplyDensityPreset(&cfg, preset)
	}
	if t.method != "" {
		cfg.Collision.Method = t.method
	}
	if t.chunks != "" {
		x, y, err := parseChunks(t.chunks)
		if err != nil {
			return settings{}, err
		}
		cfg.Grid.Auto = false
		cfg.Grid.ChunksX, cfg.Grid.ChunksY = x, y
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg, runtime: cfg.Runtime()}
	s.runtime.Seed = flagSeed
	if s.method, err = cfg.Method(); err != nil {
		return settings{}, err
	}
	if s.chunksX, s.chunksY, err = cfg.Chunks(); err != nil {
		return settings{}, err
	}
	return s, nil
}

func parseChunks(s string) (int, int, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%dx%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("invalid chunks %q, expected COLSxROWS", s)
	}
	if x <= 0 || y <= 0 {
		return 0, 0, fmt.Errorf("invalid chunks %q, counts must be positive", s)
	}
	return x, y, nil
}
