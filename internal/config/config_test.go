package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/danmaku/internal/collide"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var fromYAML CollisionConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultCollisionConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", fromYAML, DefaultCollisionConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collision.yaml")
	data := []byte("screen:\n  width: 640\n  height: 480\ngrid:\n  auto: true\n  base_length: 32\ncollision:\n  method: gjk\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("screen = %vx%v, expected 640x480", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", cfg.TickRate)
	}

	m, err := cfg.Method()
	if err != nil || m != collide.MethodGJK {
		t.Errorf("Method() = %v, %v; expected gjk", m, err)
	}

	x, y, err := cfg.Chunks()
	if err != nil {
		t.Fatalf("Chunks() error: %v", err)
	}
	if x != 20 || y != 15 {
		t.Errorf("Chunks() = %dx%d, expected 20x15", x, y)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("collision:\n  method: raycast\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CollisionConfig)
		valid  bool
	}{
		{"defaults", func(*CollisionConfig) {}, true},
		{"zero width", func(c *CollisionConfig) { c.Screen.Width = 0 }, false},
		{"insets eat the screen", func(c *CollisionConfig) { c.Screen.Insets.Left = 500; c.Screen.Insets.Right = 300 }, false},
		{"zero chunks", func(c *CollisionConfig) { c.Grid.ChunksX = 0 }, false},
		{"zero chunks with auto", func(c *CollisionConfig) { c.Grid.ChunksX = 0; c.Grid.Auto = true }, true},
		{"unknown method", func(c *CollisionConfig) { c.Collision.Method = "epa" }, false},
		{"negative tick rate", func(c *CollisionConfig) { c.TickRate = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCollisionConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultCollisionConfig()
	cfg.Screen.Insets.Top = 40
	cfg.TickRate = 0

	rt := cfg.Runtime()
	if rt.TickRate != 60 {
		t.Errorf("TickRate = %d, expected fallback 60", rt.TickRate)
	}
	if area := rt.PlayArea(); area.Y != 40 || area.H != 560 {
		t.Errorf("PlayArea() = %+v, expected top inset applied", area)
	}
}

func TestApplyDensityPreset(t *testing.T) {
	tests := []struct {
		preset       DensityPreset
		wantX, wantY int
		wantMethod   string
	}{
		{DensitySparse, 6, 7, "sat"},
		{DensityNormal, 12, 14, "sat"},
		{DensityDense, 24, 28, "pretest"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCollisionConfig()
			cfg.Grid.Auto = true
			ApplyDensityPreset(&cfg, tc.preset)

			if cfg.Grid.Auto {
				t.Error("preset should disable auto chunks")
			}
			if cfg.Grid.ChunksX != tc.wantX || cfg.Grid.ChunksY != tc.wantY {
				t.Errorf("chunks = %dx%d, expected %dx%d", cfg.Grid.ChunksX, cfg.Grid.ChunksY, tc.wantX, tc.wantY)
			}
			if cfg.Collision.Method != tc.wantMethod {
				t.Errorf("method = %q, expected %q", cfg.Collision.Method, tc.wantMethod)
			}
		})
	}

	if _, err := ParseDensity("swarm"); err == nil {
		t.Error("ParseDensity() should reject unknown presets")
	}
	if p, err := ParseDensity(""); err != nil || p != DensityNormal {
		t.Errorf("ParseDensity(\"\") = %v, %v; expected normal", p, err)
	}
}
