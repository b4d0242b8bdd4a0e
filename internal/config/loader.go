package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/danmaku/internal/collide"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid collision config")

// Load loads the collision configuration.
// Search order: customPath -> ~/.danmaku/configs/collision.yaml -> ./configs/collision.yaml -> embedded default
func Load(customPath string) (CollisionConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultCollisionConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath("collision.yaml"), filepath.Join("configs", "collision.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed := DefaultCollisionConfig()
		if err := yaml.Unmarshal(data, &parsed); err == nil {
			return parsed, parsed.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCollisionYAML, &cfg); err != nil {
		return DefaultCollisionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".danmaku", "configs", filename)
}

// Validate rejects configurations the engine cannot run with.
func (c CollisionConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	area := c.Runtime().PlayArea()
	if area.W <= 0 || area.H <= 0 {
		return fmt.Errorf("%w: insets leave no play area", ErrInvalidConfig)
	}
	if c.Grid.Auto {
		if c.Grid.BaseLength < 0 {
			return fmt.Errorf("%w: base_length %d", ErrInvalidConfig, c.Grid.BaseLength)
		}
	} else if c.Grid.ChunksX <= 0 || c.Grid.ChunksY <= 0 {
		return fmt.Errorf("%w: chunks %dx%d", ErrInvalidConfig, c.Grid.ChunksX, c.Grid.ChunksY)
	}
	if _, err := collide.ParseMethod(c.Collision.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, c.TickRate)
	}
	return nil
}
