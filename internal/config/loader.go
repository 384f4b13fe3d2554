package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadRocket.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRocket loads Retro Rocket configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
// Files are decoded on top of the defaults, so they only need the keys they change.
func LoadRocket(customPath string) (RocketConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRocket(data)
		if err != nil {
			return RocketConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rocket.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRocket(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rocket.yaml")); err == nil {
		if cfg, err := ParseRocket(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRocket(defaultRocketYAML)
	if err != nil {
		return DefaultRocketConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseRocket decodes YAML over the default configuration and validates it.
func ParseRocket(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c RocketConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects values the simulation cannot run with.
func (c RocketConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("surface must be positive, got %dx%d", c.Surface.Width, c.Surface.Height)
	case c.Surface.ReferenceWidth <= 0 || c.Surface.ReferenceHeight <= 0:
		return fmt.Errorf("surface reference size must be positive")
	case c.Craft.BodyWidth <= 0 || c.Craft.BodyHeight <= 0:
		return fmt.Errorf("craft body must be positive")
	case c.Stars.Count < 0:
		return fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count)
	case c.Stars.MinSpeed < 0 || c.Stars.SpeedRange < 0:
		return fmt.Errorf("star speeds must not be negative")
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	case c.Obstacles.AsteroidMinSize <= 0 || c.Obstacles.AsteroidSizeRange <= 0:
		return fmt.Errorf("asteroid sizes must be positive")
	case c.Obstacles.LaserWidthDivisor <= 0 || c.Obstacles.EnemyWidthDivisor <= 0 || c.Obstacles.EnemyHeightDivisor <= 0:
		return fmt.Errorf("obstacle divisors must be positive")
	case c.Obstacles.AsteroidThreshold < 0 || c.Obstacles.LaserThreshold > 1 ||
		c.Obstacles.AsteroidThreshold > c.Obstacles.LaserThreshold:
		return fmt.Errorf("obstacle kind thresholds must satisfy 0 <= asteroid <= laser <= 1")
	case c.Ground.MarkSpacing <= 0 || c.Ground.MarkSize <= 0:
		return fmt.Errorf("ground marks must be positive")
	case !unit(c.Render.FlameFill) || !unit(c.Render.AsteroidFill):
		return fmt.Errorf("render fill probabilities must be within [0, 1]")
	case c.Controls.KeyHoldMS < 0:
		return fmt.Errorf("controls.key_hold_ms must not be negative")
	}
	return nil
}

func unit(p float64) bool {
	return p >= 0 && p <= 1
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
