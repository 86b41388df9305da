package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lavaleap.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Lives:      3,
			GraceTicks: 60,
		},
	}
}

// Load loads the lavaleap configuration.
// Search order: customPath -> ~/.lavaleap/config.yaml ->
// ./configs/lavaleap.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lavaleap.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills zero values that would make a session unplayable.
func normalize(cfg Config) Config {
	if cfg.Game.Lives <= 0 {
		cfg.Game.Lives = Default().Game.Lives
	}
	if cfg.Game.GraceTicks <= 0 {
		cfg.Game.GraceTicks = Default().Game.GraceTicks
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lavaleap", filename)
}
