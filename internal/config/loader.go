package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultAsteroidsConfig()
		if err := decodeFile(customPath, &cfg); err != nil {
			return DefaultAsteroidsConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		cfg := DefaultAsteroidsConfig()
		if err := decodeFile(userCfgPath, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	cfg := DefaultAsteroidsConfig()
	if err := decodeFile(filepath.Join("configs", "asteroids.yaml"), &cfg); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg = DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads a YAML or TOML file into dst, chosen by file extension.
func decodeFile(path string, dst *AsteroidsConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), dst); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.InvincibleTicks = 120
		cfg.Asteroids.BaseVelocity = 1.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.InvincibleTicks = 60
		cfg.Asteroids.BaseVelocity = 2.0
	}
}
