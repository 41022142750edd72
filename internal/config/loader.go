package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are applied over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when unusable.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakout decodes YAML over the defaults and validates the result.
func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Tries++
		cfg.Paddle.Width *= 1.25
		scaleServe(cfg, 0.8)
	case DifficultyHard:
		if cfg.Gameplay.Tries > 0 {
			cfg.Gameplay.Tries--
		}
		cfg.Paddle.Width *= 0.8
		scaleServe(cfg, 1.25)
	}

	if cfg.Paddle.Width > cfg.Playfield.Width {
		cfg.Paddle.Width = cfg.Playfield.Width
	}
}

// scaleServe multiplies every serve speed by factor.
func scaleServe(cfg *BreakoutConfig, factor float64) {
	cfg.Ball.SpeedY *= factor
	cfg.Ball.MinSpeedX *= factor
	cfg.Ball.MaxSpeedX *= factor
}
