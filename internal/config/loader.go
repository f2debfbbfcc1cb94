package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.pendu/config.yaml -> ./pendu.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first; here a failure is an error, the user asked
	// for this exact file.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var cfg Config
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local config file
	if data, err := os.ReadFile("pendu.yaml"); err == nil {
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pendu", filename)
}

// normalize fills gaps in a loaded config from the hardcoded defaults.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.MaxLives < 1 {
		cfg.MaxLives = def.MaxLives
	}
	if cfg.Prices == nil {
		cfg.Prices = def.Prices
	}
	if len(cfg.StoryLevels()) == 0 {
		cfg.Levels = def.Levels
	}
	return cfg
}
