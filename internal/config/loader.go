package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the generation configuration.
// Search order: customPath -> ~/.onetile/configs/onetile.yaml -> ./configs/onetile.yaml -> embedded default
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
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("onetile.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/onetile.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOnetileYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".onetile", "configs", filename)
}

// ApplyPreset modifies the generation settings based on a difficulty preset.
// The custom preset leaves the loaded configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generator.GridSize = 3
		cfg.Generator.TileCount = 4
		cfg.Generator.MinValue = 1
		cfg.Generator.MaxValue = 5
		cfg.Generator.Wildcards = 1
	case DifficultyNormal:
		cfg.Generator.GridSize = 3
		cfg.Generator.TileCount = 5
		cfg.Generator.MinValue = 1
		cfg.Generator.MaxValue = 7
		cfg.Generator.Wildcards = 0
	case DifficultyHard:
		cfg.Generator.GridSize = 4
		cfg.Generator.TileCount = 8
		cfg.Generator.MinValue = 1
		cfg.Generator.MaxValue = 9
		cfg.Generator.Wildcards = 0
	}
}
