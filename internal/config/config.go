// Package config provides YAML-based generation settings and
// difficulty presets for the onetile puzzle generator.
package config

import (
	"github.com/mkravets/onetile/core"
)

// Config contains all tunable settings for puzzle generation.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Search    SearchConfig    `yaml:"search"`
}

// GeneratorConfig defines board generation parameters.
type GeneratorConfig struct {
	GridSize    int `yaml:"grid_size"`    // Board side length
	TileCount   int `yaml:"tile_count"`   // Tiles placed on the board
	MinValue    int `yaml:"min_value"`    // Lowest tile value (inclusive)
	MaxValue    int `yaml:"max_value"`    // Highest tile value (inclusive)
	Wildcards   int `yaml:"wildcards"`    // Wildcard tiles out of tile_count
	MaxAttempts int `yaml:"max_attempts"` // Generation attempts before giving up
}

// SearchConfig defines solvability search parameters.
type SearchConfig struct {
	MoveLimit int `yaml:"move_limit"` // Search depth cap; 0 derives it from tile count
}

// Params converts the configuration into generator parameters.
// The seed is passed through so callers control determinism.
func (cfg Config) Params(seed uint64) core.GenParams {
	return core.GenParams{
		GridSize:    cfg.Generator.GridSize,
		TileCount:   cfg.Generator.TileCount,
		MinValue:    cfg.Generator.MinValue,
		MaxValue:    cfg.Generator.MaxValue,
		Wildcards:   cfg.Generator.Wildcards,
		MaxAttempts: cfg.Generator.MaxAttempts,
		MoveLimit:   cfg.Search.MoveLimit,
		Seed:        seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// KnownPreset returns true if the preset names a recognized difficulty.
func KnownPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom:
		return true
	}
	return false
}
