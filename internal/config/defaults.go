package config

import (
	_ "embed"
)

//go:embed defaults/onetile.yaml
var defaultOnetileYAML []byte

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			GridSize:    3,
			TileCount:   5,
			MinValue:    1,
			MaxValue:    7,
			Wildcards:   0,
			MaxAttempts: 300,
		},
		Search: SearchConfig{
			MoveLimit: 0,
		},
	}
}
