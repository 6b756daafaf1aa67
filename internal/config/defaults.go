package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the default engine configuration.
func Default() EngineConfig {
	return EngineConfig{
		Board: BoardConfig{
			MinSize: 4,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Win: WinConfig{
			BaseExponent: 11,
		},
		AI: AIConfig{
			Rollouts: 1000,
			Workers:  0,
		},
	}
}

// DefaultYAML returns the embedded default engine YAML.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
