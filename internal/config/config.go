// Package config provides YAML-based configuration loading for the
// merge puzzle engine and its Monte Carlo advisor.
package config

// EngineConfig contains all tunable parameters for the engine and advisor.
type EngineConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Win   WinConfig   `yaml:"win"`
	AI    AIConfig    `yaml:"ai"`
}

// BoardConfig defines board construction parameters.
type BoardConfig struct {
	// MinSize is the smallest board dimension the CLI will accept.
	MinSize int `yaml:"min_size"`
}

// SpawnConfig defines tile spawn parameters.
type SpawnConfig struct {
	// FourProbability is the chance a spawned tile is a 4 instead of a 2.
	FourProbability float64 `yaml:"four_probability"`
}

// WinConfig defines the win threshold policy.
type WinConfig struct {
	// BaseExponent is the win-tile exponent for the minimum board size;
	// each extra row doubles the threshold. 11 means 2048 on a 4x4 board.
	BaseExponent int `yaml:"base_exponent"`
}

// AIConfig defines Monte Carlo advisor defaults.
type AIConfig struct {
	// Rollouts is the default playout budget per recommendation.
	Rollouts int `yaml:"rollouts"`
	// Workers is the playout worker count. 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// WinTile returns the win threshold for a board of the given size.
func (c EngineConfig) WinTile(size int) int {
	return 1 << (c.Win.BaseExponent + size - c.Board.MinSize)
}
