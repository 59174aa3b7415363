package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default Word Blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseIntervalMs: 800,
			IntervalStepMs: 70,
			MinIntervalMs:  100,
			MaxCatchUp:     10,
		},
		Scoring: ScoringConfig{
			LineScores:     []int{0, 100, 300, 500, 800},
			LinesPerLevel:  10,
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Rotation: RotationConfig{
			KickOffsets: []int{-1, 1, -2, 2},
		},
		Content: ContentConfig{
			Topic:     "general",
			TimeoutMs: 3000,
		},
		Timed: TimedConfig{
			LimitSeconds: 120,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 1,
		},
	}
}
