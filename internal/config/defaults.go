package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: an 800x600 board
// of 20px cells (40x30) sized to the terminal, 10 ticks per second plus one
// per food eaten.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:       800,
			Height:      600,
			CellSize:    20,
			FitTerminal: true,
		},
		Speed: SpeedConfig{
			BaseFPS:     10,
			FPSPerLevel: 1,
			MaxFPS:      30,
		},
		Food: FoodConfig{
			MaxAttempts: 64,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
