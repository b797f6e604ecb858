// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Food       FoodConfig       `yaml:"food"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// BoardConfig defines the grid. The grid has Width/CellSize columns and
// Height/CellSize rows unless FitTerminal is set.
type BoardConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	CellSize    int  `yaml:"cell_size"`
	FitTerminal bool `yaml:"fit_terminal"`
}

// SpeedConfig defines the tick rate curve.
type SpeedConfig struct {
	BaseFPS     int `yaml:"base_fps"`
	FPSPerLevel int `yaml:"fps_per_level"`
	MaxFPS      int `yaml:"max_fps"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Cols returns the number of grid columns for a fixed-size board.
func (b BoardConfig) Cols() int {
	if b.CellSize < 1 {
		return 0
	}
	return b.Width / b.CellSize
}

// Rows returns the number of grid rows for a fixed-size board.
func (b BoardConfig) Rows() int {
	if b.CellSize < 1 {
		return 0
	}
	return b.Height / b.CellSize
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.CellSize < 1:
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalidConfig, c.Board.CellSize)
	case !c.Board.FitTerminal && (c.Board.Cols() < 1 || c.Board.Rows() < 1 || c.Board.Cols()*c.Board.Rows() < 2):
		return fmt.Errorf("%w: board %dx%d holds fewer than two %dpx cells",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, c.Board.CellSize)
	case c.Speed.BaseFPS < 1:
		return fmt.Errorf("%w: speed.base_fps must be positive, got %d", ErrInvalidConfig, c.Speed.BaseFPS)
	case c.Speed.FPSPerLevel < 0:
		return fmt.Errorf("%w: speed.fps_per_level must not be negative, got %d", ErrInvalidConfig, c.Speed.FPSPerLevel)
	case c.Speed.MaxFPS < c.Speed.BaseFPS:
		return fmt.Errorf("%w: speed.max_fps %d is below base_fps %d", ErrInvalidConfig, c.Speed.MaxFPS, c.Speed.BaseFPS)
	case c.Food.MaxAttempts < 0:
		return fmt.Errorf("%w: food.max_attempts must not be negative, got %d", ErrInvalidConfig, c.Food.MaxAttempts)
	}

	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
