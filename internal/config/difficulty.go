package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// baseFPSForPreset returns the level-0 tick rate of a preset.
func baseFPSForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

// ApplySnakePreset modifies the config for a difficulty preset.
// Fixed keeps the configured base speed and turns off the per-level speed-up.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	if preset == DifficultyFixed {
		cfg.Speed.FPSPerLevel = 0
	} else {
		cfg.Speed.BaseFPS = baseFPSForPreset(preset)
	}

	if cfg.Speed.MaxFPS < cfg.Speed.BaseFPS {
		cfg.Speed.MaxFPS = cfg.Speed.BaseFPS
	}
}

// DifficultyManager turns the game level into a tick rate.
type DifficultyManager struct {
	cfg SpeedConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg SpeedConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// TickRate returns ticks per second at the given level:
// base + level*step, capped at the maximum.
func (d *DifficultyManager) TickRate(level int) int {
	if level < 0 {
		level = 0
	}
	rate := d.cfg.BaseFPS + level*d.cfg.FPSPerLevel
	if d.cfg.MaxFPS > 0 && rate > d.cfg.MaxFPS {
		rate = d.cfg.MaxFPS
	}
	if rate < 1 {
		rate = 1
	}
	return rate
}

// SpeedLabel formats the level's tick rate for the HUD.
func (d *DifficultyManager) SpeedLabel(level int) string {
	return fmt.Sprintf("%d/s", d.TickRate(level))
}
