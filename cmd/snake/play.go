package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hang2323-brian/snake-game/internal/config"
	"github.com/hang2323-brian/snake-game/internal/core"
	"github.com/hang2323-brian/snake-game/internal/platform/tui"
	"github.com/hang2323-brian/snake-game/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Without --difficulty a menu asks for the difficulty first.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R/Enter/Space    - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 6 moves per second, +1 per food
  normal - 10 moves per second, +1 per food
  hard   - 15 moves per second, +1 per food
  fixed  - Configured speed, never speeds up

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --difficulty fixed
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	// The TUI owns the terminal, so logs go to a file.
	logger, closeLog, err := fileLogger(logPath, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if !cmd.Flags().Changed("difficulty") && term.IsTerminal(int(os.Stdin.Fd())) {
		preset, ok, menuErr := tui.RunDifficultyMenu(cfg.Difficulty, bestByPreset(store), width, height)
		if menuErr != nil {
			return menuErr
		}
		if !ok {
			return nil
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})
}

// bestByPreset loads the high score of every preset for the menu.
func bestByPreset(store *storage.Store) map[config.DifficultyPreset]int {
	best := make(map[config.DifficultyPreset]int)
	if store == nil {
		return best
	}
	for _, p := range config.Presets {
		if score, err := store.HighScore(string(p)); err == nil {
			best[p] = score
		}
	}
	return best
}
