package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hang2323-brian/snake-game/internal/config"
	"github.com/hang2323-brian/snake-game/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long: `Open an interactive scoreboard with one tab per difficulty.

Controls:
  Tab/Shift+Tab - Switch difficulty
  Up/Down       - Scroll
  Q/Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, _ []string) error {
	initial := config.DifficultyNormal
	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		initial = preset
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, initial, width, height)
}
