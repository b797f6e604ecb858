// snake is the classic snake game for the terminal, playable locally or over SSH.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake scores             - Print high scores
//	snake board              - Browse high scores interactively
//	snake config             - Show the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Override the base tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.snake/snake.db)
package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/hang2323-brian/snake-game/internal/config"
	"github.com/hang2323-brian/snake-game/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Steer the snake to the food. Each food is worth 100 points, makes the
snake one segment longer and the game one step faster. Hitting a wall
or your own body ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Print high scores
  board    - Browse high scores interactively
  config   - Show the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake serve --ssh :2222
  snake scores --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Base tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play default: ~/.snake/snake.log, serve default: stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies --difficulty when it was given.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	return cfg, nil
}

// selectedDifficulty returns the --difficulty filter, or "" for all.
func selectedDifficulty(cmd *cobra.Command) (string, error) {
	if !cmd.Flags().Changed("difficulty") {
		return "", nil
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	return string(preset), nil
}

// openStore opens the score database. Callers that can run without
// history treat an error as a warning.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

// playerName returns the local user name for score records.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
