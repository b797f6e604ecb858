package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hang2323-brian/snake-game/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

With --defaults the built-in default file is printed instead, which
is a good starting point for ~/.snake/config.yaml:

  snake config --defaults > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.LoadSnakeFrom(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("difficulty") {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	fmt.Fprintf(out, "# grid: %dx%d\n", cfg.Board.Cols(), cfg.Board.Rows())
	_, err = out.Write(data)
	return err
}
