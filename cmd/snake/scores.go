package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/hang2323-brian/snake-game/internal/storage"
)

var (
	flagLimit int
	flagJSON  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Without --difficulty every difficulty is listed together.

Examples:
  snake scores
  snake scores --difficulty hard --limit 5
  snake scores --json
  snake scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagJSON, "json", false, "Print scores and stats as JSON")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored scores instead of listing them")
}

// scoresReport is the --json output.
type scoresReport struct {
	Difficulty string               `json:"difficulty"`
	Scores     []storage.ScoreEntry `json:"scores"`
	Stats      *storage.Stats       `json:"stats"`
}

func runScores(cmd *cobra.Command, _ []string) error {
	difficulty, err := selectedDifficulty(cmd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(difficulty); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %s scores.\n", difficultyLabel(difficulty))
		return nil
	}

	scores, err := store.TopScores(difficulty, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if flagJSON {
		stats, err := store.GetStats(difficulty)
		if err != nil {
			return err
		}
		if scores == nil {
			scores = []storage.ScoreEntry{}
		}
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scoresReport{
			Difficulty: difficulty,
			Scores:     scores,
			Stats:      stats,
		})
	}

	fmt.Fprintf(out, "High Scores - %s\n", difficultyLabel(difficulty))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %-8s  %-5s  %-6s  %s\n",
		"Rank", "Player", "Difficulty", "Score", "Level", "Length", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %-8s  %-5s  %-6s  %s\n",
		"----", "------", "----------", "-----", "-----", "------", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-10s  %-8d  %-5d  %-6d  %s\n",
			i+1, e.Player, e.Difficulty, e.Score, e.Level, e.Length,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if best, err := store.HighScore(difficulty); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

func difficultyLabel(difficulty string) string {
	if difficulty == "" {
		return "all difficulties"
	}
	return difficulty
}
