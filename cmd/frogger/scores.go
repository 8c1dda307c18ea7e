package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant.

Examples:
  frogger scores frogger
  frogger scores frogger_classic --limit 25
  frogger scores frogger --limit 0
  frogger scores frogger --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'frogger list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Removed %s scores for %s.\n", humanize.Comma(n), game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagLimit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'frogger play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Player", "Score", "When")
	fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8s  %s\n",
			i+1, player, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s  Runs: %s  Average: %.1f\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.GamesCount)), stats.AvgScore)
	}
	if best, err := store.PlayerBest(gameID, playerName()); err == nil && best > 0 {
		fmt.Printf("Your best (%s): %s\n", playerName(), humanize.Comma(int64(best)))
	}
	return nil
}
