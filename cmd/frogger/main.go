// frogger is a terminal lane-crossing game: hop from the grass across the
// stone lanes to the water without getting squashed.
//
// Usage:
//
//	frogger list              - List available variants
//	frogger play <variant>    - Play a variant
//	frogger menu              - Pick variants interactively
//	frogger serve             - Start SSH server for remote play
//	frogger scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.frogger/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "frogger"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the lanes in your terminal",
	Long: `Frogger is a terminal lane-crossing game.

Hop from the grass across the stone lanes and reach the water.
Every crossing scores a point; an enemy bug resets the run.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  frogger list
  frogger play frogger
  frogger play frogger_classic --hitboxes
  frogger menu
  frogger serve --ssh :2222
  frogger scores frogger`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
