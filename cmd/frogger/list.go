package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered game variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Play counts are optional, the list works without a database
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Printf("  %-*s  %-30s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-30s  %s\n", maxIDLen, "--", "-----", "------")
	for _, g := range games {
		played := "never"
		if st, ok := stats[g.ID]; ok && st.GamesCount > 0 {
			played = fmt.Sprintf("%s runs, best %s, %s",
				humanize.Comma(int64(st.GamesCount)), humanize.Comma(int64(st.HighScore)), humanize.Time(st.LastPlayed))
		}
		fmt.Printf("  %-*s  %-30s  %s\n", maxIDLen, g.ID, g.Title, played)
	}

	fmt.Println()
	fmt.Println("Run 'frogger play <id>' to play.")
}
