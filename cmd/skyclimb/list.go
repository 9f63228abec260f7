package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long: `Shows every registered game with its recorded runs and best score.
Statistics are omitted if the scores database cannot be opened.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "----")

	for _, g := range games {
		runs, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			runs, best = s.GamesCount, s.HighScore
		}
		fmt.Printf("  %-*s  %-*s  %5d  %d\n", maxIDLen, g.ID, maxTitleLen, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'skyclimb play <id>' to play a game.")
}
