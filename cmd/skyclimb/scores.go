package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/games/ascent"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history and high score",
	Long: `Display the best runs for a game (default: skyclimb), with the level
each run reached and aggregate statistics.

Examples:
  skyclimb scores
  skyclimb scores --limit 25
  skyclimb scores --all
  skyclimb scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete run history and the high score")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := ascent.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyclimb list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skyclimb play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Best level: %d  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.BestLevel,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
