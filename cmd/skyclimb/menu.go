package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/platform/tui"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right and press Enter to play. Press B on the
pause or game over screen to return to the menu. Tab opens the scoreboard.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Play
  Tab            - Scoreboard
  Q              - Quit

Examples:
  skyclimb menu
  skyclimb menu --fps 30
  skyclimb menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := tui.NewGame(menuResult.GameID, menuResult.Difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		logger.Info("game started", "game", menuResult.GameID, "difficulty", menuResult.Difficulty)

		// Fresh layout each run unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
