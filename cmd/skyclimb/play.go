package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/games/ascent"
	"github.com/vovakirdan/skyclimb/internal/platform/tui"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start playing immediately. The game defaults to skyclimb.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Jump
  Enter            - Start / next level
  P/Esc            - Pause
  R                - Restart after game over
  F2               - Toggle trajectory overlay
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Shorter gaps, more springs
  normal - Default layout, difficulty rises with score
  hard   - Wider gaps, more moving and breakable platforms
  fixed  - No progression, game speed stays at 1.0

Examples:
  skyclimb play
  skyclimb play --difficulty hard
  skyclimb play --seed 42
  skyclimb play --config ./my-ascent.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game packages.
func applyGameFlags() {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, fixed")
		os.Exit(1)
	}
	ascent.SetConfigPath(flagConfig)
	ascent.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ascent.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyclimb list' to see available games.")
		os.Exit(1)
	}
	applyGameFlags()

	// Logs would corrupt the alternate screen, so they go to --log-file only
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, logger, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
