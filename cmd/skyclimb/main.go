// skyclimb is a vertically scrolling platform climber for the terminal.
//
// Usage:
//
//	skyclimb play            - Play directly
//	skyclimb menu            - Start menu with difficulty picker and scoreboard
//	skyclimb serve           - Start SSH server for remote play
//	skyclimb scores          - Show run history and high score
//	skyclimb list            - List registered games
//	skyclimb config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skyclimb/scores.db)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyclimb/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/skyclimb/internal/games/ascent"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyclimb",
	Short: "Sky Climb - a platform climber in your terminal",
	Long: `Sky Climb is a vertically scrolling platformer for the terminal.
Steer left and right, land on platforms and climb to the finish line.
Springs launch you higher, breakable platforms crumble, clouds keep
your momentum and moving platforms drift sideways.

Available commands:
  play     - Start a run directly
  menu     - Title menu with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View run history
  list     - Show registered games
  config   - Print the effective configuration

Examples:
  skyclimb play
  skyclimb play --difficulty hard
  skyclimb menu --fps 30
  skyclimb serve --ssh :2222
  skyclimb scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyclimb/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger described by --log-level and --log-file.
// Without a log file it writes to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyclimb",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the screen to the terminal and applies global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
