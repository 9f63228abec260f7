package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolve the configuration the way the game does and print it as YAML.

Search order: --config, ~/.skyclimb/configs/ascent.yaml,
./configs/ascent.yaml, then the built-in defaults. The output is a
complete file and can be saved as a starting point for a custom config.

Examples:
  skyclimb config
  skyclimb config --difficulty hard
  skyclimb config --config ./my-ascent.yaml > ~/.skyclimb/configs/ascent.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadAscent(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyAscentPreset(&cfg, preset)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
