package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ascentFile = "ascent.yaml"

// LoadAscent loads the climber configuration.
// Search order: customPath -> ~/.skyclimb/configs/ascent.yaml -> ./configs/ascent.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only overrides what it names.
func LoadAscent(customPath string) (AscentConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AscentConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseAscent(data)
		if err != nil {
			return AscentConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ascentFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseAscent(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ascentFile)); err == nil {
		if cfg, err := ParseAscent(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseAscent(defaultAscentYAML)
	if err != nil {
		return DefaultAscentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseAscent decodes YAML over the built-in defaults and validates the result.
func ParseAscent(data []byte) (AscentConfig, error) {
	cfg := DefaultAscentConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AscentConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AscentConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c AscentConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyclimb", "configs", filename)
}

// Validate reports every inconsistent value in the configuration.
func (c AscentConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world: size must be positive, got %vx%v", w.Width, w.Height)
	check(w.TargetHeight < w.SpawnHeight, "world: target_height %v must be above spawn_height %v", w.TargetHeight, w.SpawnHeight)
	check(w.FinishLine < w.SpawnHeight, "world: finish_line %v must be above spawn_height %v", w.FinishLine, w.SpawnHeight)
	check(w.FallLimit > w.SpawnHeight, "world: fall_limit %v must be below spawn_height %v", w.FallLimit, w.SpawnHeight)

	b := c.Body
	check(b.Width > 0 && b.Height > 0, "body: size must be positive")
	check(b.Width < w.Width, "body: width %v must fit in world width %v", b.Width, w.Width)
	check(b.JumpPower < 0, "body: jump_power must be negative (upward), got %v", b.JumpPower)
	check(b.Gravity > 0, "body: gravity must be positive, got %v", b.Gravity)
	check(b.Friction >= 0 && b.Friction <= 1, "body: friction must be in [0,1], got %v", b.Friction)
	check(b.MaxFallSpeed > 0, "body: max_fall_speed must be positive")

	p := c.Platforms
	check(p.MinGap > 0, "platforms: min_gap must be positive, got %v", p.MinGap)
	check(p.MaxGap >= p.MinGap, "platforms: max_gap %v below min_gap %v", p.MaxGap, p.MinGap)
	check(p.ReachableGap >= p.MinGap, "platforms: reachable_gap %v below min_gap %v", p.ReachableGap, p.MinGap)
	check(p.MinWidth > 0 && p.MaxWidth >= p.MinWidth, "platforms: width range [%v,%v] is invalid", p.MinWidth, p.MaxWidth)
	check(p.MaxWidth <= w.Width && p.FinishWidth <= w.Width && p.SpawnWidth <= w.Width, "platforms: widths must fit in world width %v", w.Width)
	check(p.Height > 0, "platforms: height must be positive")
	check(p.FinishGap >= p.MinGap, "platforms: finish_gap %v below min_gap %v", p.FinishGap, p.MinGap)
	check(p.MaxMoveSpeed >= p.MinMoveSpeed && p.MinMoveSpeed >= 0, "platforms: move speed range [%v,%v] is invalid", p.MinMoveSpeed, p.MaxMoveSpeed)
	check(p.QueryRange > 0, "platforms: query_range must be positive")
	check(p.PruneMargin > 0, "platforms: prune_margin must be positive")
	ws := p.Weights
	check(ws.Standard >= 0 && ws.Moving >= 0 && ws.Breakable >= 0 && ws.Spring >= 0 && ws.Cloud >= 0,
		"platforms: weights must not be negative")
	check(ws.Sum() > 0, "platforms: weights must not all be zero")

	check(c.Camera.Smoothing > 0 && c.Camera.Smoothing <= 1, "camera: smoothing must be in (0,1], got %v", c.Camera.Smoothing)
	check(c.Scoring.UnitsPerPoint > 0, "scoring: units_per_point must be positive")
	check(c.Difficulty.TierStep > 0, "difficulty: tier_step must be positive, got %d", c.Difficulty.TierStep)
	check(c.Difficulty.InitialTier >= 1, "difficulty: initial_tier must be at least 1")
	check(c.Timers.BreakDelay >= 0 && c.Timers.SpringResetDelay >= 0, "timers: delays must not be negative")

	return errors.Join(errs...)
}

// ApplyAscentPreset modifies the config based on a difficulty preset.
func ApplyAscentPreset(cfg *AscentConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust layout based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Platforms.ReachableGap = 75
		cfg.Platforms.Weights = TypeWeights{Standard: 0.65, Moving: 0.15, Breakable: 0.05, Spring: 0.1, Cloud: 0.05}
	case DifficultyHard:
		cfg.Platforms.MinGap = 70
		cfg.Platforms.FinishGap = 70
		cfg.Platforms.Weights = TypeWeights{Standard: 0.35, Moving: 0.3, Breakable: 0.2, Spring: 0.05, Cloud: 0.1}
	}
}
