// Package config provides YAML-based game configuration loading and
// difficulty management for skyclimb.
package config

import "time"

// AscentConfig contains all configuration for the platform climber.
type AscentConfig struct {
	World      WorldConfig      `yaml:"world"`
	Body       BodyConfig       `yaml:"body"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Collision  CollisionConfig  `yaml:"collision"`
	Camera     CameraConfig     `yaml:"camera"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timers     TimersConfig     `yaml:"timers"`
	Effects    EffectsConfig    `yaml:"effects"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// WorldConfig defines the level geometry in world units. Y grows downward,
// so the finish line sits at a negative y above the spawn.
type WorldConfig struct {
	Width        float64 `yaml:"width"`         // Viewport and world width
	Height       float64 `yaml:"height"`        // Viewport height
	SpawnHeight  float64 `yaml:"spawn_height"`  // Spawn platform y and score baseline
	TargetHeight float64 `yaml:"target_height"` // Generation stops once past this y
	FinishLine   float64 `yaml:"finish_line"`   // Level is won when the body rises above this y
	FallLimit    float64 `yaml:"fall_limit"`    // Run is lost when the body drops below this y
}

// BodyConfig defines the controlled body's size and kinematics.
type BodyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	JumpPower    float64 `yaml:"jump_power"` // negative = upward
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlatformConfig defines procedural layout parameters.
type PlatformConfig struct {
	MinGap       float64     `yaml:"min_gap"`
	MaxGap       float64     `yaml:"max_gap"`
	ReachableGap float64     `yaml:"reachable_gap"` // Conservative jump height cap on MaxGap
	MinWidth     float64     `yaml:"min_width"`
	MaxWidth     float64     `yaml:"max_width"`
	Height       float64     `yaml:"height"`
	SpawnWidth   float64     `yaml:"spawn_width"`
	FinishWidth  float64     `yaml:"finish_width"`
	FinishGap    float64     `yaml:"finish_gap"` // Distance above the last platform
	MoveRange    float64     `yaml:"move_range"`
	MinMoveSpeed float64     `yaml:"min_move_speed"`
	MaxMoveSpeed float64     `yaml:"max_move_speed"`
	QueryRange   float64     `yaml:"query_range"`  // Vertical reach of the collision query
	PruneMargin  float64     `yaml:"prune_margin"` // Platforms this far below the camera are dropped
	Weights      TypeWeights `yaml:"weights"`
}

// TypeWeights is the probability table for platform types.
type TypeWeights struct {
	Standard  float64 `yaml:"standard"`
	Moving    float64 `yaml:"moving"`
	Breakable float64 `yaml:"breakable"`
	Spring    float64 `yaml:"spring"`
	Cloud     float64 `yaml:"cloud"`
}

// Sum returns the total weight.
func (w TypeWeights) Sum() float64 {
	return w.Standard + w.Moving + w.Breakable + w.Spring + w.Cloud
}

// CollisionConfig defines landing response parameters.
type CollisionConfig struct {
	LandingTolerance  float64 `yaml:"landing_tolerance"`
	SpringMultiplier  float64 `yaml:"spring_multiplier"`
	MomentumTransfer  float64 `yaml:"momentum_transfer"`
	SpringCompression float64 `yaml:"spring_compression"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Smoothing    float64 `yaml:"smoothing"`
	FollowOffset float64 `yaml:"follow_offset"` // Fraction of viewport height above the body
}

// ScoringConfig defines how height converts to points.
type ScoringConfig struct {
	UnitsPerPoint float64 `yaml:"units_per_point"`
}

// DifficultyConfig defines the score-driven tier system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialTier  int     `yaml:"initial_tier"`
	TierStep     int     `yaml:"tier_step"`      // Points per tier
	SpeedPerTier float64 `yaml:"speed_per_tier"` // Game speed added per tier above the first
	MaxTier      int     `yaml:"max_tier"`       // 0 = unbounded
}

// TimersConfig defines deferred world mutation delays.
type TimersConfig struct {
	BreakDelay       time.Duration `yaml:"break_delay"`
	SpringResetDelay time.Duration `yaml:"spring_reset_delay"`
}

// EffectsConfig defines purely cosmetic parameters.
type EffectsConfig struct {
	LandingParticles int     `yaml:"landing_particles"`
	SpringParticles  int     `yaml:"spring_particles"`
	TrailLength      int     `yaml:"trail_length"`
	BackgroundSpeed  float64 `yaml:"background_speed"`
}

// ControlsConfig defines terminal input handling.
type ControlsConfig struct {
	// HoldTicks is how long a direction stays held after a key press.
	// Terminals deliver key repeats, not releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
