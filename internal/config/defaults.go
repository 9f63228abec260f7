package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/ascent.yaml
var defaultAscentYAML []byte

// DefaultAscentConfig returns the built-in configuration. It mirrors
// defaults/ascent.yaml and is used when the embedded file cannot be parsed.
func DefaultAscentConfig() AscentConfig {
	return AscentConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			SpawnHeight:  600,
			TargetHeight: -600,
			FinishLine:   -600,
			FallLimit:    700,
		},
		Body: BodyConfig{
			Width:        40,
			Height:       40,
			Speed:        3,
			JumpPower:    -12,
			Gravity:      0.3,
			Friction:     0.8,
			MaxFallSpeed: 12,
		},
		Platforms: PlatformConfig{
			MinGap:       60,
			MaxGap:       150,
			ReachableGap: 90,
			MinWidth:     60,
			MaxWidth:     100,
			Height:       20,
			SpawnWidth:   80,
			FinishWidth:  120,
			FinishGap:    60,
			MoveRange:    100,
			MinMoveSpeed: 1,
			MaxMoveSpeed: 3,
			QueryRange:   300,
			PruneMargin:  700,
			Weights: TypeWeights{
				Standard:  0.5,
				Moving:    0.2,
				Breakable: 0.1,
				Spring:    0.1,
				Cloud:     0.1,
			},
		},
		Collision: CollisionConfig{
			LandingTolerance:  5,
			SpringMultiplier:  1.5,
			MomentumTransfer:  0.5,
			SpringCompression: 5,
		},
		Camera: CameraConfig{
			Smoothing:    0.1,
			FollowOffset: 0.7,
		},
		Scoring: ScoringConfig{
			UnitsPerPoint: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialTier:  1,
			TierStep:     500,
			SpeedPerTier: 0.1,
		},
		Timers: TimersConfig{
			BreakDelay:       100 * time.Millisecond,
			SpringResetDelay: 200 * time.Millisecond,
		},
		Effects: EffectsConfig{
			LandingParticles: 4,
			SpringParticles:  8,
			TrailLength:      10,
			BackgroundSpeed:  0.5,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}
