package config

// DifficultyManager turns score into a difficulty tier and game speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.InitialTier < 1 {
		cfg.InitialTier = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// Tier returns the tier for a score: initial + floor(score / step),
// capped at MaxTier when one is set.
func (d *DifficultyManager) Tier(score int) int {
	if !d.cfg.Enabled || d.cfg.TierStep <= 0 || score < 0 {
		return d.cfg.InitialTier
	}

	tier := d.cfg.InitialTier + score/d.cfg.TierStep
	if d.cfg.MaxTier > 0 && tier > d.cfg.MaxTier {
		tier = d.cfg.MaxTier
	}
	return tier
}

// Speed returns the game speed scalar for a tier: 1 + speedPerTier*(tier-1).
func (d *DifficultyManager) Speed(tier int) float64 {
	if tier < 1 {
		tier = 1
	}
	return 1 + d.cfg.SpeedPerTier*float64(tier-1)
}
