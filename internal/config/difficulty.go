package config

import "math"

// DifficultyPolicy calculates game speed and level progression from score.
type DifficultyPolicy struct {
	cfg DifficultyConfig
}

// NewDifficultyPolicy creates a new difficulty policy.
func NewDifficultyPolicy(cfg DifficultyConfig) *DifficultyPolicy {
	return &DifficultyPolicy{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyPolicy) IsEnabled() bool {
	return d.cfg.Enabled
}

// InitialSpeed returns the game speed a fresh run starts with.
func (d *DifficultyPolicy) InitialSpeed() float64 {
	return d.cfg.InitialSpeed
}

// Level returns the difficulty level for a score. Levels start at 1.
func (d *DifficultyPolicy) Level(score int) int {
	if !d.cfg.Enabled || d.cfg.ScorePerLevel <= 0 || score < 0 {
		return 1
	}
	return 1 + score/d.cfg.ScorePerLevel
}

// NextSpeed advances the game speed by one tick.
// A level-up applies the level step once; every other tick applies the continuous step.
func (d *DifficultyPolicy) NextSpeed(speed float64, score, storedLevel int) (float64, int) {
	if !d.cfg.Enabled {
		return speed, storedLevel
	}
	level := d.Level(score)
	if level > storedLevel {
		return speed + d.cfg.LevelSpeedStep, level
	}
	return speed + d.cfg.ContinuousSpeedStep, storedLevel
}

// FlyingUnlocked reports whether flying obstacles may spawn at a level.
func (d *DifficultyPolicy) FlyingUnlocked(level int) bool {
	return d.cfg.FlyingLevel > 0 && level >= d.cfg.FlyingLevel
}

// BoulderUnlocked reports whether boulders may spawn at a level.
func (d *DifficultyPolicy) BoulderUnlocked(level int) bool {
	return d.cfg.BoulderLevel > 0 && level >= d.cfg.BoulderLevel
}

// Rate returns the spawn interval in ticks for a game speed and level.
// Faster games and higher levels spawn more often, never more often than MinRate.
func (c SpawnCategory) Rate(speed float64, level int) int {
	minRate := int(math.Max(1, math.Floor(c.MinRate)))
	div := speed * (1 + float64(level)*c.DifficultyFactor)
	if div <= 0 {
		return max(minRate, int(c.BaseRate))
	}
	rate := int(math.Floor(c.BaseRate / div))
	return max(minRate, rate)
}
