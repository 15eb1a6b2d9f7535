package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a RunnerConfig.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: " + strings.Join(e.Problems, "; ")
}

type validator struct {
	problems []string
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.problems = append(v.problems, fmt.Sprintf(format, args...))
	}
}

func (v *validator) spawn(name string, c SpawnCategory) {
	v.check(c.BaseRate > 0, "spawn.%s.base_rate must be positive, got %v", name, c.BaseRate)
	v.check(c.MinRate >= 1, "spawn.%s.min_rate must be at least 1, got %v", name, c.MinRate)
	v.check(c.DifficultyFactor >= 0, "spawn.%s.difficulty_factor must not be negative, got %v", name, c.DifficultyFactor)
	v.check(c.Chance >= 0 && c.Chance <= 1, "spawn.%s.chance must be within [0, 1], got %v", name, c.Chance)
	v.check(c.BaseSpeed >= 0, "spawn.%s.base_speed must not be negative, got %v", name, c.BaseSpeed)
}

func (v *validator) intRange(name string, lo, hi int) {
	v.check(lo > 0, "%s minimum must be positive, got %d", name, lo)
	v.check(lo <= hi, "%s minimum %d exceeds maximum %d", name, lo, hi)
}

func (v *validator) sizes(name string, s SizeRange) {
	v.intRange(name+" width", s.MinWidth, s.MaxWidth)
	v.intRange(name+" height", s.MinHeight, s.MaxHeight)
}

func (v *validator) pickup(name string, p PickupConfig) {
	v.check(p.Size > 0, "entities.%s.size must be positive, got %d", name, p.Size)
	v.check(p.MinOffset >= 0, "entities.%s.min_offset must not be negative, got %d", name, p.MinOffset)
	v.check(p.MinOffset <= p.MaxOffset, "entities.%s.min_offset %d exceeds max_offset %d", name, p.MinOffset, p.MaxOffset)
}

// Validate checks the configuration for values the simulation cannot run with.
// It returns a *ValidationError describing every problem, or nil.
func (c RunnerConfig) Validate() error {
	v := &validator{}

	f := c.Field
	v.check(f.Width > 0 && f.Height > 0, "field dimensions must be positive, got %vx%v", f.Width, f.Height)
	v.check(f.GroundHeight >= 0 && f.GroundHeight < f.Height, "field.ground_height must be within [0, height), got %v", f.GroundHeight)

	p := c.Player
	v.check(p.Width > 0 && p.Height > 0, "player dimensions must be positive, got %vx%v", p.Width, p.Height)
	v.check(p.X >= 0, "player.x must not be negative, got %v", p.X)
	v.check(p.StartLives >= 1, "player.start_lives must be at least 1, got %d", p.StartLives)
	v.check(p.MaxLives >= p.StartLives, "player.max_lives %d is below start_lives %d", p.MaxLives, p.StartLives)
	v.check(p.HitInvincibility >= 0, "player.hit_invincibility must not be negative, got %d", p.HitInvincibility)
	v.check(p.PowerUpInvincibility >= 0, "player.powerup_invincibility must not be negative, got %d", p.PowerUpInvincibility)

	ph := c.Physics
	v.check(ph.Gravity > 0, "physics.gravity must be positive, got %v", ph.Gravity)
	v.check(ph.JumpImpulse < 0, "physics.jump_impulse must be negative (upwards), got %v", ph.JumpImpulse)
	v.check(ph.DoubleJumpImpulse <= 0, "physics.double_jump_impulse must not be positive, got %v", ph.DoubleJumpImpulse)
	v.check(ph.MaxFallSpeed >= 0, "physics.max_fall_speed must not be negative, got %v", ph.MaxFallSpeed)

	s := c.Storm
	v.check(s.CatchUpRate >= 0, "storm.catchup_rate must not be negative, got %v", s.CatchUpRate)
	v.check(s.RecoveryRate >= 0, "storm.recovery_rate must not be negative, got %v", s.RecoveryRate)
	v.check(s.DangerZone > 0 && s.DangerZone <= 100, "storm.danger_zone must be within (0, 100], got %v", s.DangerZone)
	v.check(s.SpeedMultiplier > 0, "storm.speed_multiplier must be positive, got %v", s.SpeedMultiplier)
	v.check(s.GroundedPenalty > 0 && s.GroundedPenalty <= 1, "storm.grounded_penalty must be within (0, 1], got %v", s.GroundedPenalty)
	v.check(s.RecoveryProgress >= 0 && s.RecoveryProgress < 100, "storm.recovery_progress must be within [0, 100), got %v", s.RecoveryProgress)

	d := c.Difficulty
	v.check(d.ScorePerLevel >= 1, "difficulty.score_per_level must be at least 1, got %d", d.ScorePerLevel)
	v.check(d.InitialSpeed > 0, "difficulty.initial_speed must be positive, got %v", d.InitialSpeed)
	v.check(d.LevelSpeedStep >= 0, "difficulty.level_speed_step must not be negative, got %v", d.LevelSpeedStep)
	v.check(d.ContinuousSpeedStep >= 0, "difficulty.continuous_speed_step must not be negative, got %v", d.ContinuousSpeedStep)
	v.check(d.FlyingLevel >= 0 && d.BoulderLevel >= 0, "difficulty unlock levels must not be negative")

	v.spawn("obstacles", c.Spawn.Obstacles)
	v.spawn("powerups", c.Spawn.PowerUps)
	v.spawn("coins", c.Spawn.Coins)

	e := c.Entities
	v.sizes("entities.standard", e.Standard)
	v.sizes("entities.flying.size", e.Flying.Size)
	v.check(e.Flying.MinOffset >= 0 && e.Flying.MinOffset <= e.Flying.MaxOffset,
		"entities.flying offsets must satisfy 0 <= min <= max, got %d..%d", e.Flying.MinOffset, e.Flying.MaxOffset)
	v.check(e.Flying.MinBob >= 0 && e.Flying.MinBob <= e.Flying.MaxBob,
		"entities.flying bob must satisfy 0 <= min <= max, got %d..%d", e.Flying.MinBob, e.Flying.MaxBob)
	v.check(e.Flying.BobPeriod >= 2, "entities.flying.bob_period must be at least 2, got %d", e.Flying.BobPeriod)
	v.intRange("entities.boulder size", e.Boulder.MinSize, e.Boulder.MaxSize)
	v.check(e.Boulder.MinSpin >= 0 && e.Boulder.MinSpin <= e.Boulder.MaxSpin,
		"entities.boulder spin must satisfy 0 <= min <= max, got %v..%v", e.Boulder.MinSpin, e.Boulder.MaxSpin)
	v.pickup("powerup", e.PowerUp)
	v.pickup("coin", e.Coin)
	v.check(e.Coin.Value >= 1, "entities.coin.value must be at least 1, got %d", e.Coin.Value)

	sc := c.Scoring
	v.check(sc.PerTick >= 0 && sc.CoinMultiplier >= 0 && sc.ScoreBoost >= 0, "scoring values must not be negative")

	w := c.Weather
	v.check(w.LightningThreshold >= 0 && w.LightningThreshold <= 100, "weather.lightning_threshold must be within [0, 100], got %v", w.LightningThreshold)
	v.check(w.MinStrikeInterval >= 1 && w.MinStrikeInterval <= w.MaxStrikeInterval,
		"weather strike interval must satisfy 1 <= min <= max, got %d..%d", w.MinStrikeInterval, w.MaxStrikeInterval)
	v.check(w.MinFlash >= 1 && w.MinFlash <= w.MaxFlash,
		"weather flash must satisfy 1 <= min <= max, got %d..%d", w.MinFlash, w.MaxFlash)

	if len(v.problems) > 0 {
		return &ValidationError{Problems: v.problems}
	}
	return nil
}
