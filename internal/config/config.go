// Package config provides YAML-based tuning for the runner simulation:
// types, embedded defaults, file loading, presets and validation.
package config

// RunnerConfig contains every tunable of the runner simulation.
// All distances are world units; all durations are ticks.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Storm      StormConfig      `yaml:"storm"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Entities   EntityConfig     `yaml:"entities"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Weather    WeatherConfig    `yaml:"weather"`
}

// FieldConfig defines the visible play field.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground line.
func (f FieldConfig) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// PlayerConfig defines the player's body and survivability.
type PlayerConfig struct {
	X                    float64 `yaml:"x"`
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	StartLives           int     `yaml:"start_lives"`
	MaxLives             int     `yaml:"max_lives"`
	HitInvincibility     int     `yaml:"hit_invincibility"`     // Ticks of protection after taking damage
	PowerUpInvincibility int     `yaml:"powerup_invincibility"` // Ticks granted by the invincibility power-up
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	DoubleJumpImpulse float64 `yaml:"double_jump_impulse"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"` // 0 = uncapped
}

// StormConfig defines the pursuit meter.
type StormConfig struct {
	CatchUpRate      float64 `yaml:"catchup_rate"`
	RecoveryRate     float64 `yaml:"recovery_rate"`
	DangerZone       float64 `yaml:"danger_zone"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Storm speed = game speed * multiplier
	GroundedPenalty  float64 `yaml:"grounded_penalty"`  // Player speed factor while not airborne
	RecoveryProgress float64 `yaml:"recovery_progress"` // Progress after a survived storm strike
}

// DifficultyConfig defines speed and level progression.
type DifficultyConfig struct {
	Enabled             bool    `yaml:"enabled"`
	InitialSpeed        float64 `yaml:"initial_speed"`
	ScorePerLevel       int     `yaml:"score_per_level"`
	LevelSpeedStep      float64 `yaml:"level_speed_step"`
	ContinuousSpeedStep float64 `yaml:"continuous_speed_step"`
	FlyingLevel         int     `yaml:"flying_level"`  // 0 = never unlocked
	BoulderLevel        int     `yaml:"boulder_level"` // 0 = never unlocked
}

// SpawnConfig holds one spawn schedule per entity category.
type SpawnConfig struct {
	Obstacles SpawnCategory `yaml:"obstacles"`
	PowerUps  SpawnCategory `yaml:"powerups"`
	Coins     SpawnCategory `yaml:"coins"`
}

// SpawnCategory defines when and how fast entities of one category appear.
type SpawnCategory struct {
	BaseRate         float64 `yaml:"base_rate"`
	MinRate          float64 `yaml:"min_rate"`
	DifficultyFactor float64 `yaml:"difficulty_factor"`
	Chance           float64 `yaml:"chance"`
	BaseSpeed        float64 `yaml:"base_speed"`
}

// EntityConfig defines entity geometry.
type EntityConfig struct {
	Standard SizeRange     `yaml:"standard"`
	Flying   FlyingConfig  `yaml:"flying"`
	Boulder  BoulderConfig `yaml:"boulder"`
	PowerUp  PickupConfig  `yaml:"powerup"`
	Coin     PickupConfig  `yaml:"coin"`
}

// SizeRange is an inclusive width/height range.
type SizeRange struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// FlyingConfig defines airborne obstacles.
type FlyingConfig struct {
	Size      SizeRange `yaml:"size"`
	MinOffset int       `yaml:"min_offset"` // Height above ground
	MaxOffset int       `yaml:"max_offset"`
	MinBob    int       `yaml:"min_bob"` // Oscillation amplitude
	MaxBob    int       `yaml:"max_bob"`
	BobPeriod int       `yaml:"bob_period"` // Ticks for a full up-down cycle
}

// BoulderConfig defines rolling boulders.
type BoulderConfig struct {
	MinSize int     `yaml:"min_size"`
	MaxSize int     `yaml:"max_size"`
	MinSpin float64 `yaml:"min_spin"` // Degrees per tick
	MaxSpin float64 `yaml:"max_spin"`
}

// PickupConfig defines coins and power-ups.
type PickupConfig struct {
	Size      int `yaml:"size"`
	MinOffset int `yaml:"min_offset"`
	MaxOffset int `yaml:"max_offset"`
	Value     int `yaml:"value"` // Coins only
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PerTick        int `yaml:"per_tick"`
	CoinMultiplier int `yaml:"coin_multiplier"`
	ScoreBoost     int `yaml:"score_boost"`
}

// WeatherConfig defines the lightning schedule driven by storm intensity.
type WeatherConfig struct {
	LightningThreshold float64 `yaml:"lightning_threshold"`
	MinStrikeInterval  int     `yaml:"min_strike_interval"`
	MaxStrikeInterval  int     `yaml:"max_strike_interval"`
	MinFlash           int     `yaml:"min_flash"`
	MaxFlash           int     `yaml:"max_flash"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
