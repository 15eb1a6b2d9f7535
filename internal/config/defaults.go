package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner tuning.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:        1024,
			Height:       600,
			GroundHeight: 60,
		},
		Player: PlayerConfig{
			X:                    100,
			Width:                30,
			Height:               50,
			StartLives:           3,
			MaxLives:             5,
			HitInvincibility:     180,
			PowerUpInvincibility: 240,
		},
		Physics: PhysicsConfig{
			Gravity:           0.8,
			JumpImpulse:       -18,
			DoubleJumpImpulse: -16,
		},
		Storm: StormConfig{
			CatchUpRate:      0.08,
			RecoveryRate:     0.06,
			DangerZone:       85,
			SpeedMultiplier:  1.1,
			GroundedPenalty:  0.9,
			RecoveryProgress: 40,
		},
		Difficulty: DifficultyConfig{
			Enabled:             true,
			InitialSpeed:        1.0,
			ScorePerLevel:       700,
			LevelSpeedStep:      0.3,
			ContinuousSpeedStep: 0.0002,
			FlyingLevel:         2,
			BoulderLevel:        3,
		},
		Spawn: SpawnConfig{
			Obstacles: SpawnCategory{BaseRate: 80, MinRate: 15, DifficultyFactor: 0.08, Chance: 0.6, BaseSpeed: 5},
			PowerUps:  SpawnCategory{BaseRate: 120, MinRate: 1, Chance: 0.4, BaseSpeed: 5},
			Coins:     SpawnCategory{BaseRate: 70, MinRate: 1, Chance: 0.6, BaseSpeed: 5},
		},
		Entities: EntityConfig{
			Standard: SizeRange{MinWidth: 20, MaxWidth: 40, MinHeight: 20, MaxHeight: 50},
			Flying: FlyingConfig{
				Size:      SizeRange{MinWidth: 40, MaxWidth: 60, MinHeight: 20, MaxHeight: 40},
				MinOffset: 50,
				MaxOffset: 150,
				MinBob:    10,
				MaxBob:    30,
				BobPeriod: 76,
			},
			Boulder: BoulderConfig{MinSize: 40, MaxSize: 60, MinSpin: 2, MaxSpin: 5},
			PowerUp: PickupConfig{Size: 25, MinOffset: 0, MaxOffset: 100},
			Coin:    PickupConfig{Size: 15, MinOffset: 20, MaxOffset: 120, Value: 1},
		},
		Scoring: ScoringConfig{
			PerTick:        1,
			CoinMultiplier: 10,
			ScoreBoost:     100,
		},
		Weather: WeatherConfig{
			LightningThreshold: 50,
			MinStrikeInterval:  300,
			MaxStrikeInterval:  1000,
			MinFlash:           10,
			MaxFlash:           20,
		},
	}
}

// ClassicRunnerConfig returns the original, harsher tuning: lower jumps, a
// faster storm, quicker level-ups and ground obstacles only.
func ClassicRunnerConfig() RunnerConfig {
	cfg := DefaultRunnerConfig()

	cfg.Player.HitInvincibility = 120
	cfg.Player.PowerUpInvincibility = 180

	cfg.Physics.JumpImpulse = -15
	cfg.Physics.DoubleJumpImpulse = -13

	cfg.Storm.CatchUpRate = 0.1
	cfg.Storm.RecoveryRate = 0.05
	cfg.Storm.DangerZone = 80
	cfg.Storm.SpeedMultiplier = 1.2
	cfg.Storm.RecoveryProgress = 50

	cfg.Difficulty.ScorePerLevel = 500
	cfg.Difficulty.LevelSpeedStep = 0.5
	cfg.Difficulty.ContinuousSpeedStep = 0.0005
	cfg.Difficulty.FlyingLevel = 0
	cfg.Difficulty.BoulderLevel = 0

	cfg.Spawn.Obstacles = SpawnCategory{BaseRate: 60, MinRate: 10, DifficultyFactor: 0.1, Chance: 0.7, BaseSpeed: 5}
	cfg.Spawn.PowerUps = SpawnCategory{BaseRate: 180, MinRate: 1, Chance: 0.3, BaseSpeed: 5}
	cfg.Spawn.Coins = SpawnCategory{BaseRate: 90, MinRate: 1, Chance: 0.5, BaseSpeed: 5}

	return cfg
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}

// Tuning profiles bundled with the game.
const (
	Profile3D      = "3d"
	ProfileClassic = "classic"
)

// ProfileConfig returns the named tuning profile.
func ProfileConfig(name string) (RunnerConfig, bool) {
	switch name {
	case Profile3D, "":
		return DefaultRunnerConfig(), true
	case ProfileClassic:
		return ClassicRunnerConfig(), true
	default:
		return RunnerConfig{}, false
	}
}
