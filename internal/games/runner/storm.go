package runner

import (
	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// MaxStormProgress is the progress at which the storm strikes the player.
const MaxStormProgress = 100.0

// StormMeter tracks how close the pursuing storm is, from 0 (far) to 100 (caught).
type StormMeter struct {
	Progress float64
	cfg      config.StormConfig
}

// NewStormMeter creates an empty meter.
func NewStormMeter(cfg config.StormConfig) StormMeter {
	return StormMeter{cfg: cfg}
}

// Speeds returns the player and storm speeds for a game speed. Runners on
// the ground are slowed by the grounded penalty.
func (m *StormMeter) Speeds(gameSpeed float64, airborne bool) (player, storm float64) {
	player = gameSpeed
	if !airborne {
		player *= m.cfg.GroundedPenalty
	}
	return player, gameSpeed * m.cfg.SpeedMultiplier
}

// Update integrates the speed difference for one tick. It returns true when
// the storm has caught the player (progress reached 100).
func (m *StormMeter) Update(playerSpeed, stormSpeed float64) bool {
	// The conversions round each product so no target fuses it into an FMA.
	delta := stormSpeed - playerSpeed
	if delta > 0 {
		m.Progress += float64(delta * m.cfg.CatchUpRate)
	} else {
		m.Progress = max(0, m.Progress+float64(delta*m.cfg.RecoveryRate))
	}
	m.Progress = core.ClampF(m.Progress, 0, MaxStormProgress)
	return m.Progress >= MaxStormProgress
}

// Recover pushes the storm back after it struck a surviving player.
func (m *StormMeter) Recover() {
	m.Progress = m.cfg.RecoveryProgress
}

// InDanger reports whether the storm is inside the danger zone.
func (m *StormMeter) InDanger() bool {
	return m.Progress >= m.cfg.DangerZone
}

// Reset empties the meter.
func (m *StormMeter) Reset() {
	m.Progress = 0
}
