package runner

import (
	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// Weather follows the storm: its intensity is the storm progress, and above
// the lightning threshold strikes happen at random intervals.
type Weather struct {
	Intensity float64

	cfg    config.WeatherConfig
	rng    core.Rand
	strike core.Countdown // Ticks until the next strike
	flash  core.Countdown // Ticks the current flash stays visible
}

// NewWeather creates calm weather.
func NewWeather(cfg config.WeatherConfig, rng core.Rand) *Weather {
	return &Weather{cfg: cfg, rng: rng}
}

// Update sets the intensity from storm progress and runs the lightning
// schedule. Returns true on the tick lightning strikes.
func (w *Weather) Update(stormProgress float64) bool {
	w.Intensity = stormProgress
	w.flash.Tick()

	if w.Intensity < w.cfg.LightningThreshold {
		w.strike.Stop()
		return false
	}

	if !w.strike.Active() {
		w.strike.Start(core.RandRange(w.rng, w.cfg.MinStrikeInterval, w.cfg.MaxStrikeInterval))
		return false
	}
	if !w.strike.Tick() {
		return false
	}

	w.flash.Start(core.RandRange(w.rng, w.cfg.MinFlash, w.cfg.MaxFlash))
	return true
}

// Flashing reports whether a lightning flash is visible.
func (w *Weather) Flashing() bool {
	return w.flash.Active()
}

// Reset clears intensity and pending strikes.
func (w *Weather) Reset() {
	w.Intensity = 0
	w.strike.Stop()
	w.flash.Stop()
}
