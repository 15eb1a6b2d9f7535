package runner

import (
	"testing"

	"github.com/vovakirdan/storm-runner/internal/config"
)

func TestWeatherCalmBelowThreshold(t *testing.T) {
	w := NewWeather(config.DefaultRunnerConfig().Weather, alwaysRand{})
	for range 2000 {
		if w.Update(49) {
			t.Fatal("lightning below the threshold")
		}
	}
	if w.Intensity != 49 {
		t.Errorf("intensity = %v, want storm progress", w.Intensity)
	}
}

func TestWeatherLightningSchedule(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Weather
	w := NewWeather(cfg, alwaysRand{})

	// The first update arms the minimum interval, the strike lands that many ticks later.
	strikes := 0
	strikeTick := 0
	for tick := 1; tick <= cfg.MinStrikeInterval+1; tick++ {
		if w.Update(80) {
			strikes++
			strikeTick = tick
		}
	}
	if strikes != 1 || strikeTick != cfg.MinStrikeInterval+1 {
		t.Fatalf("strikes = %d at tick %d", strikes, strikeTick)
	}
	if !w.Flashing() {
		t.Fatal("a strike should start a flash")
	}

	for range cfg.MinFlash {
		w.Update(80)
	}
	if w.Flashing() {
		t.Error("flash should fade after the minimum flash duration")
	}

	w.Reset()
	if w.Intensity != 0 || w.Flashing() {
		t.Error("reset should calm the weather")
	}
}
