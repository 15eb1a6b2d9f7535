package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/storm-runner/internal/config"
)

// scriptedRand replays fixed draws. Once a script runs out, Float64 returns
// 0.99 (every chance roll fails) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// alwaysRand returns the same draws forever.
type alwaysRand struct {
	f float64
	i int
}

func (r alwaysRand) Float64() float64 { return r.f }
func (r alwaysRand) Intn(n int) int   { return r.i % n }

// quietConfig is the default tuning with progression off.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	config.ApplyRunnerPreset(&cfg, config.DifficultyFixed)
	return cfg
}

// newPlayingSession returns a session that never spawns anything and is
// already past the title screen.
func newPlayingSession(t *testing.T, cfg config.RunnerConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg, &scriptedRand{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Advance(IntentStart)
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", s.State())
	}
	return s
}

func newSeededSession(t *testing.T, cfg config.RunnerConfig, seed int64) *Session {
	t.Helper()
	s, err := NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// overlapping returns an obstacle of the given kind covering the player.
func overlapping(s *Session, category Category) Entity {
	p := s.player
	return Entity{Category: category, X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
