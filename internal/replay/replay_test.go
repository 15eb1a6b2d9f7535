package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/games/runner"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

func runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// recordSession plays a scripted session and returns the recorded run.
func recordSession(t *testing.T, seed int64, steps int) storage.Run {
	t.Helper()

	g := runner.New()
	g.Reset(runtime(seed))
	rec := NewRecorder(g.ID(), "tester", seed, "")

	for i := range steps {
		in := core.NewInputFrame()
		switch {
		case i == 3:
			in.Set(core.ActionConfirm)
		case i%40 == 0:
			in.Set(core.ActionJump)
		case i%40 == 5:
			in.Set(core.ActionJump)
		}
		rec.Record(in)
		g.Step(in)
	}
	return rec.Run(g.State(), g.Digest())
}

func TestRecorderTrace(t *testing.T) {
	rec := NewRecorder("storm", "p", 7, "easy")

	rec.Record(core.NewInputFrame())
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionConfirm)
	rec.Record(in)
	rec.Record(core.NewInputFrame())

	run := rec.Run(core.GameState{Score: 12, Coins: 3}, 99)
	if run.Steps != 3 {
		t.Errorf("Steps = %d, want 3", run.Steps)
	}
	if len(run.Trace) != 1 {
		t.Fatalf("trace length = %d, want 1", len(run.Trace))
	}
	ts := run.Trace[0]
	if ts.Step != 1 {
		t.Errorf("trace step = %d, want 1", ts.Step)
	}
	if len(ts.Actions) != 2 || ts.Actions[0] != "Jump" || ts.Actions[1] != "Confirm" {
		t.Errorf("actions = %v, want [Jump Confirm]", ts.Actions)
	}
	if run.Seed != 7 || run.Preset != "easy" || run.Player != "p" || run.GameID != "storm" {
		t.Errorf("run metadata = %+v", run)
	}
	if run.Score != 12 || run.Coins != 3 || run.Digest != 99 {
		t.Errorf("run result = %d/%d/%d", run.Score, run.Coins, run.Digest)
	}

	// The run must not alias the recorder's trace.
	run.Trace[0].Step = 42
	if again := rec.Run(core.GameState{}, 0); again.Trace[0].Step != 1 {
		t.Error("Run shares its trace with the recorder")
	}
}

func TestPlayReproducesDigest(t *testing.T) {
	run := recordSession(t, 1234, 900)

	res, err := Play(runner.New(), run, runtime(0))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Match {
		t.Errorf("digest mismatch: got %x, want %x", res.Digest, run.Digest)
	}
	if res.State.Score != run.Score || res.State.Coins != run.Coins {
		t.Errorf("replayed score/coins = %d/%d, want %d/%d",
			res.State.Score, res.State.Coins, run.Score, run.Coins)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	run := recordSession(t, 99, 300)
	run.Digest ^= 1

	res, err := Verify(run, runtime(0))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.Match {
		t.Error("tampered digest still matches")
	}
}

func TestVerifyUnknownGame(t *testing.T) {
	if _, err := Verify(storage.Run{GameID: "nope"}, runtime(0)); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestPlayRejectsBadTrace(t *testing.T) {
	tests := []struct {
		name  string
		trace []storage.TraceStep
	}{
		{"unknown action", []storage.TraceStep{{Step: 0, Actions: []string{"Fly"}}}},
		{"step past end", []storage.TraceStep{{Step: 10, Actions: []string{"Jump"}}}},
		{"negative step", []storage.TraceStep{{Step: -1, Actions: []string{"Jump"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := storage.Run{GameID: runner.IDStorm, Steps: 10, Trace: tt.trace}
			if _, err := Play(runner.New(), run, runtime(0)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

type plainGame struct{}

func (plainGame) ID() string                           { return "plain" }
func (plainGame) Title() string                        { return "Plain" }
func (plainGame) Reset(core.RuntimeConfig)             {}
func (plainGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (plainGame) Render(*core.Screen)                  {}
func (plainGame) State() core.GameState                { return core.GameState{} }

func TestPlayRequiresDigest(t *testing.T) {
	_, err := Play(plainGame{}, storage.Run{}, runtime(0))
	if !errors.Is(err, ErrNotReplayable) {
		t.Errorf("err = %v, want ErrNotReplayable", err)
	}
}

func TestPlayAppliesPreset(t *testing.T) {
	g := runner.New()
	g.SetPreset("hard")
	g.Reset(runtime(5))
	rec := NewRecorder(g.ID(), "tester", 5, g.Preset())

	for i := range 400 {
		in := core.NewInputFrame()
		if i == 0 {
			in.Set(core.ActionConfirm)
		}
		rec.Record(in)
		g.Step(in)
	}
	run := rec.Run(g.State(), g.Digest())
	if run.Preset != "hard" {
		t.Fatalf("recorded preset = %q, want hard", run.Preset)
	}

	replayed := runner.New()
	res, err := Play(replayed, run, runtime(0))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !res.Match {
		t.Error("replay with the recorded preset should match")
	}
	if replayed.Session().Config().Player.StartLives != 2 {
		t.Errorf("replay start lives = %d, want hard preset's 2", replayed.Session().Config().Player.StartLives)
	}
}

func TestPlayFailsOnInvalidConfig(t *testing.T) {
	run := recordSession(t, 8, 60)

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	runner.SetConfigPath(path)
	defer runner.SetConfigPath("")

	if _, err := Play(runner.New(), run, runtime(0)); err == nil {
		t.Error("Play should fail when the config does not validate")
	}
}
