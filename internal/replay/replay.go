// Package replay records the input trace of a game session and re-simulates
// recorded runs headlessly to verify their final digest.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/registry"
	"github.com/vovakirdan/storm-runner/internal/storage"
)

// ErrNotReplayable is returned for games that do not expose a digest.
var ErrNotReplayable = errors.New("replay: game does not support digests")

// Recorder collects the non-empty input frames of a session, keyed by the
// index of the Step call they were fed to.
type Recorder struct {
	gameID string
	player string
	preset string
	seed   int64
	steps  int
	trace  []storage.TraceStep
}

// NewRecorder creates a recorder for a session started with the given seed.
func NewRecorder(gameID, player string, seed int64, preset string) *Recorder {
	return &Recorder{gameID: gameID, player: player, seed: seed, preset: preset}
}

// Record notes the frame passed to the next Step call. Call it exactly once
// per Step, empty frames included.
func (r *Recorder) Record(in core.InputFrame) {
	if !in.Empty() {
		actions := in.Triggered()
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		r.trace = append(r.trace, storage.TraceStep{Step: r.steps, Actions: names})
	}
	r.steps++
}

// Steps returns the number of recorded Step calls.
func (r *Recorder) Steps() int {
	return r.steps
}

// Seed returns the seed the session was reset with.
func (r *Recorder) Seed() int64 {
	return r.seed
}

// Run builds a storage row for the session as it is now.
func (r *Recorder) Run(state core.GameState, digest uint64) storage.Run {
	trace := make([]storage.TraceStep, len(r.trace))
	copy(trace, r.trace)
	return storage.Run{
		GameID: r.gameID,
		Player: r.player,
		Seed:   r.seed,
		Preset: r.preset,
		Steps:  r.steps,
		Score:  state.Score,
		Coins:  state.Coins,
		Digest: digest,
		Trace:  trace,
	}
}

// Frame rebuilds an input frame from recorded action names.
func Frame(actions []string) (core.InputFrame, error) {
	in := core.NewInputFrame()
	for _, name := range actions {
		a, ok := core.ParseAction(name)
		if !ok {
			return in, fmt.Errorf("replay: unknown action %q", name)
		}
		in.Set(a)
	}
	return in, nil
}

// Result is the outcome of re-simulating a run.
type Result struct {
	Digest uint64
	State  core.GameState
	Match  bool
}

// Play resets game with the run's seed and preset, then feeds it the
// recorded trace.
func Play(game registry.Game, run storage.Run, runtime core.RuntimeConfig) (Result, error) {
	replayable, ok := game.(registry.Replayable)
	if !ok {
		return Result{}, ErrNotReplayable
	}

	frames := make(map[int]core.InputFrame, len(run.Trace))
	for _, ts := range run.Trace {
		if ts.Step < 0 || ts.Step >= run.Steps {
			return Result{}, fmt.Errorf("replay: trace step %d outside run of %d steps", ts.Step, run.Steps)
		}
		in, err := Frame(ts.Actions)
		if err != nil {
			return Result{}, err
		}
		frames[ts.Step] = in
	}

	tunable, _ := game.(registry.Tunable)
	if tunable != nil {
		tunable.SetPreset(run.Preset)
	}
	runtime.Seed = run.Seed
	game.Reset(runtime)
	if tunable != nil {
		if err := tunable.ConfigErr(); err != nil {
			return Result{}, err
		}
	}

	empty := core.NewInputFrame()
	for step := range run.Steps {
		in, ok := frames[step]
		if !ok {
			in = empty
		}
		game.Step(in)
	}

	digest := replayable.Digest()
	return Result{
		Digest: digest,
		State:  game.State(),
		Match:  digest == run.Digest,
	}, nil
}

// Verify creates the run's game from the registry and replays it.
func Verify(run storage.Run, runtime core.RuntimeConfig) (Result, error) {
	game, err := registry.Create(run.GameID)
	if err != nil {
		return Result{}, err
	}
	return Play(game, run, runtime)
}
