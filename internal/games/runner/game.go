package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
	"github.com/vovakirdan/storm-runner/internal/registry"
)

// Registered game IDs.
const (
	IDStorm        = "storm"
	IDStormClassic = "storm_classic"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the game registry.
type Game struct {
	id      string
	title   string
	profile string
	preset  config.DifficultyPreset // Overrides the package preset when set
	runtime core.RuntimeConfig
	session *Session
	last    Snapshot

	configErr error
}

// New creates a Storm Runner game with the default tuning.
func New() *Game {
	return &Game{id: IDStorm, title: "Storm Runner", profile: config.Profile3D}
}

// NewClassic creates a Storm Runner game with the classic tuning.
func NewClassic() *Game {
	return &Game{id: IDStormClassic, title: "Storm Runner Classic", profile: config.ProfileClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetPreset pins the difficulty preset for this instance. Unknown names
// fall back to the package-wide preset. Takes effect on the next Reset.
func (g *Game) SetPreset(name string) {
	g.preset = config.ParsePreset(name)
}

// Preset returns the difficulty preset the next Reset will apply.
func (g *Game) Preset() string {
	if g.preset != "" {
		return string(g.preset)
	}
	return string(difficultyPreset)
}

// LoadConfig resolves the tuning this game runs with: profile, config
// files and difficulty preset, in that order. A config file that cannot be
// read or parsed, or tuning that fails validation, is an error.
func (g *Game) LoadConfig() (config.RunnerConfig, error) {
	base, ok := config.ProfileConfig(g.profile)
	if !ok {
		return base, fmt.Errorf("runner: invalid config: unknown profile %q", g.profile)
	}
	if g.profile == config.Profile3D {
		base = config.LoadDefault()
	}

	cfg, err := config.LoadRunner(configPath, base)
	if err != nil {
		return base, fmt.Errorf("runner: invalid config: %w", err)
	}

	// Apply difficulty preset if set
	if preset := config.DifficultyPreset(g.Preset()); preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("runner: invalid config: %w", err)
	}
	return cfg, nil
}

// CheckConfig resolves the tuning of every variant with the current config
// path and preset, and returns the first error.
func CheckConfig() error {
	for _, g := range []*Game{New(), NewClassic()} {
		if _, err := g.LoadConfig(); err != nil {
			return err
		}
	}
	return nil
}

// ConfigErr returns the error the last Reset hit while resolving the tuning.
// The session then runs on the profile defaults.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Reset starts a fresh session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	cfg, err := g.LoadConfig()
	g.configErr = err
	session, err := NewSession(cfg, rng)
	if err != nil {
		// The profile defaults always validate.
		base, _ := config.ProfileConfig(g.profile)
		session, _ = NewSession(base, rng)
	}
	g.session = session
	g.last = session.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = g.session.Advance(IntentsFor(in)...)

	var events []string
	for _, e := range g.last.Events {
		events = append(events, e.String())
	}
	return core.StepResult{State: g.State(), Events: events}
}

// IntentsFor maps platform actions to session intents. Quit comes last so
// the other intents of the same frame still apply.
func IntentsFor(in core.InputFrame) []Intent {
	var intents []Intent
	if in.Has(core.ActionConfirm) {
		intents = append(intents, IntentStart)
	}
	if in.Has(core.ActionRestart) {
		intents = append(intents, IntentReset)
	}
	if in.Has(core.ActionPause) {
		intents = append(intents, IntentPauseToggle)
	}
	if in.Has(core.ActionJump) {
		intents = append(intents, IntentJump)
	}
	if in.Has(core.ActionQuit) {
		intents = append(intents, IntentQuit)
	}
	return intents
}

// Snapshot returns the state after the last step.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Digest returns the determinism hash of the current state.
func (g *Game) Digest() uint64 {
	return g.last.Hash()
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		Coins:    g.last.Coins,
		Lives:    g.last.Lives,
		GameOver: g.last.State == StateGameOver,
		Paused:   g.last.State == StatePaused,
		Quit:     g.last.Quit,
	}
}

// Register the game variants with the registry
func init() {
	registry.Register(IDStorm, func() registry.Game {
		return New()
	})
	registry.Register(IDStormClassic, func() registry.Game {
		return NewClassic()
	})
}
