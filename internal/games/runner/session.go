// Package runner implements Storm Runner, an endless runner in which the
// player jumps over obstacles, collects coins and power-ups, and stays ahead
// of a pursuing storm.
//
// Session is the deterministic simulation: one Advance call is one fixed
// tick. Game adapts a Session to the game registry.
package runner

import (
	"fmt"

	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// State is the session's position in the title/playing/paused/game-over cycle.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intent is a player command sampled between ticks.
type Intent int

const (
	IntentStart Intent = iota
	IntentJump
	IntentPauseToggle
	IntentReset
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentStart:
		return "start"
	case IntentJump:
		return "jump"
	case IntentPauseToggle:
		return "pause_toggle"
	case IntentReset:
		return "reset"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseIntent converts an intent name back to an Intent.
func ParseIntent(name string) (Intent, bool) {
	for i := IntentStart; i <= IntentQuit; i++ {
		if i.String() == name {
			return i, true
		}
	}
	return 0, false
}

// Session owns one run of the game: the player, the storm, the entity
// collections and the state machine. It is not safe for concurrent use.
type Session struct {
	cfg    config.RunnerConfig
	rng    core.Rand
	policy *config.DifficultyPolicy

	state   State
	quit    bool
	tick    uint64
	speed   float64
	level   int
	groundY float64

	player    *Player
	storm     StormMeter
	weather   *Weather
	spawner   *Spawner
	obstacles []Entity
	powerUps  []Entity
	coins     []Entity

	highScore int
	highCoins int

	events []Event
}

// NewSession validates the configuration and creates a session on the title screen.
func NewSession(cfg config.RunnerConfig, rng core.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: invalid config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("runner: nil random source")
	}

	s := &Session{
		cfg:    cfg,
		rng:    rng,
		policy: config.NewDifficultyPolicy(cfg.Difficulty),
	}
	s.spawner = NewSpawner(&s.cfg, s.policy, rng)
	s.weather = NewWeather(cfg.Weather, rng)
	s.newRun()
	s.state = StateTitle
	return s, nil
}

// newRun puts every per-run value back to its starting point.
// High score and high coins survive.
func (s *Session) newRun() {
	s.tick = 0
	s.speed = s.policy.InitialSpeed()
	s.level = 1
	s.groundY = s.cfg.Field.GroundY()
	s.player = NewPlayer(s.cfg)
	s.storm = NewStormMeter(s.cfg.Storm)
	s.weather.Reset()
	s.spawner.Reset()
	s.obstacles = s.obstacles[:0]
	s.powerUps = s.powerUps[:0]
	s.coins = s.coins[:0]
}

// Reset restarts a finished run. It has no effect outside game over.
func (s *Session) Reset() bool {
	if s.state != StateGameOver {
		return false
	}
	s.newRun()
	s.state = StatePlaying
	s.emit(Event{Kind: EventRestart})
	return true
}

// Advance applies the intents in order and then, if the session is playing,
// simulates one tick. It returns the resulting state.
func (s *Session) Advance(intents ...Intent) Snapshot {
	s.events = s.events[:0]

	if s.quit {
		return s.Snapshot()
	}

	for _, in := range intents {
		s.apply(in)
		if s.quit {
			return s.Snapshot()
		}
	}

	if s.state == StatePlaying {
		s.step()
	}

	return s.Snapshot()
}

func (s *Session) apply(in Intent) {
	switch in {
	case IntentStart:
		switch s.state {
		case StateTitle:
			s.state = StatePlaying
			s.emit(Event{Kind: EventStart})
		case StateGameOver:
			s.Reset()
		}
	case IntentJump:
		if s.state != StatePlaying {
			return
		}
		switch s.player.Jump() {
		case JumpSingle:
			s.emit(Event{Kind: EventJump})
		case JumpDouble:
			s.emit(Event{Kind: EventDoubleJump})
		}
	case IntentPauseToggle:
		switch s.state {
		case StatePlaying:
			s.state = StatePaused
			s.emit(Event{Kind: EventPause})
		case StatePaused:
			s.state = StatePlaying
			s.emit(Event{Kind: EventResume})
		}
	case IntentReset:
		s.Reset()
	case IntentQuit:
		s.quit = true
		s.emit(Event{Kind: EventQuit})
	}
}

// step runs one playing tick.
func (s *Session) step() {
	s.tick++

	// Difficulty and speed
	speed, level := s.policy.NextSpeed(s.speed, s.player.Score, s.level)
	if level > s.level {
		s.emit(Event{Kind: EventLevelUp, Value: level})
	}
	s.speed, s.level = speed, level

	// Spawning
	for _, e := range s.spawner.Update(s.speed, s.level) {
		switch e.Category {
		case CategoryObstacle:
			s.obstacles = append(s.obstacles, e)
		case CategoryPowerUp:
			s.powerUps = append(s.powerUps, e)
		case CategoryCoin:
			s.coins = append(s.coins, e)
		}
	}

	// Movement
	s.obstacles = updateAll(s.obstacles)
	s.powerUps = updateAll(s.powerUps)
	s.coins = updateAll(s.coins)
	s.player.Update(s.groundY)

	// Storm
	playerSpeed, stormSpeed := s.storm.Speeds(s.speed, s.player.Jumping)
	if s.storm.Update(playerSpeed, stormSpeed) {
		s.stormStrike()
	}

	if s.state == StatePlaying {
		s.resolveCollisions()
	}

	if s.state == StatePlaying {
		s.player.AddScore(s.cfg.Scoring.PerTick)
	}

	if s.weather.Update(s.storm.Progress) {
		s.emit(Event{Kind: EventLightning})
	}
}

// stormStrike resolves the storm catching the player.
func (s *Session) stormStrike() {
	if !s.player.Invincible() {
		s.emit(Event{Kind: EventStormStrike})
	}
	if s.player.TakeDamage() {
		s.gameOver()
		return
	}
	s.storm.Recover()
}

func (s *Session) resolveCollisions() {
	body := s.player.Rect()

	if !s.player.Invincible() && HitsAny(body, s.obstacles) {
		s.emit(Event{Kind: EventHit})
		if s.player.TakeDamage() {
			s.gameOver()
			return
		}
	}

	var taken []Entity
	s.powerUps, taken = Collect(body, s.powerUps)
	for _, p := range taken {
		s.applyPowerUp(p.PowerUp)
	}

	s.coins, taken = Collect(body, s.coins)
	for _, c := range taken {
		s.player.CollectCoin(c.Value, s.cfg.Scoring.CoinMultiplier)
		s.emit(Event{Kind: EventCoin, Value: c.Value})
	}
}

func (s *Session) applyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpInvincibility:
		s.player.MakeInvincible(s.cfg.Player.PowerUpInvincibility)
	case PowerUpScoreBoost:
		s.player.AddScore(s.cfg.Scoring.ScoreBoost)
	case PowerUpExtraLife:
		s.player.AddLife()
	}
	s.emit(Event{Kind: EventPowerUp, PowerUp: kind})
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.highScore = max(s.highScore, s.player.Score)
	s.highCoins = max(s.highCoins, s.player.Coins)
	s.emit(Event{Kind: EventGameOver, Value: s.player.Score})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Quit reports whether a quit intent was received.
func (s *Session) Quit() bool {
	return s.quit
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// HighScore returns the best score and coin count seen by this session.
func (s *Session) HighScore() (score, coins int) {
	return s.highScore, s.highCoins
}
