package runner

import (
	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// JumpKind describes what a jump request did.
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpSingle
	JumpDouble
)

// Player is the runner controlled by the user.
type Player struct {
	Body
	Lives int
	Score int
	Coins int // Sum of collected coin values

	invincible core.Countdown
	cfg        config.PlayerConfig
	physics    config.PhysicsConfig
}

// NewPlayer creates a player standing on the ground with full jumps.
func NewPlayer(cfg config.RunnerConfig) *Player {
	groundY := cfg.Field.GroundY()
	return &Player{
		Body: Body{
			X:                   cfg.Player.X,
			Y:                   groundY - cfg.Player.Height,
			W:                   cfg.Player.Width,
			H:                   cfg.Player.Height,
			DoubleJumpAvailable: true,
		},
		Lives:   cfg.Player.StartLives,
		cfg:     cfg.Player,
		physics: cfg.Physics,
	}
}

// Jump starts a jump from the ground, or spends the double jump in the air.
func (p *Player) Jump() JumpKind {
	switch {
	case !p.Jumping:
		p.VelY = p.physics.JumpImpulse
		p.Jumping = true
		return JumpSingle
	case p.DoubleJumpAvailable:
		p.VelY = p.physics.DoubleJumpImpulse
		p.DoubleJumpAvailable = false
		return JumpDouble
	default:
		return JumpNone
	}
}

// Update applies one tick of physics and runs down invincibility.
func (p *Player) Update(groundY float64) {
	ApplyGravity(&p.Body, p.physics.Gravity, p.physics.MaxFallSpeed)
	ClampToGround(&p.Body, groundY)
	p.TickInvincibility()
}

// TakeDamage removes a life unless the player is invincible, then grants
// hit invincibility. Returns true if the damage was fatal.
func (p *Player) TakeDamage() bool {
	if p.Invincible() {
		return false
	}
	p.Lives--
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.MakeInvincible(p.cfg.HitInvincibility)
	return p.Lives <= 0
}

// MakeInvincible protects the player for the given number of ticks.
func (p *Player) MakeInvincible(ticks int) {
	p.invincible.Start(ticks)
}

// TickInvincibility advances the invincibility timer by one tick.
func (p *Player) TickInvincibility() {
	p.invincible.Tick()
}

// Invincible reports whether the player currently ignores damage.
func (p *Player) Invincible() bool {
	return p.invincible.Active()
}

// InvincibleTicks returns the remaining invincibility duration.
func (p *Player) InvincibleTicks() int {
	return p.invincible.Remaining()
}

// AddLife grants an extra life unless the player is at the cap.
func (p *Player) AddLife() bool {
	if p.Lives >= p.cfg.MaxLives {
		return false
	}
	p.Lives++
	return true
}

// AddScore increases the score. Negative amounts are ignored.
func (p *Player) AddScore(n int) {
	if n > 0 {
		p.Score += n
	}
}

// CollectCoin adds a coin's value and its score reward.
func (p *Player) CollectCoin(value, multiplier int) {
	p.Coins += value
	p.AddScore(value * multiplier)
}
