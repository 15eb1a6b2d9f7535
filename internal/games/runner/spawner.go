package runner

import (
	"github.com/vovakirdan/storm-runner/internal/config"
	"github.com/vovakirdan/storm-runner/internal/core"
)

// Spawner creates obstacles, power-ups and coins at the right edge of the
// field. Each category runs its own timer; when it fires, one chance roll
// decides whether an entity appears or the slot is skipped.
type Spawner struct {
	cfg    *config.RunnerConfig
	policy *config.DifficultyPolicy
	rng    core.Rand

	obstacleTimer int
	powerUpTimer  int
	coinTimer     int
}

// NewSpawner creates a spawner with all timers at zero.
func NewSpawner(cfg *config.RunnerConfig, policy *config.DifficultyPolicy, rng core.Rand) *Spawner {
	return &Spawner{cfg: cfg, policy: policy, rng: rng}
}

// Reset zeroes every spawn timer.
func (s *Spawner) Reset() {
	s.obstacleTimer = 0
	s.powerUpTimer = 0
	s.coinTimer = 0
}

// Timers returns the obstacle, power-up and coin timers.
func (s *Spawner) Timers() (obstacle, powerUp, coin int) {
	return s.obstacleTimer, s.powerUpTimer, s.coinTimer
}

// Update advances the timers by one tick and returns the entities spawned
// this tick, at most one per category. It never removes entities.
func (s *Spawner) Update(speed float64, level int) []Entity {
	var spawned []Entity

	if s.fire(&s.obstacleTimer, s.cfg.Spawn.Obstacles, speed, level) {
		spawned = append(spawned, s.spawnObstacle(speed, level))
	}
	if s.fire(&s.powerUpTimer, s.cfg.Spawn.PowerUps, speed, level) {
		spawned = append(spawned, s.spawnPowerUp(speed))
	}
	if s.fire(&s.coinTimer, s.cfg.Spawn.Coins, speed, level) {
		spawned = append(spawned, s.spawnCoin(speed))
	}

	return spawned
}

// fire advances one category timer. It returns true when the timer elapsed
// and the chance roll succeeded.
func (s *Spawner) fire(timer *int, c config.SpawnCategory, speed float64, level int) bool {
	*timer++
	if *timer < c.Rate(speed, level) {
		return false
	}
	*timer = 0
	return s.rng.Float64() < c.Chance
}

// ObstacleKinds returns the obstacle subtypes unlocked at a level.
func (s *Spawner) ObstacleKinds(level int) []ObstacleKind {
	kinds := []ObstacleKind{ObstacleStandard}
	if s.policy.FlyingUnlocked(level) {
		kinds = append(kinds, ObstacleFlying)
	}
	if s.policy.BoulderUnlocked(level) {
		kinds = append(kinds, ObstacleBoulder)
	}
	return kinds
}

func (s *Spawner) spawnObstacle(speed float64, level int) Entity {
	kinds := s.ObstacleKinds(level)
	kind := kinds[0]
	if len(kinds) > 1 {
		kind = kinds[s.rng.Intn(len(kinds))]
	}

	e := Entity{
		Category: CategoryObstacle,
		Obstacle: kind,
		X:        s.cfg.Field.Width,
		Speed:    s.cfg.Spawn.Obstacles.BaseSpeed + speed,
	}
	groundY := s.cfg.Field.GroundY()
	ents := s.cfg.Entities

	switch kind {
	case ObstacleStandard:
		e.W = float64(core.RandRange(s.rng, ents.Standard.MinWidth, ents.Standard.MaxWidth))
		e.H = float64(core.RandRange(s.rng, ents.Standard.MinHeight, ents.Standard.MaxHeight))
		e.Y = groundY - e.H
	case ObstacleFlying:
		fl := ents.Flying
		e.W = float64(core.RandRange(s.rng, fl.Size.MinWidth, fl.Size.MaxWidth))
		e.H = float64(core.RandRange(s.rng, fl.Size.MinHeight, fl.Size.MaxHeight))
		offset := float64(core.RandRange(s.rng, fl.MinOffset, fl.MaxOffset))
		e.Y = groundY - offset - e.H
		e.baseY = e.Y
		amplitude := float64(core.RandRange(s.rng, fl.MinBob, fl.MaxBob))
		e.bob = NewOscillator(amplitude, fl.BobPeriod, s.rng.Intn(2) == 0)
	case ObstacleBoulder:
		size := float64(core.RandRange(s.rng, ents.Boulder.MinSize, ents.Boulder.MaxSize))
		e.W, e.H = size, size
		e.Y = groundY - size
		e.spin = core.RandRangeF(s.rng, ents.Boulder.MinSpin, ents.Boulder.MaxSpin)
	}

	return e
}

func (s *Spawner) spawnPowerUp(speed float64) Entity {
	pc := s.cfg.Entities.PowerUp
	size := float64(pc.Size)
	offset := float64(core.RandRange(s.rng, pc.MinOffset, pc.MaxOffset))
	return Entity{
		Category: CategoryPowerUp,
		PowerUp:  PowerUpKind(s.rng.Intn(powerUpKinds)),
		X:        s.cfg.Field.Width,
		Y:        s.cfg.Field.GroundY() - offset - size,
		W:        size,
		H:        size,
		Speed:    s.cfg.Spawn.PowerUps.BaseSpeed + speed,
	}
}

func (s *Spawner) spawnCoin(speed float64) Entity {
	cc := s.cfg.Entities.Coin
	size := float64(cc.Size)
	offset := float64(core.RandRange(s.rng, cc.MinOffset, cc.MaxOffset))
	return Entity{
		Category: CategoryCoin,
		Value:    cc.Value,
		X:        s.cfg.Field.Width,
		Y:        s.cfg.Field.GroundY() - offset - size,
		W:        size,
		H:        size,
		Speed:    s.cfg.Spawn.Coins.BaseSpeed + speed,
	}
}
