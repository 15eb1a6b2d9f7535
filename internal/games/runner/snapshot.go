package runner

import "math"

// PlayerView is the drawable part of the player.
type PlayerView struct {
	X, Y, W, H          float64
	VelY                float64
	Jumping             bool
	DoubleJumpAvailable bool
	Invincible          bool
	InvincibleTicks     int
}

// EntityView is the drawable part of an entity. Kind holds the obstacle or
// power-up subtype; it is zero for coins.
type EntityView struct {
	Category Category
	Kind     int
	X, Y     float64
	W, H     float64
	Rotation float64
	Value    int
}

// Snapshot is a read-only copy of the session after a tick.
// Renderers, recorders and tests consume it; nothing in it aliases the session.
type Snapshot struct {
	Tick  uint64
	State State
	Quit  bool

	Player PlayerView
	Score  int
	Coins  int
	Lives  int

	HighScore int
	HighCoins int

	GameSpeed float64
	Level     int

	StormProgress float64
	StormDanger   bool

	WeatherIntensity float64
	LightningFlash   bool

	Obstacles []EntityView
	PowerUps  []EntityView
	CoinItems []EntityView

	Events []Event
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Tick:  s.tick,
		State: s.state,
		Quit:  s.quit,
		Player: PlayerView{
			X:                   p.X,
			Y:                   p.Y,
			W:                   p.W,
			H:                   p.H,
			VelY:                p.VelY,
			Jumping:             p.Jumping,
			DoubleJumpAvailable: p.DoubleJumpAvailable,
			Invincible:          p.Invincible(),
			InvincibleTicks:     p.InvincibleTicks(),
		},
		Score:            p.Score,
		Coins:            p.Coins,
		Lives:            p.Lives,
		HighScore:        s.highScore,
		HighCoins:        s.highCoins,
		GameSpeed:        s.speed,
		Level:            s.level,
		StormProgress:    s.storm.Progress,
		StormDanger:      s.storm.InDanger(),
		WeatherIntensity: s.weather.Intensity,
		LightningFlash:   s.weather.Flashing(),
		Obstacles:        viewsOf(s.obstacles),
		PowerUps:         viewsOf(s.powerUps),
		CoinItems:        viewsOf(s.coins),
	}
	if len(s.events) > 0 {
		snap.Events = append([]Event(nil), s.events...)
	}
	return snap
}

func viewsOf(entities []Entity) []EntityView {
	views := make([]EntityView, len(entities))
	for i := range entities {
		e := &entities[i]
		v := EntityView{
			Category: e.Category,
			X:        e.X,
			Y:        e.Y,
			W:        e.W,
			H:        e.H,
			Rotation: e.Rotation,
			Value:    e.Value,
		}
		switch e.Category {
		case CategoryObstacle:
			v.Kind = int(e.Obstacle)
		case CategoryPowerUp:
			v.Kind = int(e.PowerUp)
		}
		views[i] = v
	}
	return views
}

// HasEvent reports whether an event of the given kind happened this tick.
func (snap *Snapshot) HasEvent(kind EventKind) bool {
	return snap.CountEvents(kind) > 0
}

// CountEvents returns how many events of the given kind happened this tick.
func (snap *Snapshot) CountEvents(kind EventKind) int {
	n := 0
	for _, e := range snap.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats contribute their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + hashBool(snap.Quit)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.GameSpeed)
	h = h*31 + math.Float64bits(snap.StormProgress)

	p := snap.Player
	h = h*31 + math.Float64bits(p.Y)
	h = h*31 + math.Float64bits(p.VelY)
	h = h*31 + hashBool(p.Jumping)
	h = h*31 + hashBool(p.DoubleJumpAvailable)
	h = h*31 + uint64(p.InvincibleTicks) //#nosec G115 -- hash computation

	for _, group := range [][]EntityView{snap.Obstacles, snap.PowerUps, snap.CoinItems} {
		h = h*31 + uint64(len(group))
		for _, e := range group {
			h = h*31 + uint64(e.Category) //#nosec G115 -- hash computation
			h = h*31 + uint64(e.Kind)     //#nosec G115 -- hash computation
			h = h*31 + math.Float64bits(e.X)
			h = h*31 + math.Float64bits(e.Y)
			h = h*31 + math.Float64bits(e.W)
			h = h*31 + math.Float64bits(e.H)
			h = h*31 + math.Float64bits(e.Rotation)
		}
	}

	return h
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
