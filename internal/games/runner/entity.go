package runner

import "github.com/vovakirdan/storm-runner/internal/core"

// Category tags the variant an Entity holds.
type Category int

const (
	CategoryObstacle Category = iota
	CategoryPowerUp
	CategoryCoin
)

func (c Category) String() string {
	switch c {
	case CategoryObstacle:
		return "obstacle"
	case CategoryPowerUp:
		return "powerup"
	case CategoryCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// ObstacleKind is the obstacle subtype.
type ObstacleKind int

const (
	ObstacleStandard ObstacleKind = iota
	ObstacleFlying
	ObstacleBoulder
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleStandard:
		return "standard"
	case ObstacleFlying:
		return "flying"
	case ObstacleBoulder:
		return "boulder"
	default:
		return "unknown"
	}
}

// PowerUpKind is the power-up subtype.
type PowerUpKind int

const (
	PowerUpInvincibility PowerUpKind = iota
	PowerUpScoreBoost
	PowerUpExtraLife

	powerUpKinds = 3
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpScoreBoost:
		return "score_boost"
	case PowerUpExtraLife:
		return "extra_life"
	default:
		return "unknown"
	}
}

// Entity is anything that scrolls towards the player: an obstacle, a
// power-up or a coin. Only the payload matching Category is meaningful.
type Entity struct {
	Category Category
	X, Y     float64 // Top-left corner
	W, H     float64
	Speed    float64 // Units per tick towards the left

	Obstacle ObstacleKind
	PowerUp  PowerUpKind
	Value    int // Coin value

	Rotation float64 // Degrees, boulders only
	spin     float64
	baseY    float64
	bob      *Oscillator
}

// Rect returns the collision rectangle.
func (e *Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Update moves the entity one tick and advances its subtype animation.
func (e *Entity) Update() {
	e.X -= e.Speed

	if e.Category != CategoryObstacle {
		return
	}
	switch e.Obstacle {
	case ObstacleFlying:
		if e.bob != nil {
			e.Y = e.baseY + e.bob.Update()
		}
	case ObstacleBoulder:
		e.Rotation += e.spin
		if e.Rotation >= 360 {
			e.Rotation -= 360
		}
	}
}

// OffScreen reports whether the entity has fully left the field on the left.
func (e *Entity) OffScreen() bool {
	return e.X+e.W < 0
}

// updateAll moves every entity and drops the ones that left the field.
func updateAll(entities []Entity) []Entity {
	kept := entities[:0]
	for i := range entities {
		entities[i].Update()
		if !entities[i].OffScreen() {
			kept = append(kept, entities[i])
		}
	}
	return kept
}
