package runner

import "fmt"

// EventKind identifies a discrete thing that happened during Advance.
type EventKind int

const (
	EventStart EventKind = iota
	EventPause
	EventResume
	EventRestart
	EventQuit
	EventJump
	EventDoubleJump
	EventLevelUp
	EventHit         // Obstacle damage
	EventStormStrike // Storm reached full progress
	EventPowerUp
	EventCoin
	EventLightning
	EventGameOver
)

var eventNames = map[EventKind]string{
	EventStart:       "start",
	EventPause:       "pause",
	EventResume:      "resume",
	EventRestart:     "restart",
	EventQuit:        "quit",
	EventJump:        "jump",
	EventDoubleJump:  "double_jump",
	EventLevelUp:     "level_up",
	EventHit:         "hit",
	EventStormStrike: "storm_strike",
	EventPowerUp:     "powerup",
	EventCoin:        "coin",
	EventLightning:   "lightning",
	EventGameOver:    "game_over",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one game event. PowerUp is set for EventPowerUp, Value carries
// the coin value, the new level or the final score depending on Kind.
type Event struct {
	Kind    EventKind
	PowerUp PowerUpKind
	Value   int
}

func (e Event) String() string {
	switch e.Kind {
	case EventPowerUp:
		return fmt.Sprintf("%s:%s", e.Kind, e.PowerUp)
	case EventCoin, EventLevelUp, EventGameOver:
		return fmt.Sprintf("%s:%d", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}
