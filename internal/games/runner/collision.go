package runner

import "github.com/vovakirdan/storm-runner/internal/core"

// HitsAny reports whether the player overlaps at least one obstacle.
// However many obstacles overlap, the caller applies damage once.
func HitsAny(player core.RectF, obstacles []Entity) bool {
	for i := range obstacles {
		if player.Intersects(obstacles[i].Rect()) {
			return true
		}
	}
	return false
}

// Collect removes every entity overlapping the player. It returns the
// remaining entities and the collected ones, both in spawn order.
func Collect(player core.RectF, items []Entity) (remaining, collected []Entity) {
	remaining = items[:0]
	for i := range items {
		if player.Intersects(items[i].Rect()) {
			collected = append(collected, items[i])
		} else {
			remaining = append(remaining, items[i])
		}
	}
	return remaining, collected
}
