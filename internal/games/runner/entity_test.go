package runner

import (
	"testing"

	"github.com/vovakirdan/storm-runner/internal/core"
)

func TestEntityMovesLeft(t *testing.T) {
	e := Entity{Category: CategoryCoin, X: 100, Speed: 6}
	e.Update()
	if e.X != 94 {
		t.Errorf("x = %v, want 94", e.X)
	}
}

func TestBoulderRotationWraps(t *testing.T) {
	e := Entity{Category: CategoryObstacle, Obstacle: ObstacleBoulder, X: 500, Speed: 1, spin: 5, Rotation: 357}
	e.Update()
	if e.Rotation != 2 {
		t.Errorf("rotation = %v, want 2 after wrapping", e.Rotation)
	}
}

func TestUpdateAllCullsOffScreen(t *testing.T) {
	entities := []Entity{
		{Category: CategoryObstacle, X: 3, W: 20, Speed: 30},  // fully past the edge
		{Category: CategoryObstacle, X: 10, W: 20, Speed: 25}, // still partly visible
		{Category: CategoryCoin, X: 800, W: 15, Speed: 6},
	}
	kept := updateAll(entities)
	if len(kept) != 2 {
		t.Fatalf("kept %d entities, want 2", len(kept))
	}
	if kept[0].X != -15 || kept[1].X != 794 {
		t.Errorf("kept positions %v, %v", kept[0].X, kept[1].X)
	}
}

func TestFlyingObstacleBobsAroundSpawnHeight(t *testing.T) {
	e := Entity{
		Category: CategoryObstacle,
		Obstacle: ObstacleFlying,
		X:        1000,
		Y:        300,
		baseY:    300,
		Speed:    1,
		bob:      NewOscillator(20, 40, false),
	}
	minY, maxY := e.Y, e.Y
	for range 200 {
		e.Update()
		minY = min(minY, e.Y)
		maxY = max(maxY, e.Y)
	}
	if minY < 280-0.01 || maxY > 320+0.01 {
		t.Errorf("flyer left its band: y in [%v, %v]", minY, maxY)
	}
	if minY > 281 || maxY < 319 {
		t.Errorf("flyer did not swing fully: y in [%v, %v]", minY, maxY)
	}
}

func TestOscillatorDirection(t *testing.T) {
	up := NewOscillator(10, 40, true)
	if v := up.Update(); v >= 0 {
		t.Errorf("upward oscillator first offset = %v, want negative", v)
	}
	down := NewOscillator(10, 40, false)
	if v := down.Update(); v <= 0 {
		t.Errorf("downward oscillator first offset = %v, want positive", v)
	}

	flat := NewOscillator(0, 40, true)
	for range 50 {
		if v := flat.Update(); v != 0 {
			t.Fatalf("zero amplitude offset = %v", v)
		}
	}
}

func TestOscillatorPeriod(t *testing.T) {
	o := NewOscillator(10, 40, false)
	// Quarter period to the lower extreme, half period to the upper one.
	var v float64
	for range 10 {
		v = o.Update()
	}
	if !approxF(v, 10) {
		t.Errorf("offset after a quarter period = %v, want 10", v)
	}
	for range 20 {
		v = o.Update()
	}
	if !approxF(v, -10) {
		t.Errorf("offset after three quarters = %v, want -10", v)
	}
	if o.Offset() != v {
		t.Error("Offset should report the last update")
	}
}

func TestCollisionHelpers(t *testing.T) {
	player := core.NewRectF(100, 490, 30, 50)

	touching := []Entity{{X: 130, Y: 490, W: 20, H: 50}}
	if HitsAny(player, touching) {
		t.Error("touching edges should not collide")
	}
	overlap := []Entity{{X: 129, Y: 490, W: 20, H: 50}}
	if !HitsAny(player, overlap) {
		t.Error("overlapping obstacle should collide")
	}

	items := []Entity{
		{Value: 1, X: 0, Y: 0, W: 10, H: 10},
		{Value: 2, X: 110, Y: 500, W: 15, H: 15},
		{Value: 3, X: 600, Y: 500, W: 15, H: 15},
		{Value: 4, X: 120, Y: 520, W: 15, H: 15},
	}
	remaining, collected := Collect(player, items)
	if len(collected) != 2 || collected[0].Value != 2 || collected[1].Value != 4 {
		t.Errorf("collected %+v", collected)
	}
	if len(remaining) != 2 || remaining[0].Value != 1 || remaining[1].Value != 3 {
		t.Errorf("remaining %+v", remaining)
	}
}

func approxF(a, b float64) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}
