package runner

import "github.com/vovakirdan/storm-runner/internal/core"

// Body is a vertically simulated rectangle in world units.
// Y is the top edge; the body rests on the ground when Bottom() == groundY.
type Body struct {
	X, Y                float64
	W, H                float64
	VelY                float64 // Positive = falling
	Jumping             bool
	DoubleJumpAvailable bool
}

// Bottom returns the y coordinate of the body's lower edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// Rect returns the collision rectangle.
func (b Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Grounded reports whether the body is standing on the ground.
func (b Body) Grounded() bool {
	return !b.Jumping
}

// ApplyGravity accelerates the body downwards and moves it.
// maxFall caps the falling speed; 0 leaves it uncapped.
func ApplyGravity(b *Body, gravity, maxFall float64) {
	b.VelY += gravity
	if maxFall > 0 && b.VelY > maxFall {
		b.VelY = maxFall
	}
	b.Y += b.VelY
}

// ClampToGround snaps the body onto the ground once it reaches it,
// restoring both jumps. Returns true if the body is on the ground.
func ClampToGround(b *Body, groundY float64) bool {
	if b.Bottom() < groundY {
		return false
	}
	b.Y = groundY - b.H
	b.VelY = 0
	b.Jumping = false
	b.DoubleJumpAvailable = true
	return true
}
