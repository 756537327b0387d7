package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a circular 2D body with position, velocity, and a fixed radius.
// Mass is derived as radius/2 — linear in radius rather than area, a deliberate
// simplification the collision response and the energy display both rely on.
// Color has no physics role; it is carried for the renderer.
type Body struct {
	Position rl.Vector2
	Velocity rl.Vector2
	Radius   float32
	Mass     float32
	Color    rl.Color
}

// NewBody returns a body with the given position, velocity, radius, and color.
// Radius must be positive; non-positive values are clamped to 1 so mass stays positive.
func NewBody(position, velocity rl.Vector2, radius float32, color rl.Color) *Body {
	if radius <= 0 {
		radius = 1
	}
	return &Body{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
		Mass:     radius / 2,
		Color:    color,
	}
}

// KineticEnergy returns the body's kinetic energy, 0.5·m·|v|².
func (b *Body) KineticEnergy() float32 {
	speedSq := b.Velocity.X*b.Velocity.X + b.Velocity.Y*b.Velocity.Y
	return 0.5 * b.Mass * speedSq
}
