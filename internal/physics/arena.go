package physics

import (
	"math"
)

// Arena holds a set of bodies inside a rectangular boundary and runs a simple
// 2D physics step: integration, wall collision, then pairwise circle collision.
type Arena struct {
	Width       float32
	Height      float32
	Restitution float32 // 1 = perfectly elastic, <1 dissipates energy along the normal
	Bodies      []*Body
}

// NewArena returns an arena with the given dimensions and restitution coefficient
// and no bodies. Bodies are attached by the caller (usually via Spawn).
func NewArena(width, height, restitution float32) *Arena {
	return &Arena{
		Width:       width,
		Height:      height,
		Restitution: restitution,
	}
}

// Step advances the simulation by dt seconds: integrate all positions first, then
// resolve collisions — wall contact per body, and every unordered pair exactly once,
// in ascending index order. The iteration order is fixed; simultaneous multi-body
// contacts are resolved sequentially, which is order-dependent but deterministic.
func (a *Arena) Step(dt float32) {
	a.Integrate(dt)
	for i := 0; i < len(a.Bodies); i++ {
		a.ResolveWall(a.Bodies[i])
		for j := i + 1; j < len(a.Bodies); j++ {
			a.ResolvePair(a.Bodies[i], a.Bodies[j])
		}
	}
}

// Integrate moves every body by velocity·dt. No collision awareness here: positions
// are corrected afterwards, so a large dt can tunnel fast bodies past each other
// within a single frame.
func (a *Arena) Integrate(dt float32) {
	for _, b := range a.Bodies {
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
	}
}

// ResolveWall clamps b inside the arena and reflects its velocity on contact.
// Each axis is handled independently, so a body in a corner is corrected on both
// axes in the same call. The reflected component is scaled by -restitution.
func (a *Arena) ResolveWall(b *Body) {
	if b.Position.X-b.Radius <= 0 {
		b.Position.X = b.Radius
		b.Velocity.X *= -a.Restitution
	} else if b.Position.X+b.Radius >= a.Width {
		b.Position.X = a.Width - b.Radius
		b.Velocity.X *= -a.Restitution
	}

	if b.Position.Y-b.Radius <= 0 {
		b.Position.Y = b.Radius
		b.Velocity.Y *= -a.Restitution
	} else if b.Position.Y+b.Radius >= a.Height {
		b.Position.Y = a.Height - b.Radius
		b.Velocity.Y *= -a.Restitution
	}
}

// ResolvePair detects and resolves a collision between two bodies. Overlapping
// bodies are pushed apart along the center-to-center normal, the overlap split
// equally between them regardless of mass. Velocities then receive an impulse
// along the normal using the bodies' inverse masses, unless they are already
// separating. Coincident centers (distSq == 0) are left untouched so the normal
// is always well defined; motion on a later frame separates them.
func (a *Arena) ResolvePair(b1, b2 *Body) {
	dx := b2.Position.X - b1.Position.X
	dy := b2.Position.Y - b1.Position.Y
	distSq := dx*dx + dy*dy
	minDist := b1.Radius + b2.Radius

	if distSq >= minDist*minDist || distSq <= 0 {
		return
	}

	dist := float32(math.Sqrt(float64(distSq)))
	nx := dx / dist
	ny := dy / dist

	// Positional correction first, so bodies never stay interpenetrated.
	overlap := 0.5 * (minDist - dist)
	b1.Position.X -= overlap * nx
	b1.Position.Y -= overlap * ny
	b2.Position.X += overlap * nx
	b2.Position.Y += overlap * ny

	rvx := b2.Velocity.X - b1.Velocity.X
	rvy := b2.Velocity.Y - b1.Velocity.Y
	vn := rvx*nx + rvy*ny

	// Already separating along the normal: positions were corrected, velocities stay.
	if vn > 0 {
		return
	}

	j := -(1 + a.Restitution) * vn / (1/b1.Mass + 1/b2.Mass)

	b1.Velocity.X -= j * nx / b1.Mass
	b1.Velocity.Y -= j * ny / b1.Mass
	b2.Velocity.X += j * nx / b2.Mass
	b2.Velocity.Y += j * ny / b2.Mass
}

// TotalKineticEnergy sums 0.5·m·|v|² over all bodies. Pure; an empty slice yields 0.
func TotalKineticEnergy(bodies []*Body) float32 {
	var total float32
	for _, b := range bodies {
		total += b.KineticEnergy()
	}
	return total
}
