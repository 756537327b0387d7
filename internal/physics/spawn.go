package physics

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxPlacementAttempts caps rejection sampling per body. After this many tries the
// last candidate position is accepted even if it overlaps an earlier body; the
// overlap works itself out through normal collision resolution on later frames.
const maxPlacementAttempts = 100

// Color channels are sampled from [minColorChannel, 255] so bodies stay visible
// against the black background.
const minColorChannel = 100

// SpawnConfig controls body generation: population size, arena dimensions, the
// radius range (inclusive, integer-valued), and the velocity scale (each velocity
// axis is sampled from [-VelocityScale, +VelocityScale]).
type SpawnConfig struct {
	Count         int
	Width         float32
	Height        float32
	MinRadius     int32
	MaxRadius     int32
	VelocityScale int32
}

// Spawn generates cfg.Count bodies with random radius, position, velocity, and
// color. Mass is radius/2. Positions are rejection-sampled so bodies start
// non-overlapping, best-effort: placement gives up after maxPlacementAttempts and
// keeps the last candidate. The second return value counts how many bodies were
// placed that way, for optional logging; it does not indicate failure.
func Spawn(cfg SpawnConfig, rng *rand.Rand) ([]*Body, int) {
	bodies := make([]*Body, 0, cfg.Count)
	overlapping := 0

	for i := 0; i < cfg.Count; i++ {
		radius := float32(randBetween(rng, cfg.MinRadius, cfg.MaxRadius))

		var pos rl.Vector2
		placed := false
		for attempts := 0; attempts < maxPlacementAttempts; attempts++ {
			pos = rl.NewVector2(
				float32(randBetween(rng, int32(radius), int32(cfg.Width-radius))),
				float32(randBetween(rng, int32(radius), int32(cfg.Height-radius))),
			)
			if !overlapsAny(pos, radius, bodies) {
				placed = true
				break
			}
		}
		if !placed {
			overlapping++
		}

		vel := rl.NewVector2(
			float32(randBetween(rng, -cfg.VelocityScale, cfg.VelocityScale)),
			float32(randBetween(rng, -cfg.VelocityScale, cfg.VelocityScale)),
		)
		color := rl.NewColor(
			uint8(randBetween(rng, minColorChannel, 255)),
			uint8(randBetween(rng, minColorChannel, 255)),
			uint8(randBetween(rng, minColorChannel, 255)),
			255,
		)

		bodies = append(bodies, NewBody(pos, vel, radius, color))
	}

	return bodies, overlapping
}

// overlapsAny reports whether a circle at pos with the given radius intersects any
// already-placed body. Squared-distance test, no sqrt.
func overlapsAny(pos rl.Vector2, radius float32, bodies []*Body) bool {
	for _, b := range bodies {
		dx := pos.X - b.Position.X
		dy := pos.Y - b.Position.Y
		minDist := radius + b.Radius
		if dx*dx+dy*dy < minDist*minDist {
			return true
		}
	}
	return false
}

// randBetween returns a uniform integer in [lo, hi], both inclusive. A degenerate
// range (hi <= lo) returns lo, which covers arenas too small for the radius.
func randBetween(rng *rand.Rand, lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int31n(hi-lo+1)
}
