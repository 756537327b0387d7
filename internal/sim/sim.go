package sim

import (
	"math/rand"
	"time"

	"collision-sim/internal/config"
	"collision-sim/internal/logger"
	"collision-sim/internal/physics"
)

// Sim owns the arena and the two pieces of per-run state the user can change:
// the body population (recreated wholesale on Reset) and the debug-display flag.
// It is single-threaded: the frame loop calls Update, Reset, and ToggleDebug from
// one goroutine, and nothing else aliases the body slice across frames.
type Sim struct {
	Config    config.Config
	Arena     *physics.Arena
	ShowDebug bool
	Energy    float32 // total kinetic energy after the last Update

	rng *rand.Rand
	log *logger.Logger
}

// New returns a running simulation with a freshly spawned population.
// Seed controls randomness; seed == 0 uses a time-based seed. log may be nil.
func New(cfg config.Config, seed int64, log *logger.Logger) *Sim {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sim{
		Config: cfg,
		Arena:  physics.NewArena(cfg.Width, cfg.Height, cfg.Restitution),
		rng:    rand.New(rand.NewSource(seed)),
		log:    log,
	}
	s.spawn()
	s.Energy = physics.TotalKineticEnergy(s.Arena.Bodies)
	return s
}

// Update advances the simulation one frame: integrate, resolve walls and pairs,
// then recompute the total kinetic energy from the post-resolution velocities.
func (s *Sim) Update(dt float32) {
	s.Arena.Step(dt)
	s.Energy = physics.TotalKineticEnergy(s.Arena.Bodies)
}

// Reset discards the current population and spawns a new one from the same
// config. The debug-display flag survives a reset.
func (s *Sim) Reset() {
	s.spawn()
	s.Energy = physics.TotalKineticEnergy(s.Arena.Bodies)
	s.log.Logf("reset: %d bodies", len(s.Arena.Bodies))
}

// ToggleDebug flips the debug-display flag (per-body mass labels, memory counter).
func (s *Sim) ToggleDebug() {
	s.ShowDebug = !s.ShowDebug
}

func (s *Sim) spawn() {
	bodies, overlapping := physics.Spawn(physics.SpawnConfig{
		Count:         s.Config.BodyCount,
		Width:         s.Config.Width,
		Height:        s.Config.Height,
		MinRadius:     s.Config.MinRadius,
		MaxRadius:     s.Config.MaxRadius,
		VelocityScale: s.Config.VelocityScale,
	}, s.rng)
	s.Arena.Bodies = bodies
	if overlapping > 0 {
		s.log.Logf("spawn: %d of %d bodies placed overlapping after attempt cap", overlapping, len(bodies))
	}
}
