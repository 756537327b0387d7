package sim

import (
	"testing"

	"collision-sim/internal/config"
	"collision-sim/internal/physics"
)

func testConfig() config.Config {
	c := config.Default()
	c.BodyCount = 8
	return c
}

func TestNew(t *testing.T) {
	s := New(testConfig(), 1, nil)

	if len(s.Arena.Bodies) != 8 {
		t.Errorf("len(bodies) = %d, expected 8", len(s.Arena.Bodies))
	}
	if s.ShowDebug {
		t.Error("ShowDebug should start off")
	}
	if want := physics.TotalKineticEnergy(s.Arena.Bodies); s.Energy != want {
		t.Errorf("Energy = %v, expected %v from spawned velocities", s.Energy, want)
	}
	if s.Arena.Width != 800 || s.Arena.Height != 600 || s.Arena.Restitution != 1.0 {
		t.Errorf("arena = %vx%v e=%v, expected config values",
			s.Arena.Width, s.Arena.Height, s.Arena.Restitution)
	}
}

func TestUpdate(t *testing.T) {
	s := New(testConfig(), 1, nil)

	for i := 0; i < 100; i++ {
		s.Update(1.0 / 144.0)
		if s.Energy < 0 {
			t.Fatalf("Energy = %v after frame %d, expected non-negative", s.Energy, i)
		}
	}
	if want := physics.TotalKineticEnergy(s.Arena.Bodies); s.Energy != want {
		t.Errorf("Energy = %v, expected %v from post-resolution velocities", s.Energy, want)
	}
}

func TestReset(t *testing.T) {
	s := New(testConfig(), 1, nil)
	s.ToggleDebug()
	old := s.Arena.Bodies

	s.Reset()

	if len(s.Arena.Bodies) != 8 {
		t.Errorf("len(bodies) = %d after reset, expected 8", len(s.Arena.Bodies))
	}
	if s.Arena.Bodies[0] == old[0] {
		t.Error("reset reused old bodies, expected a fresh population")
	}
	if !s.ShowDebug {
		t.Error("ShowDebug should survive a reset")
	}
	if want := physics.TotalKineticEnergy(s.Arena.Bodies); s.Energy != want {
		t.Errorf("Energy = %v after reset, expected %v", s.Energy, want)
	}
}

func TestToggleDebug(t *testing.T) {
	s := New(testConfig(), 1, nil)

	s.ToggleDebug()
	if !s.ShowDebug {
		t.Error("ShowDebug = false after one toggle, expected true")
	}
	s.ToggleDebug()
	if s.ShowDebug {
		t.Error("ShowDebug = true after two toggles, expected false")
	}
}
