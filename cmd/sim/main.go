package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"collision-sim/internal/config"
	"collision-sim/internal/env"
	"collision-sim/internal/graphics"
	"collision-sim/internal/hud"
	"collision-sim/internal/logger"
	"collision-sim/internal/render"
	"collision-sim/internal/sim"
)

func main() {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	cfg, _ := config.Load()
	log.Logf("start: %dx%d, %d bodies, restitution %.2f",
		int(cfg.Width), int(cfg.Height), cfg.BodyCount, cfg.Restitution)

	s := sim.New(cfg, 0, log)

	overlay := hud.New()
	overlay.ShowFPS = true

	update := func() {
		// Commands are edge-triggered and applied before the physics step.
		if rl.IsKeyPressed(rl.KeyR) {
			s.Reset()
		}
		if rl.IsKeyPressed(rl.KeyD) {
			s.ToggleDebug()
		}
		s.Update(rl.GetFrameTime())
	}
	draw := func() {
		render.Draw(s.Arena, s.Energy, s.ShowDebug)
		overlay.ShowMemAlloc = s.ShowDebug
		overlay.Draw()
	}
	graphics.Run(int32(cfg.Width), int32(cfg.Height), "Collision Simulator", update, draw)
}
