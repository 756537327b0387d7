package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// TargetFPS is the frame cadence requested from raylib. The integrator uses the
// measured frame time, so the simulation stays correct if the host can't keep up.
const TargetFPS = 144

// Run opens a window of the given size and drives the main loop. Each frame it
// calls update (input + simulation step), then clears the screen and calls draw.
// Returns when the window is closed.
func Run(width, height int32, title string, update, draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
