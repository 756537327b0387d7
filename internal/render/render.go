package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"collision-sim/internal/physics"
)

const (
	statusFontSize = 20
	statusPadding  = 10
	statusLine     = 25

	hintFontSize = 10
	hintColumnW  = 170

	massFontSize = 10
)

// Draw renders one frame of simulation state: every body as a filled circle, the
// arena border, and the status text block (body count, restitution, total kinetic
// energy, control hints). When showDebug is set, each body also gets its mass as
// a small white label. Call between BeginDrawing and EndDrawing.
func Draw(a *physics.Arena, energy float32, showDebug bool) {
	for _, b := range a.Bodies {
		rl.DrawCircleV(b.Position, b.Radius, b.Color)
		if showDebug {
			rl.DrawText(fmt.Sprintf("M:%.1f", b.Mass),
				int32(b.Position.X)-15, int32(b.Position.Y)-8, massFontSize, rl.White)
		}
	}

	rl.DrawRectangleLines(0, 0, int32(a.Width), int32(a.Height), rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Bodies: %d", len(a.Bodies)),
		statusPadding, statusPadding, statusFontSize, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Restitution: %.2f", a.Restitution),
		statusPadding, statusPadding+statusLine, statusFontSize, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Total kinetic energy: %.0f", energy),
		statusPadding, statusPadding+2*statusLine, statusFontSize, rl.Lime)

	hintX := int32(a.Width) - hintColumnW
	rl.DrawText("Press [R] to restart", hintX, 40, hintFontSize, rl.Gray)
	rl.DrawText("Press [D] for debug info", hintX, 55, hintFontSize, rl.Gray)
}
